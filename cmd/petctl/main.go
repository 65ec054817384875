// Command petctl maneja el tracker de mascotas desde la terminal,
// contra el mismo backend clave-valor que usa el server.
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	if err := execute(context.Background(), os.Stdout, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
