package main

import (
	"strings"
	"time"

	"pet-care-tracker/internal/validation"

	"github.com/spf13/cobra"
)

func today() string {
	return time.Now().Format(validation.DateLayout)
}

func newRemoveCmd(short string, remove func(id string) error) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return remove(strings.TrimSpace(args[0]))
		},
	}
}
