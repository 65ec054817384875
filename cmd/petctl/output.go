package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"pet-care-tracker/internal/domain/tracker"
	"pet-care-tracker/internal/validation"
)

var (
	errNoCurrentPet = errors.New("no current pet: add one with `petctl pet add` or select one with `petctl pet use <id>`")
	errNotFound     = errors.New("record not found for the current pet")
	errUnknownPet   = errors.New("unknown pet id")
)

// validationError lista los campos con error en orden estable.
type validationError struct {
	errs validation.Errors
}

func (e validationError) Error() string {
	fields := e.errs.Fields()
	sort.Strings(fields)

	var sb strings.Builder
	sb.WriteString("invalid input:")
	for _, f := range fields {
		fmt.Fprintf(&sb, "\n  %s: %s", f, strings.Join(e.errs[f], "; "))
	}
	return sb.String()
}

func validate(form map[string]any, schema validation.Schema) error {
	if errs := validation.ValidateForm(form, schema); !errs.Valid() {
		return validationError{errs: errs}
	}
	return nil
}

// report traduce el Outcome a salida o error del comando.
func (a *app) report(out tracker.Outcome, id string) error {
	switch out {
	case tracker.NoCurrentPet:
		return errNoCurrentPet
	case tracker.NotFound:
		return errNotFound
	case tracker.UnknownPet:
		return errUnknownPet
	}

	if a.json {
		return a.printJSON(map[string]string{"outcome": out.String(), "id": id})
	}
	if out == tracker.DuplicateIgnored {
		fmt.Fprintln(a.out, "duplicate ignored: a record for that date already exists")
		return nil
	}
	if id != "" {
		fmt.Fprintf(a.out, "%s %s\n", out, id)
		return nil
	}
	fmt.Fprintln(a.out, out)
	return nil
}

func (a *app) printJSON(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Fprintln(a.out, string(b))
	return nil
}

// printTable imprime filas alineadas; sin filas imprime empty.
func (a *app) printTable(empty string, header []string, rows [][]string) {
	if len(rows) == 0 {
		fmt.Fprintln(a.out, empty)
		return
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(header, "\t"))
	for _, r := range rows {
		fmt.Fprintln(w, strings.Join(r, "\t"))
	}
	_ = w.Flush()

	for _, line := range strings.Split(strings.TrimRight(sb.String(), "\n"), "\n") {
		fmt.Fprintln(a.out, strings.TrimRight(line, " "))
	}
}

func formatFloat(f float64) string {
	return fmt.Sprintf("%.2f", f)
}
