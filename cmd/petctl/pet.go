package main

import (
	"fmt"
	"strings"

	"pet-care-tracker/internal/domain/pets"
	"pet-care-tracker/internal/validation"

	"github.com/spf13/cobra"
)

func newPetCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pet",
		Short: "Manage pets and the current pet",
	}
	cmd.AddCommand(newPetAddCmd(a), newPetListCmd(a), newPetUseCmd(a), newPetShowCmd(a))
	return cmd
}

func newPetAddCmd(a *app) *cobra.Command {
	var in pets.Input

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a pet (or replace it if --id already exists)",
		Long: `Add a pet. A new pet becomes the current pet.
Passing the --id of an existing pet replaces its profile and keeps the current selection.

Example:
  petctl pet add --name Luna --species cat --birth-date 2020-05-01 \
    --owner-name "Ana" --owner-phone "+54 11 5555 1234"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			form, err := validation.ToForm(in)
			if err != nil {
				return err
			}
			if err := validate(form, pets.FormSchema(nil)); err != nil {
				return err
			}
			p, err := in.ToPet(a.store.Location())
			if err != nil {
				return err
			}
			stored, out := a.store.AddPet(p)
			return a.report(out, stored.ID)
		},
	}

	f := cmd.Flags()
	f.StringVar(&in.ID, "id", "", "pet id (generated when empty)")
	f.StringVar(&in.Name, "name", "", "pet name")
	f.StringVar((*string)(&in.Species), "species", "", "dog, cat, bird or fish")
	f.StringVar(&in.Breed, "breed", "", "breed")
	f.StringVar(&in.BirthDate, "birth-date", "", "birth date (YYYY-MM-DD)")
	f.StringVar(&in.Photo, "photo", "", "photo reference")
	f.StringVar(&in.Color, "color", "", "color")
	f.StringVar(&in.Size, "size", "", "size")
	f.StringVar(&in.Owner.Name, "owner-name", "", "owner name")
	f.StringVar(&in.Owner.Phone, "owner-phone", "", "owner phone")
	f.StringVar(&in.Owner.Address, "owner-address", "", "owner address")
	return cmd
}

func newPetListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List pets (* marks the current pet)",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			all := a.store.Pets()
			if a.json {
				return a.printJSON(all)
			}

			current := a.store.CurrentPetID()
			rows := make([][]string, 0, len(all))
			for _, p := range all {
				mark := ""
				if p.ID == current {
					mark = "*"
				}
				rows = append(rows, []string{mark, p.ID, p.Species.Icon() + " " + p.Name, string(p.Species), weightText(p.Weight)})
			}
			a.printTable("No pets yet.", []string{"", "ID", "NAME", "SPECIES", "WEIGHT"}, rows)
			return nil
		},
	}
}

func newPetUseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "use <pet-id>",
		Short: "Select the current pet",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id := strings.TrimSpace(args[0])
			return a.report(a.store.SetCurrentPet(id), id)
		},
	}
}

func newPetShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current pet",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			p, ok := a.store.CurrentPet()
			if !ok {
				return errNoCurrentPet
			}
			if a.json {
				return a.printJSON(p)
			}

			fmt.Fprintf(a.out, "%s %s (%s)\n", p.Species.Icon(), p.Name, p.ID)
			fmt.Fprintf(a.out, "  species:    %s\n", p.Species)
			if p.Breed != "" {
				fmt.Fprintf(a.out, "  breed:      %s\n", p.Breed)
			}
			if !p.BirthDate.IsZero() {
				fmt.Fprintf(a.out, "  birth date: %s\n", p.BirthDate.Format(validation.DateLayout))
			}
			fmt.Fprintf(a.out, "  weight:     %s\n", weightText(p.Weight))
			fmt.Fprintf(a.out, "  owner:      %s, %s\n", p.Owner.Name, p.Owner.Phone)
			fmt.Fprintf(a.out, "  vaccines:   %d (%d upcoming)\n", len(a.store.CurrentVaccines()), len(a.store.UpcomingVaccines()))
			fmt.Fprintf(a.out, "  health:     %d records\n", len(a.store.CurrentHealthRecords()))
			fmt.Fprintf(a.out, "  meals:      %d logged\n", len(a.store.CurrentFoodLogs()))
			return nil
		},
	}
}

func weightText(w *float64) string {
	if w == nil {
		return "-"
	}
	return formatFloat(*w) + " kg"
}
