package main

import (
	"pet-care-tracker/internal/domain/records"
	"pet-care-tracker/internal/validation"

	"github.com/spf13/cobra"
)

func newVaccineCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vaccine",
		Short: "Manage vaccines of the current pet",
	}
	cmd.AddCommand(
		newVaccineAddCmd(a),
		newVaccineListCmd(a, "list", "List vaccines", func() []records.Vaccine { return a.store.CurrentVaccines() }),
		newVaccineListCmd(a, "upcoming", "List vaccines due after now, soonest first", func() []records.Vaccine { return a.store.UpcomingVaccines() }),
		newRemoveCmd("Remove a vaccine", func(id string) error { return a.report(a.store.DeleteVaccine(id), id) }),
	)
	return cmd
}

func newVaccineAddCmd(a *app) *cobra.Command {
	var in records.VaccineInput
	var category string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a vaccine (same name and date as an existing one is ignored)",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			form := map[string]any{
				"name":         in.Name,
				"date":         in.Date,
				"next_date":    in.NextDate,
				"description":  in.Description,
				"veterinarian": in.Veterinarian,
				"category":     category,
			}
			if err := validate(form, records.VaccineSchema()); err != nil {
				return err
			}
			in.Category = records.VaccineCategory(category)
			v, err := in.ToVaccine(a.store.Location())
			if err != nil {
				return err
			}
			stored, out := a.store.AddVaccine(v)
			return a.report(out, stored.ID)
		},
	}

	f := cmd.Flags()
	f.StringVar(&in.Name, "name", "", "vaccine name")
	f.StringVar(&in.Date, "date", today(), "date administered (YYYY-MM-DD)")
	f.StringVar(&in.NextDate, "next-date", "", "next due date (YYYY-MM-DD)")
	f.StringVar(&in.Description, "description", "", "description")
	f.StringVar(&in.Veterinarian, "vet", "", "veterinarian")
	f.StringVar(&category, "category", string(records.VaccineCore), "core or non-core")
	return cmd
}

func newVaccineListCmd(a *app, use, short string, list func() []records.Vaccine) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			if _, ok := a.store.CurrentPet(); !ok {
				return errNoCurrentPet
			}
			items := list()
			if a.json {
				return a.printJSON(items)
			}
			rows := make([][]string, 0, len(items))
			for _, v := range items {
				rows = append(rows, []string{
					v.ID, v.Name, v.Date.Format(validation.DateLayout), v.NextDate.Format(validation.DateLayout), string(v.Category),
				})
			}
			a.printTable("No vaccines.", []string{"ID", "NAME", "DATE", "NEXT", "CATEGORY"}, rows)
			return nil
		},
	}
}
