package main

import (
	"pet-care-tracker/internal/domain/records"
	"pet-care-tracker/internal/validation"

	"github.com/spf13/cobra"
)

func newHealthCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "health",
		Short: "Manage health records of the current pet",
	}
	cmd.AddCommand(
		newHealthAddCmd(a),
		newHealthListCmd(a),
		newRemoveCmd("Remove a health record", func(id string) error { return a.report(a.store.DeleteHealthRecord(id), id) }),
	)
	return cmd
}

func newHealthAddCmd(a *app) *cobra.Command {
	var in records.HealthInput
	var kind string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a checkup, incident or illness",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			form := map[string]any{
				"date":         in.Date,
				"type":         kind,
				"title":        in.Title,
				"description":  in.Description,
				"treatment":    in.Treatment,
				"veterinarian": in.Veterinarian,
			}
			if err := validate(form, records.HealthSchema()); err != nil {
				return err
			}
			in.Type = records.HealthRecordType(kind)
			rec, err := in.ToHealthRecord(a.store.Location())
			if err != nil {
				return err
			}
			stored, out := a.store.AddHealthRecord(rec)
			return a.report(out, stored.ID)
		},
	}

	f := cmd.Flags()
	f.StringVar(&in.Date, "date", today(), "date (YYYY-MM-DD)")
	f.StringVar(&kind, "type", string(records.HealthCheckup), "checkup, incident or illness")
	f.StringVar(&in.Title, "title", "", "title")
	f.StringVar(&in.Description, "description", "", "description")
	f.StringVar(&in.Treatment, "treatment", "", "treatment")
	f.StringVar(&in.Veterinarian, "vet", "", "veterinarian")
	return cmd
}

func newHealthListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List health records, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			if _, ok := a.store.CurrentPet(); !ok {
				return errNoCurrentPet
			}
			items := a.store.CurrentHealthRecords()
			if a.json {
				return a.printJSON(items)
			}
			rows := make([][]string, 0, len(items))
			for _, h := range items {
				rows = append(rows, []string{h.ID, h.Date.Format(validation.DateLayout), h.Type.Label(), h.Title})
			}
			a.printTable("No health records.", []string{"ID", "DATE", "TYPE", "TITLE"}, rows)
			return nil
		},
	}
}
