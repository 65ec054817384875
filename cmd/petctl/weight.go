package main

import (
	"fmt"
	"strconv"
	"strings"

	"pet-care-tracker/internal/domain/records"
	"pet-care-tracker/internal/validation"

	"github.com/spf13/cobra"
)

func newWeightCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "weight",
		Short: "Manage the weight history of the current pet",
	}
	cmd.AddCommand(
		newWeightAddCmd(a),
		newWeightListCmd(a),
		newWeightSummaryCmd(a),
		newRemoveCmd("Remove a weight record", func(id string) error { return a.report(a.store.DeleteWeightRecord(id), id) }),
	)
	return cmd
}

func newWeightAddCmd(a *app) *cobra.Command {
	var date, weight, notes string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a weight in kg (one per calendar day)",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			form := map[string]any{"date": date, "weight": weight, "notes": notes}
			if err := validate(form, records.WeightSchema()); err != nil {
				return err
			}
			kg, err := strconv.ParseFloat(strings.TrimSpace(weight), 64)
			if err != nil {
				return err
			}
			rec, err := records.WeightInput{Date: date, Weight: kg, Notes: notes}.ToWeightRecord(a.store.Location())
			if err != nil {
				return err
			}
			stored, out := a.store.AddWeightRecord(rec)
			return a.report(out, stored.ID)
		},
	}

	f := cmd.Flags()
	f.StringVar(&date, "date", today(), "date (YYYY-MM-DD)")
	f.StringVar(&weight, "weight", "", "weight in kg")
	f.StringVar(&notes, "notes", "", "notes")
	return cmd
}

func newWeightListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List weight records, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			if _, ok := a.store.CurrentPet(); !ok {
				return errNoCurrentPet
			}
			items := a.store.SortedWeightHistory()
			if a.json {
				return a.printJSON(items)
			}
			rows := make([][]string, 0, len(items))
			for _, w := range items {
				rows = append(rows, []string{w.ID, w.Date.Format(validation.DateLayout), formatFloat(w.Weight), w.Notes})
			}
			a.printTable("No weight records.", []string{"ID", "DATE", "KG", "NOTES"}, rows)
			return nil
		},
	}
}

func newWeightSummaryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show latest weight, range and progression",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			if _, ok := a.store.CurrentPet(); !ok {
				return errNoCurrentPet
			}
			sum := a.store.WeightSummary()
			if a.json {
				return a.printJSON(sum)
			}

			fmt.Fprintf(a.out, "records:     %d\n", len(sum.History))
			fmt.Fprintf(a.out, "latest:      %s\n", weightText(sum.Latest))
			fmt.Fprintf(a.out, "range:       %s - %s kg\n", formatFloat(sum.Range.Min), formatFloat(sum.Range.Max))
			if sum.Progression != nil {
				fmt.Fprintf(a.out, "progression: %+.1f%%\n", *sum.Progression)
			} else {
				fmt.Fprintln(a.out, "progression: -")
			}
			return nil
		},
	}
}
