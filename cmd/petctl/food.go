package main

import (
	"strconv"
	"strings"

	"pet-care-tracker/internal/domain/records"
	"pet-care-tracker/internal/validation"

	"github.com/spf13/cobra"
)

func newFoodCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "food",
		Short: "Manage the food log of the current pet",
	}
	cmd.AddCommand(
		newFoodAddCmd(a),
		newFoodListCmd(a),
		newRemoveCmd("Remove a food log entry", func(id string) error { return a.report(a.store.DeleteFoodLog(id), id) }),
	)
	return cmd
}

func newFoodAddCmd(a *app) *cobra.Command {
	var date, meal, food, quantity, unit, notes string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Log a meal",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			form := map[string]any{
				"date": date, "type": meal, "food": food, "quantity": quantity, "unit": unit, "notes": notes,
			}
			if err := validate(form, records.FoodLogSchema()); err != nil {
				return err
			}
			q, err := strconv.ParseFloat(strings.TrimSpace(quantity), 64)
			if err != nil {
				return err
			}
			rec, err := records.FoodLogInput{
				Date:     date,
				Type:     records.MealType(meal),
				Food:     food,
				Quantity: q,
				Unit:     records.Unit(unit),
				Notes:    notes,
			}.ToFoodLog(a.store.Location())
			if err != nil {
				return err
			}
			stored, out := a.store.AddFoodLog(rec)
			return a.report(out, stored.ID)
		},
	}

	f := cmd.Flags()
	f.StringVar(&date, "date", today(), "date (YYYY-MM-DD)")
	f.StringVar(&meal, "type", "", "breakfast, lunch, dinner or snack")
	f.StringVar(&food, "food", "", "what was served")
	f.StringVar(&quantity, "quantity", "", "quantity")
	f.StringVar(&unit, "unit", string(records.UnitGrams), "g, kg or portion")
	f.StringVar(&notes, "notes", "", "notes")
	return cmd
}

func newFoodListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List food logs, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			if _, ok := a.store.CurrentPet(); !ok {
				return errNoCurrentPet
			}
			items := a.store.CurrentFoodLogs()
			if a.json {
				return a.printJSON(items)
			}
			rows := make([][]string, 0, len(items))
			for _, f := range items {
				rows = append(rows, []string{
					f.ID, f.Date.Format(validation.DateLayout), f.Type.Label(), f.Food, formatFloat(f.Quantity) + " " + string(f.Unit),
				})
			}
			a.printTable("No meals logged.", []string{"ID", "DATE", "MEAL", "FOOD", "QUANTITY"}, rows)
			return nil
		},
	}
}
