package records

import (
	"strings"
	"time"

	"pet-care-tracker/internal/validation"
)

func VaccineSchema() validation.Schema {
	return validation.Schema{
		"name":         {Required: true, MinLength: 2, MaxLength: 80},
		"date":         {Required: true, Validator: validation.Date()},
		"next_date":    {Required: true, Validator: validation.Date()},
		"description":  {MaxLength: 500},
		"veterinarian": {MaxLength: 80},
		"category":     {Validator: validation.OneOf(string(VaccineCore), string(VaccineNonCore))},
	}
}

func WeightSchema() validation.Schema {
	return validation.Schema{
		"date":   {Required: true, Validator: validation.Date()},
		"weight": {Required: true, Validator: validation.Positive()},
		"notes":  {MaxLength: 500},
	}
}

func HealthSchema() validation.Schema {
	types := make([]string, 0, 3)
	for _, t := range AllHealthRecordTypes() {
		types = append(types, string(t))
	}
	return validation.Schema{
		"date":         {Required: true, Validator: validation.Date()},
		"type":         {Required: true, Validator: validation.OneOf(types...)},
		"title":        {Required: true, MinLength: 3, MaxLength: 100},
		"description":  {Required: true, MaxLength: 1000},
		"treatment":    {MaxLength: 500},
		"veterinarian": {MaxLength: 80},
	}
}

func FoodLogSchema() validation.Schema {
	meals := make([]string, 0, 4)
	for _, m := range AllMealTypes() {
		meals = append(meals, string(m))
	}
	units := make([]string, 0, 3)
	for _, u := range AllUnits() {
		units = append(units, string(u))
	}
	return validation.Schema{
		"date":     {Required: true, Validator: validation.Date()},
		"type":     {Required: true, Validator: validation.OneOf(meals...)},
		"food":     {Required: true, MaxLength: 100},
		"quantity": {Required: true, Validator: validation.Positive()},
		"unit":     {Required: true, Validator: validation.OneOf(units...)},
		"notes":    {MaxLength: 500},
	}
}

// Inputs: lo que llega de un formulario, con fechas en texto.
// Se convierten sólo después de pasar el schema correspondiente; las fechas
// sin hora se interpretan en loc (la zona del store).

type VaccineInput struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Date         string          `json:"date"`
	NextDate     string          `json:"next_date"`
	Description  string          `json:"description"`
	Veterinarian string          `json:"veterinarian"`
	Category     VaccineCategory `json:"category"`
}

func (in VaccineInput) ToVaccine(loc *time.Location) (Vaccine, error) {
	d, err := validation.ParseDateIn(in.Date, loc)
	if err != nil {
		return Vaccine{}, err
	}
	next, err := validation.ParseDateIn(in.NextDate, loc)
	if err != nil {
		return Vaccine{}, err
	}
	cat := in.Category
	if cat == "" {
		cat = VaccineCore
	}
	return Vaccine{
		ID:           strings.TrimSpace(in.ID),
		Name:         strings.TrimSpace(in.Name),
		Date:         d,
		NextDate:     next,
		Description:  strings.TrimSpace(in.Description),
		Veterinarian: strings.TrimSpace(in.Veterinarian),
		Category:     cat,
	}, nil
}

type WeightInput struct {
	ID     string  `json:"id"`
	Date   string  `json:"date"`
	Weight float64 `json:"weight"`
	Notes  string  `json:"notes"`
}

func (in WeightInput) ToWeightRecord(loc *time.Location) (WeightRecord, error) {
	d, err := validation.ParseDateIn(in.Date, loc)
	if err != nil {
		return WeightRecord{}, err
	}
	return WeightRecord{
		ID:     strings.TrimSpace(in.ID),
		Date:   d,
		Weight: in.Weight,
		Notes:  strings.TrimSpace(in.Notes),
	}, nil
}

type HealthInput struct {
	ID           string           `json:"id"`
	Date         string           `json:"date"`
	Type         HealthRecordType `json:"type"`
	Title        string           `json:"title"`
	Description  string           `json:"description"`
	Treatment    string           `json:"treatment"`
	Veterinarian string           `json:"veterinarian"`
}

func (in HealthInput) ToHealthRecord(loc *time.Location) (HealthRecord, error) {
	d, err := validation.ParseDateIn(in.Date, loc)
	if err != nil {
		return HealthRecord{}, err
	}
	return HealthRecord{
		ID:           strings.TrimSpace(in.ID),
		Date:         d,
		Type:         in.Type,
		Title:        strings.TrimSpace(in.Title),
		Description:  strings.TrimSpace(in.Description),
		Treatment:    strings.TrimSpace(in.Treatment),
		Veterinarian: strings.TrimSpace(in.Veterinarian),
	}, nil
}

type FoodLogInput struct {
	ID       string   `json:"id"`
	Date     string   `json:"date"`
	Type     MealType `json:"type"`
	Food     string   `json:"food"`
	Quantity float64  `json:"quantity"`
	Unit     Unit     `json:"unit"`
	Notes    string   `json:"notes"`
}

func (in FoodLogInput) ToFoodLog(loc *time.Location) (FoodLog, error) {
	d, err := validation.ParseDateIn(in.Date, loc)
	if err != nil {
		return FoodLog{}, err
	}
	return FoodLog{
		ID:       strings.TrimSpace(in.ID),
		Date:     d,
		Type:     in.Type,
		Food:     strings.TrimSpace(in.Food),
		Quantity: in.Quantity,
		Unit:     in.Unit,
		Notes:    strings.TrimSpace(in.Notes),
	}, nil
}
