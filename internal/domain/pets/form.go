package pets

import (
	"regexp"
	"strings"
	"time"

	"pet-care-tracker/internal/validation"
)

var phonePattern = regexp.MustCompile(`^\+?[0-9 ()\-]{6,20}$`)

// FormSchema es el schema del formulario de alta/edición de mascota.
// now se inyecta para que la validación de birth_date sea determinística en tests.
func FormSchema(now func() time.Time) validation.Schema {
	if now == nil {
		now = time.Now
	}
	species := make([]string, 0, len(AllSpecies()))
	for _, s := range AllSpecies() {
		species = append(species, string(s))
	}

	return validation.Schema{
		"name":          {Required: true, MinLength: 2, MaxLength: 50},
		"species":       {Required: true, Validator: validation.OneOf(species...)},
		"breed":         {MaxLength: 50},
		"birth_date":    {Required: true, Validator: validation.NotAfter(now)},
		"color":         {MaxLength: 30},
		"size":          {MaxLength: 30},
		"owner.name":    {Required: true, MinLength: 2, MaxLength: 80},
		"owner.phone":   {Required: true, Pattern: phonePattern},
		"owner.address": {MaxLength: 200},
	}
}

// Input es el payload del formulario (birth_date como texto, como llega del form).
type Input struct {
	ID        string  `json:"id"`
	Species   Species `json:"species"`
	Name      string  `json:"name"`
	Photo     string  `json:"photo"`
	Breed     string  `json:"breed"`
	BirthDate string  `json:"birth_date"`
	Owner     Owner   `json:"owner"`
	Color     string  `json:"color"`
	Size      string  `json:"size"`
}

// ToPet convierte un Input ya validado. Weight queda nil: lo deriva el store.
func (in Input) ToPet(loc *time.Location) (Pet, error) {
	bd, err := validation.ParseDateIn(in.BirthDate, loc)
	if err != nil {
		return Pet{}, err
	}
	return Pet{
		ID:        strings.TrimSpace(in.ID),
		Species:   Species(strings.TrimSpace(string(in.Species))),
		Name:      strings.TrimSpace(in.Name),
		Photo:     strings.TrimSpace(in.Photo),
		Breed:     strings.TrimSpace(in.Breed),
		BirthDate: bd,
		Owner: Owner{
			Name:    strings.TrimSpace(in.Owner.Name),
			Phone:   strings.TrimSpace(in.Owner.Phone),
			Address: strings.TrimSpace(in.Owner.Address),
		},
		Color: strings.TrimSpace(in.Color),
		Size:  strings.TrimSpace(in.Size),
	}, nil
}
