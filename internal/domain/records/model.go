package records

import "time"

// Todos los registros llevan PetID explícito (FK). El store lo asigna al insertar
// según la mascota actual; lo que venga del cliente se ignora.

type Vaccine struct {
	ID    string `json:"id"`
	PetID string `json:"pet_id"`

	Name     string    `json:"name"`
	Date     time.Time `json:"date"`
	NextDate time.Time `json:"next_date"`

	Description  string          `json:"description"`
	Veterinarian string          `json:"veterinarian"`
	Category     VaccineCategory `json:"category"`
}

type WeightRecord struct {
	ID    string `json:"id"`
	PetID string `json:"pet_id"`

	Date   time.Time `json:"date"`
	Weight float64   `json:"weight"`
	Notes  string    `json:"notes,omitempty"`
}

type HealthRecord struct {
	ID    string `json:"id"`
	PetID string `json:"pet_id"`

	Date  time.Time        `json:"date"`
	Type  HealthRecordType `json:"type"`
	Title string           `json:"title"`

	Description  string `json:"description"`
	Treatment    string `json:"treatment,omitempty"`
	Veterinarian string `json:"veterinarian,omitempty"`
}

type FoodLog struct {
	ID    string `json:"id"`
	PetID string `json:"pet_id"`

	Date     time.Time `json:"date"`
	Type     MealType  `json:"type"`
	Food     string    `json:"food"`
	Quantity float64   `json:"quantity"`
	Unit     Unit      `json:"unit"`
	Notes    string    `json:"notes,omitempty"`
}

// SameDay compara día calendario ignorando la hora, en loc.
func SameDay(a, b time.Time, loc *time.Location) bool {
	if loc == nil {
		loc = time.Local
	}
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}
