package pets

import "time"

// Species define las especies soportadas.
// @Enum dog, cat, bird, fish
type Species string

const (
	SpeciesDog  Species = "dog"
	SpeciesCat  Species = "cat"
	SpeciesBird Species = "bird"
	SpeciesFish Species = "fish"
)

// AllSpecies lista el conjunto cerrado, en orden de presentación.
func AllSpecies() []Species {
	return []Species{SpeciesDog, SpeciesCat, SpeciesBird, SpeciesFish}
}

// speciesIcons debe cubrir exactamente AllSpecies (hay un test que lo exige).
var speciesIcons = map[Species]string{
	SpeciesDog:  "🐕",
	SpeciesCat:  "🐈",
	SpeciesBird: "🐦",
	SpeciesFish: "🐟",
}

func (s Species) Valid() bool {
	_, ok := speciesIcons[s]
	return ok
}

// Icon devuelve el ícono de la especie, o "" si no es una especie conocida.
func (s Species) Icon() string {
	return speciesIcons[s]
}

// Owner es el sub-registro del dueño.
type Owner struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address,omitempty"`
}

// Pet representa el perfil de una mascota seguida por el tracker.
type Pet struct {
	ID      string  `json:"id"`
	Species Species `json:"species"`

	Name      string    `json:"name"`
	Photo     string    `json:"photo"`
	Breed     string    `json:"breed"`
	BirthDate time.Time `json:"birth_date"`

	// Weight es nil hasta que exista al menos un registro de peso.
	// Lo deriva el store desde el último WeightRecord; no se edita a mano.
	Weight *float64 `json:"weight"`

	Owner Owner `json:"owner"`

	Color string `json:"color"`
	Size  string `json:"size"`
}

// HasWeight indica si hay un peso registrado.
func (p Pet) HasWeight() bool {
	return p.Weight != nil
}

// Clone devuelve una copia que no comparte el puntero Weight.
func (p Pet) Clone() Pet {
	if p.Weight != nil {
		w := *p.Weight
		p.Weight = &w
	}
	return p
}
