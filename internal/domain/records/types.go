package records

// VaccineCategory clasifica vacunas.
// @Enum core, non-core
type VaccineCategory string

const (
	VaccineCore    VaccineCategory = "core"
	VaccineNonCore VaccineCategory = "non-core"
)

// HealthRecordType es el conjunto cerrado de tipos de registro de salud.
// @Enum checkup, incident, illness
type HealthRecordType string

const (
	HealthCheckup  HealthRecordType = "checkup"
	HealthIncident HealthRecordType = "incident"
	HealthIllness  HealthRecordType = "illness"
)

func AllHealthRecordTypes() []HealthRecordType {
	return []HealthRecordType{HealthCheckup, HealthIncident, HealthIllness}
}

func (t HealthRecordType) Label() string {
	switch t {
	case HealthCheckup:
		return "Checkup"
	case HealthIncident:
		return "Incident"
	case HealthIllness:
		return "Illness"
	default:
		return ""
	}
}

// Color es el color de badge que usa la UI.
func (t HealthRecordType) Color() string {
	switch t {
	case HealthCheckup:
		return "green"
	case HealthIncident:
		return "yellow"
	case HealthIllness:
		return "red"
	default:
		return ""
	}
}

// MealType es el conjunto cerrado de comidas.
// @Enum breakfast, lunch, dinner, snack
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

func AllMealTypes() []MealType {
	return []MealType{MealBreakfast, MealLunch, MealDinner, MealSnack}
}

func (m MealType) Label() string {
	switch m {
	case MealBreakfast:
		return "Breakfast"
	case MealLunch:
		return "Lunch"
	case MealDinner:
		return "Dinner"
	case MealSnack:
		return "Snack"
	default:
		return ""
	}
}

// Unit es la unidad de cantidad de un FoodLog.
// @Enum g, kg, portion
type Unit string

const (
	UnitGrams     Unit = "g"
	UnitKilograms Unit = "kg"
	UnitPortion   Unit = "portion"
)

func AllUnits() []Unit {
	return []Unit{UnitGrams, UnitKilograms, UnitPortion}
}

func (u Unit) Label() string {
	switch u {
	case UnitGrams:
		return "Grams"
	case UnitKilograms:
		return "Kilograms"
	case UnitPortion:
		return "Portion"
	default:
		return ""
	}
}
