package tracker

// Outcome es el resultado explícito de una acción del store.
// Las acciones nunca devuelven error: los conflictos benignos son un Outcome más.
type Outcome int

const (
	Inserted Outcome = iota + 1
	Updated
	Deleted
	DuplicateIgnored
	NoCurrentPet
	NotFound
	PetAdded
	PetReplaced
	CurrentChanged
	UnknownPet
)

func (o Outcome) String() string {
	switch o {
	case Inserted:
		return "inserted"
	case Updated:
		return "updated"
	case Deleted:
		return "deleted"
	case DuplicateIgnored:
		return "duplicate_ignored"
	case NoCurrentPet:
		return "no_current_pet"
	case NotFound:
		return "not_found"
	case PetAdded:
		return "pet_added"
	case PetReplaced:
		return "pet_replaced"
	case CurrentChanged:
		return "current_changed"
	case UnknownPet:
		return "unknown_pet"
	default:
		return "unknown"
	}
}

// Changed indica si la acción modificó el estado (y por lo tanto hay que persistir).
func (o Outcome) Changed() bool {
	switch o {
	case Inserted, Updated, Deleted, PetAdded, PetReplaced, CurrentChanged:
		return true
	default:
		return false
	}
}

func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}
