package tracker

import (
	"sort"
	"time"
)

// partition indexa una colección plana (cada registro con su PetID) por mascota.
// Invariante: cada slice queda ordenado asc por fecha después de insert/replace.
type partition[T any] struct {
	byPet map[string][]T

	idOf   func(T) string
	petOf  func(T) string
	dateOf func(T) time.Time
	assign func(rec *T, id, petID string)
}

func newPartition[T any](
	idOf func(T) string,
	petOf func(T) string,
	dateOf func(T) time.Time,
	assign func(rec *T, id, petID string),
) *partition[T] {
	return &partition[T]{
		byPet:  make(map[string][]T),
		idOf:   idOf,
		petOf:  petOf,
		dateOf: dateOf,
		assign: assign,
	}
}

// ensure materializa la partición vacía de petID si no existe.
func (p *partition[T]) ensure(petID string) {
	if _, ok := p.byPet[petID]; !ok {
		p.byPet[petID] = []T{}
	}
}

// items devuelve el slice interno. Sólo para uso bajo el lock del store.
func (p *partition[T]) items(petID string) []T {
	return p.byPet[petID]
}

// copyOf devuelve una copia (nunca nil) de la partición.
func (p *partition[T]) copyOf(petID string) []T {
	src := p.byPet[petID]
	out := make([]T, len(src))
	copy(out, src)
	return out
}

func (p *partition[T]) exists(petID string, match func(T) bool) bool {
	for _, it := range p.byPet[petID] {
		if match(it) {
			return true
		}
	}
	return false
}

// hasID busca el id en todas las mascotas.
func (p *partition[T]) hasID(id string) bool {
	for _, list := range p.byPet {
		for _, it := range list {
			if p.idOf(it) == id {
				return true
			}
		}
	}
	return false
}

func (p *partition[T]) insert(petID string, rec T) {
	p.byPet[petID] = append(p.byPet[petID], rec)
	p.sort(petID)
}

func (p *partition[T]) replace(petID, id string, rec T) bool {
	list := p.byPet[petID]
	for i := range list {
		if p.idOf(list[i]) == id {
			list[i] = rec
			p.sort(petID)
			return true
		}
	}
	return false
}

func (p *partition[T]) remove(petID, id string) bool {
	list := p.byPet[petID]
	for i := range list {
		if p.idOf(list[i]) == id {
			p.byPet[petID] = append(list[:i:i], list[i+1:]...)
			return true
		}
	}
	return false
}

func (p *partition[T]) sort(petID string) {
	list := p.byPet[petID]
	sort.SliceStable(list, func(i, j int) bool {
		return p.dateOf(list[i]).Before(p.dateOf(list[j]))
	})
}

// flatten devuelve todos los registros (forma persistida), agrupados por pet id.
func (p *partition[T]) flatten() []T {
	ids := make([]string, 0, len(p.byPet))
	for id := range p.byPet {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]T, 0)
	for _, id := range ids {
		out = append(out, p.byPet[id]...)
	}
	return out
}

// reset reemplaza el contenido desde la forma plana (hidratación).
func (p *partition[T]) reset(flat []T) {
	p.byPet = make(map[string][]T)
	for _, rec := range flat {
		petID := p.petOf(rec)
		if petID == "" {
			continue
		}
		p.byPet[petID] = append(p.byPet[petID], rec)
	}
	for petID := range p.byPet {
		p.sort(petID)
	}
}
