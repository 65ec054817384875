package tracker

import (
	"sort"

	"pet-care-tracker/internal/domain/pets"
	"pet-care-tracker/internal/domain/records"
)

// Vistas derivadas: se recalculan en cada lectura y devuelven copias.

func (s *Store) Pets() []pets.Pet {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]pets.Pet, 0, len(s.pets))
	for _, p := range s.pets {
		out = append(out, p.Clone())
	}
	return out
}

func (s *Store) CurrentPetID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentPetID
}

func (s *Store) CurrentPet() (pets.Pet, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.petIndexLocked(s.currentPetID)
	if i < 0 {
		return pets.Pet{}, false
	}
	return s.pets[i].Clone(), true
}

func (s *Store) CurrentVaccines() []records.Vaccine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.vaccines.copyOf(s.currentPetID)
}

func (s *Store) CurrentWeightHistory() []records.WeightRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.weights.copyOf(s.currentPetID)
}

func (s *Store) CurrentHealthRecords() []records.HealthRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.health.copyOf(s.currentPetID)
}

func (s *Store) CurrentFoodLogs() []records.FoodLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.food.copyOf(s.currentPetID)
}

// UpcomingVaccines: vacunas con NextDate estrictamente posterior a now, asc por NextDate.
func (s *Store) UpcomingVaccines() []records.Vaccine {
	s.mu.Lock()
	now := s.now()
	all := s.vaccines.items(s.currentPetID)
	out := make([]records.Vaccine, 0, len(all))
	for _, v := range all {
		if v.NextDate.After(now) {
			out = append(out, v)
		}
	}
	s.mu.Unlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].NextDate.Before(out[j].NextDate)
	})
	return out
}

// SortedWeightHistory devuelve una copia ordenada asc por fecha.
func (s *Store) SortedWeightHistory() []records.WeightRecord {
	out := s.CurrentWeightHistory()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

type WeightRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// WeightRange es {0,0} si no hay historial.
func (s *Store) WeightRange() WeightRange {
	s.mu.Lock()
	defer s.mu.Unlock()
	return weightRange(s.weights.items(s.currentPetID))
}

// LatestWeight es el peso del registro más reciente (por fecha).
func (s *Store) LatestWeight() (float64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return latestWeight(s.weights.items(s.currentPetID))
}

// CalculateWeightProgression devuelve ((último - primero) / primero) * 100.
// Sin valor con menos de dos registros o si el primer peso es 0.
func (s *Store) CalculateWeightProgression() (float64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return weightProgression(s.weights.items(s.currentPetID))
}

// WeightSummary agrupa las vistas de peso para la API y el CLI.
type WeightSummary struct {
	History     []records.WeightRecord `json:"history"`
	Range       WeightRange            `json:"range"`
	Latest      *float64               `json:"latest"`
	Progression *float64               `json:"progression"`
}

func (s *Store) WeightSummary() WeightSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.weights.items(s.currentPetID)
	sum := WeightSummary{
		History: s.weights.copyOf(s.currentPetID),
		Range:   weightRange(list),
	}
	if w, ok := latestWeight(list); ok {
		sum.Latest = &w
	}
	if p, ok := weightProgression(list); ok {
		sum.Progression = &p
	}
	return sum
}

// list viene ordenada asc por fecha (invariante de partition).

func weightRange(list []records.WeightRecord) WeightRange {
	if len(list) == 0 {
		return WeightRange{}
	}
	r := WeightRange{Min: list[0].Weight, Max: list[0].Weight}
	for _, w := range list[1:] {
		if w.Weight < r.Min {
			r.Min = w.Weight
		}
		if w.Weight > r.Max {
			r.Max = w.Weight
		}
	}
	return r
}

func latestWeight(list []records.WeightRecord) (float64, bool) {
	if len(list) == 0 {
		return 0, false
	}
	return list[len(list)-1].Weight, true
}

func weightProgression(list []records.WeightRecord) (float64, bool) {
	if len(list) < 2 {
		return 0, false
	}
	first, last := list[0].Weight, list[len(list)-1].Weight
	if first == 0 {
		return 0, false
	}
	return (last - first) / first * 100, true
}
