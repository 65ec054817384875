package tracker

import (
	"strings"

	"pet-care-tracker/internal/domain/records"

	"go.uber.org/zap"
)

// Helpers genéricos sobre la partición de la mascota actual.
// Se llaman siempre con s.mu tomado (desde mutate).

func addRecord[T any](s *Store, p *partition[T], rec T, dup func(existing, rec T) bool) (T, Outcome) {
	petID := s.currentPetID
	if petID == "" {
		return rec, NoCurrentPet
	}
	if dup != nil && p.exists(petID, func(e T) bool { return dup(e, rec) }) {
		return rec, DuplicateIgnored
	}

	// Un id ya usado por otro registro se reemplaza por uno nuevo.
	id := strings.TrimSpace(p.idOf(rec))
	if id == "" || p.hasID(id) {
		id = s.newID()
	}
	p.assign(&rec, id, petID)
	p.insert(petID, rec)
	return rec, Inserted
}

// updateRecord aplica la misma regla de duplicados que addRecord, sin contar al registro editado.
func updateRecord[T any](s *Store, p *partition[T], id string, rec T, dup func(existing, rec T) bool) (T, Outcome) {
	petID := s.currentPetID
	if petID == "" {
		return rec, NoCurrentPet
	}
	if !p.exists(petID, func(e T) bool { return p.idOf(e) == id }) {
		return rec, NotFound
	}
	p.assign(&rec, id, petID)
	if dup != nil && p.exists(petID, func(e T) bool { return p.idOf(e) != id && dup(e, rec) }) {
		return rec, DuplicateIgnored
	}
	p.replace(petID, id, rec)
	return rec, Updated
}

func deleteRecord[T any](s *Store, p *partition[T], id string) Outcome {
	petID := s.currentPetID
	if petID == "" {
		return NoCurrentPet
	}
	if !p.remove(petID, id) {
		return NotFound
	}
	return Deleted
}

// ---- vaccines ----

func (s *Store) sameVaccine(e, n records.Vaccine) bool {
	return e.Name == n.Name && records.SameDay(e.Date, n.Date, s.loc)
}

// AddVaccine ignora el alta si la mascota ya tiene una vacuna con el mismo nombre y fecha.
func (s *Store) AddVaccine(v records.Vaccine) (records.Vaccine, Outcome) {
	var stored records.Vaccine
	out := s.mutate("add_vaccine", func() (Outcome, []string) {
		var out Outcome
		stored, out = addRecord(s, s.vaccines, v, s.sameVaccine)
		return out, []string{KeyVaccines}
	}, zap.String("record_id", v.ID))
	return stored, out
}

// UpdateVaccine ignora el cambio si choca con otra vacuna del mismo nombre y día.
func (s *Store) UpdateVaccine(id string, v records.Vaccine) (records.Vaccine, Outcome) {
	id = strings.TrimSpace(id)
	var stored records.Vaccine
	out := s.mutate("update_vaccine", func() (Outcome, []string) {
		var out Outcome
		stored, out = updateRecord(s, s.vaccines, id, v, s.sameVaccine)
		return out, []string{KeyVaccines}
	}, zap.String("record_id", id))
	return stored, out
}

func (s *Store) DeleteVaccine(id string) Outcome {
	id = strings.TrimSpace(id)
	return s.mutate("delete_vaccine", func() (Outcome, []string) {
		return deleteRecord(s, s.vaccines, id), []string{KeyVaccines}
	}, zap.String("record_id", id))
}

// ---- weights ----
// Toda mutación de peso termina re-derivando Pet.Weight desde el último registro.

func (s *Store) sameWeightDay(e, n records.WeightRecord) bool {
	return records.SameDay(e.Date, n.Date, s.loc)
}

// AddWeightRecord ignora el alta si ya hay un registro el mismo día calendario.
func (s *Store) AddWeightRecord(w records.WeightRecord) (records.WeightRecord, Outcome) {
	var stored records.WeightRecord
	out := s.mutate("add_weight_record", func() (Outcome, []string) {
		var out Outcome
		stored, out = addRecord(s, s.weights, w, s.sameWeightDay)
		if out.Changed() {
			s.syncWeightLocked(s.currentPetID)
		}
		return out, []string{KeyWeights, KeyPets}
	}, zap.String("record_id", w.ID))
	return stored, out
}

// UpdateWeightRecord ignora el cambio si mueve el registro a un día ya ocupado.
func (s *Store) UpdateWeightRecord(id string, w records.WeightRecord) (records.WeightRecord, Outcome) {
	id = strings.TrimSpace(id)
	var stored records.WeightRecord
	out := s.mutate("update_weight_record", func() (Outcome, []string) {
		var out Outcome
		stored, out = updateRecord(s, s.weights, id, w, s.sameWeightDay)
		if out.Changed() {
			s.syncWeightLocked(s.currentPetID)
		}
		return out, []string{KeyWeights, KeyPets}
	}, zap.String("record_id", id))
	return stored, out
}

func (s *Store) DeleteWeightRecord(id string) Outcome {
	id = strings.TrimSpace(id)
	return s.mutate("delete_weight_record", func() (Outcome, []string) {
		out := deleteRecord(s, s.weights, id)
		if out.Changed() {
			s.syncWeightLocked(s.currentPetID)
		}
		return out, []string{KeyWeights, KeyPets}
	}, zap.String("record_id", id))
}

// ---- health records ----

func (s *Store) AddHealthRecord(h records.HealthRecord) (records.HealthRecord, Outcome) {
	var stored records.HealthRecord
	out := s.mutate("add_health_record", func() (Outcome, []string) {
		var out Outcome
		stored, out = addRecord(s, s.health, h, nil)
		return out, []string{KeyHealthRecords}
	}, zap.String("record_id", h.ID))
	return stored, out
}

func (s *Store) UpdateHealthRecord(id string, h records.HealthRecord) (records.HealthRecord, Outcome) {
	id = strings.TrimSpace(id)
	var stored records.HealthRecord
	out := s.mutate("update_health_record", func() (Outcome, []string) {
		var out Outcome
		stored, out = updateRecord(s, s.health, id, h, nil)
		return out, []string{KeyHealthRecords}
	}, zap.String("record_id", id))
	return stored, out
}

func (s *Store) DeleteHealthRecord(id string) Outcome {
	id = strings.TrimSpace(id)
	return s.mutate("delete_health_record", func() (Outcome, []string) {
		return deleteRecord(s, s.health, id), []string{KeyHealthRecords}
	}, zap.String("record_id", id))
}

// ---- food logs ----

func (s *Store) AddFoodLog(f records.FoodLog) (records.FoodLog, Outcome) {
	var stored records.FoodLog
	out := s.mutate("add_food_log", func() (Outcome, []string) {
		var out Outcome
		stored, out = addRecord(s, s.food, f, nil)
		return out, []string{KeyFoodLogs}
	}, zap.String("record_id", f.ID))
	return stored, out
}

func (s *Store) UpdateFoodLog(id string, f records.FoodLog) (records.FoodLog, Outcome) {
	id = strings.TrimSpace(id)
	var stored records.FoodLog
	out := s.mutate("update_food_log", func() (Outcome, []string) {
		var out Outcome
		stored, out = updateRecord(s, s.food, id, f, nil)
		return out, []string{KeyFoodLogs}
	}, zap.String("record_id", id))
	return stored, out
}

func (s *Store) DeleteFoodLog(id string) Outcome {
	id = strings.TrimSpace(id)
	return s.mutate("delete_food_log", func() (Outcome, []string) {
		return deleteRecord(s, s.food, id), []string{KeyFoodLogs}
	}, zap.String("record_id", id))
}
