package tracker

import (
	"context"
	"encoding/json"
	"time"

	"pet-care-tracker/internal/domain/pets"
	"pet-care-tracker/internal/domain/records"

	"go.uber.org/zap"
)

// Keys fijas del medio clave-valor. Cada una guarda JSON.
const (
	KeyPets          = "pets"
	KeyCurrentPet    = "current_pet"
	KeyVaccines      = "vaccines"
	KeyWeights       = "pet_weights"
	KeyHealthRecords = "health_records"
	KeyFoodLogs      = "food_logs"
)

func AllKeys() []string {
	return []string{KeyPets, KeyCurrentPet, KeyVaccines, KeyWeights, KeyHealthRecords, KeyFoodLogs}
}

const persistTimeout = 5 * time.Second

type currentPetState struct {
	PetID string `json:"pet_id"`
}

type pending struct {
	key     string
	payload string
	version uint64
}

// encodeLocked serializa las keys indicadas. Requiere s.mu.
func (s *Store) encodeLocked(keys []string) []pending {
	batch := make([]pending, 0, len(keys))
	for _, key := range keys {
		var v any
		switch key {
		case KeyPets:
			v = s.pets
		case KeyCurrentPet:
			v = currentPetState{PetID: s.currentPetID}
		case KeyVaccines:
			v = s.vaccines.flatten()
		case KeyWeights:
			v = s.weights.flatten()
		case KeyHealthRecords:
			v = s.health.flatten()
		case KeyFoodLogs:
			v = s.food.flatten()
		default:
			continue
		}

		b, err := json.Marshal(v)
		if err != nil {
			s.log.Error("encode state failed", zap.String("key", key), zap.Error(err))
			s.metrics.ObservePersistFailure(key)
			continue
		}
		batch = append(batch, pending{key: key, payload: string(b), version: s.version})
	}
	return batch
}

// flush escribe el batch en el KV. Es best-effort: un error se loguea y se cuenta,
// pero el cambio en memoria queda. Un snapshot más viejo que el ya escrito se descarta.
func (s *Store) flush(batch []pending) {
	if len(batch) == 0 || s.kv == nil {
		return
	}

	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	// no depende del request que originó la acción
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	for _, p := range batch {
		if p.version <= s.written[p.key] {
			continue
		}
		if err := s.kv.Save(ctx, p.key, p.payload); err != nil {
			s.log.Error("persist state failed", zap.String("key", p.key), zap.Error(err))
			s.metrics.ObservePersistFailure(p.key)
			continue
		}
		s.written[p.key] = p.version
	}
}

// Hydrate carga el estado desde el KV. Falla abierto: una key ausente, ilegible
// o corrupta arranca vacía y sólo se loguea.
func (s *Store) Hydrate(ctx context.Context) {
	if s.kv == nil {
		return
	}

	petList := loadKey[[]pets.Pet](ctx, s, KeyPets)
	current := loadKey[currentPetState](ctx, s, KeyCurrentPet)
	vaccines := loadKey[[]records.Vaccine](ctx, s, KeyVaccines)
	weights := loadKey[[]records.WeightRecord](ctx, s, KeyWeights)
	health := loadKey[[]records.HealthRecord](ctx, s, KeyHealthRecords)
	food := loadKey[[]records.FoodLog](ctx, s, KeyFoodLogs)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.pets = make([]pets.Pet, 0, len(petList))
	seen := make(map[string]bool, len(petList))
	for _, p := range petList {
		if p.ID == "" || seen[p.ID] {
			s.log.Warn("skipping invalid stored pet", zap.String("key", KeyPets), zap.String("pet_id", p.ID))
			continue
		}
		seen[p.ID] = true
		s.pets = append(s.pets, p)
	}

	s.vaccines.reset(vaccines)
	s.weights.reset(weights)
	s.health.reset(health)
	s.food.reset(food)

	// el peso guardado puede estar desfasado del historial
	for _, p := range s.pets {
		s.syncWeightLocked(p.ID)
	}

	s.currentPetID = ""
	if s.petIndexLocked(current.PetID) >= 0 {
		s.currentPetID = current.PetID
		s.ensurePartitionsLocked(current.PetID)
	} else if current.PetID != "" {
		s.log.Warn("stored current pet does not exist", zap.String("key", KeyCurrentPet), zap.String("pet_id", current.PetID))
	}

	s.log.Info("store hydrated",
		zap.Int("pets", len(s.pets)),
		zap.String("pet_id", s.currentPetID),
	)
}

// loadKey devuelve el zero value ante cualquier problema.
func loadKey[T any](ctx context.Context, s *Store, key string) T {
	var zero T
	raw, found, err := s.kv.Load(ctx, key)
	if err != nil {
		s.log.Error("load state failed", zap.String("key", key), zap.Error(err))
		return zero
	}
	if !found || raw == "" {
		return zero
	}
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		s.log.Warn("corrupt stored state, starting empty", zap.String("key", key), zap.Error(err))
		return zero
	}
	return v
}
