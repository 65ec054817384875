package tracker

import (
	"strings"
	"sync"
	"time"

	"pet-care-tracker/internal/domain/pets"
	"pet-care-tracker/internal/domain/records"
	"pet-care-tracker/internal/platform/metrics"
	"pet-care-tracker/internal/ports/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Store es la fuente única de verdad de mascotas y sus cuatro colecciones.
// Un solo mutex serializa acciones y lecturas; la persistencia corre fuera del lock.
type Store struct {
	mu sync.Mutex

	pets         []pets.Pet
	currentPetID string

	vaccines *partition[records.Vaccine]
	weights  *partition[records.WeightRecord]
	health   *partition[records.HealthRecord]
	food     *partition[records.FoodLog]

	// version crece con cada mutación; la usa flush para no pisar un snapshot nuevo con uno viejo.
	version uint64

	persistMu sync.Mutex
	written   map[string]uint64

	kv      storage.KV
	log     *zap.Logger
	metrics *metrics.Metrics
	now     func() time.Time
	loc     *time.Location
	newID   func() string
}

type Option func(*Store)

func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLocation fija la zona usada para comparar días calendario.
func WithLocation(loc *time.Location) Option {
	return func(s *Store) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// Location es la zona de días calendario; fija después de NewStore.
func (s *Store) Location() *time.Location {
	return s.loc
}

// WithPersister conecta el medio clave-valor. Sin persister el store es sólo memoria.
func WithPersister(kv storage.KV) Option {
	return func(s *Store) { s.kv = kv }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Store) { s.metrics = m }
}

func withIDs(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

func NewStore(opts ...Option) *Store {
	s := &Store{
		pets:    []pets.Pet{},
		written: make(map[string]uint64),
		log:     zap.NewNop(),
		now:     time.Now,
		loc:     time.Local,
		newID:   uuid.NewString,

		vaccines: newPartition(
			func(v records.Vaccine) string { return v.ID },
			func(v records.Vaccine) string { return v.PetID },
			func(v records.Vaccine) time.Time { return v.Date },
			func(v *records.Vaccine, id, petID string) { v.ID, v.PetID = id, petID },
		),
		weights: newPartition(
			func(w records.WeightRecord) string { return w.ID },
			func(w records.WeightRecord) string { return w.PetID },
			func(w records.WeightRecord) time.Time { return w.Date },
			func(w *records.WeightRecord, id, petID string) { w.ID, w.PetID = id, petID },
		),
		health: newPartition(
			func(h records.HealthRecord) string { return h.ID },
			func(h records.HealthRecord) string { return h.PetID },
			func(h records.HealthRecord) time.Time { return h.Date },
			func(h *records.HealthRecord, id, petID string) { h.ID, h.PetID = id, petID },
		),
		food: newPartition(
			func(f records.FoodLog) string { return f.ID },
			func(f records.FoodLog) string { return f.PetID },
			func(f records.FoodLog) time.Time { return f.Date },
			func(f *records.FoodLog, id, petID string) { f.ID, f.PetID = id, petID },
		),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// mutate ejecuta fn bajo el lock, registra el outcome y persiste las keys tocadas.
func (s *Store) mutate(action string, fn func() (Outcome, []string), fields ...zap.Field) Outcome {
	s.mu.Lock()
	out, keys := fn()
	var batch []pending
	if out.Changed() && s.kv != nil {
		s.version++
		batch = s.encodeLocked(keys)
	}
	petID := s.currentPetID
	s.mu.Unlock()

	s.metrics.ObserveAction(action, out.String())

	fields = append(fields, zap.String("action", action), zap.String("pet_id", petID), zap.Stringer("outcome", out))
	if out.Changed() {
		s.log.Debug("store action applied", fields...)
	} else {
		s.log.Warn("store action ignored", fields...)
	}

	s.flush(batch)
	return out
}

// AddPet agrega la mascota y la deja como actual; si el id ya existe la reemplaza
// en su lugar sin tocar la selección actual.
func (s *Store) AddPet(p pets.Pet) (pets.Pet, Outcome) {
	p.ID = strings.TrimSpace(p.ID)
	if p.ID == "" {
		p.ID = s.newID()
	}

	var stored pets.Pet
	out := s.mutate("add_pet", func() (Outcome, []string) {
		if i := s.petIndexLocked(p.ID); i >= 0 {
			s.pets[i] = p.Clone()
			s.syncWeightLocked(p.ID)
			stored = s.pets[i].Clone()
			return PetReplaced, []string{KeyPets}
		}

		s.pets = append(s.pets, p.Clone())
		s.syncWeightLocked(p.ID)
		s.currentPetID = p.ID
		s.ensurePartitionsLocked(p.ID)
		stored = s.pets[len(s.pets)-1].Clone()
		return PetAdded, []string{KeyPets, KeyCurrentPet}
	}, zap.String("record_id", p.ID))

	return stored, out
}

// SetCurrentPet cambia la mascota actual si existe; si no, no hace nada.
func (s *Store) SetCurrentPet(petID string) Outcome {
	petID = strings.TrimSpace(petID)
	return s.mutate("set_current_pet", func() (Outcome, []string) {
		if s.petIndexLocked(petID) < 0 {
			return UnknownPet, nil
		}
		s.currentPetID = petID
		s.ensurePartitionsLocked(petID)
		return CurrentChanged, []string{KeyCurrentPet}
	}, zap.String("record_id", petID))
}

func (s *Store) petIndexLocked(id string) int {
	if id == "" {
		return -1
	}
	for i := range s.pets {
		if s.pets[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) ensurePartitionsLocked(petID string) {
	s.vaccines.ensure(petID)
	s.weights.ensure(petID)
	s.health.ensure(petID)
	s.food.ensure(petID)
}

// syncWeightLocked deriva Pet.Weight del último registro de peso (por fecha).
// Sin registros queda nil.
func (s *Store) syncWeightLocked(petID string) {
	i := s.petIndexLocked(petID)
	if i < 0 {
		return
	}
	list := s.weights.items(petID)
	if len(list) == 0 {
		s.pets[i].Weight = nil
		return
	}
	w := list[len(list)-1].Weight
	s.pets[i].Weight = &w
}
