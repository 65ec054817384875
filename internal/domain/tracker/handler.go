package tracker

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"pet-care-tracker/internal/domain/pets"
	"pet-care-tracker/internal/domain/records"
	"pet-care-tracker/internal/validation"

	"github.com/go-chi/chi/v5"
)

const maxBodyBytes = 1 << 20

func RegisterRoutes(r chi.Router, store *Store) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Post("/", addPetHandler(store))
		pr.Get("/", listPetsHandler(store))
		pr.Get("/current", currentPetHandler(store))
		pr.Put("/current", setCurrentPetHandler(store))
	})

	r.Route("/current", func(cr chi.Router) {
		cr.Route("/vaccines", func(vr chi.Router) {
			vr.Get("/", listVaccinesHandler(store))
			vr.Post("/", addVaccineHandler(store))
			vr.Get("/upcoming", upcomingVaccinesHandler(store))
			vr.Put("/{id}", updateVaccineHandler(store))
			vr.Delete("/{id}", deleteHandler(store.DeleteVaccine))
		})

		cr.Route("/weights", func(wr chi.Router) {
			wr.Get("/", listWeightsHandler(store))
			wr.Post("/", addWeightHandler(store))
			wr.Get("/summary", weightSummaryHandler(store))
			wr.Put("/{id}", updateWeightHandler(store))
			wr.Delete("/{id}", deleteHandler(store.DeleteWeightRecord))
		})

		cr.Route("/health-records", func(hr chi.Router) {
			hr.Get("/", listHealthHandler(store))
			hr.Post("/", addHealthHandler(store))
			hr.Put("/{id}", updateHealthHandler(store))
			hr.Delete("/{id}", deleteHandler(store.DeleteHealthRecord))
		})

		cr.Route("/food-logs", func(fr chi.Router) {
			fr.Get("/", listFoodLogsHandler(store))
			fr.Post("/", addFoodLogHandler(store))
			fr.Put("/{id}", updateFoodLogHandler(store))
			fr.Delete("/{id}", deleteHandler(store.DeleteFoodLog))
		})
	})
}

type mutationResponse struct {
	Outcome Outcome `json:"outcome" swaggertype:"string" example:"inserted"`
	Data    any     `json:"data,omitempty"`
}

type validationErrorResponse struct {
	Errors validation.Errors `json:"errors"`
}

type setCurrentPetRequest struct {
	PetID string `json:"pet_id"`
}

// @Summary Agregar o reemplazar mascota
// @Description Si el id no existe agrega la mascota y la deja como actual. Si existe la reemplaza sin cambiar la selección. El peso no se acepta: se deriva del historial.
// @Tags pets
// @Accept json
// @Produce json
// @Param payload body pets.Input true "Perfil de la mascota; birth_date en formato YYYY-MM-DD"
// @Success 201 {object} mutationResponse "pet_added"
// @Success 200 {object} mutationResponse "pet_replaced"
// @Failure 400 {string} string "invalid json"
// @Failure 422 {object} validationErrorResponse
// @Router /pets [post]
func addPetHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, ok := decodeForm[pets.Input](w, r, pets.FormSchema(store.now))
		if !ok {
			return
		}
		p, err := in.ToPet(store.Location())
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		stored, out := store.AddPet(p)
		writeOutcome(w, out, stored)
	}
}

// @Summary Listar mascotas
// @Tags pets
// @Produce json
// @Success 200 {array} pets.Pet
// @Router /pets [get]
func listPetsHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, store.Pets())
	}
}

// @Summary Mascota actual
// @Tags pets
// @Produce json
// @Success 200 {object} pets.Pet
// @Failure 404 {string} string "no current pet"
// @Router /pets/current [get]
func currentPetHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		p, ok := store.CurrentPet()
		if !ok {
			http.Error(w, "no current pet", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, p)
	}
}

// @Summary Cambiar mascota actual
// @Tags pets
// @Accept json
// @Produce json
// @Param payload body setCurrentPetRequest true "Id de la mascota"
// @Success 200 {object} mutationResponse "current_changed"
// @Failure 400 {string} string "invalid json"
// @Failure 404 {object} mutationResponse "unknown_pet"
// @Router /pets/current [put]
func setCurrentPetHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req setCurrentPetRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		writeOutcome(w, store.SetCurrentPet(req.PetID), nil)
	}
}

// ---- vaccines ----

// @Summary Vacunas de la mascota actual
// @Tags vaccines
// @Produce json
// @Success 200 {array} records.Vaccine
// @Router /current/vaccines [get]
func listVaccinesHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, store.CurrentVaccines())
	}
}

// @Summary Próximas vacunas
// @Description Vacunas de la mascota actual con next_date posterior a ahora, ordenadas por next_date.
// @Tags vaccines
// @Produce json
// @Success 200 {array} records.Vaccine
// @Router /current/vaccines/upcoming [get]
func upcomingVaccinesHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, store.UpcomingVaccines())
	}
}

// @Summary Registrar vacuna
// @Description Una vacuna con el mismo nombre y fecha que otra existente se ignora (outcome duplicate_ignored).
// @Tags vaccines
// @Accept json
// @Produce json
// @Param payload body records.VaccineInput true "Vacuna; fechas en formato YYYY-MM-DD"
// @Success 201 {object} mutationResponse "inserted"
// @Success 200 {object} mutationResponse "duplicate_ignored / no_current_pet"
// @Failure 400 {string} string "invalid json"
// @Failure 422 {object} validationErrorResponse
// @Router /current/vaccines [post]
func addVaccineHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, ok := decodeForm[records.VaccineInput](w, r, records.VaccineSchema())
		if !ok {
			return
		}
		v, err := in.ToVaccine(store.Location())
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		stored, out := store.AddVaccine(v)
		writeOutcome(w, out, stored)
	}
}

// @Summary Actualizar vacuna
// @Tags vaccines
// @Accept json
// @Produce json
// @Param id path string true "ID de la vacuna"
// @Param payload body records.VaccineInput true "Vacuna"
// @Success 200 {object} mutationResponse "updated / duplicate_ignored"
// @Failure 400 {string} string "invalid json"
// @Failure 404 {object} mutationResponse "not_found"
// @Failure 422 {object} validationErrorResponse
// @Router /current/vaccines/{id} [put]
func updateVaccineHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, ok := decodeForm[records.VaccineInput](w, r, records.VaccineSchema())
		if !ok {
			return
		}
		v, err := in.ToVaccine(store.Location())
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		stored, out := store.UpdateVaccine(chi.URLParam(r, "id"), v)
		writeOutcome(w, out, stored)
	}
}

// ---- weights ----

// @Summary Historial de peso de la mascota actual
// @Tags weights
// @Produce json
// @Success 200 {array} records.WeightRecord
// @Router /current/weights [get]
func listWeightsHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, store.SortedWeightHistory())
	}
}

// @Summary Resumen de peso
// @Description Historial ordenado, rango min/max, último peso y progresión porcentual (null si no aplica).
// @Tags weights
// @Produce json
// @Success 200 {object} WeightSummary
// @Router /current/weights/summary [get]
func weightSummaryHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, store.WeightSummary())
	}
}

// @Summary Registrar peso
// @Description Un registro el mismo día calendario que otro existente se ignora (outcome duplicate_ignored). Actualiza el peso de la mascota.
// @Tags weights
// @Accept json
// @Produce json
// @Param payload body records.WeightInput true "Registro de peso"
// @Success 201 {object} mutationResponse "inserted"
// @Success 200 {object} mutationResponse "duplicate_ignored / no_current_pet"
// @Failure 400 {string} string "invalid json"
// @Failure 422 {object} validationErrorResponse
// @Router /current/weights [post]
func addWeightHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, ok := decodeForm[records.WeightInput](w, r, records.WeightSchema())
		if !ok {
			return
		}
		rec, err := in.ToWeightRecord(store.Location())
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		stored, out := store.AddWeightRecord(rec)
		writeOutcome(w, out, stored)
	}
}

// @Summary Actualizar registro de peso
// @Tags weights
// @Accept json
// @Produce json
// @Param id path string true "ID del registro"
// @Param payload body records.WeightInput true "Registro de peso"
// @Success 200 {object} mutationResponse "updated / duplicate_ignored"
// @Failure 400 {string} string "invalid json"
// @Failure 404 {object} mutationResponse "not_found"
// @Failure 422 {object} validationErrorResponse
// @Router /current/weights/{id} [put]
func updateWeightHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, ok := decodeForm[records.WeightInput](w, r, records.WeightSchema())
		if !ok {
			return
		}
		rec, err := in.ToWeightRecord(store.Location())
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		stored, out := store.UpdateWeightRecord(chi.URLParam(r, "id"), rec)
		writeOutcome(w, out, stored)
	}
}

// ---- health records ----

// @Summary Registros de salud de la mascota actual
// @Tags health
// @Produce json
// @Success 200 {array} records.HealthRecord
// @Router /current/health-records [get]
func listHealthHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, store.CurrentHealthRecords())
	}
}

// @Summary Registrar evento de salud
// @Tags health
// @Accept json
// @Produce json
// @Param payload body records.HealthInput true "Registro de salud; type: checkup, incident o illness"
// @Success 201 {object} mutationResponse "inserted"
// @Success 200 {object} mutationResponse "no_current_pet"
// @Failure 400 {string} string "invalid json"
// @Failure 422 {object} validationErrorResponse
// @Router /current/health-records [post]
func addHealthHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, ok := decodeForm[records.HealthInput](w, r, records.HealthSchema())
		if !ok {
			return
		}
		rec, err := in.ToHealthRecord(store.Location())
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		stored, out := store.AddHealthRecord(rec)
		writeOutcome(w, out, stored)
	}
}

// @Summary Actualizar evento de salud
// @Tags health
// @Accept json
// @Produce json
// @Param id path string true "ID del registro"
// @Param payload body records.HealthInput true "Registro de salud"
// @Success 200 {object} mutationResponse "updated"
// @Failure 400 {string} string "invalid json"
// @Failure 404 {object} mutationResponse "not_found"
// @Failure 422 {object} validationErrorResponse
// @Router /current/health-records/{id} [put]
func updateHealthHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, ok := decodeForm[records.HealthInput](w, r, records.HealthSchema())
		if !ok {
			return
		}
		rec, err := in.ToHealthRecord(store.Location())
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		stored, out := store.UpdateHealthRecord(chi.URLParam(r, "id"), rec)
		writeOutcome(w, out, stored)
	}
}

// ---- food logs ----

// @Summary Comidas de la mascota actual
// @Tags food
// @Produce json
// @Success 200 {array} records.FoodLog
// @Router /current/food-logs [get]
func listFoodLogsHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, store.CurrentFoodLogs())
	}
}

// @Summary Registrar comida
// @Tags food
// @Accept json
// @Produce json
// @Param payload body records.FoodLogInput true "Comida; unit: g, kg o portion"
// @Success 201 {object} mutationResponse "inserted"
// @Success 200 {object} mutationResponse "no_current_pet"
// @Failure 400 {string} string "invalid json"
// @Failure 422 {object} validationErrorResponse
// @Router /current/food-logs [post]
func addFoodLogHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, ok := decodeForm[records.FoodLogInput](w, r, records.FoodLogSchema())
		if !ok {
			return
		}
		rec, err := in.ToFoodLog(store.Location())
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		stored, out := store.AddFoodLog(rec)
		writeOutcome(w, out, stored)
	}
}

// @Summary Actualizar comida
// @Tags food
// @Accept json
// @Produce json
// @Param id path string true "ID del registro"
// @Param payload body records.FoodLogInput true "Comida"
// @Success 200 {object} mutationResponse "updated"
// @Failure 400 {string} string "invalid json"
// @Failure 404 {object} mutationResponse "not_found"
// @Failure 422 {object} validationErrorResponse
// @Router /current/food-logs/{id} [put]
func updateFoodLogHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, ok := decodeForm[records.FoodLogInput](w, r, records.FoodLogSchema())
		if !ok {
			return
		}
		rec, err := in.ToFoodLog(store.Location())
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		stored, out := store.UpdateFoodLog(chi.URLParam(r, "id"), rec)
		writeOutcome(w, out, stored)
	}
}

// deleteHandler sirve los cuatro DELETE /current/<colección>/{id}.
// @Summary Borrar registro de la mascota actual
// @Tags vaccines,weights,health,food
// @Param id path string true "ID del registro"
// @Success 204 "deleted"
// @Success 200 {object} mutationResponse "no_current_pet"
// @Failure 404 {object} mutationResponse "not_found"
// @Router /current/vaccines/{id} [delete]
// @Router /current/weights/{id} [delete]
// @Router /current/health-records/{id} [delete]
// @Router /current/food-logs/{id} [delete]
func deleteHandler(del func(id string) Outcome) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeOutcome(w, del(chi.URLParam(r, "id")), nil)
	}
}

// decodeForm lee el body, lo valida contra schema como payload genérico
// y recién entonces lo decodifica en T. Escribe la respuesta de error si falla.
func decodeForm[T any](w http.ResponseWriter, r *http.Request, schema validation.Schema) (T, bool) {
	var in T

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return in, false
	}

	form := map[string]any{}
	if err := json.Unmarshal(body, &form); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return in, false
	}
	if errs := validation.ValidateForm(form, schema); !errs.Valid() {
		writeJSON(w, http.StatusUnprocessableEntity, validationErrorResponse{Errors: errs})
		return in, false
	}

	if err := json.Unmarshal(body, &in); err != nil {
		http.Error(w, "invalid json: "+strings.TrimPrefix(err.Error(), "json: "), http.StatusBadRequest)
		return in, false
	}
	return in, true
}

func writeOutcome(w http.ResponseWriter, out Outcome, data any) {
	switch out {
	case Inserted, PetAdded:
		writeJSON(w, http.StatusCreated, mutationResponse{Outcome: out, Data: data})
	case Deleted:
		w.WriteHeader(http.StatusNoContent)
	case NotFound, UnknownPet:
		writeJSON(w, http.StatusNotFound, mutationResponse{Outcome: out})
	case Updated, PetReplaced:
		writeJSON(w, http.StatusOK, mutationResponse{Outcome: out, Data: data})
	default:
		// no-ops benignos (duplicate_ignored, no_current_pet) y current_changed
		writeJSON(w, http.StatusOK, mutationResponse{Outcome: out})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
