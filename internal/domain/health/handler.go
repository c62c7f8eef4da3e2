package health

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, pets PetChecker) {
	r.Route("/pets/{petID}/health", func(hr chi.Router) {
		hr.Post("/", upsertHealthHandler(svc))
		hr.Get("/", getHealthHandler(svc, pets))
	})
}

// upsertHealthRequest son los datos del control de hoy.
type upsertHealthRequest struct {
	Type        string  `json:"type"` // opcional, default checkup
	Status      Status  `json:"status" enums:"healthy,sick,recovering,critical"`
	Temperature float64 `json:"temperature"`
	Weight      float64 `json:"weight"`
	Notes       string  `json:"notes"`
}

// healthRecordResponse es un registro de salud devuelto por la API.
type healthRecordResponse struct {
	ID          int64   `json:"id"`
	PetID       int64   `json:"petId"`
	Date        string  `json:"date"`
	Type        string  `json:"type"`
	Status      Status  `json:"status"`
	Temperature float64 `json:"temperature"`
	Weight      float64 `json:"weight"`
	Notes       string  `json:"notes"`
}

// petHealthResponse junta el último registro y el historial de una mascota.
type petHealthResponse struct {
	Latest  *healthRecordResponse  `json:"latest"`
	History []healthRecordResponse `json:"history"`
}

// upsertHealthHandler godoc
// @Summary Registrar estado de salud de hoy
// @Description Guarda el estado de salud del día para la mascota. Si ya había un registro hoy, se reemplaza conservando su id.
// @Tags health
// @Accept json
// @Produce json
// @Param petID path int true "ID de la mascota"
// @Param payload body upsertHealthRequest true "Estado, temperatura (°C), peso (kg) y notas"
// @Success 200 {object} healthRecordResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID}/health [post]
func upsertHealthHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, err := strconv.ParseInt(chi.URLParam(r, "petID"), 10, 64)
		if err != nil {
			http.Error(w, "invalid pet id", http.StatusBadRequest)
			return
		}

		var req upsertHealthRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		rec, err := svc.Upsert(r.Context(), petID, StatusInput{
			Type:        req.Type,
			Status:      req.Status,
			Temperature: req.Temperature,
			Weight:      req.Weight,
			Notes:       req.Notes,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrPetNotFound):
				http.Error(w, "pet not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, toHealthRecordResponse(rec))
	}
}

// getHealthHandler godoc
// @Summary Salud de una mascota
// @Description Devuelve el último registro (null si no hay) y el historial, el día más reciente primero.
// @Tags health
// @Produce json
// @Param petID path int true "ID de la mascota"
// @Success 200 {object} petHealthResponse
// @Failure 400 {string} string "invalid pet id"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID}/health [get]
func getHealthHandler(svc *Service, pets PetChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, err := strconv.ParseInt(chi.URLParam(r, "petID"), 10, 64)
		if err != nil {
			http.Error(w, "invalid pet id", http.StatusBadRequest)
			return
		}
		if !pets.Exists(r.Context(), petID) {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}

		records := svc.ListByPet(r.Context(), petID)

		out := petHealthResponse{History: make([]healthRecordResponse, 0, len(records))}
		if latest, ok := Latest(records, petID); ok {
			resp := toHealthRecordResponse(latest)
			out.Latest = &resp
		}
		for _, rec := range History(records, petID) {
			out.History = append(out.History, toHealthRecordResponse(rec))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func toHealthRecordResponse(r HealthRecord) healthRecordResponse {
	return healthRecordResponse{
		ID:          r.ID,
		PetID:       r.PetID,
		Date:        r.Date,
		Type:        r.Type,
		Status:      r.Status,
		Temperature: r.Temperature,
		Weight:      r.Weight,
		Notes:       r.Notes,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
