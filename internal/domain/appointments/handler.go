package appointments

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, pets PetDirectory) {
	r.Route("/appointments", func(ar chi.Router) {
		ar.Post("/", createAppointmentHandler(svc))
		ar.Get("/", listAppointmentsHandler(svc, pets))

		ar.Put("/{appointmentID}", updateAppointmentHandler(svc))
		ar.Delete("/{appointmentID}", deleteAppointmentHandler(svc))
	})
}

// appointmentRequest es el cuerpo para crear o editar una cita.
type appointmentRequest struct {
	PetID int64  `json:"petId"`
	Date  string `json:"date"` // YYYY-MM-DD
	Time  string `json:"time"` // HH:MM
	Type  string `json:"type" enums:"veterinary-checkup,vaccination,grooming,exercise"`
	Notes string `json:"notes"`
}

// appointmentResponse es una cita devuelta por la API.
type appointmentResponse struct {
	ID         int64  `json:"id"`
	PetID      int64  `json:"petId"`
	PetName    string `json:"petName,omitempty"`
	PetMissing bool   `json:"petMissing,omitempty"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Type       Type   `json:"type"`
	Notes      string `json:"notes"`
}

// createAppointmentHandler godoc
// @Summary Crear cita
// @Description Agenda una cita para una mascota existente. type acepta también los valores legacy (veteriner, asi, bakim, egzersiz).
// @Tags appointments
// @Accept json
// @Produce json
// @Param payload body appointmentRequest true "Datos de la cita"
// @Success 201 {object} appointmentResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 404 {string} string "pet not found"
// @Router /appointments [post]
func createAppointmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req appointmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		a, err := svc.Add(r.Context(), toInput(req))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toAppointmentResponse(View{Appointment: a}))
	}
}

// listAppointmentsHandler godoc
// @Summary Listar citas
// @Description Lista las citas en orden cronológico con el nombre de la mascota. Permite filtrar por tipos, mascota, rango de días y texto.
// @Tags appointments
// @Produce json
// @Param limit query int false "Máximo de citas a devolver (1-200). Por defecto 50"
// @Param types query string false "Lista CSV de tipos (ej: vaccination,grooming)"
// @Param pet_id query int false "Solo citas de esta mascota"
// @Param from query string false "Día mínimo (YYYY-MM-DD, inclusive)"
// @Param to query string false "Día máximo (YYYY-MM-DD, inclusive)"
// @Param q query string false "Texto de búsqueda libre en notas"
// @Success 200 {array} appointmentResponse
// @Failure 400 {string} string "Parámetros de filtro inválidos"
// @Router /appointments [get]
func listAppointmentsHandler(svc *Service, pets PetDirectory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseListFilter(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		items := Views(Filter(svc.List(r.Context()), filter), pets.Names(r.Context()))

		out := make([]appointmentResponse, 0, len(items))
		for _, v := range items {
			out = append(out, toAppointmentResponse(v))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// updateAppointmentHandler godoc
// @Summary Editar cita
// @Description Reemplaza los campos de la cita conservando su id.
// @Tags appointments
// @Accept json
// @Produce json
// @Param appointmentID path int true "ID de la cita"
// @Param payload body appointmentRequest true "Datos de la cita"
// @Success 200 {object} appointmentResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 404 {string} string "appointment not found / pet not found"
// @Router /appointments/{appointmentID} [put]
func updateAppointmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "appointmentID"), 10, 64)
		if err != nil {
			http.Error(w, "invalid appointment id", http.StatusBadRequest)
			return
		}

		var req appointmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		a, err := svc.Update(r.Context(), id, toInput(req))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toAppointmentResponse(View{Appointment: a}))
	}
}

// deleteAppointmentHandler godoc
// @Summary Borrar cita
// @Description Borra la cita. Con un id desconocido no hace nada (la UI puede tener estado viejo).
// @Tags appointments
// @Param appointmentID path int true "ID de la cita"
// @Success 204
// @Failure 400 {string} string "invalid appointment id"
// @Router /appointments/{appointmentID} [delete]
func deleteAppointmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "appointmentID"), 10, 64)
		if err != nil {
			http.Error(w, "invalid appointment id", http.StatusBadRequest)
			return
		}

		svc.Delete(r.Context(), id)
		w.WriteHeader(http.StatusNoContent)
	}
}

func parseListFilter(r *http.Request) (ListFilter, error) {
	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}

	filter := ListFilter{Limit: limit}

	// types=vaccination,grooming
	if v := strings.TrimSpace(r.URL.Query().Get("types")); v != "" {
		parts := strings.Split(v, ",")
		out := make([]Type, 0, len(parts))
		for _, p := range parts {
			if strings.TrimSpace(p) == "" {
				continue
			}
			t, ok := ParseType(p)
			if !ok {
				return ListFilter{}, errors.New("unknown appointment type: " + strings.TrimSpace(p))
			}
			out = append(out, t)
		}
		if len(out) > 0 {
			filter.Types = out
		}
	}

	if v := strings.TrimSpace(r.URL.Query().Get("pet_id")); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return ListFilter{}, errors.New("pet_id must be an integer")
		}
		filter.PetID = &id
	}

	// from/to YYYY-MM-DD
	if v := strings.TrimSpace(r.URL.Query().Get("from")); v != "" {
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return ListFilter{}, errors.New("from must be YYYY-MM-DD")
		}
		filter.From = &t
	}
	if v := strings.TrimSpace(r.URL.Query().Get("to")); v != "" {
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return ListFilter{}, errors.New("to must be YYYY-MM-DD")
		}
		filter.To = &t
	}

	if v := strings.TrimSpace(r.URL.Query().Get("q")); v != "" {
		filter.Query = v
	}

	return filter, nil
}

func toInput(req appointmentRequest) Input {
	return Input{
		PetID: req.PetID,
		Date:  req.Date,
		Time:  req.Time,
		Type:  req.Type,
		Notes: req.Notes,
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrPetNotFound):
		http.Error(w, "pet not found", http.StatusNotFound)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "appointment not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toAppointmentResponse(v View) appointmentResponse {
	return appointmentResponse{
		ID:         v.ID,
		PetID:      v.PetID,
		PetName:    v.PetName,
		PetMissing: v.PetMissing,
		Date:       v.Date,
		Time:       v.Time,
		Type:       v.Type,
		Notes:      v.Notes,
	}
}

// writeJSON está duplicado en cada módulo (pets/appointments/health/dashboard).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
