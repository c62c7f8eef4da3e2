package dashboard

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"pet-care-dashboard/internal/platform/i18n"
)

func RegisterRoutes(r chi.Router, st *State) {
	r.Get("/dashboard", summaryHandler(st))
}

// summaryResponse son las tarjetas del dashboard.
type summaryResponse struct {
	Pets          int    `json:"pets"`
	Favorites     int    `json:"favorites"`
	Appointments  int    `json:"appointments"`
	Upcoming      int    `json:"upcoming"`
	OverallHealth string `json:"overallHealth" enums:"NoData,Good,Recovering,Attention,Critical"`
	OverallLabel  string `json:"overallLabel"`
	OverallTone   string `json:"overallTone"`
	Lang          string `json:"lang"`
}

// summaryHandler godoc
// @Summary Resumen del dashboard
// @Description Cantidad de mascotas, favoritas, citas y próximas citas, y el estado de salud general (gana el peor estado entre los últimos registros de cada mascota). La etiqueta se traduce según `lang` o Accept-Language (en, tr).
// @Tags dashboard
// @Produce json
// @Param lang query string false "Idioma de las etiquetas (en, tr)"
// @Param Accept-Language header string false "Idioma preferido"
// @Success 200 {object} summaryResponse
// @Router /dashboard [get]
func summaryHandler(st *State) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		labels := i18n.For(i18n.Resolve(r.URL.Query().Get("lang"), r.Header.Get("Accept-Language")))

		writeJSON(w, http.StatusOK, toSummaryResponse(st.Summary(r.Context()), labels))
	}
}

func toSummaryResponse(s Summary, labels i18n.Labels) summaryResponse {
	return summaryResponse{
		Pets:          s.Pets,
		Favorites:     s.Favorites,
		Appointments:  s.Appointments,
		Upcoming:      s.Upcoming,
		OverallHealth: string(s.OverallHealth),
		OverallLabel:  labels.Text("overall." + string(s.OverallHealth)),
		OverallTone:   s.OverallHealth.Tone(),
		Lang:          labels.Tag().String(),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
