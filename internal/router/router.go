package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "pet-care-dashboard/docs" // registra el spec de swagger

	"pet-care-dashboard/internal/domain/appointments"
	"pet-care-dashboard/internal/domain/dashboard"
	"pet-care-dashboard/internal/domain/health"
	"pet-care-dashboard/internal/domain/pets"
	"pet-care-dashboard/internal/middleware"
	"pet-care-dashboard/internal/platform/logger"
	"pet-care-dashboard/internal/platform/metrics"
)

type Options struct {
	State *dashboard.State

	Logger logger.Logger // puede ser nil
	// Opcional: si viene, expone /metrics.
	Metrics *metrics.Recorder
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.RequestIDHeader)
	r.Use(chimw.RealIP)
	r.Use(middleware.AccessLog(opts.Logger))
	r.Use(middleware.Recover(opts.Logger))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	st := opts.State

	// Rutas por módulo
	pets.RegisterRoutes(r, st.Pets)
	health.RegisterRoutes(r, st.Health, st.Pets)
	appointments.RegisterRoutes(r, st.Appointments, st.Pets)
	dashboard.RegisterRoutes(r, st)

	return r
}
