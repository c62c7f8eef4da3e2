// Package dashboard es el contenedor de estado: las tres colecciones, cargadas una vez
// del store, más las vistas derivadas que muestra el resumen.
package dashboard

import (
	"context"
	"time"

	"github.com/google/uuid"

	"pet-care-dashboard/internal/domain/appointments"
	"pet-care-dashboard/internal/domain/health"
	"pet-care-dashboard/internal/domain/pets"
	"pet-care-dashboard/internal/persist"
	"pet-care-dashboard/internal/platform/id"
	"pet-care-dashboard/internal/platform/logger"
	"pet-care-dashboard/internal/platform/metrics"
)

type Options struct {
	Logger   logger.Logger
	Metrics  *metrics.Recorder
	IDs      *id.Generator    // default: id.NewGenerator()
	Location *time.Location   // default: UTC
	Now      func() time.Time // default: time.Now
}

// State se pasa explícitamente a quien lo necesite (router, CLI). No hay estado global.
type State struct {
	Pets         *pets.Service
	Appointments *appointments.Service
	Health       *health.Service

	sessionID string
	loc       *time.Location
	now       func() time.Time
	log       logger.Logger
}

func New(ctx context.Context, adapter *persist.Adapter, opts Options) *State {
	sessionID := uuid.NewString()

	l := opts.Logger
	if l == nil {
		l = logger.Nop()
	}
	l = l.With(map[string]any{"session_id": sessionID})

	ids := opts.IDs
	if ids == nil {
		ids = id.NewGenerator()
	}
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	petsSvc := pets.NewService(ctx,
		persist.NewCollection[pets.Pet](adapter, persist.KeyPets),
		ids, pets.Options{Logger: l, Metrics: opts.Metrics})
	apptSvc := appointments.NewService(ctx,
		persist.NewCollection[appointments.Appointment](adapter, persist.KeyAppointments),
		ids, petsSvc, appointments.Options{Logger: l, Metrics: opts.Metrics})
	healthSvc := health.NewService(ctx,
		persist.NewCollection[health.HealthRecord](adapter, persist.KeyHealthRecords),
		ids, petsSvc, health.Options{Logger: l, Metrics: opts.Metrics, Location: loc, Now: now})

	s := &State{
		Pets:         petsSvc,
		Appointments: apptSvc,
		Health:       healthSvc,
		sessionID:    sessionID,
		loc:          loc,
		now:          now,
		log:          l,
	}

	// ids nuevos siempre por encima de los guardados
	for _, p := range petsSvc.List(ctx) {
		ids.Observe(p.ID)
	}
	for _, a := range apptSvc.List(ctx) {
		ids.Observe(a.ID)
	}
	for _, r := range healthSvc.List(ctx) {
		ids.Observe(r.ID)
	}

	l.Info("state loaded", map[string]any{
		"pets":           len(petsSvc.List(ctx)),
		"appointments":   len(apptSvc.List(ctx)),
		"health_records": len(healthSvc.List(ctx)),
	})
	return s
}

func (s *State) SessionID() string {
	return s.sessionID
}

func (s *State) Location() *time.Location {
	return s.loc
}

// -------------------------
// Mutaciones
// -------------------------

func (s *State) AddPet(ctx context.Context, in pets.AddInput) (pets.Pet, error) {
	return s.Pets.Add(ctx, in)
}

func (s *State) ToggleFavorite(ctx context.Context, petID int64) (pets.Pet, error) {
	return s.Pets.ToggleFavorite(ctx, petID)
}

func (s *State) AddAppointment(ctx context.Context, in appointments.Input) (appointments.Appointment, error) {
	return s.Appointments.Add(ctx, in)
}

func (s *State) UpdateAppointment(ctx context.Context, id int64, in appointments.Input) (appointments.Appointment, error) {
	return s.Appointments.Update(ctx, id, in)
}

// DeleteAppointment es no-op si el id no existe.
func (s *State) DeleteAppointment(ctx context.Context, id int64) bool {
	return s.Appointments.Delete(ctx, id)
}

func (s *State) UpsertHealthRecord(ctx context.Context, petID int64, in health.StatusInput) (health.HealthRecord, error) {
	return s.Health.Upsert(ctx, petID, in)
}
