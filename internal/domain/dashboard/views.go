package dashboard

import (
	"context"

	"pet-care-dashboard/internal/domain/appointments"
	"pet-care-dashboard/internal/domain/health"
	"pet-care-dashboard/internal/domain/pets"
)

func (s *State) SortedPets(ctx context.Context) []pets.Pet {
	return pets.Sorted(s.Pets.List(ctx))
}

func (s *State) SortedAppointments(ctx context.Context) []appointments.Appointment {
	return appointments.Sorted(s.Appointments.List(ctx))
}

// AppointmentViews aplica el filtro y agrega el nombre de la mascota.
func (s *State) AppointmentViews(ctx context.Context, f appointments.ListFilter) []appointments.View {
	return appointments.Views(appointments.Filter(s.Appointments.List(ctx), f), s.Pets.Names(ctx))
}

func (s *State) LatestHealthRecord(ctx context.Context, petID int64) (health.HealthRecord, bool) {
	return health.Latest(s.Health.ListByPet(ctx, petID), petID)
}

func (s *State) HealthHistory(ctx context.Context, petID int64) []health.HealthRecord {
	return health.History(s.Health.ListByPet(ctx, petID), petID)
}

func (s *State) OverallHealth(ctx context.Context) health.Overall {
	return health.OverallOf(petIDs(s.Pets.List(ctx)), s.Health.List(ctx))
}

// Summary son los números de las tarjetas del dashboard.
type Summary struct {
	Pets          int
	Favorites     int
	Appointments  int
	Upcoming      int
	OverallHealth health.Overall
}

func (s *State) Summary(ctx context.Context) Summary {
	ps := s.Pets.List(ctx)
	as := s.Appointments.List(ctx)

	return Summary{
		Pets:          len(ps),
		Favorites:     pets.Favorites(ps),
		Appointments:  len(as),
		Upcoming:      len(appointments.Upcoming(as, s.now(), s.loc)),
		OverallHealth: health.OverallOf(petIDs(ps), s.Health.List(ctx)),
	}
}

func petIDs(items []pets.Pet) []int64 {
	out := make([]int64, 0, len(items))
	for _, p := range items {
		out = append(out, p.ID)
	}
	return out
}
