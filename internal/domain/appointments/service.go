package appointments

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"pet-care-dashboard/internal/platform/logger"
	"pet-care-dashboard/internal/platform/metrics"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("appointment not found")
	ErrPetNotFound  = errors.New("pet not found")
)

type Options struct {
	Logger  logger.Logger
	Metrics *metrics.Recorder
}

type Service struct {
	mu      sync.RWMutex
	repo    Repository
	ids     IDGenerator
	pets    PetChecker
	items   []Appointment
	log     logger.Logger
	metrics *metrics.Recorder
}

// NewService carga la colección y normaliza tipos legacy en memoria; el próximo
// Save los deja escritos en formato canónico.
func NewService(ctx context.Context, repo Repository, ids IDGenerator, pets PetChecker, opts Options) *Service {
	l := opts.Logger
	if l == nil {
		l = logger.Nop()
	}
	l = l.With(map[string]any{"collection": "appointments"})

	items := repo.Load(ctx)
	for i := range items {
		if t, ok := ParseType(string(items[i].Type)); ok {
			items[i].Type = t
		} else {
			l.Warn("stored appointment has unknown type", map[string]any{"appointment_id": items[i].ID, "type": items[i].Type})
		}
	}

	return &Service{
		repo:    repo,
		ids:     ids,
		pets:    pets,
		items:   items,
		log:     l,
		metrics: opts.Metrics,
	}
}

// Input son los campos editables de una cita.
type Input struct {
	PetID int64
	Date  string // YYYY-MM-DD
	Time  string // HH:MM o HH:MM:SS
	Type  string // canónico o legacy
	Notes string
}

func (s *Service) validate(ctx context.Context, in Input) (Appointment, error) {
	t, ok := ParseType(in.Type)
	if !ok {
		return Appointment{}, ErrInvalidInput
	}

	a := Appointment{
		PetID: in.PetID,
		Date:  strings.TrimSpace(in.Date),
		Time:  strings.TrimSpace(in.Time),
		Type:  t,
		Notes: strings.TrimSpace(in.Notes),
	}
	if _, err := time.Parse(dateLayout, a.Date); err != nil {
		return Appointment{}, ErrInvalidInput
	}
	if _, ok := parseClock(a.Time); !ok {
		return Appointment{}, ErrInvalidInput
	}

	if !s.pets.Exists(ctx, a.PetID) {
		return Appointment{}, ErrPetNotFound
	}
	return a, nil
}

func (s *Service) Add(ctx context.Context, in Input) (Appointment, error) {
	a, err := s.validate(ctx, in)
	if err != nil {
		s.metrics.Mutation("appointment.add", outcome(err))
		return Appointment{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	a.ID = s.ids.Next()
	s.items = append(s.items, a)
	s.repo.Save(ctx, s.items)

	s.metrics.Mutation("appointment.add", "ok")
	s.log.Info("appointment added", map[string]any{"appointment_id": a.ID, "pet_id": a.PetID, "date": a.Date})
	return a, nil
}

// Update reemplaza la cita conservando su id. Con id desconocido es no-op (ErrNotFound).
func (s *Service) Update(ctx context.Context, id int64, in Input) (Appointment, error) {
	a, err := s.validate(ctx, in)
	if err != nil {
		s.metrics.Mutation("appointment.update", outcome(err))
		return Appointment{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		s.metrics.Mutation("appointment.update", "not_found")
		return Appointment{}, ErrNotFound
	}

	a.ID = id
	s.items[i] = a
	s.repo.Save(ctx, s.items)

	s.metrics.Mutation("appointment.update", "ok")
	s.log.Info("appointment updated", map[string]any{"appointment_id": id})
	return a, nil
}

// Delete devuelve false (sin persistir nada) si el id no existe.
func (s *Service) Delete(ctx context.Context, id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		s.metrics.Mutation("appointment.delete", "not_found")
		return false
	}

	s.items = append(s.items[:i:i], s.items[i+1:]...)
	s.repo.Save(ctx, s.items)

	s.metrics.Mutation("appointment.delete", "ok")
	s.log.Info("appointment deleted", map[string]any{"appointment_id": id})
	return true
}

func (s *Service) GetByID(ctx context.Context, id int64) (Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return Appointment{}, ErrNotFound
	}
	return s.items[i], nil
}

// List devuelve una copia en orden de inserción.
func (s *Service) List(ctx context.Context) []Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Appointment, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Service) indexOf(id int64) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

func outcome(err error) string {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return "invalid"
	case errors.Is(err, ErrPetNotFound):
		return "pet_not_found"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	default:
		return "error"
	}
}
