package health

import (
	"context"
	"errors"
	"math"
	"strings"
	"sync"
	"time"

	"pet-care-dashboard/internal/platform/logger"
	"pet-care-dashboard/internal/platform/metrics"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrPetNotFound  = errors.New("pet not found")
)

type Options struct {
	Logger  logger.Logger
	Metrics *metrics.Recorder
	// Location define el "hoy" del upsert. Default: UTC.
	Location *time.Location
	Now      func() time.Time // default: time.Now
}

type Service struct {
	mu      sync.RWMutex
	repo    Repository
	ids     IDGenerator
	pets    PetChecker
	items   []HealthRecord
	loc     *time.Location
	now     func() time.Time
	log     logger.Logger
	metrics *metrics.Recorder
}

func NewService(ctx context.Context, repo Repository, ids IDGenerator, pets PetChecker, opts Options) *Service {
	l := opts.Logger
	if l == nil {
		l = logger.Nop()
	}
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Service{
		repo:    repo,
		ids:     ids,
		pets:    pets,
		items:   repo.Load(ctx),
		loc:     loc,
		now:     now,
		log:     l.With(map[string]any{"collection": "healthRecords"}),
		metrics: opts.Metrics,
	}
}

// StatusInput son los datos que carga el usuario; petId y date los pone el servicio.
type StatusInput struct {
	Type        string
	Status      Status
	Temperature float64
	Weight      float64
	Notes       string
}

// Today es el día calendario actual en la zona configurada.
func (s *Service) Today() string {
	return s.now().In(s.loc).Format(dateLayout)
}

// Upsert registra el estado de hoy. Si ya hay un registro de (petID, hoy) lo reemplaza
// en su lugar conservando el id; si no, agrega uno nuevo.
func (s *Service) Upsert(ctx context.Context, petID int64, in StatusInput) (HealthRecord, error) {
	if !in.Status.Valid() ||
		math.IsNaN(in.Temperature) || math.IsInf(in.Temperature, 0) ||
		math.IsNaN(in.Weight) || math.IsInf(in.Weight, 0) || in.Weight < 0 {
		s.metrics.Mutation("health.upsert", "invalid")
		return HealthRecord{}, ErrInvalidInput
	}
	if !s.pets.Exists(ctx, petID) {
		s.metrics.Mutation("health.upsert", "pet_not_found")
		return HealthRecord{}, ErrPetNotFound
	}

	typ := strings.TrimSpace(in.Type)
	if typ == "" {
		typ = TypeCheckup
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec := HealthRecord{
		PetID:       petID,
		Date:        s.Today(),
		Type:        typ,
		Status:      in.Status,
		Temperature: in.Temperature,
		Weight:      in.Weight,
		Notes:       strings.TrimSpace(in.Notes),
	}

	replaced := false
	for i := range s.items {
		if s.items[i].PetID == rec.PetID && s.items[i].Date == rec.Date {
			rec.ID = s.items[i].ID
			s.items[i] = rec
			replaced = true
			break
		}
	}
	if !replaced {
		rec.ID = s.ids.Next()
		s.items = append(s.items, rec)
	}
	s.repo.Save(ctx, s.items)

	s.metrics.Mutation("health.upsert", "ok")
	s.log.Info("health record saved", map[string]any{
		"record_id": rec.ID,
		"pet_id":    rec.PetID,
		"date":      rec.Date,
		"status":    rec.Status,
		"replaced":  replaced,
	})
	return rec, nil
}

// List devuelve una copia en orden de inserción.
func (s *Service) List(ctx context.Context) []HealthRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]HealthRecord, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Service) ListByPet(ctx context.Context, petID int64) []HealthRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]HealthRecord, 0)
	for _, r := range s.items {
		if r.PetID == petID {
			out = append(out, r)
		}
	}
	return out
}
