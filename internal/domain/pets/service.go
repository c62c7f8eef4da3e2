package pets

import (
	"context"
	"errors"
	"strings"
	"sync"

	"pet-care-dashboard/internal/platform/logger"
	"pet-care-dashboard/internal/platform/metrics"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("pet not found")
)

type Options struct {
	Logger  logger.Logger
	Metrics *metrics.Recorder
}

// Service mantiene la colección de mascotas en memoria y la reescribe entera
// en el repo después de cada mutación.
type Service struct {
	mu      sync.RWMutex
	repo    Repository
	ids     IDGenerator
	items   []Pet
	log     logger.Logger
	metrics *metrics.Recorder
}

// NewService carga la colección una sola vez.
func NewService(ctx context.Context, repo Repository, ids IDGenerator, opts Options) *Service {
	l := opts.Logger
	if l == nil {
		l = logger.Nop()
	}
	return &Service{
		repo:    repo,
		ids:     ids,
		items:   repo.Load(ctx),
		log:     l.With(map[string]any{"collection": "pets"}),
		metrics: opts.Metrics,
	}
}

type AddInput struct {
	Name     string
	Breed    string
	Age      int
	ImageURL string
}

func (s *Service) Add(ctx context.Context, in AddInput) (Pet, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.Age < 0 {
		s.metrics.Mutation("pet.add", "invalid")
		return Pet{}, ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := Pet{
		ID:         s.ids.Next(),
		Name:       name,
		Breed:      strings.TrimSpace(in.Breed),
		Age:        in.Age,
		ImageURL:   strings.TrimSpace(in.ImageURL),
		IsFavorite: false,
	}
	s.items = append(s.items, p)
	s.repo.Save(ctx, s.items)

	s.metrics.Mutation("pet.add", "ok")
	s.log.Info("pet added", map[string]any{"pet_id": p.ID, "name": p.Name})
	return p, nil
}

// ToggleFavorite invierte el flag. Con id desconocido no toca nada y devuelve ErrNotFound.
func (s *Service) ToggleFavorite(ctx context.Context, id int64) (Pet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		s.metrics.Mutation("pet.favorite", "not_found")
		return Pet{}, ErrNotFound
	}

	s.items[i].IsFavorite = !s.items[i].IsFavorite
	s.repo.Save(ctx, s.items)

	p := s.items[i]
	s.metrics.Mutation("pet.favorite", "ok")
	s.log.Debug("pet favorite toggled", map[string]any{"pet_id": p.ID, "favorite": p.IsFavorite})
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Pet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return Pet{}, ErrNotFound
	}
	return s.items[i], nil
}

// List devuelve una copia en orden de inserción.
func (s *Service) List(ctx context.Context) []Pet {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Pet, len(s.items))
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
