package appointments

import (
	"context"
	"time"
)

// Repository guarda la colección completa (persist.Collection[Appointment]).
type Repository interface {
	Load(ctx context.Context) []Appointment
	Save(ctx context.Context, items []Appointment)
}

type IDGenerator interface {
	Next() int64
}

// PetChecker evita importar pets (lo implementa pets.Service).
type PetChecker interface {
	Exists(ctx context.Context, id int64) bool
}

// PetDirectory agrega los nombres para armar las vistas.
type PetDirectory interface {
	PetChecker
	Names(ctx context.Context) map[int64]string
}

type ListFilter struct {
	Types []Type
	PetID *int64
	From  *time.Time // día inclusive
	To    *time.Time // día inclusive
	Query string
	Limit int // <= 0: sin límite
}
