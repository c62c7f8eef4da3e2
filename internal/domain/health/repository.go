package health

import "context"

// Repository guarda la colección completa (persist.Collection[HealthRecord]).
type Repository interface {
	Load(ctx context.Context) []HealthRecord
	Save(ctx context.Context, items []HealthRecord)
}

type IDGenerator interface {
	Next() int64
}

type PetChecker interface {
	Exists(ctx context.Context, id int64) bool
}
