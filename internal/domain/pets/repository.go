package pets

import "context"

// Repository guarda la colección completa (persist.Collection[Pet] la implementa).
// Load nunca falla: una colección ausente o corrupta vuelve vacía.
type Repository interface {
	Load(ctx context.Context) []Pet
	Save(ctx context.Context, items []Pet)
}

// IDGenerator entrega ids nuevos (platform/id.Generator).
type IDGenerator interface {
	Next() int64
}
