package traits

import "context"

type Repository interface {
	// GetOrCreate busca por name (case-insensitive) y solo inserta si no existe.
	GetOrCreate(ctx context.Context, name string) (Trait, error)
}
