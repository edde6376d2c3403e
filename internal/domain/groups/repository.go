package groups

import "context"

type Repository interface {
	// GetOrCreate busca por scientific_name (case-insensitive) y solo inserta si no existe.
	GetOrCreate(ctx context.Context, scientificName string) (Group, error)
}
