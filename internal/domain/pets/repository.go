package pets

import "context"

type Repository interface {
	// Create persiste la mascota con sus traits y devuelve la mascota con ID asignado.
	Create(ctx context.Context, p Pet) (Pet, error)
	// Update reemplaza campos, grupo y set de traits. ErrNotFound si no existe.
	Update(ctx context.Context, p Pet) error
	GetByID(ctx context.Context, id int64) (Pet, error)
	Delete(ctx context.Context, id int64) error
	// List devuelve una página ordenada por id asc y el total que matchea el filtro.
	List(ctx context.Context, filter ListFilter) ([]Pet, int, error)
}

type ListFilter struct {
	// Trait filtra mascotas que tengan un trait con ese nombre exacto. Vacío = todas.
	Trait  string
	Limit  int
	Offset int
}
