package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"pets-api/internal/domain/groups"
)

type GroupsRepo struct {
	db *sql.DB
}

func NewGroupsRepo(db *sql.DB) *GroupsRepo {
	return &GroupsRepo{db: db}
}

// GetOrCreate: INSERT ... ON CONFLICT DO NOTHING contra el índice único lower(scientific_name)
// y después SELECT. En dos sentencias para ver filas commiteadas por requests concurrentes.
func (r *GroupsRepo) GetOrCreate(ctx context.Context, scientificName string) (groups.Group, error) {
	if _, err := r.db.ExecContext(ctx, `
		INSERT INTO groups (scientific_name)
		VALUES ($1)
		ON CONFLICT ((lower(scientific_name))) DO NOTHING
	`, scientificName); err != nil {
		return groups.Group{}, fmt.Errorf("postgres: insert group: %w", err)
	}

	var g groups.Group
	err := r.db.QueryRowContext(ctx, `
		SELECT id, scientific_name, created_at
		FROM groups
		WHERE lower(scientific_name) = lower($1)
	`, scientificName).Scan(&g.ID, &g.ScientificName, &g.CreatedAt)
	if err != nil {
		return groups.Group{}, fmt.Errorf("postgres: select group: %w", err)
	}
	return g, nil
}
