package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"pets-api/internal/domain/traits"
)

type TraitsRepo struct {
	db *sql.DB
}

func NewTraitsRepo(db *sql.DB) *TraitsRepo {
	return &TraitsRepo{db: db}
}

// GetOrCreate: mismo patrón que GroupsRepo, contra lower(name).
func (r *TraitsRepo) GetOrCreate(ctx context.Context, name string) (traits.Trait, error) {
	if _, err := r.db.ExecContext(ctx, `
		INSERT INTO traits (name)
		VALUES ($1)
		ON CONFLICT ((lower(name))) DO NOTHING
	`, name); err != nil {
		return traits.Trait{}, fmt.Errorf("postgres: insert trait: %w", err)
	}

	var t traits.Trait
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, created_at
		FROM traits
		WHERE lower(name) = lower($1)
	`, name).Scan(&t.ID, &t.Name, &t.CreatedAt)
	if err != nil {
		return traits.Trait{}, fmt.Errorf("postgres: select trait: %w", err)
	}
	return t, nil
}
