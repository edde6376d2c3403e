package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"pets-api/internal/domain/pets"
	"pets-api/internal/domain/traits"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

const selectPet = `
	SELECT
		p.id, p.name, p.age, p.weight, p.sex,
		g.id, g.scientific_name, g.created_at
	FROM pets p
	JOIN groups g ON g.id = p.group_id
`

// Filtro por trait: mascotas con algún trait de ese nombre exacto.
const traitFilter = `
	($1::text = '' OR EXISTS (
		SELECT 1
		FROM pet_traits pt
		JOIN traits t ON t.id = pt.trait_id
		WHERE pt.pet_id = p.id AND t.name = $1
	))
`

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return pets.Pet{}, fmt.Errorf("postgres: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	err = tx.QueryRowContext(ctx, `
		INSERT INTO pets (name, age, weight, sex, group_id)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id
	`,
		p.Name,
		p.Age,
		p.Weight,
		string(p.Sex),
		p.Group.ID,
	).Scan(&p.ID)
	if err != nil {
		return pets.Pet{}, fmt.Errorf("postgres: insert pet: %w", err)
	}

	if err := linkTraits(ctx, tx, p.ID, p.Traits); err != nil {
		return pets.Pet{}, err
	}

	if err := tx.Commit(); err != nil {
		return pets.Pet{}, fmt.Errorf("postgres: commit: %w", err)
	}
	return p, nil
}

func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("postgres: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `
		UPDATE pets
		SET
			name = $2,
			age = $3,
			weight = $4,
			sex = $5,
			group_id = $6
		WHERE id = $1
	`,
		p.ID,
		p.Name,
		p.Age,
		p.Weight,
		string(p.Sex),
		p.Group.ID,
	)
	if err != nil {
		return fmt.Errorf("postgres: update pet: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}

	// El set de traits se reemplaza completo.
	if _, err := tx.ExecContext(ctx, `DELETE FROM pet_traits WHERE pet_id = $1`, p.ID); err != nil {
		return fmt.Errorf("postgres: clear pet traits: %w", err)
	}
	if err := linkTraits(ctx, tx, p.ID, p.Traits); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("postgres: commit: %w", err)
	}
	return nil
}

func (r *PetsRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	row := r.db.QueryRowContext(ctx, selectPet+` WHERE p.id = $1`, id)

	p, err := scanPet(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, fmt.Errorf("postgres: get pet: %w", err)
	}

	byPet, err := r.traitsFor(ctx, []int64{p.ID})
	if err != nil {
		return pets.Pet{}, err
	}
	p.Traits = byPet[p.ID]
	return p, nil
}

func (r *PetsRepo) Delete(ctx context.Context, id int64) error {
	// pet_traits cae por ON DELETE CASCADE.
	res, err := r.db.ExecContext(ctx, `DELETE FROM pets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("postgres: delete pet: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

func (r *PetsRepo) List(ctx context.Context, filter pets.ListFilter) ([]pets.Pet, int, error) {
	trait := strings.TrimSpace(filter.Trait)

	var total int
	if err := r.db.QueryRowContext(ctx, `
		SELECT count(*) FROM pets p WHERE `+traitFilter, trait).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("postgres: count pets: %w", err)
	}

	// LIMIT NULL = sin límite
	var limit any
	if filter.Limit > 0 {
		limit = filter.Limit
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	rows, err := r.db.QueryContext(ctx, selectPet+`
		WHERE `+traitFilter+`
		ORDER BY p.id ASC
		LIMIT $2 OFFSET $3
	`, trait, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("postgres: list pets: %w", err)
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	ids := make([]int64, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("postgres: scan pet: %w", err)
		}
		out = append(out, p)
		ids = append(ids, p.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("postgres: list pets: %w", err)
	}
	if len(ids) == 0 {
		return out, total, nil
	}

	byPet, err := r.traitsFor(ctx, ids)
	if err != nil {
		return nil, 0, err
	}
	for i := range out {
		out[i].Traits = byPet[out[i].ID]
	}
	return out, total, nil
}

// traitsFor carga los traits de varias mascotas en una sola query.
func (r *PetsRepo) traitsFor(ctx context.Context, petIDs []int64) (map[int64][]traits.Trait, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT pt.pet_id, t.id, t.name, t.created_at
		FROM pet_traits pt
		JOIN traits t ON t.id = pt.trait_id
		WHERE pt.pet_id = ANY($1)
		ORDER BY t.id ASC
	`, petIDs)
	if err != nil {
		return nil, fmt.Errorf("postgres: load traits: %w", err)
	}
	defer rows.Close()

	out := make(map[int64][]traits.Trait, len(petIDs))
	for _, id := range petIDs {
		out[id] = []traits.Trait{}
	}
	for rows.Next() {
		var petID int64
		var t traits.Trait
		if err := rows.Scan(&petID, &t.ID, &t.Name, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("postgres: scan trait: %w", err)
		}
		out[petID] = append(out[petID], t)
	}
	return out, rows.Err()
}

func linkTraits(ctx context.Context, tx *sql.Tx, petID int64, ts []traits.Trait) error {
	for _, t := range ts {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO pet_traits (pet_id, trait_id)
			VALUES ($1,$2)
			ON CONFLICT DO NOTHING
		`, petID, t.ID); err != nil {
			return fmt.Errorf("postgres: link trait %d: %w", t.ID, err)
		}
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPet(s rowScanner) (pets.Pet, error) {
	var p pets.Pet
	var sex string
	if err := s.Scan(
		&p.ID,
		&p.Name,
		&p.Age,
		&p.Weight,
		&sex,
		&p.Group.ID,
		&p.Group.ScientificName,
		&p.Group.CreatedAt,
	); err != nil {
		return pets.Pet{}, err
	}
	p.Sex = pets.Sex(sex)
	return p, nil
}
