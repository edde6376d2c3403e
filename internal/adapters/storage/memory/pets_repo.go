package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"pets-api/internal/domain/pets"
	"pets-api/internal/domain/traits"
)

type petRepo struct {
	mu     sync.RWMutex
	byID   map[int64]pets.Pet
	nextID int64
}

func NewPetRepo() pets.Repository {
	return &petRepo{
		byID: make(map[int64]pets.Pet),
	}
}

func (r *petRepo) Create(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.Group.ID == 0 {
		return pets.Pet{}, errors.New("pet group required")
	}

	r.nextID++
	p.ID = r.nextID
	p.Traits = cloneTraits(p.Traits)
	r.byID[p.ID] = p

	return clonePet(p), nil
}

func (r *petRepo) Update(ctx context.Context, p pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[p.ID]; !exists {
		return pets.ErrNotFound
	}
	if p.Group.ID == 0 {
		return errors.New("pet group required")
	}
	r.byID[p.ID] = clonePet(p)
	return nil
}

func (r *petRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return clonePet(p), nil
}

func (r *petRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return pets.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *petRepo) List(ctx context.Context, filter pets.ListFilter) ([]pets.Pet, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	trait := strings.TrimSpace(filter.Trait)

	matched := make([]pets.Pet, 0, len(r.byID))
	for _, p := range r.byID {
		if trait != "" && !hasTrait(p, trait) {
			continue
		}
		matched = append(matched, p)
	}

	// Orden por id asc (mismo orden que postgres)
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].ID < matched[j].ID
	})

	total := len(matched)

	start := filter.Offset
	if start < 0 {
		start = 0
	}
	if start > total {
		start = total
	}
	end := total
	if filter.Limit > 0 && start+filter.Limit < total {
		end = start + filter.Limit
	}

	out := make([]pets.Pet, 0, end-start)
	for _, p := range matched[start:end] {
		out = append(out, clonePet(p))
	}
	return out, total, nil
}

func hasTrait(p pets.Pet, name string) bool {
	for _, t := range p.Traits {
		if t.Name == name {
			return true
		}
	}
	return false
}

// clonePet copia el slice de traits para que el caller no mute el estado interno.
func clonePet(p pets.Pet) pets.Pet {
	p.Traits = cloneTraits(p.Traits)
	return p
}

func cloneTraits(in []traits.Trait) []traits.Trait {
	out := make([]traits.Trait, len(in))
	copy(out, in)
	return out
}
