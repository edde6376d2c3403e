package pets

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"pets-api/internal/domain/groups"
	"pets-api/internal/domain/traits"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

// GroupResolver / TraitResolver: los implementan groups.Service y traits.Service.
type GroupResolver interface {
	Resolve(ctx context.Context, scientificName string) (groups.Group, error)
}

type TraitResolver interface {
	ResolveAll(ctx context.Context, names []string) ([]traits.Trait, error)
}

type Service struct {
	repo   Repository
	groups GroupResolver
	traits TraitResolver
}

func NewService(repo Repository, groups GroupResolver, traits TraitResolver) *Service {
	return &Service{
		repo:   repo,
		groups: groups,
		traits: traits,
	}
}

type CreateInput struct {
	Name   string
	Age    int
	Weight float64
	Sex    Sex // vacío => Not Informed

	GroupName  string
	TraitNames []string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Pet, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || len([]rune(name)) > MaxNameLen {
		return Pet{}, ErrInvalidInput
	}

	sex := in.Sex
	if sex == "" {
		sex = SexNotInformed
	}
	if !sex.Valid() {
		return Pet{}, ErrInvalidInput
	}

	g, err := s.resolveGroup(ctx, in.GroupName)
	if err != nil {
		return Pet{}, err
	}
	ts, err := s.resolveTraits(ctx, in.TraitNames)
	if err != nil {
		return Pet{}, err
	}

	return s.repo.Create(ctx, Pet{
		Name:   name,
		Age:    in.Age,
		Weight: in.Weight,
		Sex:    sex,
		Group:  g,
		Traits: ts,
	})
}

func (s *Service) GetByID(ctx context.Context, id int64) (Pet, error) {
	if id <= 0 {
		return Pet{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Pet, int, error) {
	filter.Trait = strings.TrimSpace(filter.Trait)
	return s.repo.List(ctx, filter)
}

// UpdateInput: punteros para PATCH real, nil = no tocar.
// TraitNames con al menos un nombre reemplaza el set completo; vacía no toca los traits.
type UpdateInput struct {
	Name   *string
	Age    *int
	Weight *float64
	Sex    *Sex

	GroupName  *string
	TraitNames *[]string
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Pet, error) {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return Pet{}, err
	}
	return s.Apply(ctx, p, in)
}

// Apply aplica in sobre una mascota ya cargada (GetByID) y persiste el resultado.
func (s *Service) Apply(ctx context.Context, p Pet, in UpdateInput) (Pet, error) {
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" || len([]rune(name)) > MaxNameLen {
			return Pet{}, ErrInvalidInput
		}
		p.Name = name
	}
	if in.Age != nil {
		p.Age = *in.Age
	}
	if in.Weight != nil {
		p.Weight = *in.Weight
	}
	if in.Sex != nil {
		if !in.Sex.Valid() {
			return Pet{}, ErrInvalidInput
		}
		p.Sex = *in.Sex
	}
	if in.GroupName != nil {
		g, err := s.resolveGroup(ctx, *in.GroupName)
		if err != nil {
			return Pet{}, err
		}
		p.Group = g
	}
	if in.TraitNames != nil && len(*in.TraitNames) > 0 {
		ts, err := s.resolveTraits(ctx, *in.TraitNames)
		if err != nil {
			return Pet{}, err
		}
		p.Traits = ts
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) resolveGroup(ctx context.Context, name string) (groups.Group, error) {
	g, err := s.groups.Resolve(ctx, name)
	if err != nil {
		if errors.Is(err, groups.ErrInvalidInput) {
			return groups.Group{}, ErrInvalidInput
		}
		return groups.Group{}, fmt.Errorf("resolve group: %w", err)
	}
	return g, nil
}

func (s *Service) resolveTraits(ctx context.Context, names []string) ([]traits.Trait, error) {
	ts, err := s.traits.ResolveAll(ctx, names)
	if err != nil {
		if errors.Is(err, traits.ErrInvalidInput) {
			return nil, ErrInvalidInput
		}
		return nil, fmt.Errorf("resolve traits: %w", err)
	}
	// Mismo orden que devuelven los repos al leer: por id.
	slices.SortFunc(ts, func(a, b traits.Trait) int { return cmp.Compare(a.ID, b.ID) })
	return ts, nil
}
