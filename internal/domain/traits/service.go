package traits

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ResolveAll resuelve (get-or-create) cada nombre en orden.
// Nombres repetidos (sin distinguir mayúsculas) se resuelven una sola vez.
func (s *Service) ResolveAll(ctx context.Context, names []string) ([]Trait, error) {
	out := make([]Trait, 0, len(names))
	seen := make(map[string]struct{}, len(names))

	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" || len([]rune(name)) > MaxNameLen {
			return nil, ErrInvalidInput
		}

		key := strings.ToLower(name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		t, err := s.repo.GetOrCreate(ctx, name)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}
