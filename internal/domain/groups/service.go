package groups

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

// Resolve devuelve el grupo existente que matchea el nombre o lo crea.
// El grupo conserva el casing con el que se creó la primera vez.
func (s *Service) Resolve(ctx context.Context, scientificName string) (Group, error) {
	scientificName = strings.TrimSpace(scientificName)
	if scientificName == "" || len([]rune(scientificName)) > MaxScientificNameLen {
		return Group{}, ErrInvalidInput
	}
	return s.repo.GetOrCreate(ctx, scientificName)
}
