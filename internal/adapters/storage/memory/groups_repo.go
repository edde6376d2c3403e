package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"pets-api/internal/domain/groups"
)

type groupRepo struct {
	mu     sync.Mutex
	byName map[string]groups.Group // key: scientific_name en minúsculas
	nextID int64
	now    func() time.Time
}

func NewGroupRepo() groups.Repository {
	return &groupRepo{
		byName: make(map[string]groups.Group),
		now:    time.Now,
	}
}

func (r *groupRepo) GetOrCreate(ctx context.Context, scientificName string) (groups.Group, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(scientificName)
	if g, ok := r.byName[key]; ok {
		return g, nil
	}

	r.nextID++
	g := groups.Group{
		ID:             r.nextID,
		ScientificName: scientificName,
		CreatedAt:      r.now().UTC(),
	}
	r.byName[key] = g
	return g, nil
}
