package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"pets-api/internal/domain/traits"
)

type traitRepo struct {
	mu     sync.Mutex
	byName map[string]traits.Trait // key: name en minúsculas
	nextID int64
	now    func() time.Time
}

func NewTraitRepo() traits.Repository {
	return &traitRepo{
		byName: make(map[string]traits.Trait),
		now:    time.Now,
	}
}

func (r *traitRepo) GetOrCreate(ctx context.Context, name string) (traits.Trait, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(name)
	if t, ok := r.byName[key]; ok {
		return t, nil
	}

	r.nextID++
	t := traits.Trait{
		ID:        r.nextID,
		Name:      name,
		CreatedAt: r.now().UTC(),
	}
	r.byName[key] = t
	return t, nil
}
