package memory

import (
	"context"
	"sync"

	"go.llib.dev/shopquery/pkg/datastruct"
)

func NewRepository[ENT any, ID comparable](idOf func(ENT) ID) *Repository[ENT, ID] {
	return &Repository[ENT, ID]{IDOf: idOf}
}

// Repository is a generic in-memory entity store.
// Entities are listed back in the order they were first saved.
type Repository[ENT any, ID comparable] struct {
	// IDOf is the ID accessor that tells the ID of an ENT.
	IDOf func(ENT) ID

	m    sync.RWMutex
	ents datastruct.OrderedMap[ID, ENT]
}

// Save stores the entities, replacing any already stored entity with the same ID.
func (r *Repository[ENT, ID]) Save(ctx context.Context, vs ...ENT) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.m.Lock()
	defer r.m.Unlock()
	for _, v := range vs {
		r.ents.Set(r.IDOf(v), v)
	}
	return nil
}

// ListAll returns a snapshot of every stored entity.
func (r *Repository[ENT, ID]) ListAll(ctx context.Context) ([]ENT, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.m.RLock()
	defer r.m.RUnlock()
	return r.ents.Values(), nil
}

func (r *Repository[ENT, ID]) Len() int {
	r.m.RLock()
	defer r.m.RUnlock()
	return r.ents.Len()
}
