// Package memory provides the in-memory ExampleRepository adapter, used by
// tests and by deployments that need no external store.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/RanchoCooper/go-hexagonal/domain/model"
	"github.com/RanchoCooper/go-hexagonal/domain/repo"
)

// ExampleRepository keeps examples in a mutex-guarded map. Entities are
// copied on the way in and out so callers cannot mutate stored state.
type ExampleRepository struct {
	mu       sync.RWMutex
	examples map[uuid.UUID]model.Example
}

// NewExampleRepository creates an empty repository.
func NewExampleRepository() *ExampleRepository {
	return &ExampleRepository{examples: make(map[uuid.UUID]model.Example)}
}

var _ repo.ExampleRepository = (*ExampleRepository)(nil)

func (r *ExampleRepository) FindByID(_ context.Context, id uuid.UUID) (*model.Example, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.examples[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	out := e
	return &out, nil
}

func (r *ExampleRepository) FindByName(_ context.Context, name string) (*model.Example, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.examples {
		if e.Name == name {
			out := e
			return &out, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (r *ExampleRepository) FindAll(_ context.Context) ([]*model.Example, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*model.Example, 0, len(r.examples))
	for _, e := range r.examples {
		copied := e
		out = append(out, &copied)
	}
	return out, nil
}

func (r *ExampleRepository) FindActive(_ context.Context) ([]*model.Example, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*model.Example
	for _, e := range r.examples {
		if e.IsActive {
			copied := e
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *ExampleRepository) Save(_ context.Context, example *model.Example) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.examples[example.ID] = *example
	return nil
}

func (r *ExampleRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.examples, id)
	return nil
}

// Len reports how many examples are stored.
func (r *ExampleRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.examples)
}
