// Package service holds the domain services: business rules that span the
// Example aggregate and its repository port.
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/RanchoCooper/go-hexagonal/domain/model"
	"github.com/RanchoCooper/go-hexagonal/domain/repo"
)

// ExampleService enforces the Example business rules over the repository
// port. It knows nothing about transports, events or storage engines.
type ExampleService struct {
	repo repo.ExampleRepository
}

// NewExampleService creates the domain service.
func NewExampleService(r repo.ExampleRepository) *ExampleService {
	return &ExampleService{repo: r}
}

// Create builds and stores a new example. Names are unique across the
// repository.
func (s *ExampleService) Create(ctx context.Context, name, description string) (*model.Example, error) {
	existing, err := s.repo.FindByName(ctx, name)
	if err != nil && !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, repo.ErrDuplicateName
	}

	example, err := model.NewExample(name, description)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, example); err != nil {
		return nil, err
	}
	return example, nil
}

// Get returns the example with the given id.
func (s *ExampleService) Get(ctx context.Context, id uuid.UUID) (*model.Example, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns every stored example.
func (s *ExampleService) List(ctx context.Context) ([]*model.Example, error) {
	return s.repo.FindAll(ctx)
}

// ListActive returns the active examples only.
func (s *ExampleService) ListActive(ctx context.Context) ([]*model.Example, error) {
	return s.repo.FindActive(ctx)
}

// Update changes an example's details and stores it. Renaming onto a name
// held by a different example is rejected.
func (s *ExampleService) Update(ctx context.Context, id uuid.UUID, name, description string) (*model.Example, error) {
	example, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if name != "" && name != example.Name {
		holder, err := s.repo.FindByName(ctx, name)
		if err != nil && !errors.Is(err, repo.ErrNotFound) {
			return nil, err
		}
		if holder != nil && holder.ID != id {
			return nil, repo.ErrDuplicateName
		}
	}

	if err := example.Update(name, description); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, example); err != nil {
		return nil, err
	}
	return example, nil
}

// Delete removes the example with the given id.
func (s *ExampleService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
