// Package service orchestrates domain operations for the outer adapters:
// it drives the domain service and publishes the resulting domain events.
package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/RanchoCooper/go-hexagonal/domain/event"
	"github.com/RanchoCooper/go-hexagonal/domain/model"
	domainsvc "github.com/RanchoCooper/go-hexagonal/domain/service"
)

// ExampleAppService is the application-layer facade over the Example domain
// service. Every state change publishes a domain event on the bus.
type ExampleAppService struct {
	domain *domainsvc.ExampleService
	bus    event.Bus
}

// NewExampleAppService creates the application service.
func NewExampleAppService(domain *domainsvc.ExampleService, bus event.Bus) *ExampleAppService {
	return &ExampleAppService{domain: domain, bus: bus}
}

// Create stores a new example and publishes ExampleCreated.
func (s *ExampleAppService) Create(ctx context.Context, name, description string) (*model.Example, error) {
	example, err := s.domain.Create(ctx, name, description)
	if err != nil {
		return nil, err
	}
	s.bus.Publish(event.NewExampleCreated(example.ID, example.Name))
	return example, nil
}

// Get returns one example by id.
func (s *ExampleAppService) Get(ctx context.Context, id uuid.UUID) (*model.Example, error) {
	return s.domain.Get(ctx, id)
}

// List returns all examples.
func (s *ExampleAppService) List(ctx context.Context) ([]*model.Example, error) {
	return s.domain.List(ctx)
}

// ListActive returns the active examples.
func (s *ExampleAppService) ListActive(ctx context.Context) ([]*model.Example, error) {
	return s.domain.ListActive(ctx)
}

// Update changes an example and publishes ExampleUpdated.
func (s *ExampleAppService) Update(ctx context.Context, id uuid.UUID, name, description string) (*model.Example, error) {
	example, err := s.domain.Update(ctx, id, name, description)
	if err != nil {
		return nil, err
	}
	s.bus.Publish(event.NewExampleUpdated(example.ID, example.Name))
	return example, nil
}

// Delete removes an example and publishes ExampleDeleted.
func (s *ExampleAppService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.domain.Delete(ctx, id); err != nil {
		return err
	}
	s.bus.Publish(event.NewExampleDeleted(id))
	return nil
}
