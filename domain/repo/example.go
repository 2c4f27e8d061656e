// Package repo declares the persistence ports the domain depends on.
// Adapters (in-memory, Redis, ...) implement them at the edges.
package repo

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/RanchoCooper/go-hexagonal/domain/model"
)

// ErrNotFound is returned when the requested example does not exist.
var ErrNotFound = errors.New("example not found")

// ErrDuplicateName is returned when saving would violate name uniqueness.
var ErrDuplicateName = errors.New("example name already taken")

// ExampleRepository is the persistence port for Example entities.
type ExampleRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Example, error)
	FindByName(ctx context.Context, name string) (*model.Example, error)
	FindAll(ctx context.Context) ([]*model.Example, error)
	FindActive(ctx context.Context) ([]*model.Example, error)
	Save(ctx context.Context, example *model.Example) error
	Delete(ctx context.Context, id uuid.UUID) error
}
