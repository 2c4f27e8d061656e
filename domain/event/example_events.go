package event

import "github.com/google/uuid"

// Event names for the Example aggregate.
const (
	ExampleCreatedName = "example.created"
	ExampleUpdatedName = "example.updated"
	ExampleDeletedName = "example.deleted"
)

// ExampleCreated is published after a new example is stored.
type ExampleCreated struct {
	base
	ExampleID uuid.UUID
	Name      string
}

// NewExampleCreated builds an ExampleCreated event.
func NewExampleCreated(exampleID uuid.UUID, name string) *ExampleCreated {
	return &ExampleCreated{base: newBase(ExampleCreatedName), ExampleID: exampleID, Name: name}
}

// ExampleUpdated is published after an example's details change.
type ExampleUpdated struct {
	base
	ExampleID uuid.UUID
	Name      string
}

// NewExampleUpdated builds an ExampleUpdated event.
func NewExampleUpdated(exampleID uuid.UUID, name string) *ExampleUpdated {
	return &ExampleUpdated{base: newBase(ExampleUpdatedName), ExampleID: exampleID, Name: name}
}

// ExampleDeleted is published after an example is removed.
type ExampleDeleted struct {
	base
	ExampleID uuid.UUID
}

// NewExampleDeleted builds an ExampleDeleted event.
func NewExampleDeleted(exampleID uuid.UUID) *ExampleDeleted {
	return &ExampleDeleted{base: newBase(ExampleDeletedName), ExampleID: exampleID}
}
