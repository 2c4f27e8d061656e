// Package model holds the domain entities.
package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrEmptyName rejects examples created or renamed with a blank name.
var ErrEmptyName = errors.New("example name must not be empty")

// Example is the sample aggregate root of the hexagonal layers.
type Example struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewExample creates an active example with a fresh identity.
func NewExample(name, description string) (*Example, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	now := time.Now().UTC()
	return &Example{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Update changes name and/or description. Empty strings mean "leave as is";
// an all-whitespace name is rejected.
func (e *Example) Update(name, description string) error {
	if name != "" {
		if strings.TrimSpace(name) == "" {
			return ErrEmptyName
		}
		e.Name = name
	}
	if description != "" {
		e.Description = description
	}
	e.UpdatedAt = time.Now().UTC()
	return nil
}

// Activate marks the example active. No-op when already active.
func (e *Example) Activate() {
	if e.IsActive {
		return
	}
	e.IsActive = true
	e.UpdatedAt = time.Now().UTC()
}

// Deactivate marks the example inactive. No-op when already inactive.
func (e *Example) Deactivate() {
	if !e.IsActive {
		return
	}
	e.IsActive = false
	e.UpdatedAt = time.Now().UTC()
}
