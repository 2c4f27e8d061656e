// Package event defines domain events and the bus port that carries them.
package event

import (
	"time"

	"github.com/google/uuid"
)

// Event is something that happened in the domain.
type Event interface {
	EventID() uuid.UUID
	EventName() string
	OccurredAt() time.Time
}

// Handler reacts to a published event.
type Handler interface {
	Handle(e Event)
}

// HandlerFunc adapts a plain function to Handler.
type HandlerFunc func(e Event)

func (f HandlerFunc) Handle(e Event) { f(e) }

// Bus is the publish/subscribe port. Implementations must not let a failing
// handler break publication to the remaining handlers.
type Bus interface {
	Publish(e Event)
	Subscribe(eventName string, h Handler)
	Unsubscribe(eventName string, h Handler)
}

// base carries the identity and timestamp every event shares.
type base struct {
	id   uuid.UUID
	name string
	at   time.Time
}

func newBase(name string) base {
	return base{id: uuid.New(), name: name, at: time.Now().UTC()}
}

func (b base) EventID() uuid.UUID    { return b.id }
func (b base) EventName() string     { return b.name }
func (b base) OccurredAt() time.Time { return b.at }
