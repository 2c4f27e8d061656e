// Package event provides the in-memory event bus adapter.
package event

import (
	"reflect"
	"sync"

	"go.uber.org/zap"

	"github.com/RanchoCooper/go-hexagonal/domain/event"
)

// MemoryBus dispatches events synchronously to subscribed handlers.
// A panicking handler is logged and skipped; publication always reaches the
// remaining handlers.
type MemoryBus struct {
	mu       sync.RWMutex
	handlers map[string][]event.Handler
	log      *zap.Logger
}

// NewMemoryBus creates an empty bus. logger may be nil.
func NewMemoryBus(logger *zap.Logger) *MemoryBus {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MemoryBus{
		handlers: make(map[string][]event.Handler),
		log:      logger,
	}
}

var _ event.Bus = (*MemoryBus)(nil)

// Publish delivers e to every handler subscribed to its name.
func (b *MemoryBus) Publish(e event.Event) {
	b.mu.RLock()
	handlers := make([]event.Handler, len(b.handlers[e.EventName()]))
	copy(handlers, b.handlers[e.EventName()])
	b.mu.RUnlock()

	if len(handlers) == 0 {
		b.log.Debug("no handlers for event", zap.String("event", e.EventName()))
		return
	}

	for _, h := range handlers {
		b.dispatch(h, e)
	}
}

func (b *MemoryBus) dispatch(h event.Handler, e event.Event) {
	defer func() {
		if r := recover(); r != nil {
			b.log.Error("event handler panicked",
				zap.String("event", e.EventName()),
				zap.Any("panic", r),
			)
		}
	}()
	h.Handle(e)
}

// Subscribe registers h for events named eventName.
func (b *MemoryBus) Subscribe(eventName string, h event.Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventName] = append(b.handlers[eventName], h)
}

// Unsubscribe removes h from eventName's handler list.
func (b *MemoryBus) Unsubscribe(eventName string, h event.Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	kept := b.handlers[eventName][:0]
	for _, existing := range b.handlers[eventName] {
		if !sameHandler(existing, h) {
			kept = append(kept, existing)
		}
	}
	b.handlers[eventName] = kept
}

// sameHandler matches handlers by identity. HandlerFunc values are not
// comparable with ==, so those fall back to the function pointer.
func sameHandler(a, b event.Handler) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if ta.Comparable() {
		return a == b
	}
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}
