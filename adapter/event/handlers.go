package event

import (
	"go.uber.org/zap"

	"github.com/RanchoCooper/go-hexagonal/domain/event"
)

// LoggingHandler records every event it receives. It is the default
// subscriber wired for the Example events at boot.
type LoggingHandler struct {
	log *zap.Logger
}

// NewLoggingHandler creates a handler that logs with logger.
func NewLoggingHandler(logger *zap.Logger) *LoggingHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LoggingHandler{log: logger}
}

func (h *LoggingHandler) Handle(e event.Event) {
	switch ev := e.(type) {
	case *event.ExampleCreated:
		h.log.Info("example created",
			zap.String("example_id", ev.ExampleID.String()),
			zap.String("name", ev.Name),
		)
	case *event.ExampleUpdated:
		h.log.Info("example updated",
			zap.String("example_id", ev.ExampleID.String()),
			zap.String("name", ev.Name),
		)
	case *event.ExampleDeleted:
		h.log.Info("example deleted",
			zap.String("example_id", ev.ExampleID.String()),
		)
	default:
		h.log.Info("event",
			zap.String("event", e.EventName()),
			zap.String("event_id", e.EventID().String()),
		)
	}
}

// WireHandlers subscribes h to all Example event names on bus and returns
// the bus, so it can run as the factory of a Resource provider at the
// composition root.
func WireHandlers(bus event.Bus, h event.Handler) event.Bus {
	bus.Subscribe(event.ExampleCreatedName, h)
	bus.Subscribe(event.ExampleUpdatedName, h)
	bus.Subscribe(event.ExampleDeletedName, h)
	return bus
}
