package event_test

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapter "github.com/RanchoCooper/go-hexagonal/adapter/event"
	"github.com/RanchoCooper/go-hexagonal/domain/event"
)

type recordingHandler struct {
	mu   sync.Mutex
	seen []event.Event
}

func (h *recordingHandler) Handle(e event.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.seen = append(h.seen, e)
}

func (h *recordingHandler) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.seen)
}

func TestMemoryBus_PublishReachesSubscribers(t *testing.T) {
	bus := adapter.NewMemoryBus(nil)
	h := &recordingHandler{}
	bus.Subscribe(event.ExampleCreatedName, h)

	created := event.NewExampleCreated(uuid.New(), "widget")
	bus.Publish(created)

	require.Equal(t, 1, h.count())
	assert.Equal(t, created, h.seen[0])
}

func TestMemoryBus_NameFiltering(t *testing.T) {
	bus := adapter.NewMemoryBus(nil)
	h := &recordingHandler{}
	bus.Subscribe(event.ExampleDeletedName, h)

	bus.Publish(event.NewExampleCreated(uuid.New(), "widget"))
	assert.Equal(t, 0, h.count(), "handler must only see its subscribed name")

	bus.Publish(event.NewExampleDeleted(uuid.New()))
	assert.Equal(t, 1, h.count())
}

func TestMemoryBus_PanickingHandlerDoesNotBreakOthers(t *testing.T) {
	bus := adapter.NewMemoryBus(nil)
	angry := event.HandlerFunc(func(event.Event) { panic("boom") })
	calm := &recordingHandler{}
	bus.Subscribe(event.ExampleCreatedName, angry)
	bus.Subscribe(event.ExampleCreatedName, calm)

	require.NotPanics(t, func() {
		bus.Publish(event.NewExampleCreated(uuid.New(), "widget"))
	})
	assert.Equal(t, 1, calm.count())
}

func TestMemoryBus_Unsubscribe(t *testing.T) {
	bus := adapter.NewMemoryBus(nil)
	h := &recordingHandler{}
	bus.Subscribe(event.ExampleCreatedName, h)
	bus.Unsubscribe(event.ExampleCreatedName, h)

	bus.Publish(event.NewExampleCreated(uuid.New(), "widget"))
	assert.Equal(t, 0, h.count())
}

func TestMemoryBus_UnsubscribeHandlerFunc(t *testing.T) {
	bus := adapter.NewMemoryBus(nil)
	var calls int
	f := event.HandlerFunc(func(event.Event) { calls++ })
	bus.Subscribe(event.ExampleCreatedName, f)
	bus.Unsubscribe(event.ExampleCreatedName, f)

	bus.Publish(event.NewExampleCreated(uuid.New(), "widget"))
	assert.Equal(t, 0, calls)
}

func TestMemoryBus_ConcurrentPublish(t *testing.T) {
	bus := adapter.NewMemoryBus(nil)
	h := &recordingHandler{}
	bus.Subscribe(event.ExampleCreatedName, h)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				bus.Publish(event.NewExampleCreated(uuid.New(), "widget"))
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 80, h.count())
}
