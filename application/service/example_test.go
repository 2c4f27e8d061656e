package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RanchoCooper/go-hexagonal/adapter/repository/memory"
	appservice "github.com/RanchoCooper/go-hexagonal/application/service"
	"github.com/RanchoCooper/go-hexagonal/domain/event"
	"github.com/RanchoCooper/go-hexagonal/domain/repo"
	domainsvc "github.com/RanchoCooper/go-hexagonal/domain/service"
)

// spyBus records published events and ignores subscriptions.
type spyBus struct {
	published []event.Event
}

func (b *spyBus) Publish(e event.Event)             { b.published = append(b.published, e) }
func (b *spyBus) Subscribe(string, event.Handler)   {}
func (b *spyBus) Unsubscribe(string, event.Handler) {}

func (b *spyBus) names() []string {
	out := make([]string, len(b.published))
	for i, e := range b.published {
		out[i] = e.EventName()
	}
	return out
}

func newAppService() (*appservice.ExampleAppService, *spyBus) {
	bus := &spyBus{}
	domain := domainsvc.NewExampleService(memory.NewExampleRepository())
	return appservice.NewExampleAppService(domain, bus), bus
}

func TestExampleAppService_CreatePublishesEvent(t *testing.T) {
	svc, bus := newAppService()

	e, err := svc.Create(context.Background(), "widget", "a widget")
	require.NoError(t, err)

	require.Equal(t, []string{event.ExampleCreatedName}, bus.names())
	created := bus.published[0].(*event.ExampleCreated)
	assert.Equal(t, e.ID, created.ExampleID)
	assert.Equal(t, "widget", created.Name)
}

func TestExampleAppService_FailedCreatePublishesNothing(t *testing.T) {
	svc, bus := newAppService()
	ctx := context.Background()

	_, err := svc.Create(ctx, "widget", "")
	require.NoError(t, err)

	_, err = svc.Create(ctx, "widget", "duplicate")
	assert.ErrorIs(t, err, repo.ErrDuplicateName)
	assert.Len(t, bus.published, 1, "no event for the failed create")
}

func TestExampleAppService_UpdatePublishesEvent(t *testing.T) {
	svc, bus := newAppService()
	ctx := context.Background()

	e, _ := svc.Create(ctx, "widget", "")
	_, err := svc.Update(ctx, e.ID, "gadget", "")
	require.NoError(t, err)

	assert.Equal(t, []string{event.ExampleCreatedName, event.ExampleUpdatedName}, bus.names())
	updated := bus.published[1].(*event.ExampleUpdated)
	assert.Equal(t, "gadget", updated.Name)
}

func TestExampleAppService_DeletePublishesEvent(t *testing.T) {
	svc, bus := newAppService()
	ctx := context.Background()

	e, _ := svc.Create(ctx, "widget", "")
	require.NoError(t, svc.Delete(ctx, e.ID))

	deleted := bus.published[len(bus.published)-1].(*event.ExampleDeleted)
	assert.Equal(t, e.ID, deleted.ExampleID)
}

func TestExampleAppService_ReadsDoNotPublish(t *testing.T) {
	svc, bus := newAppService()
	ctx := context.Background()

	e, _ := svc.Create(ctx, "widget", "")
	bus.published = nil

	_, err := svc.Get(ctx, e.ID)
	require.NoError(t, err)
	_, err = svc.List(ctx)
	require.NoError(t, err)
	_, err = svc.ListActive(ctx)
	require.NoError(t, err)

	assert.Empty(t, bus.published)
}

func TestExampleAppService_GetMissing(t *testing.T) {
	svc, _ := newAppService()

	_, err := svc.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repo.ErrNotFound)
}
