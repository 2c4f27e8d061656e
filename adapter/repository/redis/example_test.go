package redis_test

import (
	"context"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RanchoCooper/go-hexagonal/adapter/repository/redis"
	"github.com/RanchoCooper/go-hexagonal/domain/model"
	"github.com/RanchoCooper/go-hexagonal/domain/repo"
)

// newRepository connects to the Redis named by TEST_REDIS_ADDR
// (host:port) and skips the test when the variable is unset.
func newRepository(t *testing.T) *redis.ExampleRepository {
	t.Helper()
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}
	host, portStr, ok := strings.Cut(addr, ":")
	require.True(t, ok, "TEST_REDIS_ADDR must be host:port")
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)

	client := redis.NewClient(redis.Options{Host: host, Port: port, DB: 15})
	require.NoError(t, client.Connect(context.Background()))
	t.Cleanup(func() {
		_ = client.Raw().FlushDB(context.Background()).Err()
		_ = client.Close()
	})
	require.NoError(t, client.Raw().FlushDB(context.Background()).Err())

	return redis.NewExampleRepository(client)
}

func TestExampleRepository_RoundTrip(t *testing.T) {
	r := newRepository(t)
	ctx := context.Background()

	e, err := model.NewExample("widget", "desc")
	require.NoError(t, err)
	require.NoError(t, r.Save(ctx, e))

	byID, err := r.FindByID(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, e.Name, byID.Name)

	byName, err := r.FindByName(ctx, "widget")
	require.NoError(t, err)
	assert.Equal(t, e.ID, byName.ID)

	all, err := r.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestExampleRepository_RenameDropsStaleIndex(t *testing.T) {
	r := newRepository(t)
	ctx := context.Background()

	e, _ := model.NewExample("widget", "")
	require.NoError(t, r.Save(ctx, e))

	e.Name = "gadget"
	require.NoError(t, r.Save(ctx, e))

	_, err := r.FindByName(ctx, "widget")
	assert.ErrorIs(t, err, repo.ErrNotFound)

	byName, err := r.FindByName(ctx, "gadget")
	require.NoError(t, err)
	assert.Equal(t, e.ID, byName.ID)
}

func TestExampleRepository_Delete(t *testing.T) {
	r := newRepository(t)
	ctx := context.Background()

	e, _ := model.NewExample("widget", "")
	require.NoError(t, r.Save(ctx, e))
	require.NoError(t, r.Delete(ctx, e.ID))

	_, err := r.FindByID(ctx, e.ID)
	assert.ErrorIs(t, err, repo.ErrNotFound)

	all, err := r.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	// deleting an absent id is a no-op
	require.NoError(t, r.Delete(ctx, e.ID))
}
