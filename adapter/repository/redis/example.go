package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/RanchoCooper/go-hexagonal/domain/model"
	"github.com/RanchoCooper/go-hexagonal/domain/repo"
)

const (
	keyPrefix = "example:"
	// nameIndexKey maps example names to ids for FindByName.
	nameIndexKey = "example:index:name"
	// allIndexKey is the set of all stored example ids.
	allIndexKey = "example:index:all"
)

// ExampleRepository stores examples as JSON records under "example:<id>"
// keys, with a hash index for names and a set of all ids.
type ExampleRepository struct {
	client *Client
}

// NewExampleRepository creates the repository over an already-connected
// client.
func NewExampleRepository(client *Client) *ExampleRepository {
	return &ExampleRepository{client: client}
}

var _ repo.ExampleRepository = (*ExampleRepository)(nil)

func entityKey(id uuid.UUID) string {
	return keyPrefix + id.String()
}

func (r *ExampleRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Example, error) {
	data, err := r.client.Raw().Get(ctx, entityKey(id)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, repo.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var e model.Example
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, fmt.Errorf("redis: decode example %s: %w", id, err)
	}
	return &e, nil
}

func (r *ExampleRepository) FindByName(ctx context.Context, name string) (*model.Example, error) {
	idStr, err := r.client.Raw().HGet(ctx, nameIndexKey, name).Result()
	if errors.Is(err, goredis.Nil) {
		return nil, repo.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, fmt.Errorf("redis: corrupt name index entry %q: %w", idStr, err)
	}
	return r.FindByID(ctx, id)
}

func (r *ExampleRepository) FindAll(ctx context.Context) ([]*model.Example, error) {
	ids, err := r.client.Raw().SMembers(ctx, allIndexKey).Result()
	if err != nil {
		return nil, err
	}
	out := make([]*model.Example, 0, len(ids))
	for _, idStr := range ids {
		id, err := uuid.Parse(idStr)
		if err != nil {
			continue
		}
		e, err := r.FindByID(ctx, id)
		if errors.Is(err, repo.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *ExampleRepository) FindActive(ctx context.Context) ([]*model.Example, error) {
	all, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	active := all[:0]
	for _, e := range all {
		if e.IsActive {
			active = append(active, e)
		}
	}
	return active, nil
}

func (r *ExampleRepository) Save(ctx context.Context, example *model.Example) error {
	data, err := json.Marshal(example)
	if err != nil {
		return fmt.Errorf("redis: encode example %s: %w", example.ID, err)
	}

	// Drop a stale name-index entry when the example was renamed.
	prev, err := r.FindByID(ctx, example.ID)
	if err != nil && !errors.Is(err, repo.ErrNotFound) {
		return err
	}

	pipe := r.client.Raw().TxPipeline()
	if prev != nil && prev.Name != example.Name {
		pipe.HDel(ctx, nameIndexKey, prev.Name)
	}
	pipe.Set(ctx, entityKey(example.ID), data, 0)
	pipe.HSet(ctx, nameIndexKey, example.Name, example.ID.String())
	pipe.SAdd(ctx, allIndexKey, example.ID.String())
	_, err = pipe.Exec(ctx)
	return err
}

func (r *ExampleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	prev, err := r.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	pipe := r.client.Raw().TxPipeline()
	pipe.Del(ctx, entityKey(id))
	pipe.HDel(ctx, nameIndexKey, prev.Name)
	pipe.SRem(ctx, allIndexKey, id.String())
	_, err = pipe.Exec(ctx)
	return err
}
