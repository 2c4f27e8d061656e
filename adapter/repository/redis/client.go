// Package redis provides the Redis-backed ExampleRepository adapter.
package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Options configures the client; zero values fall back to local defaults.
type Options struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// Client wraps the go-redis client with explicit connect/close lifecycle so
// it can be registered as a Resource provider: the container constructs it
// lazily and releases it on shutdown.
type Client struct {
	opts Options
	rdb  *goredis.Client
}

// NewClient creates an unconnected client.
func NewClient(opts Options) *Client {
	if opts.Host == "" {
		opts.Host = "localhost"
	}
	if opts.Port == 0 {
		opts.Port = 6379
	}
	return &Client{opts: opts}
}

// Connect dials the server and verifies it with a ping.
func (c *Client) Connect(ctx context.Context) error {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:         fmt.Sprintf("%s:%d", c.opts.Host, c.opts.Port),
		Password:     c.opts.Password,
		DB:           c.opts.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return fmt.Errorf("redis: connect %s:%d: %w", c.opts.Host, c.opts.Port, err)
	}
	c.rdb = rdb
	return nil
}

// Raw returns the underlying go-redis client.
func (c *Client) Raw() *goredis.Client { return c.rdb }

// Close releases the connection pool. Safe to call on a never-connected
// client.
func (c *Client) Close() error {
	if c.rdb == nil {
		return nil
	}
	err := c.rdb.Close()
	c.rdb = nil
	return err
}
