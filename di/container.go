package di

import (
	"errors"
	"fmt"
	"sync"

	"github.com/RanchoCooper/go-hexagonal/config"
)

// Container is a named registry of providers plus one configuration store.
// It is the single long-lived object a composition root builds once per
// process (or per test) and discards at the end.
type Container struct {
	mu        sync.RWMutex
	providers map[string]*Provider
	order     []string // registration order, for reverse-order teardown
	config    *config.Store
}

// New creates an empty container with a fresh configuration store.
func New() *Container {
	return &Container{
		providers: make(map[string]*Provider),
		config:    config.New(),
	}
}

// Config returns the container's configuration store. The store lives
// outside the name registry, so it can never collide with a provider name.
func (c *Container) Config() *config.Store {
	return c.config
}

// ── Registration ─────────────────────────────────────────────────────────────

// Register binds name to provider. Re-registration under the same name
// replaces the prior binding; an instance already cached by the old binding
// is orphaned, not flushed — callers that hold it keep it. Registration is
// purely declarative: it never fails on missing dependencies, since
// resolution order is deferred until first Resolve.
func (c *Container) Register(name string, p *Provider) {
	if p == nil {
		panic(fmt.Sprintf("di: nil provider registered for [%s]", name))
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.providers[name]; !exists {
		c.order = append(c.order, name)
	}
	p.name = name
	c.providers[name] = p
}

// Provider returns the provider bound to name, if any.
func (c *Container) Provider(name string) (*Provider, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.providers[name]
	return p, ok
}

// Names returns all registered names in registration order.
func (c *Container) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// ── Resolution ───────────────────────────────────────────────────────────────

// Resolve looks up the provider bound to name and resolves it with the given
// call-time extras. A missing name fails with *NotFoundError; a failing
// factory propagates its error unchanged.
func (c *Container) Resolve(name string, extras ...any) (any, error) {
	p, ok := c.Provider(name)
	if !ok {
		return nil, &NotFoundError{Name: name}
	}
	return p.Resolve(extras...)
}

// ResolveAs resolves name and narrows the instance to T.
//
//	svc, err := di.ResolveAs[*service.ExampleService](c, "example_service")
func ResolveAs[T any](c *Container, name string, extras ...any) (T, error) {
	var zero T
	v, err := c.Resolve(name, extras...)
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, &typeMismatchError{name: name, want: zero, got: v}
	}
	return t, nil
}

// MustResolve resolves name and narrows to T, panicking on failure. Meant
// for composition-root accessors where a miss is a wiring bug.
func MustResolve[T any](c *Container, name string) T {
	t, err := ResolveAs[T](c, name)
	if err != nil {
		panic(err)
	}
	return t
}

type typeMismatchError struct {
	name string
	want any
	got  any
}

func (e *typeMismatchError) Error() string {
	if e.name != "" {
		return fmt.Sprintf("di: [%s] resolved to %T, want %T", e.name, e.got, e.want)
	}
	return fmt.Sprintf("di: deferred reference resolved to %T, want %T", e.got, e.want)
}

// ── Teardown ─────────────────────────────────────────────────────────────────

// Shutdown releases every live Resource instance in reverse registration
// order and returns the joined errors, if any. Safe to call more than once:
// each resource's teardown runs at most once.
func (c *Container) Shutdown() error {
	c.mu.RLock()
	names := make([]string, len(c.order))
	copy(names, c.order)
	c.mu.RUnlock()

	var errs []error
	for i := len(names) - 1; i >= 0; i-- {
		p, ok := c.Provider(names[i])
		if !ok {
			continue
		}
		if err := p.Release(); err != nil {
			errs = append(errs, fmt.Errorf("release [%s]: %w", names[i], err))
		}
	}
	return errors.Join(errs...)
}
