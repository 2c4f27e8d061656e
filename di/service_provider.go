package di

import (
	"fmt"
	"reflect"
)

// ── ServiceProvider interface ────────────────────────────────────────────────

// ServiceProvider groups related registrations. Register must only declare
// bindings — resolving other names belongs in Boot, which runs after every
// provider has registered (two-phase protocol: declare first, resolve on
// demand).
type ServiceProvider interface {
	Register(c *Container) error
}

// BootableProvider is an optional extension for providers that need work
// after all registrations are in place — wiring event handlers, warming
// caches, opening eager connections.
type BootableProvider interface {
	ServiceProvider
	Boot(c *Container) error
}

// ── Registry ─────────────────────────────────────────────────────────────────

// Registry drives the two-phase startup of service providers against one
// container: Register on each provider in order, then Boot on the bootable
// ones. A provider type is registered at most once.
type Registry struct {
	container *Container
	entries   []*registryEntry
	booted    bool
}

type registryEntry struct {
	provider ServiceProvider
	booted   bool
}

// NewRegistry creates a registry bound to c.
func NewRegistry(c *Container) *Registry {
	return &Registry{container: c}
}

// Register calls the provider's Register phase. Duplicate provider types are
// skipped. If the registry has already booted, a bootable provider boots
// immediately after registering.
func (r *Registry) Register(p ServiceProvider) error {
	if p == nil {
		return fmt.Errorf("di: nil service provider")
	}
	t := reflect.TypeOf(p)
	for _, e := range r.entries {
		if reflect.TypeOf(e.provider) == t {
			return nil
		}
	}

	if err := p.Register(r.container); err != nil {
		return fmt.Errorf("di: provider %T register: %w", p, err)
	}
	entry := &registryEntry{provider: p}
	r.entries = append(r.entries, entry)

	if r.booted {
		return r.boot(entry)
	}
	return nil
}

// Boot runs the Boot phase on every bootable provider, in registration
// order. Idempotent: already-booted providers are skipped.
func (r *Registry) Boot() error {
	r.booted = true
	for _, e := range r.entries {
		if err := r.boot(e); err != nil {
			return err
		}
	}
	return nil
}

func (r *Registry) boot(e *registryEntry) error {
	if e.booted {
		return nil
	}
	b, ok := e.provider.(BootableProvider)
	if !ok {
		e.booted = true
		return nil
	}
	if err := b.Boot(r.container); err != nil {
		return fmt.Errorf("di: provider %T boot: %w", e.provider, err)
	}
	e.booted = true
	return nil
}

// Booted reports whether the Boot phase has run.
func (r *Registry) Booted() bool { return r.booted }

// Providers returns registered providers in registration order.
func (r *Registry) Providers() []ServiceProvider {
	out := make([]ServiceProvider, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.provider
	}
	return out
}
