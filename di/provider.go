package di

import (
	"sync"
)

// ── Provider kinds ───────────────────────────────────────────────────────────

// Kind selects a provider's lifecycle policy.
type Kind int

const (
	// KindSingleton constructs once on first resolution and caches the result.
	KindSingleton Kind = iota
	// KindFactory constructs a fresh instance on every resolution.
	KindFactory
	// KindResource caches like Singleton and supports an explicit Release.
	KindResource
)

func (k Kind) String() string {
	switch k {
	case KindSingleton:
		return "singleton"
	case KindFactory:
		return "factory"
	case KindResource:
		return "resource"
	}
	return "unknown"
}

// ── Factory & teardown callables ─────────────────────────────────────────────

// Factory builds an instance from the merged bound and call-time arguments.
// A failing factory leaves the provider's cache empty, so a later resolution
// retries construction.
type Factory func(args Arguments) (any, error)

// ReleaseFunc tears down a Resource instance (closing a connection, ...).
type ReleaseFunc func(instance any) error

// ── Bound arguments ──────────────────────────────────────────────────────────

// NamedArg binds a value to an argument name. Follows the database/sql.Named
// convention: pass it anywhere a provider accepts variadic arguments.
type NamedArg struct {
	Name  string
	Value any
}

// Named creates a NamedArg.
//
//	di.NewSingleton(newDatabase, di.Named("url", di.DeferConfig(c, "database.url")))
func Named(name string, value any) NamedArg {
	return NamedArg{Name: name, Value: value}
}

// ── Provider ─────────────────────────────────────────────────────────────────

// Provider wraps a factory plus bound arguments under a lifecycle policy.
// The factory and bound arguments are fixed at construction time; only
// late-bound indirections (nested providers, deferred references) vary per
// resolution.
type Provider struct {
	kind    Kind
	factory Factory
	release ReleaseFunc
	args    []any
	kwargs  map[string]any

	// registered name, stamped by Container.Register; diagnostics only
	name string

	mu       sync.Mutex
	built    bool
	instance any
	released bool
}

// NewSingleton creates a provider that constructs once and caches.
// boundArgs are positional values; use di.Named for named arguments.
// Panics if factory is nil — a malformed registration is a programmer error.
func NewSingleton(factory Factory, boundArgs ...any) *Provider {
	return newProvider(KindSingleton, factory, nil, boundArgs)
}

// NewFactory creates a provider that constructs a fresh instance per call.
func NewFactory(factory Factory, boundArgs ...any) *Provider {
	return newProvider(KindFactory, factory, nil, boundArgs)
}

// NewResource creates a cached provider with an explicit teardown routine.
// release may be nil when the resource needs no teardown beyond caching.
func NewResource(factory Factory, release ReleaseFunc, boundArgs ...any) *Provider {
	return newProvider(KindResource, factory, release, boundArgs)
}

func newProvider(kind Kind, factory Factory, release ReleaseFunc, boundArgs []any) *Provider {
	if factory == nil {
		panic("di: provider factory must not be nil")
	}
	p := &Provider{kind: kind, factory: factory, release: release}
	for _, a := range boundArgs {
		if na, ok := a.(NamedArg); ok {
			if p.kwargs == nil {
				p.kwargs = make(map[string]any)
			}
			p.kwargs[na.Name] = na.Value
			continue
		}
		p.args = append(p.args, a)
	}
	return p
}

// Kind returns the provider's lifecycle policy.
func (p *Provider) Kind() Kind { return p.kind }

// ── Resolution ───────────────────────────────────────────────────────────────

// Resolve merges bound arguments with call-time extras and returns an
// instance according to the provider's kind. Extra positional values append
// after bound positionals; extra di.Named values override bound named
// arguments on collision. Singleton and Resource providers ignore extras
// after the first successful construction.
func (p *Provider) Resolve(extras ...any) (any, error) {
	return p.resolve(newResolvePath(), extras)
}

func (p *Provider) resolve(path *resolvePath, extras []any) (any, error) {
	if err := path.enter(p); err != nil {
		return nil, err
	}
	defer path.leave(p)

	if p.kind == KindFactory {
		args, err := p.materialize(path, extras)
		if err != nil {
			return nil, err
		}
		return p.factory(args)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.built {
		return p.instance, nil
	}
	args, err := p.materialize(path, extras)
	if err != nil {
		return nil, err
	}
	inst, err := p.factory(args)
	if err != nil {
		// no negative caching: the next resolution retries
		return nil, err
	}
	p.built = true
	p.instance = inst
	return inst, nil
}

// materialize turns bound + extra argument values into concrete Arguments.
// Plain values pass through, nested providers are resolved, deferred
// references pass through un-invoked.
func (p *Provider) materialize(path *resolvePath, extras []any) (Arguments, error) {
	pos := make([]any, 0, len(p.args)+len(extras))
	for _, a := range p.args {
		v, err := materializeValue(path, a)
		if err != nil {
			return Arguments{}, err
		}
		pos = append(pos, v)
	}

	named := make(map[string]any, len(p.kwargs))
	for k, a := range p.kwargs {
		v, err := materializeValue(path, a)
		if err != nil {
			return Arguments{}, err
		}
		named[k] = v
	}

	for _, e := range extras {
		if na, ok := e.(NamedArg); ok {
			v, err := materializeValue(path, na.Value)
			if err != nil {
				return Arguments{}, err
			}
			named[na.Name] = v
			continue
		}
		v, err := materializeValue(path, e)
		if err != nil {
			return Arguments{}, err
		}
		pos = append(pos, v)
	}

	return Arguments{positional: pos, named: named}, nil
}

func materializeValue(path *resolvePath, v any) (any, error) {
	switch x := v.(type) {
	case *Provider:
		return x.resolve(path, nil)
	case NameRef:
		return x.resolve(path)
	default:
		return v, nil
	}
}

// ── Resource teardown ────────────────────────────────────────────────────────

// Release runs the teardown routine on the cached Resource instance.
// It is safe to call multiple times; the teardown runs at most once, and
// only if the resource was actually constructed. Non-Resource providers
// and never-resolved resources are a no-op. Resolving after Release is
// undefined.
func (p *Provider) Release() error {
	if p.kind != KindResource {
		return nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.built || p.released {
		return nil
	}
	p.released = true
	if p.release == nil {
		return nil
	}
	return p.release(p.instance)
}

// Released reports whether the teardown routine has run.
func (p *Provider) Released() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.released
}

func (p *Provider) displayName() string {
	if p.name != "" {
		return p.name
	}
	return "(inline " + p.kind.String() + ")"
}

// ── Resolution path (cycle detection) ────────────────────────────────────────

// resolvePath tracks the chain of providers being constructed within one
// resolution call, so mutual references through nested providers fail fast
// instead of recursing. Each top-level Resolve starts a fresh path, which
// keeps concurrent resolutions of the same provider from reporting a
// spurious cycle.
type resolvePath struct {
	names []string
	seen  map[*Provider]struct{}
}

func newResolvePath() *resolvePath {
	return &resolvePath{seen: make(map[*Provider]struct{})}
}

func (rp *resolvePath) enter(p *Provider) error {
	if _, ok := rp.seen[p]; ok {
		return &CircularDependencyError{Path: append(rp.names, p.displayName())}
	}
	rp.seen[p] = struct{}{}
	rp.names = append(rp.names, p.displayName())
	return nil
}

func (rp *resolvePath) leave(p *Provider) {
	delete(rp.seen, p)
	rp.names = rp.names[:len(rp.names)-1]
}
