// Package di provides a minimal inversion-of-control container: a named
// registry of providers plus a nested configuration store.
//
// # Overview
//
// A Provider describes how a component is built and under what lifecycle
// policy. Three kinds are supported:
//
//   - Singleton — constructed once, lazily, on first resolution; every
//     later resolution returns the cached instance.
//   - Factory   — constructed fresh on every resolution; nothing cached.
//   - Resource  — cached like Singleton, plus an explicit Release step
//     for teardown (closing connections, flushing buffers, ...).
//
// Providers bind a factory callable together with positional and named
// arguments. Argument values may be plain values, nested providers
// (resolved at call time) or deferred references (evaluated only when
// accessed, see below).
//
// # Container lifecycle
//
//  1. Create:   c := di.New()
//  2. Load:     c.Config().Load(settings)
//  3. Register: c.Register("db", di.NewSingleton(newDatabase, ...))
//  4. Resolve:  db, err := di.ResolveAs[*Database](c, "db")
//  5. Shutdown: c.Shutdown() — releases resources in reverse registration order
//
// Nothing is constructed until first requested: registration is purely
// declarative and cannot fail on missing dependencies.
//
// # Breaking circular construction
//
// When provider A's arguments must name provider B and vice versa, wrap at
// least one side in a deferred reference:
//
//	c.Register("a", di.NewSingleton(newA, di.Named("b", di.Defer(c, "b"))))
//	c.Register("b", di.NewSingleton(newB, di.Named("a", di.Defer(c, "a"))))
//
// A deferred reference records the container and a name but performs no
// lookup until invoked. Factories receive it un-invoked; the constructed
// instance stores it and evaluates it after both sides exist. By contrast,
// di.Ref is an eager by-name reference, resolved during argument
// materialization: two singleton providers that reference each other through
// Refs (or nested providers) fail fast with a CircularDependencyError
// instead of recursing.
//
// # Concurrency
//
// Singleton and Resource first-construction is guarded so that concurrent
// first resolutions invoke the factory exactly once, with every caller
// observing the same instance. Factory resolution needs no container-level
// synchronization. The configuration store is safe for unsynchronized reads
// once loaded.
package di
