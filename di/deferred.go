package di

// Deferred is a zero-argument indirection: invoking it performs a lookup at
// that moment, not before. Providers pass deferred arguments to factories
// un-invoked, which is what lets two providers reference each other — the
// constructed instances hold the references and evaluate them only after
// both sides are registered and built.
type Deferred func() (any, error)

// Defer records a container and a name. No lookup happens until the returned
// reference is invoked, so the name does not have to be registered yet.
func Defer(c *Container, name string) Deferred {
	return func() (any, error) {
		return c.Resolve(name)
	}
}

// NameRef is an eager by-name reference: a provider argument bound to a
// NameRef is resolved through the container at call time, inside the same
// resolution path. Two providers that reference each other with NameRefs
// therefore fail fast with a CircularDependencyError — wrap at least one
// side in Defer instead to break the cycle.
type NameRef struct {
	c    *Container
	name string
}

// Ref creates an eager by-name reference on c.
//
//	c.Register("svc", di.NewSingleton(newService, di.Named("db", di.Ref(c, "db"))))
func Ref(c *Container, name string) NameRef {
	return NameRef{c: c, name: name}
}

func (r NameRef) resolve(path *resolvePath) (any, error) {
	p, ok := r.c.Provider(r.name)
	if !ok {
		return nil, &NotFoundError{Name: r.name}
	}
	return p.resolve(path, nil)
}

// DeferConfig records a configuration path on the container's store. The
// lookup runs when the reference is invoked, typically inside a factory:
//
//	c.Register("db", di.NewSingleton(newDatabase,
//	    di.Named("url", di.DeferConfig(c, "database.url"))))
func DeferConfig(c *Container, path string) Deferred {
	return func() (any, error) {
		return c.Config().Get(path)
	}
}

// Typed invokes a deferred reference and narrows the result to T.
func Typed[T any](d Deferred) (T, error) {
	var zero T
	v, err := d()
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, &typeMismatchError{want: zero, got: v}
	}
	return t, nil
}
