package di

// Arguments carries the merged positional and named argument values a
// provider passes to its factory. Values are concrete at this point, except
// deferred references, which stay callable until accessed.
type Arguments struct {
	positional []any
	named      map[string]any
}

// Len returns the number of positional arguments.
func (a Arguments) Len() int { return len(a.positional) }

// Pos returns the i-th positional argument, or nil when out of range.
func (a Arguments) Pos(i int) any {
	if i < 0 || i >= len(a.positional) {
		return nil
	}
	return a.positional[i]
}

// Positional returns all positional arguments in order.
func (a Arguments) Positional() []any { return a.positional }

// Raw returns the named argument as stored — a deferred reference comes back
// un-invoked, letting a factory hand it to the instance it builds.
func (a Arguments) Raw(name string) (any, bool) {
	v, ok := a.named[name]
	return v, ok
}

// Deferred returns the named argument as a deferred reference.
func (a Arguments) Deferred(name string) (Deferred, bool) {
	v, ok := a.named[name]
	if !ok {
		return nil, false
	}
	d, ok := v.(Deferred)
	return d, ok
}

// Value returns the named argument's concrete value, invoking it first when
// it is a deferred reference. Missing names fail with *ArgumentError.
func (a Arguments) Value(name string) (any, error) {
	v, ok := a.named[name]
	if !ok {
		return nil, &ArgumentError{Name: name}
	}
	if d, ok := v.(Deferred); ok {
		return d()
	}
	return v, nil
}

// String narrows the named argument to a string; zero value when missing or
// of another type. Use Value when the distinction matters.
func (a Arguments) String(name string) string {
	v, err := a.Value(name)
	if err != nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// Int narrows the named argument to an int.
func (a Arguments) Int(name string) int {
	v, err := a.Value(name)
	if err != nil {
		return 0
	}
	i, _ := v.(int)
	return i
}

// Bool narrows the named argument to a bool.
func (a Arguments) Bool(name string) bool {
	v, err := a.Value(name)
	if err != nil {
		return false
	}
	b, _ := v.(bool)
	return b
}
