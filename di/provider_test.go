package di_test

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/RanchoCooper/go-hexagonal/di"
)

type widget struct {
	label string
	size  int
}

func newWidget(args di.Arguments) (any, error) {
	return &widget{
		label: args.String("label"),
		size:  args.Int("size"),
	}, nil
}

// ── Singleton ─────────────────────────────────────────────────────────────────

func TestSingleton_SameInstanceEveryCall(t *testing.T) {
	p := di.NewSingleton(newWidget, di.Named("label", "w1"))

	first, err := p.Resolve()
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := p.Resolve()
		if err != nil {
			t.Fatalf("resolve #%d: %v", i, err)
		}
		if again != first {
			t.Fatalf("resolve #%d returned a different instance", i)
		}
	}
}

func TestSingleton_FactoryInvokedOnce(t *testing.T) {
	var calls int32
	p := di.NewSingleton(func(di.Arguments) (any, error) {
		atomic.AddInt32(&calls, 1)
		return new(widget), nil
	})

	for i := 0; i < 3; i++ {
		if _, err := p.Resolve(); err != nil {
			t.Fatalf("resolve: %v", err)
		}
	}
	if calls != 1 {
		t.Errorf("factory called %d times, want 1", calls)
	}
}

func TestSingleton_ExtrasIgnoredAfterFirstCall(t *testing.T) {
	p := di.NewSingleton(newWidget, di.Named("label", "bound"))

	first, _ := p.Resolve()
	second, _ := p.Resolve(di.Named("label", "override"))

	if second != first {
		t.Fatal("extras after the first call must not produce a new instance")
	}
	if first.(*widget).label != "bound" {
		t.Errorf("label = %q, want 'bound'", first.(*widget).label)
	}
}

func TestSingleton_ConcurrentFirstResolve_OneConstruction(t *testing.T) {
	var calls int32
	p := di.NewSingleton(func(di.Arguments) (any, error) {
		atomic.AddInt32(&calls, 1)
		return new(widget), nil
	})

	const n = 16
	results := make([]any, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := p.Resolve()
			if err != nil {
				t.Errorf("resolve: %v", err)
				return
			}
			results[i] = v
		}(i)
	}
	wg.Wait()

	if calls != 1 {
		t.Errorf("factory called %d times, want exactly 1", calls)
	}
	for i := 1; i < n; i++ {
		if results[i] != results[0] {
			t.Fatalf("caller %d observed a different instance", i)
		}
	}
}

func TestSingleton_FailedConstruction_RetriesNextCall(t *testing.T) {
	boom := errors.New("dial failed")
	var calls int
	p := di.NewSingleton(func(di.Arguments) (any, error) {
		calls++
		if calls == 1 {
			return nil, boom
		}
		return new(widget), nil
	})

	if _, err := p.Resolve(); !errors.Is(err, boom) {
		t.Fatalf("first resolve: got %v, want the factory's own error", err)
	}
	v, err := p.Resolve()
	if err != nil {
		t.Fatalf("retry: %v", err)
	}
	if v == nil {
		t.Fatal("retry returned nil instance")
	}
	if calls != 2 {
		t.Errorf("factory called %d times, want 2", calls)
	}
}

// ── Factory ───────────────────────────────────────────────────────────────────

func TestFactory_FreshInstancePerCall(t *testing.T) {
	p := di.NewFactory(newWidget)

	seen := map[any]bool{}
	for i := 0; i < 3; i++ {
		v, err := p.Resolve()
		if err != nil {
			t.Fatalf("resolve: %v", err)
		}
		if seen[v] {
			t.Fatalf("resolve #%d returned a previously seen instance", i)
		}
		seen[v] = true
	}
}

func TestFactory_MergedArguments(t *testing.T) {
	p := di.NewFactory(newWidget, di.Named("label", "bound"), di.Named("size", 1))

	v, err := p.Resolve(di.Named("size", 9))
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	w := v.(*widget)
	if w.label != "bound" {
		t.Errorf("label = %q, want bound value kept", w.label)
	}
	if w.size != 9 {
		t.Errorf("size = %d, want call-time override 9", w.size)
	}
}

func TestFactory_PositionalExtrasAppend(t *testing.T) {
	p := di.NewFactory(func(args di.Arguments) (any, error) {
		return args.Positional(), nil
	}, "a", "b")

	v, err := p.Resolve("c")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	got := v.([]any)
	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Errorf("positional = %v, want [a b c]", got)
	}
}

// ── Nested providers ─────────────────────────────────────────────────────────

func TestProvider_NestedProviderResolvedFirst(t *testing.T) {
	dep := di.NewSingleton(func(di.Arguments) (any, error) {
		return "nested-value", nil
	})
	p := di.NewFactory(func(args di.Arguments) (any, error) {
		v, err := args.Value("dep")
		return v, err
	}, di.Named("dep", dep))

	v, err := p.Resolve()
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if v != "nested-value" {
		t.Errorf("dep = %v, want nested provider's value", v)
	}
}

func TestProvider_NestedCycleFailsFast(t *testing.T) {
	c := di.New()
	passThrough := func(args di.Arguments) (any, error) {
		return args.Value("other")
	}
	c.Register("a", di.NewSingleton(passThrough, di.Named("other", di.Ref(c, "b"))))
	c.Register("b", di.NewSingleton(passThrough, di.Named("other", di.Ref(c, "a"))))

	_, err := c.Resolve("a")
	var cyc *di.CircularDependencyError
	if !errors.As(err, &cyc) {
		t.Fatalf("got %T (%v), want *CircularDependencyError", err, err)
	}
	if len(cyc.Path) == 0 {
		t.Error("cycle error should carry the resolution path")
	}
}

// ── Resource ─────────────────────────────────────────────────────────────────

func TestResource_CachesLikeSingleton(t *testing.T) {
	var calls int
	p := di.NewResource(func(di.Arguments) (any, error) {
		calls++
		return new(widget), nil
	}, func(any) error { return nil })

	first, _ := p.Resolve()
	second, _ := p.Resolve()
	if first != second {
		t.Fatal("resource must cache its instance")
	}
	if calls != 1 {
		t.Errorf("factory called %d times, want 1", calls)
	}
}

func TestResource_ReleaseRunsOnce(t *testing.T) {
	var released int
	p := di.NewResource(
		func(di.Arguments) (any, error) { return new(widget), nil },
		func(any) error { released++; return nil },
	)

	for i := 0; i < 5; i++ {
		if _, err := p.Resolve(); err != nil {
			t.Fatalf("resolve: %v", err)
		}
	}
	for i := 0; i < 3; i++ {
		if err := p.Release(); err != nil {
			t.Fatalf("release: %v", err)
		}
	}
	if released != 1 {
		t.Errorf("teardown ran %d times, want exactly 1", released)
	}
	if !p.Released() {
		t.Error("Released() = false after release")
	}
}

func TestResource_NeverResolved_ReleaseIsNoop(t *testing.T) {
	var released int
	p := di.NewResource(
		func(di.Arguments) (any, error) { return new(widget), nil },
		func(any) error { released++; return nil },
	)

	if err := p.Release(); err != nil {
		t.Fatalf("release: %v", err)
	}
	if released != 0 {
		t.Error("teardown must not run for a never-constructed resource")
	}
}

func TestResource_ReleaseErrorPropagates(t *testing.T) {
	boom := errors.New("close failed")
	p := di.NewResource(
		func(di.Arguments) (any, error) { return new(widget), nil },
		func(any) error { return boom },
	)
	if _, err := p.Resolve(); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if err := p.Release(); !errors.Is(err, boom) {
		t.Errorf("release error = %v, want the teardown's own error", err)
	}
}

// ── Registration guards ──────────────────────────────────────────────────────

func TestNewProvider_NilFactoryPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("nil factory must panic: malformed registration is a programmer error")
		}
	}()
	di.NewSingleton(nil)
}
