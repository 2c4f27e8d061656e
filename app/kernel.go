// Package app is the composition root: it assembles the container, loads
// configuration, registers the core service providers and exposes typed
// accessors for the wired components.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	adapterhttp "github.com/RanchoCooper/go-hexagonal/adapter/http"
	appservice "github.com/RanchoCooper/go-hexagonal/application/service"
	"github.com/RanchoCooper/go-hexagonal/config"
	"github.com/RanchoCooper/go-hexagonal/di"
	"github.com/RanchoCooper/go-hexagonal/domain/event"
)

// Application owns the container for the process's lifetime. Construct it
// once at startup, Boot it, then resolve services through the typed
// accessors. The container is rebuilt from scratch on every run — no state
// survives a restart.
type Application struct {
	container *di.Container
	providers *di.Registry
	server    *http.Server
}

// New builds the application: a fresh container, settings loaded from the
// environment, and all core service providers registered (declaration only —
// nothing is constructed yet).
func New(envFiles ...string) (*Application, error) {
	c := di.New()
	c.Config().Load(config.FromEnv(envFiles...))

	registry := di.NewRegistry(c)
	app := &Application{container: c, providers: registry}

	for _, p := range []di.ServiceProvider{
		&LoggingProvider{},
		&EventProvider{},
		&RepositoryProvider{},
		&ServiceProvider{},
		&HTTPProvider{},
	} {
		if err := registry.Register(p); err != nil {
			return nil, err
		}
	}
	return app, nil
}

// Container exposes the underlying container, mainly for tests and for
// registering application-specific providers before Boot.
func (a *Application) Container() *di.Container { return a.container }

// Register adds an extra service provider.
func (a *Application) Register(p di.ServiceProvider) error {
	return a.providers.Register(p)
}

// Boot runs the Boot phase on all providers. Safe to resolve everything
// after this returns.
func (a *Application) Boot() error {
	return a.providers.Boot()
}

// ── Typed accessors ──────────────────────────────────────────────────────────

// Logger returns the shared zap logger.
func (a *Application) Logger() *zap.Logger {
	return di.MustResolve[*zap.Logger](a.container, NameLogger)
}

// EventBus returns the domain event bus.
func (a *Application) EventBus() event.Bus {
	return di.MustResolve[event.Bus](a.container, NameEventBus)
}

// ExampleService returns the application service for examples.
func (a *Application) ExampleService() *appservice.ExampleAppService {
	return di.MustResolve[*appservice.ExampleAppService](a.container, NameExampleAppSvc)
}

// Router returns the HTTP router.
func (a *Application) Router() *adapterhttp.Router {
	return di.MustResolve[*adapterhttp.Router](a.container, NameRouter)
}

// ── Serving ──────────────────────────────────────────────────────────────────

// Run boots the application (if needed) and serves HTTP until ctx is
// cancelled, then drains in-flight requests and shuts the container down.
func (a *Application) Run(ctx context.Context) error {
	if !a.providers.Booted() {
		if err := a.Boot(); err != nil {
			return err
		}
	}

	cfg := a.container.Config()
	addr := fmt.Sprintf("%s:%d",
		cfg.String("server.host", "127.0.0.1"),
		cfg.Int("server.port", 5000),
	)
	a.server = &http.Server{Addr: addr, Handler: a.Router()}

	log := a.Logger()
	log.Info("server starting", zap.String("addr", addr))

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		_ = a.Shutdown()
		return err
	case <-ctx.Done():
	}

	log.Info("server stopping")
	drainCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.server.Shutdown(drainCtx); err != nil {
		log.Warn("server drain failed", zap.Error(err))
	}
	return a.Shutdown()
}

// Shutdown releases every live resource in reverse registration order.
func (a *Application) Shutdown() error {
	err := a.container.Shutdown()
	if log, logErr := di.ResolveAs[*zap.Logger](a.container, NameLogger); logErr == nil {
		if err != nil {
			log.Error("shutdown finished with errors", zap.Error(err))
		}
		_ = log.Sync()
	}
	return err
}
