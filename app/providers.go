package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	adapterevent "github.com/RanchoCooper/go-hexagonal/adapter/event"
	adapterhttp "github.com/RanchoCooper/go-hexagonal/adapter/http"
	"github.com/RanchoCooper/go-hexagonal/adapter/repository/memory"
	"github.com/RanchoCooper/go-hexagonal/adapter/repository/redis"
	appservice "github.com/RanchoCooper/go-hexagonal/application/service"
	"github.com/RanchoCooper/go-hexagonal/di"
	"github.com/RanchoCooper/go-hexagonal/domain/event"
	"github.com/RanchoCooper/go-hexagonal/domain/repo"
	domainservice "github.com/RanchoCooper/go-hexagonal/domain/service"
)

// Provider names registered by the core service providers.
const (
	NameLogger            = "logger"
	NameEventBus          = "event_bus"
	NameEventWiring       = "event_wiring"
	NameRedisClient       = "redis_client"
	NameExampleRepository = "example_repository"
	NameExampleDomainSvc  = "example_domain_service"
	NameExampleAppSvc     = "example_app_service"
	NameRouter            = "router"
	NameExampleController = "example_controller"
	NameHealthController  = "health_controller"
)

// ── LoggingProvider ──────────────────────────────────────────────────────────

// LoggingProvider binds the zap logger, configured from "log.level" and
// "server.debug".
type LoggingProvider struct{}

func (p *LoggingProvider) Register(c *di.Container) error {
	c.Register(NameLogger, di.NewSingleton(func(di.Arguments) (any, error) {
		return buildLogger(c)
	}))
	return nil
}

func buildLogger(c *di.Container) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(c.Config().String("log.level", "info"))
	if err != nil {
		return nil, fmt.Errorf("app: parse log level: %w", err)
	}
	if c.Config().Bool("server.debug", false) {
		cfg := zap.NewDevelopmentConfig()
		cfg.Level = level
		return cfg.Build()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = level
	return cfg.Build()
}

// ── EventProvider ────────────────────────────────────────────────────────────

// EventProvider binds the in-memory event bus and the wiring of the default
// logging handler. The wiring is a Resource so it runs once, lazily, and is
// accounted for at shutdown.
type EventProvider struct{}

func (p *EventProvider) Register(c *di.Container) error {
	c.Register(NameEventBus, di.NewSingleton(func(di.Arguments) (any, error) {
		logger, err := di.ResolveAs[*zap.Logger](c, NameLogger)
		if err != nil {
			return nil, err
		}
		return adapterevent.NewMemoryBus(logger), nil
	}))

	c.Register(NameEventWiring, di.NewResource(func(args di.Arguments) (any, error) {
		bus, err := args.Value("bus")
		if err != nil {
			return nil, err
		}
		logger, err := di.ResolveAs[*zap.Logger](c, NameLogger)
		if err != nil {
			return nil, err
		}
		handler := adapterevent.NewLoggingHandler(logger)
		return adapterevent.WireHandlers(bus.(event.Bus), handler), nil
	}, nil,
		di.Named("bus", di.Defer(c, NameEventBus)),
	))
	return nil
}

// Boot forces the event wiring so handlers are live before the first request.
func (p *EventProvider) Boot(c *di.Container) error {
	_, err := c.Resolve(NameEventWiring)
	return err
}

// ── RepositoryProvider ───────────────────────────────────────────────────────

// RepositoryProvider binds the ExampleRepository chosen by
// "database.driver": "redis" wires the Redis client as a Resource with a
// connection teardown; anything else falls back to the in-memory adapter.
type RepositoryProvider struct{}

func (p *RepositoryProvider) Register(c *di.Container) error {
	driver := c.Config().String("database.driver", "memory")

	if driver == "redis" {
		c.Register(NameRedisClient, di.NewResource(
			func(di.Arguments) (any, error) {
				client := redis.NewClient(redis.Options{
					Host:     c.Config().String("redis.host", "localhost"),
					Port:     c.Config().Int("redis.port", 6379),
					Password: c.Config().String("redis.password", ""),
					DB:       c.Config().Int("redis.db", 0),
				})
				if err := client.Connect(context.Background()); err != nil {
					return nil, err
				}
				return client, nil
			},
			func(instance any) error {
				return instance.(*redis.Client).Close()
			},
		))

		c.Register(NameExampleRepository, di.NewSingleton(func(di.Arguments) (any, error) {
			client, err := di.ResolveAs[*redis.Client](c, NameRedisClient)
			if err != nil {
				return nil, err
			}
			return redis.NewExampleRepository(client), nil
		}))
		return nil
	}

	c.Register(NameExampleRepository, di.NewSingleton(func(di.Arguments) (any, error) {
		return memory.NewExampleRepository(), nil
	}))
	return nil
}

// ── ServiceProvider ──────────────────────────────────────────────────────────

// ServiceProvider binds the domain and application services over the
// repository and event-bus ports.
type ServiceProvider struct{}

func (p *ServiceProvider) Register(c *di.Container) error {
	c.Register(NameExampleDomainSvc, di.NewSingleton(func(di.Arguments) (any, error) {
		repository, err := di.ResolveAs[repo.ExampleRepository](c, NameExampleRepository)
		if err != nil {
			return nil, err
		}
		return domainservice.NewExampleService(repository), nil
	}))

	c.Register(NameExampleAppSvc, di.NewSingleton(func(di.Arguments) (any, error) {
		domain, err := di.ResolveAs[*domainservice.ExampleService](c, NameExampleDomainSvc)
		if err != nil {
			return nil, err
		}
		bus, err := di.ResolveAs[event.Bus](c, NameEventBus)
		if err != nil {
			return nil, err
		}
		return appservice.NewExampleAppService(domain, bus), nil
	}))
	return nil
}

// ── HTTPProvider ─────────────────────────────────────────────────────────────

// HTTPProvider binds the router and the controllers, and mounts routes at
// boot, after every service is declared.
type HTTPProvider struct{}

func (p *HTTPProvider) Register(c *di.Container) error {
	c.Register(NameRouter, di.NewSingleton(func(di.Arguments) (any, error) {
		return adapterhttp.NewRouter(), nil
	}))

	c.Register(NameExampleController, di.NewFactory(func(di.Arguments) (any, error) {
		app, err := di.ResolveAs[*appservice.ExampleAppService](c, NameExampleAppSvc)
		if err != nil {
			return nil, err
		}
		return adapterhttp.NewExampleController(app), nil
	}))

	c.Register(NameHealthController, di.NewFactory(func(di.Arguments) (any, error) {
		return adapterhttp.NewHealthController(), nil
	}))
	return nil
}

func (p *HTTPProvider) Boot(c *di.Container) error {
	router, err := di.ResolveAs[*adapterhttp.Router](c, NameRouter)
	if err != nil {
		return err
	}
	health, err := di.ResolveAs[*adapterhttp.HealthController](c, NameHealthController)
	if err != nil {
		return err
	}
	health.Mount(router)

	examples, err := di.ResolveAs[*adapterhttp.ExampleController](c, NameExampleController)
	if err != nil {
		return err
	}
	examples.Mount(router)
	return nil
}
