package main

import (
	"log/slog"
	nethttp "net/http"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/projectboard/internal/adapters/http"
	"github.com/jsamuelsen11/projectboard/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/projectboard/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/projectboard/internal/adapters/web"
	"github.com/jsamuelsen11/projectboard/internal/adapters/web/view"
	"github.com/jsamuelsen11/projectboard/internal/app"
	"github.com/jsamuelsen11/projectboard/internal/app/store"
	"github.com/jsamuelsen11/projectboard/internal/domain/project"
	"github.com/jsamuelsen11/projectboard/internal/platform/config"
	"github.com/jsamuelsen11/projectboard/internal/platform/health"
	"github.com/jsamuelsen11/projectboard/internal/platform/telemetry"
	"github.com/jsamuelsen11/projectboard/internal/ports"
)

// newContainer wires the dependency graph. Services are lazy singletons, so
// the container hands every consumer the same Store.
func newContainer(cfg *config.Config, logger *slog.Logger, metrics *telemetry.Metrics) *do.RootScope {
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, metrics)

	do.Provide(injector, func(_ do.Injector) (*store.Store, error) {
		return store.New(store.WithLogger(logger), store.WithMetrics(metrics)), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ProjectStore, error) {
		return do.MustInvoke[*store.Store](i), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ProjectService, error) {
		rules := app.FormRules{
			DescriptionMinLength: cfg.Form.DescriptionMinLength,
			PeopleMin:            cfg.Form.PeopleMin,
			PeopleMax:            cfg.Form.PeopleMax,
		}
		return app.NewProjectService(do.MustInvoke[ports.ProjectStore](i), rules, metrics, logger), nil
	})

	// One list per status, registered with the store before the server
	// accepts its first submission.
	do.Provide(injector, func(i do.Injector) ([]*view.ProjectList, error) {
		s := do.MustInvoke[ports.ProjectStore](i)
		statuses := project.Statuses()
		lists := make([]*view.ProjectList, len(statuses))
		for n, st := range statuses {
			lists[n] = view.NewProjectList(s, st)
		}
		return lists, nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*web.Handler, error) {
		svc := do.MustInvoke[ports.ProjectService](i)
		return web.NewHandler(svc, cfg.Form, do.MustInvoke[[]*view.ProjectList](i)...), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.ProjectHandler, error) {
		return handlers.NewProjectHandler(do.MustInvoke[ports.ProjectService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		return handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		return adapthttp.NewRouter(
			do.MustInvoke[*web.Handler](i),
			do.MustInvoke[*handlers.ProjectHandler](i),
			do.MustInvoke[*handlers.HealthHandler](i),
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		return adapthttp.NewServer(cfg.Server, do.MustInvoke[nethttp.Handler](i), logger), nil
	})

	return injector
}
