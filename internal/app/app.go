// Package app arma las dependencias a partir de la config: logger, métricas, tracing,
// backend del store y el estado del dashboard. Lo usan cmd/api y cmd/petcare.
package app

import (
	"context"
	"errors"

	"pet-care-dashboard/internal/domain/dashboard"
	"pet-care-dashboard/internal/persist"
	"pet-care-dashboard/internal/platform/config"
	"pet-care-dashboard/internal/platform/logger"
	"pet-care-dashboard/internal/platform/metrics"
	"pet-care-dashboard/internal/platform/otel"
)

type Container struct {
	Config  config.Config
	Logger  logger.Logger
	Metrics *metrics.Recorder // nil si metrics_enabled=false
	State   *dashboard.State

	closers []func(context.Context) error
}

type Options struct {
	// Logger opcional; si es nil se arma desde cfg.Log.
	Logger logger.Logger
}

func Build(ctx context.Context, cfg config.Config, opts Options) (*Container, error) {
	log := opts.Logger
	if log == nil {
		log = logger.New(logger.Options{
			Level:  logger.ParseLevel(cfg.Log.Level),
			Format: logger.ParseFormat(cfg.Log.Format),
			App:    cfg.Log.App,
		})
	}

	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	c := &Container{Config: cfg, Logger: log}

	shutdownTracing, err := otel.Setup(ctx, cfg.Log.App, cfg.Telemetry.OTELEndpoint)
	if err != nil {
		// tracing es opcional: seguimos sin él
		log.Warn("tracing disabled", map[string]any{"err": err})
	}
	c.closers = append(c.closers, shutdownTracing)

	if cfg.Telemetry.MetricsEnabled {
		c.Metrics = metrics.New()
	}

	store, closeStore, err := OpenStore(ctx, cfg.Store)
	if err != nil {
		_ = c.Close(ctx)
		return nil, err
	}
	c.closers = append(c.closers, func(context.Context) error { return closeStore() })

	fields := map[string]any{"driver": cfg.Store.Driver}
	if loc := storeLocation(store); loc != "" {
		fields["location"] = loc
	}
	log.Info("store opened", fields)

	adapter := persist.NewAdapter(store, persist.Options{Logger: log, Metrics: c.Metrics})
	c.State = dashboard.New(ctx, adapter, dashboard.Options{
		Logger:   log,
		Metrics:  c.Metrics,
		Location: loc,
	})

	return c, nil
}

// Close libera en orden inverso.
func (c *Container) Close(ctx context.Context) error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	c.closers = nil
	return errors.Join(errs...)
}
