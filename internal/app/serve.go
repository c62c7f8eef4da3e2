package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"pet-care-dashboard/internal/router"
)

// Serve levanta la API local en addr hasta que ctx se cancele.
func (c *Container) Serve(ctx context.Context, addr string) error {
	if addr == "" {
		addr = c.Config.HTTPAddr
	}

	srv := &http.Server{
		Addr: addr,
		Handler: router.NewRouter(router.Options{
			State:   c.State,
			Logger:  c.Logger,
			Metrics: c.Metrics,
		}),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("starting server", map[string]any{"addr": addr, "session_id": c.State.SessionID()})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	c.Logger.Info("shutting down server", nil)
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
