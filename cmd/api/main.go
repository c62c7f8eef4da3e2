package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"pet-care-dashboard/internal/app"
	"pet-care-dashboard/internal/platform/config"
)

// @title Pet Care Dashboard API
// @version 1.0
// @description API local del dashboard de cuidado de mascotas: mascotas, citas y registros de salud.
// @BasePath /
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(os.Getenv("PETCARE_CONFIG"))
	if err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		os.Exit(1)
	}

	c, err := app.Build(ctx, cfg, app.Options{})
	if err != nil {
		fmt.Fprintln(os.Stderr, "startup error:", err)
		os.Exit(1)
	}
	defer func() { _ = c.Close(context.Background()) }()

	if err := c.Serve(ctx, cfg.HTTPAddr); err != nil {
		c.Logger.Error("server error", map[string]any{"err": err})
		_ = c.Close(context.Background())
		os.Exit(1)
	}
}
