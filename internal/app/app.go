// Package app wires configuration, authentication, the reservation store,
// and the UI together.
package app

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/lfreitas/reserva/internal/api"
	"github.com/lfreitas/reserva/internal/auth"
	"github.com/lfreitas/reserva/internal/config"
	"github.com/lfreitas/reserva/internal/mirror"
	"github.com/lfreitas/reserva/internal/session"
	"github.com/lfreitas/reserva/internal/store"
	"github.com/lfreitas/reserva/internal/ui"
)

// Options configure the Reserva application.
type Options struct {
	ConfigPath string
	APIBind    string // overrides the configured API address when set
	PollEvery  int    // seconds; zero uses the configured cadence
	Debug      bool
}

// Run boots the console until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	if opts.Debug {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.APIBind != "" {
		cfg.APIBind = opts.APIBind
	}
	if opts.PollEvery > 0 {
		cfg.PollSeconds = opts.PollEvery
	}

	sess := auth.Load(cfg.DataDir)

	client, err := api.NewClient(cfg.APIBind, cfg.RequestTimeout)
	if err != nil {
		return fmt.Errorf("init api client: %w", err)
	}

	m := mirror.New(cfg.DataDir, cfg.BootstrapPath)
	controller := session.NewController(store.New(client, m))

	// Start background refresh and populate the collection before the UI
	// renders. The initial load may legitimately come from the mirror.
	StartPoller(ctx, controller, cfg.PollInterval())
	if err := controller.Reload(ctx); err != nil {
		log.WithError(err).Warn("initial load failed")
	}

	return ui.Run(ui.Options{
		Context:    ctx,
		Controller: controller,
		Session:    sess,
		Config:     &cfg,
	})
}
