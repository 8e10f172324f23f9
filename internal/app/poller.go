package app

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/lfreitas/reserva/internal/session"
)

const (
	defaultPollInterval = 30 * time.Second
	maxBackoff          = 5 * time.Minute
)

// StartPoller launches a background goroutine that reloads the collection at
// a fixed cadence, backing off while reloads keep failing. It returns
// immediately.
func StartPoller(ctx context.Context, controller *session.Controller, interval time.Duration) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	go func() {
		failures := 0
		for {
			wait := calculateBackoff(failures, interval)
			select {
			case <-ctx.Done():
				return
			case <-time.After(wait):
			}

			if err := controller.Reload(ctx); err != nil {
				failures++
				log.WithError(err).Debugf("reload poll failed (%d consecutive)", failures)
				continue
			}
			failures = 0
		}
	}()
}

// calculateBackoff doubles the base interval per consecutive failure, capped
// at maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	wait := base
	for i := 0; i < failures; i++ {
		wait *= 2
		if wait >= maxBackoff {
			return maxBackoff
		}
	}
	return wait
}
