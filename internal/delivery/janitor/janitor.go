// Package janitor removes expired shopper sessions in the background.
package janitor

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"storefront/config"
	"storefront/internal/delivery"
	"storefront/internal/usecase"

	"go.uber.org/fx"
)

type sessionJanitor struct {
	interval  time.Duration
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger

	stopOnce sync.Once
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// Params holds dependencies for the session janitor, injected by Fx.
type Params struct {
	fx.In

	Lc        fx.Lifecycle
	Config    *config.Config
	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// New creates the delivery that sweeps expired sessions every configured interval.
func New(params Params) delivery.Delivery {
	j := newSessionJanitor(params.Config.Session.SweepInterval, params.SessionUC, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: j.stop,
	})

	return j
}

func newSessionJanitor(interval time.Duration, sessionUC usecase.SessionUsecase, logger *slog.Logger) *sessionJanitor {
	return &sessionJanitor{
		interval:  interval,
		sessionUC: sessionUC,
		logger:    logger,
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}
}

// Serve sweeps until the context is cancelled or the janitor is stopped.
func (j *sessionJanitor) Serve(ctx context.Context) error {
	defer close(j.doneCh)

	j.logger.Info("Starting session janitor", slog.Duration("interval", j.interval))

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-j.stopCh:
			return nil
		case <-ticker.C:
			j.sweep(ctx)
		}
	}
}

func (j *sessionJanitor) sweep(ctx context.Context) {
	removed, err := j.sessionUC.CleanupExpiredSessions(ctx)
	if err != nil {
		j.logger.Error("Failed to sweep expired sessions", slog.Any("error", err))

		return
	}
	if removed > 0 {
		j.logger.Info("Swept expired sessions", slog.Int("removed", removed))
	}
}

func (j *sessionJanitor) stop(ctx context.Context) error {
	j.logger.Info("Stopping session janitor")
	j.stopOnce.Do(func() { close(j.stopCh) })

	select {
	case <-j.doneCh:
	case <-ctx.Done():
	}

	return nil
}
