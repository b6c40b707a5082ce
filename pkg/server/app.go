package server

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"FinDash/internal/service/ratelimit"
	"FinDash/internal/usecase"
	"FinDash/pkg/config"
	xhttp "FinDash/pkg/http"
	applogger "FinDash/pkg/logger"
)

// limiterIdle is how long a client may stay silent before its bucket is dropped.
const limiterIdle = 10 * time.Minute

// App encapsulates the entire application lifecycle.
type App struct {
	cfg        *config.Config
	log        *applogger.Logger
	httpServer *xhttp.Server
	futures    *usecase.FuturesService
	dashboard  *usecase.DashboardService
	limiter    *ratelimit.Limiter
}

// New creates a new App instance with all dependencies. limiter may be nil.
func New(
	cfg *config.Config,
	l *applogger.Logger,
	httpServer *xhttp.Server,
	futures *usecase.FuturesService,
	dashboard *usecase.DashboardService,
	limiter *ratelimit.Limiter,
) *App {
	return &App{
		cfg:        cfg,
		log:        l,
		httpServer: httpServer,
		futures:    futures,
		dashboard:  dashboard,
		limiter:    limiter,
	}
}

// Futures exposes the snapshot service for one-shot CLI commands.
func (a *App) Futures() *usecase.FuturesService { return a.futures }

// Run serves HTTP until ctx is done, SIGINT/SIGTERM arrives or the listener fails.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := a.httpServer.Start()
	if a.limiter != nil {
		go a.sweepLimiter(ctx)
	}
	a.log.Info("findash started",
		applogger.String("environment", a.cfg.Environment),
		applogger.String("backend", a.cfg.Backend.BaseURL),
		applogger.Bool("cache", a.cfg.Cache.Enabled),
		applogger.Bool("kafka", a.cfg.Kafka.Enabled),
	)

	var runErr error
	select {
	case <-ctx.Done():
		a.log.Info("shutdown signal received")
	case err, ok := <-errCh:
		if ok && err != nil {
			a.log.Error("http server failed", applogger.Error(err))
			runErr = err
		}
	}

	if err := a.shutdown(); err != nil {
		runErr = errors.Join(runErr, err)
	}
	return runErr
}

func (a *App) sweepLimiter(ctx context.Context) {
	t := time.NewTicker(limiterIdle / 2)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := a.limiter.Sweep(limiterIdle); n > 0 {
				a.log.Debug("rate limiter swept", applogger.Int("removed", n))
			}
		}
	}
}

// shutdown stops the HTTP server and drains pending fallback events.
// Infrastructure clients are closed by the DI cleanup.
func (a *App) shutdown() error {
	a.log.Info("shutting down...")

	// fresh context: the run context is already canceled here
	if err := a.httpServer.Stop(context.Background()); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}

	a.futures.Wait()
	a.dashboard.Wait()

	a.log.Info("shutdown complete")
	return nil
}
