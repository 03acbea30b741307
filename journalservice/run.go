package journalservice

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/bhatiakavisha/AI-Health-Companion/internal/api"
	"github.com/bhatiakavisha/AI-Health-Companion/internal/config"
	"github.com/bhatiakavisha/AI-Health-Companion/internal/events"
	"github.com/bhatiakavisha/AI-Health-Companion/internal/factory"
	"github.com/bhatiakavisha/AI-Health-Companion/internal/health"
	"github.com/bhatiakavisha/AI-Health-Companion/internal/insight"
	"github.com/bhatiakavisha/AI-Health-Companion/internal/journal"
	"github.com/bhatiakavisha/AI-Health-Companion/internal/logger"
	"github.com/bhatiakavisha/AI-Health-Companion/internal/services"
	"github.com/bhatiakavisha/AI-Health-Companion/internal/store"
)

// eventBuffer is how many unread events a slow stream subscriber may hold.
const eventBuffer = 64

// Run starts the journal HTTP service and blocks until shutdown or error.
func Run() error {
	log := logger.New("health-journal")

	cfg, err := config.New()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load configuration")
		return err
	}
	log = log.Level(logger.ParseLevel(cfg.LogLevel))

	log.Info().
		Str("environment", string(cfg.Environment)).
		Str("store_driver", cfg.StoreDriver).
		Str("completer", cfg.Completer).
		Int("http_port", cfg.HTTPPort).
		Msg("Journal service starting")

	// Create cancellable root context bound to SIGINT/SIGTERM
	ctx, stop := newServerContext()
	defer stop()

	st, completer, err := initDependencies(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := st.Close(); err != nil {
			log.Error().Err(err).Msg("store close failed")
		}
	}()

	bus := events.NewBus(eventBuffer)
	j := journal.New(st, log, journal.WithBus(bus))
	j.Load(ctx)

	svcHealth := startHealthCheckers(ctx, cfg, log, st)

	// Block startup until the mirror reports healthy; fail fast otherwise
	if err := waitUntilHealthy(ctx, cfg, svcHealth); err != nil {
		log.Error().Stack().Err(err).Msg("startup health check failed")
		return err
	}

	router := buildRouter(j, bus, insight.NewClient(completer, log), svcHealth, log)

	server := newHTTPServer(ctx, cfg, router)
	errCh := serveHTTP(server, log, cfg)

	// Graceful shutdown on context cancel or server error
	select {
	case <-ctx.Done():
		log.Info().Msg("Shutting down server")
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctxShutdown); err != nil {
			log.Error().Stack().Err(err).Msg("Server forced to shutdown")
			return err
		}
		log.Info().Msg("Server exited")
		return nil
	case err := <-errCh:
		log.Error().Stack().Err(err).Msg("HTTP server failed")
		return err
	}
}

// initDependencies opens the mirror and the completion backend; both are required.
func initDependencies(ctx context.Context, cfg *config.Config, log zerolog.Logger) (store.Store, insight.Completer, error) {
	st, err := factory.NewStore(ctx, cfg, log)
	if err != nil {
		log.Error().Stack().Err(err).Msg("Store adapter unavailable")
		return nil, nil, err
	}

	completer, err := factory.NewCompleter(ctx, cfg, log)
	if err != nil {
		_ = st.Close()
		log.Error().Stack().Err(err).Msg("Completion backend unavailable")
		return nil, nil, err
	}
	return st, completer, nil
}

func buildRouter(j *journal.Journal, bus *events.Bus, ai *insight.Client, svcHealth *health.Monitor, log zerolog.Logger) *mux.Router {
	return api.NewRouter(api.Deps{
		Journal:   services.NewJournalService(j),
		Insights:  services.NewInsightService(j, ai, log),
		Bus:       bus,
		Healthy:   svcHealth.IsHealthy,
		Unhealthy: svcHealth.Unhealthy,
		Log:       log,
	})
}

// startHealthCheckers starts the mirror prober and the service-level monitor.
func startHealthCheckers(ctx context.Context, cfg *config.Config, log zerolog.Logger, st store.Store) *health.Monitor {
	probeTimeout := time.Duration(cfg.HealthProbeTimeoutSeconds) * time.Second
	interval := time.Duration(cfg.HealthIntervalSeconds) * time.Second

	storeChecker := health.NewProber("store", store.Probe(st), probeTimeout, log)
	go storeChecker.Start(ctx, interval)

	svcHealth := health.NewMonitor(log, storeChecker)
	go svcHealth.Start(ctx, interval)
	return svcHealth
}

// newHTTPServer sizes the write timeout to outlast a completion call.
func newHTTPServer(ctx context.Context, cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.GetHTTPAddr(),
		Handler:           handler,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.GenerationTimeout() + 15*time.Second,
		IdleTimeout:       60 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
}

func serveHTTP(server *http.Server, log zerolog.Logger, cfg *config.Config) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Int("port", cfg.HTTPPort).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()
	return errCh
}

// calculateStartupHealthTimeout returns interval*2 seconds with a floor of 10.
func calculateStartupHealthTimeout(healthIntervalSeconds int) int {
	timeout := healthIntervalSeconds * 2
	if timeout < 10 {
		return 10
	}
	return timeout
}

// waitUntilHealthy blocks until service health is healthy or the startup window expires.
// It re-evaluates on every poll so startup does not wait out a monitor interval.
func waitUntilHealthy(ctx context.Context, cfg *config.Config, svcHealth *health.Monitor) error {
	timeoutSeconds := calculateStartupHealthTimeout(cfg.HealthIntervalSeconds)
	deadline := time.Now().Add(time.Duration(timeoutSeconds) * time.Second)
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()
	for {
		if svcHealth.Evaluate() {
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("startup aborted: dependencies not healthy within %d seconds", timeoutSeconds)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// newServerContext returns a cancellable context that is cancelled on SIGINT/SIGTERM.
func newServerContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
