package factory

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"

	"github.com/bhatiakavisha/AI-Health-Companion/internal/config"
	"github.com/bhatiakavisha/AI-Health-Companion/internal/store"
	"github.com/bhatiakavisha/AI-Health-Companion/internal/store/memstore"
	"github.com/bhatiakavisha/AI-Health-Companion/internal/store/postgres"
	"github.com/bhatiakavisha/AI-Health-Companion/internal/store/sqlite"
)

// NewStore opens the durable mirror selected by cfg.StoreDriver.
// SQL drivers are retried with exponential backoff for up to
// STORE_OPEN_MAX_ELAPSED_SECONDS so the service can start alongside its database.
func NewStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (store.Store, error) {
	switch cfg.StoreDriver {
	case "memory":
		log.Warn().Msg("memory store selected; journal will not survive a restart")
		return memstore.New(), nil
	case "sqlite":
		db, err := openWithRetry(ctx, cfg, log, func() (*sql.DB, error) { return sqlite.Open(cfg.SQLitePath) })
		if err != nil {
			return nil, err
		}
		s, err := sqlite.NewWithDB(ctx, db)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		return s, nil
	case "postgres":
		db, err := openWithRetry(ctx, cfg, log, func() (*sql.DB, error) { return postgres.Open(cfg.PostgresDSN) })
		if err != nil {
			return nil, err
		}
		s, err := postgres.NewWithDB(ctx, db)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		return s, nil
	}
	return nil, fmt.Errorf("unknown STORE_DRIVER: %s", cfg.StoreDriver)
}

func openWithRetry(ctx context.Context, cfg *config.Config, log zerolog.Logger, open func() (*sql.DB, error)) (*sql.DB, error) {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = 200 * time.Millisecond
	exp.Multiplier = 2
	exp.MaxInterval = 5 * time.Second
	exp.MaxElapsedTime = time.Duration(cfg.StoreOpenMaxElapsedSeconds) * time.Second
	exp.Reset()

	var db *sql.DB
	op := func() error {
		var err error
		db, err = open()
		return err
	}
	notify := func(err error, wait time.Duration) {
		log.Warn().Err(err).Str("driver", cfg.StoreDriver).Dur("retry_in", wait).Msg("store open failed")
	}
	if err := backoff.RetryNotify(op, backoff.WithContext(exp, ctx), notify); err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.StoreDriver, err)
	}
	return db, nil
}
