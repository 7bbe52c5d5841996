// Package storage owns the database connection and hands out repositories.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"clipstream/internal/config"
	"clipstream/internal/gateway/httpclient"
	"clipstream/internal/model"
	"clipstream/internal/storage/repository"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/extra/bundebug"
	"go.uber.org/zap"
)

// Postgres wraps the bun connection to PostgreSQL
type Postgres struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewPostgres opens a PostgreSQL connection, retrying until the database is
// reachable or the retry budget is spent
func NewPostgres(ctx context.Context, databaseURL string, retryCfg config.RetryConfig, logger *zap.Logger) (*Postgres, error) {
	var db *bun.DB

	err := httpclient.WithRetry(ctx, logger, httpclient.RetryConfig{
		MaxRetries:        retryCfg.MaxRetries,
		InitialDelay:      retryCfg.InitialDelay,
		MaxDelay:          retryCfg.MaxDelay,
		BackoffMultiplier: retryCfg.BackoffMultiplier,
	}, func() error {
		sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(databaseURL)))

		sqldb.SetMaxOpenConns(25)
		sqldb.SetMaxIdleConns(10)
		sqldb.SetConnMaxLifetime(5 * time.Minute)
		sqldb.SetConnMaxIdleTime(1 * time.Minute)

		candidate := bun.NewDB(sqldb, pgdialect.New())

		if logger.Core().Enabled(zap.DebugLevel) {
			candidate.AddQueryHook(bundebug.NewQueryHook(
				bundebug.WithVerbose(true),
				bundebug.FromEnv("BUNDEBUG"),
			))
		}

		pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		if err := candidate.PingContext(pingCtx); err != nil {
			if closeErr := candidate.Close(); closeErr != nil {
				logger.Warn("Failed to close database connection", zap.Error(closeErr))
			}
			return err
		}

		db = candidate
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	logger.Info("Connected to PostgreSQL database with Bun ORM")

	p := &Postgres{
		db:     db,
		logger: logger,
	}

	if err := p.ensureSchema(ctx); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			logger.Warn("Failed to close database connection", zap.Error(closeErr))
		}
		return nil, err
	}

	return p, nil
}

// ensureSchema creates the schema and tables if they do not exist
func (p *Postgres) ensureSchema(ctx context.Context) error {
	if _, err := p.db.ExecContext(ctx, "CREATE SCHEMA IF NOT EXISTS clipstream"); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	models := []any{
		(*model.PlaylistCollection)(nil),
		(*model.Setting)(nil),
		(*model.CachedTrack)(nil),
	}

	for _, m := range models {
		if _, err := p.db.NewCreateTable().
			Model(m).
			IfNotExists().
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	return nil
}

// Close closes the database connection
func (p *Postgres) Close() error {
	return p.db.Close()
}

// GetDB returns the underlying bun connection
func (p *Postgres) GetDB() *bun.DB {
	return p.db
}

// GetPlaylistRepository returns the playlist collection repository
func (p *Postgres) GetPlaylistRepository() model.PlaylistRepository {
	return repository.NewPlaylistRepository(p.db, p.logger)
}

// GetSettingRepository returns the settings repository
func (p *Postgres) GetSettingRepository() model.SettingRepository {
	return repository.NewSettingRepository(p.db, p.logger)
}

// GetCachedTrackRepository returns the cached track repository
func (p *Postgres) GetCachedTrackRepository() model.CachedTrackRepository {
	return repository.NewCachedTrackRepository(p.db, p.logger)
}
