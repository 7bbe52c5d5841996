// Package app wires the application components together.
package app

import (
	"context"
	"fmt"
	"net/http"

	"clipstream/internal/config"
	"clipstream/internal/gateway/admin"
	"clipstream/internal/gateway/httpclient"
	"clipstream/internal/gateway/vimeo"
	"clipstream/internal/infrastructure/cache"
	"clipstream/internal/server"
	"clipstream/internal/service"
	"clipstream/internal/storage"

	"go.uber.org/zap"
)

// ComponentFactory creates the application components
type ComponentFactory struct {
	config *config.Config
	logger *zap.Logger
}

// NewComponentFactory creates a new component factory
func NewComponentFactory(cfg *config.Config, logger *zap.Logger) *ComponentFactory {
	if cfg == nil {
		logger.Fatal("Config cannot be nil")
	}
	if logger == nil {
		panic("Logger cannot be nil")
	}

	return &ComponentFactory{
		config: cfg,
		logger: logger,
	}
}

// CreateDatabase opens the database connection
func (f *ComponentFactory) CreateDatabase(ctx context.Context) (*storage.Postgres, error) {
	db, err := storage.NewPostgres(ctx, f.config.DatabaseURL, f.config.DBRetryConfig, f.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create database connection: %w", err)
	}

	f.logger.Info("Database connection created successfully")
	return db, nil
}

// CreateCache creates the TTL memoization cache
func (f *ComponentFactory) CreateCache() cache.Cache {
	return cache.NewManager(f.config.CacheTTL, f.logger)
}

// CreateHTTPClient creates the pooled outbound HTTP client
func (f *ComponentFactory) CreateHTTPClient() *http.Client {
	return httpclient.New(f.config.HTTPClientConfig, f.logger)
}

// CreateVimeoClient creates the hosting provider metadata client
func (f *ComponentFactory) CreateVimeoClient(base *http.Client) (vimeo.Interface, error) {
	client, err := vimeo.NewClient(f.config.VimeoBaseURL, f.config.VimeoToken, base, f.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create vimeo client: %w", err)
	}

	return client, nil
}

// CreateAdminClient creates the playlist-curation client
func (f *ComponentFactory) CreateAdminClient(base *http.Client) (admin.Interface, error) {
	client, err := admin.NewClient(f.config.AdminBaseURL, f.config.AdminToken, base, f.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create admin client: %w", err)
	}

	return client, nil
}

// CreateService wires the sync orchestrator from its collaborators
func (f *ComponentFactory) CreateService(db *storage.Postgres, adminClient admin.Interface, vimeoClient vimeo.Interface, c cache.Cache) *service.Service {
	return service.New(
		db.GetPlaylistRepository(),
		db.GetSettingRepository(),
		db.GetCachedTrackRepository(),
		adminClient,
		vimeoClient,
		c,
		f.logger,
	)
}

// CreateServer builds the HTTP surface over the orchestrator
func (f *ComponentFactory) CreateServer(svc *service.Service) *server.Server {
	return server.NewServer(svc, f.logger)
}
