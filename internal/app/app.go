// Package app wires configuration, logging, storage, the session state
// machine, the backend gateway, the snapshot store, and the dashboard
// service into a single container used by cmd/vw-cli.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/verifiedwealth/vw/internal/clients/backend"
	"github.com/verifiedwealth/vw/internal/common"
	"github.com/verifiedwealth/vw/internal/interfaces"
	"github.com/verifiedwealth/vw/internal/services/dashboard"
	"github.com/verifiedwealth/vw/internal/session"
	"github.com/verifiedwealth/vw/internal/storage/credstore"
	"github.com/verifiedwealth/vw/internal/store"
)

// App holds all initialized services and clients.
type App struct {
	Config      *common.Config
	Logger      *common.Logger
	Credentials interfaces.CredentialStore
	Session     *session.Manager
	Backend     interfaces.BackendClient
	Store       *store.Store
	Dashboard   interfaces.DashboardService
	StartupTime time.Time
}

// getBinaryDir returns the directory containing the executable.
func getBinaryDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// NewApp initializes the full client stack. configPath may be empty, in
// which case VW_CONFIG and then a vw.toml beside the binary are tried.
func NewApp(configPath string) (*App, error) {
	binDir := getBinaryDir()

	if configPath == "" {
		configPath = os.Getenv("VW_CONFIG")
	}
	if configPath == "" {
		configPath = filepath.Join(binDir, "vw.toml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			configPath = "config/vw.toml" // fallback for development
		}
	}

	config, err := common.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Resolve relative credential path to binary directory
	if config.Storage.Path != "" && !filepath.IsAbs(config.Storage.Path) {
		config.Storage.Path = filepath.Join(binDir, config.Storage.Path)
	}

	logger := common.NewLoggerFromConfig(config)

	creds, err := credstore.NewStore(logger, config.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize credential store: %w", err)
	}

	sess := session.NewManager(config.Session.GetExpiryCooldown(), logger)

	client := backend.NewClient(creds, sess,
		backend.WithBaseURL(config.Backend.BaseURL),
		backend.WithRateLimit(config.Backend.RateLimit),
		backend.WithTimeout(config.Backend.GetTimeout()),
		backend.WithLogger(logger),
	)

	a := &App{
		Config:      config,
		Logger:      logger,
		Credentials: creds,
		Session:     sess,
		Backend:     client,
		Store:       store.New(),
		Dashboard:   dashboard.NewService(config.DisplayCurrency, logger),
		StartupTime: time.Now(),
	}

	// A stored credential means a prior session may still be valid.
	if client.IsAuthenticated(context.Background()) {
		sess.Activate()
	}

	return a, nil
}

// Close releases held resources.
func (a *App) Close() {
	if a.Credentials != nil {
		if err := a.Credentials.Close(); err != nil {
			a.Logger.Error().Err(err).Msg("Failed to close credential store")
		}
	}
}
