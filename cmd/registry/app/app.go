// Package app provides the application context and dependency management
// for the registry CLI. It centralizes configuration, logging, and access
// to the catalogue store.
package app

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/llmring/registry/internal/sources/gemini"
	"github.com/llmring/registry/internal/store"
	"github.com/llmring/registry/pkg/errors"
	"github.com/llmring/registry/pkg/extract"
)

// App represents the registry application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Catalogue store (lazy-initialized, singleton)
	mu    sync.Mutex
	store *store.Store

	// newEngine builds the extraction engine; overridable for testing.
	newEngine func(ctx context.Context) (extract.Engine, error)
}

// New creates a new App instance with the given version information.
func New(version, commit, date string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	app.newEngine = func(ctx context.Context) (extract.Engine, error) {
		var engineOpts []gemini.Option
		if config.ExtractionModel != "" {
			engineOpts = append(engineOpts, gemini.WithModel(config.ExtractionModel))
		}
		return gemini.New(ctx, engineOpts...)
	}

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}
	return app, nil
}

// Version returns the version string.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// Format returns the effective output format.
func (a *App) Format() string {
	return a.config.Format
}

// Store returns the catalogue store rooted at the configured data
// directory, creating it lazily.
func (a *App) Store() *store.Store {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.store == nil {
		a.store = store.New(a.config.DataDir)
	}
	return a.store
}

// NewEngine builds the extraction engine from configuration.
func (a *App) NewEngine(ctx context.Context) (extract.Engine, error) {
	return a.newEngine(ctx)
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithStore sets a custom store (useful for testing).
func WithStore(s *store.Store) Option {
	return func(a *App) error {
		a.store = s
		return nil
	}
}

// WithEngineFactory overrides how the extraction engine is built.
func WithEngineFactory(factory func(ctx context.Context) (extract.Engine, error)) Option {
	return func(a *App) error {
		a.newEngine = factory
		return nil
	}
}
