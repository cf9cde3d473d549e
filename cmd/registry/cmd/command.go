// Package cmd implements the registry subcommands.
package cmd

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/llmring/registry/internal/store"
	"github.com/llmring/registry/pkg/extract"
)

// AppContext defines what the subcommands need from the application. The
// narrow interface keeps commands testable without a full app.
type AppContext interface {
	Logger() *zerolog.Logger
	Store() *store.Store
	Format() string
	Version() string
	Commit() string
	Date() string
	NewEngine(ctx context.Context) (extract.Engine, error)
}
