// Package constants provides shared constants used throughout the registry codebase.
// This includes timeouts, limits, file permissions, and other configuration values
// that should be consistent across the application.
package constants

import "time"

// Timeout constants define various timeout durations used in the application
const (
	// DefaultTimeout is the standard timeout for general operations
	DefaultTimeout = 10 * time.Second

	// ExtractionTimeout is the per-document budget for a single extraction call
	ExtractionTimeout = 180 * time.Second

	// CommandTimeout is the default timeout for CLI commands
	CommandTimeout = 10 * time.Minute

	// TimeoutRetryBackoff is the pause before retrying a timed-out extraction
	TimeoutRetryBackoff = 2 * time.Second

	// ErrorRetryBackoff is the pause before retrying a failed extraction
	ErrorRetryBackoff = 3 * time.Second
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644

	// SecureFilePermissions is for sensitive files like API keys (rw-------)
	SecureFilePermissions = 0600
)

// Limit constants define various limits and capacities
const (
	// MaxExtractionAttempts bounds retries for a single document extraction.
	// One retry after the initial attempt; a second failure skips the document.
	MaxExtractionAttempts = 2

	// MaxConcurrentProviders is the maximum number of providers processed concurrently
	MaxConcurrentProviders = 5

	// DefaultPageSize is the default number of items per page for paginated results
	DefaultPageSize = 100
)

// Path constants name the on-disk catalogue layout relative to the data root
const (
	// DraftsDir holds per-provider draft catalogues awaiting review
	DraftsDir = "drafts"

	// ModelsDir holds the current production catalogue per provider
	ModelsDir = "models"

	// PagesDir holds the published catalogue tree, including version archives
	PagesDir = "pages"

	// ManifestFile summarizes per-provider versions and update times
	ManifestFile = "manifest.json"
)

// Format constants
const (
	// TimeFormatISO8601 is the ISO 8601 time format
	TimeFormatISO8601 = time.RFC3339

	// TimeFormatDraftDate is the date stamp embedded in draft filenames
	TimeFormatDraftDate = "2006-01-02"
)

// SchemaVersion identifies the persisted catalogue schema generation.
const SchemaVersion = "3.0"
