package cmd

import (
	"context"
	"testing"
	"time"

	"github.com/agentstation/utc"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llmring/registry/internal/store"
	"github.com/llmring/registry/internal/utils/ptr"
	"github.com/llmring/registry/pkg/catalogs"
	"github.com/llmring/registry/pkg/extract"
	"github.com/llmring/registry/pkg/logging"
)

// fakeApp implements AppContext for command tests.
type fakeApp struct {
	store  *store.Store
	logger *zerolog.Logger
	format string
	engine extract.Engine
}

func newFakeApp(t *testing.T) *fakeApp {
	t.Helper()
	return &fakeApp{
		store:  store.New(t.TempDir()),
		logger: logging.NewTestLogger(t).Logger,
		format: "json",
	}
}

func (a *fakeApp) Logger() *zerolog.Logger { return a.logger }
func (a *fakeApp) Store() *store.Store     { return a.store }
func (a *fakeApp) Format() string          { return a.format }
func (a *fakeApp) Version() string         { return "test" }
func (a *fakeApp) Commit() string          { return "none" }
func (a *fakeApp) Date() string            { return "today" }

func (a *fakeApp) NewEngine(context.Context) (extract.Engine, error) {
	return a.engine, nil
}

func commandDraft(provider string, inputPrice float64) *catalogs.DraftCatalogue {
	key := catalogs.ModelKey(provider + ":gpt-4o")
	return &catalogs.DraftCatalogue{
		Provider:       provider,
		ExtractionDate: utc.Time{Time: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)},
		Sources:        catalogs.SourceSummary{Documents: 1, ModelsExtracted: 1},
		Models: map[catalogs.ModelKey]*catalogs.ModelRecord{
			key: {
				ModelName:                     "gpt-4o",
				ModelID:                       "gpt-4o",
				DollarsPerMillionTokensInput:  ptr.Float64(inputPrice),
				DollarsPerMillionTokensOutput: ptr.Float64(10.0),
			},
		},
	}
}

func TestPromoteProviderFirstVersion(t *testing.T) {
	app := newFakeApp(t)
	_, err := app.store.SaveDraft(commandDraft("openai", 2.5))
	require.NoError(t, err)

	outcome := promoteProvider(app, "openai")

	assert.Equal(t, "promoted", outcome.Status)
	assert.Equal(t, 1, outcome.Version)
	assert.Equal(t, 1, outcome.Models)
}

func TestPromoteProviderNoChanges(t *testing.T) {
	app := newFakeApp(t)
	_, err := app.store.SaveDraft(commandDraft("openai", 2.5))
	require.NoError(t, err)

	require.Equal(t, "promoted", promoteProvider(app, "openai").Status)
	outcome := promoteProvider(app, "openai")

	assert.Equal(t, "no changes", outcome.Status)
	assert.Zero(t, outcome.Version)
}

func TestPromoteProviderMissingDraft(t *testing.T) {
	app := newFakeApp(t)

	outcome := promoteProvider(app, "openai")

	assert.Equal(t, "failed", outcome.Status)
	assert.NotEmpty(t, outcome.Error)
}

func TestDraftProviders(t *testing.T) {
	app := newFakeApp(t)
	_, err := app.store.SaveDraft(commandDraft("openai", 2.5))
	require.NoError(t, err)
	_, err = app.store.SaveDraft(commandDraft("anthropic", 3.0))
	require.NoError(t, err)

	providers, err := draftProviders(app)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"openai", "anthropic"}, providers)
}
