package catalogs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/llmring/registry/pkg/catalogs"
	"github.com/llmring/registry/pkg/errors"
)

func validDraft() *catalogs.DraftCatalogue {
	return &catalogs.DraftCatalogue{
		Provider: "openai",
		Sources:  catalogs.SourceSummary{Documents: 2, ModelsExtracted: 1},
		Models: map[catalogs.ModelKey]*catalogs.ModelRecord{
			"openai:gpt-4o": {ModelName: "gpt-4o"},
		},
	}
}

func TestDraftValidate(t *testing.T) {
	assert.NoError(t, validDraft().Validate())
}

func TestDraftValidateMissingModels(t *testing.T) {
	draft := validDraft()
	draft.Models = nil
	err := draft.Validate()
	assert.True(t, errors.IsValidationError(err))
}

func TestDraftValidateForeignKey(t *testing.T) {
	draft := validDraft()
	draft.Models["anthropic:claude"] = &catalogs.ModelRecord{ModelName: "claude"}
	assert.Error(t, draft.Validate())
}

func TestDraftValidateMalformedKey(t *testing.T) {
	draft := validDraft()
	draft.Models["gpt-4o"] = &catalogs.ModelRecord{ModelName: "gpt-4o"}
	assert.Error(t, draft.Validate())
}

func TestDraftValidateMissingModelName(t *testing.T) {
	draft := validDraft()
	draft.Models["openai:gpt-4o"] = &catalogs.ModelRecord{}
	assert.Error(t, draft.Validate())
}

func TestProductionClone(t *testing.T) {
	current := catalogs.NewProductionCatalogue("openai")
	current.Version = 3
	current.Models["openai:gpt-4o"] = &catalogs.ModelRecord{ModelName: "gpt-4o"}

	clone := current.Clone()
	clone.Version = 4
	clone.Models["openai:gpt-4o"].ModelName = "changed"
	clone.Models["openai:gpt-4o-mini"] = &catalogs.ModelRecord{ModelName: "gpt-4o-mini"}

	assert.Equal(t, 3, current.Version)
	assert.Equal(t, "gpt-4o", current.Models["openai:gpt-4o"].ModelName)
	assert.Len(t, current.Models, 1)
}

func TestProductionValidate(t *testing.T) {
	catalogue := catalogs.NewProductionCatalogue("openai")
	assert.NoError(t, catalogue.Validate())

	catalogue.Version = -1
	assert.Error(t, catalogue.Validate())
}

func TestBuildManifest(t *testing.T) {
	a := catalogs.NewProductionCatalogue("openai")
	a.Version = 2
	a.Models["openai:gpt-4o"] = &catalogs.ModelRecord{ModelName: "gpt-4o"}
	b := catalogs.NewProductionCatalogue("anthropic")
	b.Version = 5

	manifest := catalogs.BuildManifest([]*catalogs.ProductionCatalogue{a, b, nil})

	assert.Equal(t, "3.0", manifest.SchemaVersion)
	assert.Equal(t, 2, manifest.Providers["openai"].Version)
	assert.Equal(t, 1, manifest.Providers["openai"].ModelCount)
	assert.Equal(t, 5, manifest.Providers["anthropic"].Version)
	assert.Equal(t, []string{"anthropic", "openai"}, manifest.ProviderNames())
}
