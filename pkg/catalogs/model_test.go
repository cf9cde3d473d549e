package catalogs_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llmring/registry/pkg/catalogs"
	"github.com/llmring/registry/internal/utils/ptr"
)

func TestModelRecordRoundTrip(t *testing.T) {
	record := &catalogs.ModelRecord{
		ModelName:                     "gpt-4o",
		DisplayName:                   ptr.To("GPT-4o"),
		DollarsPerMillionTokensInput:  ptr.To(2.5),
		DollarsPerMillionTokensOutput: ptr.To(10.0),
		MaxInputTokens:                ptr.To(int64(128000)),
		SupportsVision:                ptr.To(true),
		SupportsStreaming:             ptr.To(true),
		ModelAliases:                  []string{"gpt-4o-latest"},
		UseCases:                      []string{},
		RecommendedUseCases:           []string{},
		TemperatureValues:             []float64{},
	}

	data, err := json.Marshal(record)
	require.NoError(t, err)

	var decoded catalogs.ModelRecord
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "gpt-4o", decoded.ModelName)
	assert.Equal(t, 2.5, *decoded.DollarsPerMillionTokensInput)
	assert.Equal(t, int64(128000), *decoded.MaxInputTokens)
	assert.True(t, *decoded.SupportsVision)
	assert.Equal(t, []string{"gpt-4o-latest"}, decoded.ModelAliases)
}

func TestModelRecordExtraFields(t *testing.T) {
	raw := `{
		"model_name": "gpt-4o",
		"dollars_per_million_tokens_input": 2.5,
		"internal_rating": "A",
		"rollout_phase": 3
	}`

	var record catalogs.ModelRecord
	require.NoError(t, json.Unmarshal([]byte(raw), &record))

	assert.Equal(t, "gpt-4o", record.ModelName)
	assert.Equal(t, "A", record.Extra["internal_rating"])
	assert.Equal(t, float64(3), record.Extra["rollout_phase"])

	// Extra fields survive re-serialization.
	data, err := json.Marshal(&record)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, "A", out["internal_rating"])
}

func TestModelRecordExtraNeverShadowsTypedFields(t *testing.T) {
	record := &catalogs.ModelRecord{
		ModelName: "gpt-4o",
		Extra:     map[string]any{"model_name": "bogus"},
	}

	data, err := json.Marshal(record)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, "gpt-4o", out["model_name"])
}

func TestModelRecordClone(t *testing.T) {
	record := &catalogs.ModelRecord{
		ModelName:                    "claude-sonnet-4",
		DollarsPerMillionTokensInput: ptr.To(3.0),
		ModelAliases:                 []string{"sonnet"},
	}

	clone := record.Clone()
	require.NotNil(t, clone)

	*clone.DollarsPerMillionTokensInput = 99.0
	clone.ModelAliases[0] = "changed"

	assert.Equal(t, 3.0, *record.DollarsPerMillionTokensInput)
	assert.Equal(t, "sonnet", record.ModelAliases[0])
}

func TestModelRecordAsMap(t *testing.T) {
	record := &catalogs.ModelRecord{
		ModelName:                    "gpt-4o-mini",
		DollarsPerMillionTokensInput: ptr.To(0.15),
		SupportsVision:               ptr.To(false),
	}

	fields, err := record.AsMap()
	require.NoError(t, err)

	assert.Equal(t, "gpt-4o-mini", fields["model_name"])
	assert.Equal(t, 0.15, fields["dollars_per_million_tokens_input"])
	// Explicit false is present in the map, not dropped.
	assert.Equal(t, false, fields["supports_vision"])
	// nil pointers are omitted entirely.
	_, present := fields["dollars_per_million_tokens_output"]
	assert.False(t, present)
}

func TestRecordFromMap(t *testing.T) {
	record, err := catalogs.RecordFromMap(map[string]any{
		"model_name":                       "gemini-2.5-pro",
		"dollars_per_million_tokens_input": 1.25,
		"max_output_tokens":                float64(65536),
		"supports_function_calling":        true,
		"custom_flag":                      "yes",
	})
	require.NoError(t, err)

	assert.Equal(t, "gemini-2.5-pro", record.ModelName)
	assert.Equal(t, 1.25, *record.DollarsPerMillionTokensInput)
	assert.Equal(t, int64(65536), *record.MaxOutputTokens)
	assert.True(t, *record.SupportsFunctionCalling)
	assert.Equal(t, "yes", record.Extra["custom_flag"])
}

func TestIdentifier(t *testing.T) {
	withID := &catalogs.ModelRecord{ModelName: "GPT-4o", ModelID: "gpt-4o"}
	assert.Equal(t, "gpt-4o", withID.Identifier())

	nameOnly := &catalogs.ModelRecord{ModelName: "gpt-4o"}
	assert.Equal(t, "gpt-4o", nameOnly.Identifier())
}
