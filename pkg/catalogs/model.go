// Package catalogs defines the data model for the registry: model records,
// draft catalogues produced by extraction, and the versioned production
// catalogues served to consumers.
package catalogs

import (
	"encoding/json"
	"reflect"
	"strings"
)

// ModelRecord is one fully-typed model entry. Pointer fields distinguish a
// published value (including an explicit zero or false) from an unpublished
// one; nil means the field was never resolved or is not published.
//
// Field names follow the persisted catalogue format.
type ModelRecord struct {
	// Identity and curated metadata. Only ModelName is required; everything
	// else in this group is preserved across promotions and changes through
	// review, never through extraction.
	ModelName        string  `json:"model_name" yaml:"model_name"`
	ModelID          string  `json:"model_id,omitempty" yaml:"model_id,omitempty"`
	DisplayName      *string `json:"display_name,omitempty" yaml:"display_name,omitempty"`
	Description      *string `json:"description,omitempty" yaml:"description,omitempty"`
	ModelFamily      *string `json:"model_family,omitempty" yaml:"model_family,omitempty"`
	SpeedTier        *string `json:"speed_tier,omitempty" yaml:"speed_tier,omitempty"`
	IntelligenceTier *string `json:"intelligence_tier,omitempty" yaml:"intelligence_tier,omitempty"`
	ReleaseDate      *string `json:"release_date,omitempty" yaml:"release_date,omitempty"`
	DeprecatedDate   *string `json:"deprecated_date,omitempty" yaml:"deprecated_date,omitempty"`
	AddedDate        *string `json:"added_date,omitempty" yaml:"added_date,omitempty"`
	Notes            *string `json:"notes,omitempty" yaml:"notes,omitempty"`
	APIEndpoint      *string `json:"api_endpoint,omitempty" yaml:"api_endpoint,omitempty"`
	ToolCallFormat   *string `json:"tool_call_format,omitempty" yaml:"tool_call_format,omitempty"`

	// Pricing in dollars per million tokens. nil means unpublished.
	DollarsPerMillionTokensInput        *float64 `json:"dollars_per_million_tokens_input,omitempty" yaml:"dollars_per_million_tokens_input,omitempty"`
	DollarsPerMillionTokensOutput       *float64 `json:"dollars_per_million_tokens_output,omitempty" yaml:"dollars_per_million_tokens_output,omitempty"`
	DollarsPerMillionTokensCachedInput  *float64 `json:"dollars_per_million_tokens_cached_input,omitempty" yaml:"dollars_per_million_tokens_cached_input,omitempty"`
	DollarsPerMillionTokensCacheRead    *float64 `json:"dollars_per_million_tokens_cache_read,omitempty" yaml:"dollars_per_million_tokens_cache_read,omitempty"`
	DollarsPerMillionTokensCacheWrite5m *float64 `json:"dollars_per_million_tokens_cache_write_5m,omitempty" yaml:"dollars_per_million_tokens_cache_write_5m,omitempty"`
	DollarsPerMillionTokensCacheWrite1h *float64 `json:"dollars_per_million_tokens_cache_write_1h,omitempty" yaml:"dollars_per_million_tokens_cache_write_1h,omitempty"`

	// Token limits and tier requirement. RequiresTier may legitimately be 0.
	MaxInputTokens  *int64 `json:"max_input_tokens,omitempty" yaml:"max_input_tokens,omitempty"`
	MaxOutputTokens *int64 `json:"max_output_tokens,omitempty" yaml:"max_output_tokens,omitempty"`
	MaxTools        *int64 `json:"max_tools,omitempty" yaml:"max_tools,omitempty"`
	RequiresTier    *int64 `json:"requires_tier,omitempty" yaml:"requires_tier,omitempty"`

	// Capability and status flags.
	SupportsVision            *bool `json:"supports_vision,omitempty" yaml:"supports_vision,omitempty"`
	SupportsFunctionCalling   *bool `json:"supports_function_calling,omitempty" yaml:"supports_function_calling,omitempty"`
	SupportsJSONMode          *bool `json:"supports_json_mode,omitempty" yaml:"supports_json_mode,omitempty"`
	SupportsParallelToolCalls *bool `json:"supports_parallel_tool_calls,omitempty" yaml:"supports_parallel_tool_calls,omitempty"`
	SupportsStreaming         *bool `json:"supports_streaming,omitempty" yaml:"supports_streaming,omitempty"`
	SupportsAudio             *bool `json:"supports_audio,omitempty" yaml:"supports_audio,omitempty"`
	SupportsDocuments         *bool `json:"supports_documents,omitempty" yaml:"supports_documents,omitempty"`
	SupportsJSONSchema        *bool `json:"supports_json_schema,omitempty" yaml:"supports_json_schema,omitempty"`
	SupportsLogprobs          *bool `json:"supports_logprobs,omitempty" yaml:"supports_logprobs,omitempty"`
	SupportsMultipleResponses *bool `json:"supports_multiple_responses,omitempty" yaml:"supports_multiple_responses,omitempty"`
	SupportsCaching           *bool `json:"supports_caching,omitempty" yaml:"supports_caching,omitempty"`
	SupportsTemperature       *bool `json:"supports_temperature,omitempty" yaml:"supports_temperature,omitempty"`
	SupportsSystemMessage     *bool `json:"supports_system_message,omitempty" yaml:"supports_system_message,omitempty"`
	SupportsPDFInput          *bool `json:"supports_pdf_input,omitempty" yaml:"supports_pdf_input,omitempty"`
	SupportsToolChoice        *bool `json:"supports_tool_choice,omitempty" yaml:"supports_tool_choice,omitempty"`
	IsReasoningModel          *bool `json:"is_reasoning_model,omitempty" yaml:"is_reasoning_model,omitempty"`
	IsActive                  *bool `json:"is_active,omitempty" yaml:"is_active,omitempty"`
	RequiresWaitlist          *bool `json:"requires_waitlist,omitempty" yaml:"requires_waitlist,omitempty"`
	RequiresFlatInput         *bool `json:"requires_flat_input,omitempty" yaml:"requires_flat_input,omitempty"`

	// List fields. Normalization guarantees non-nil slices so these
	// serialize as [] rather than null.
	ModelAliases        []string  `json:"model_aliases" yaml:"model_aliases"`
	RecommendedUseCases []string  `json:"recommended_use_cases" yaml:"recommended_use_cases"`
	UseCases            []string  `json:"use_cases" yaml:"use_cases"`
	TemperatureValues   []float64 `json:"temperature_values" yaml:"temperature_values"`

	// Extra holds fields the struct does not model, such as operator-curated
	// additions. They survive JSON round trips and merges untouched.
	Extra map[string]any `json:"-" yaml:"-"`
}

// knownJSONFields lists the JSON names claimed by ModelRecord's typed fields.
var knownJSONFields = func() map[string]bool {
	known := make(map[string]bool)
	t := reflect.TypeOf(ModelRecord{})
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("json")
		if tag == "" || tag == "-" {
			continue
		}
		name := strings.Split(tag, ",")[0]
		known[name] = true
	}
	return known
}()

// modelRecordAlias avoids recursing into the custom marshalers.
type modelRecordAlias ModelRecord

// MarshalJSON emits the typed fields plus any Extra fields. A typed field
// always wins over an Extra entry with the same name.
func (m ModelRecord) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(modelRecordAlias(m))
	if err != nil {
		return nil, err
	}
	if len(m.Extra) == 0 {
		return data, nil
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	for k, v := range m.Extra {
		if knownJSONFields[k] {
			continue
		}
		out[k] = v
	}
	return json.Marshal(out)
}

// UnmarshalJSON fills the typed fields and routes unrecognized keys to Extra.
func (m *ModelRecord) UnmarshalJSON(data []byte) error {
	var alias modelRecordAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}
	*m = ModelRecord(alias)

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for k, rawVal := range raw {
		if knownJSONFields[k] {
			continue
		}
		var v any
		if err := json.Unmarshal(rawVal, &v); err != nil {
			return err
		}
		if m.Extra == nil {
			m.Extra = make(map[string]any)
		}
		m.Extra[k] = v
	}
	return nil
}

// AsMap returns the record as a field-name-keyed map, the shape used by the
// merge engine and the content hasher.
func (m *ModelRecord) AsMap() (map[string]any, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RecordFromMap builds a typed record from a field-name-keyed map.
func RecordFromMap(fields map[string]any) (*ModelRecord, error) {
	data, err := json.Marshal(fields)
	if err != nil {
		return nil, err
	}
	var record ModelRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// Clone returns a deep copy of the record.
func (m *ModelRecord) Clone() *ModelRecord {
	if m == nil {
		return nil
	}
	data, err := json.Marshal(m)
	if err != nil {
		clone := *m
		return &clone
	}
	var clone ModelRecord
	if err := json.Unmarshal(data, &clone); err != nil {
		shallow := *m
		return &shallow
	}
	return &clone
}

// Identifier returns the model identifier used for keying, preferring the
// explicit model_id over the model name.
func (m *ModelRecord) Identifier() string {
	if m.ModelID != "" {
		return m.ModelID
	}
	return m.ModelName
}
