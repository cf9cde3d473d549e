package fields_test

import (
	"testing"

	"github.com/llmring/registry/pkg/fields"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		field string
		want  fields.Class
	}{
		{"base input price", "dollars_per_million_tokens_input", fields.ClassPrice},
		{"base output price", "dollars_per_million_tokens_output", fields.ClassPrice},
		{"cached input price", "dollars_per_million_tokens_cached_input", fields.ClassPrice},
		{"cache write price", "dollars_per_million_tokens_cache_write_5m", fields.ClassPrice},
		{"input token limit", "max_input_tokens", fields.ClassCount},
		{"output token limit", "max_output_tokens", fields.ClassCount},
		{"tool limit", "max_tools", fields.ClassCount},
		{"tier requirement", "requires_tier", fields.ClassCount},
		{"vision flag", "supports_vision", fields.ClassCapabilityBool},
		{"streaming flag", "supports_streaming", fields.ClassCapabilityBool},
		{"reasoning flag", "is_reasoning_model", fields.ClassCapabilityBool},
		{"active flag", "is_active", fields.ClassCapabilityBool},
		{"waitlist flag", "requires_waitlist", fields.ClassCapabilityBool},
		{"flat input flag", "requires_flat_input", fields.ClassCapabilityBool},
		{"aliases", "model_aliases", fields.ClassList},
		{"use cases", "use_cases", fields.ClassList},
		{"recommended use cases", "recommended_use_cases", fields.ClassList},
		{"temperature values", "temperature_values", fields.ClassList},
		{"model name", "model_name", fields.ClassScalarString},
		{"display name", "display_name", fields.ClassScalarString},
		{"description", "description", fields.ClassScalarString},
		{"family", "model_family", fields.ClassScalarString},
		{"release date", "release_date", fields.ClassScalarString},
		{"notes", "notes", fields.ClassScalarString},
		{"unknown numeric", "max_temperature", fields.ClassOther},
		{"unknown field", "context_strategy", fields.ClassOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fields.Classify(tt.field); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.field, got, tt.want)
			}
		})
	}
}

func TestIsUpdateField(t *testing.T) {
	update := []string{
		"dollars_per_million_tokens_input",
		"dollars_per_million_tokens_output",
		"max_input_tokens",
		"max_output_tokens",
		"max_tools",
		"requires_tier",
		"supports_vision",
		"supports_function_calling",
		"is_reasoning_model",
		"requires_waitlist",
	}
	for _, field := range update {
		if !fields.IsUpdateField(field) {
			t.Errorf("IsUpdateField(%q) = false, want true", field)
		}
	}

	curated := []string{
		"model_name",
		"display_name",
		"description",
		"notes",
		"model_aliases",
		"use_cases",
		"release_date",
		"speed_tier",
		"max_temperature",
	}
	for _, field := range curated {
		if fields.IsUpdateField(field) {
			t.Errorf("IsUpdateField(%q) = true, want false", field)
		}
	}
}

func TestClassString(t *testing.T) {
	tests := map[fields.Class]string{
		fields.ClassPrice:          "price",
		fields.ClassCount:          "count",
		fields.ClassCapabilityBool: "capability",
		fields.ClassList:           "list",
		fields.ClassScalarString:   "string",
		fields.ClassOther:          "other",
	}
	for class, want := range tests {
		if got := class.String(); got != want {
			t.Errorf("Class(%d).String() = %q, want %q", class, got, want)
		}
	}
}
