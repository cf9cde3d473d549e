package catalogs_test

import (
	"testing"

	"github.com/llmring/registry/pkg/catalogs"
	"github.com/llmring/registry/pkg/errors"
)

func TestNewModelKey(t *testing.T) {
	key, err := catalogs.NewModelKey("openai", "gpt-4o")
	if err != nil {
		t.Fatalf("NewModelKey() error = %v", err)
	}
	if key != "openai:gpt-4o" {
		t.Errorf("NewModelKey() = %q, want %q", key, "openai:gpt-4o")
	}
	if key.Provider() != "openai" {
		t.Errorf("Provider() = %q, want %q", key.Provider(), "openai")
	}
	if key.ModelID() != "gpt-4o" {
		t.Errorf("ModelID() = %q, want %q", key.ModelID(), "gpt-4o")
	}
}

func TestNewModelKeyEmptyComponents(t *testing.T) {
	if _, err := catalogs.NewModelKey("", "gpt-4o"); !errors.IsValidationError(err) {
		t.Errorf("empty provider: error = %v, want validation error", err)
	}
	if _, err := catalogs.NewModelKey("openai", ""); !errors.IsValidationError(err) {
		t.Errorf("empty model id: error = %v, want validation error", err)
	}
}

func TestModelKeyValidate(t *testing.T) {
	tests := []struct {
		key   catalogs.ModelKey
		valid bool
	}{
		{"openai:gpt-4o", true},
		{"anthropic:claude-sonnet-4", true},
		{"gpt-4o", false},
		{":gpt-4o", false},
		{"openai:", false},
		{"", false},
	}
	for _, tt := range tests {
		err := tt.key.Validate()
		if tt.valid && err != nil {
			t.Errorf("Validate(%q) = %v, want nil", tt.key, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("Validate(%q) = nil, want error", tt.key)
		}
	}
}

func TestModelKeyColonInModelID(t *testing.T) {
	// Model IDs may contain colons; only the first separates the provider.
	key := catalogs.ModelKey("vertex:publishers/anthropic:claude")
	if key.Provider() != "vertex" {
		t.Errorf("Provider() = %q, want %q", key.Provider(), "vertex")
	}
	if key.ModelID() != "publishers/anthropic:claude" {
		t.Errorf("ModelID() = %q", key.ModelID())
	}
}
