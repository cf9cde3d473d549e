package catalogs

import (
	"strings"

	"github.com/llmring/registry/pkg/errors"
)

// ModelKey is the stable identity of a model within the registry,
// formatted as "provider:model_id". It is the key used for ledger
// lookup, draft catalogues, and production catalogues.
type ModelKey string

// NewModelKey builds a key from a provider name and model identifier.
// Records without a model identifier cannot be keyed and are discarded
// upstream, so an empty component is invalid input here.
func NewModelKey(provider, modelID string) (ModelKey, error) {
	if provider == "" {
		return "", errors.NewValidationError("provider", provider, "cannot be empty")
	}
	if modelID == "" {
		return "", errors.NewValidationError("model_id", modelID, "cannot be empty")
	}
	return ModelKey(provider + ":" + modelID), nil
}

// Provider returns the provider component of the key.
func (k ModelKey) Provider() string {
	if i := strings.Index(string(k), ":"); i >= 0 {
		return string(k)[:i]
	}
	return ""
}

// ModelID returns the model identifier component of the key.
func (k ModelKey) ModelID() string {
	if i := strings.Index(string(k), ":"); i >= 0 {
		return string(k)[i+1:]
	}
	return string(k)
}

// Validate checks that the key has the provider:model_id form.
func (k ModelKey) Validate() error {
	i := strings.Index(string(k), ":")
	if i <= 0 || i == len(k)-1 {
		return errors.NewValidationError("model_key", string(k), "must have the form provider:model_id")
	}
	return nil
}

// String returns the key as a plain string.
func (k ModelKey) String() string {
	return string(k)
}
