package catalogs

import (
	"github.com/agentstation/utc"

	"github.com/llmring/registry/pkg/errors"
)

// ProductionCatalogue is the persisted, versioned model registry for one
// provider. Version starts absent (zero) and increases by exactly one per
// promotion that changes content. ContentHash is a pure function of the
// catalogue content excluding the hash field itself.
//
// Promotions never mutate a catalogue in place; each produces a new instance.
type ProductionCatalogue struct {
	Provider       string                    `json:"provider" yaml:"provider"`
	Version        int                       `json:"version" yaml:"version"`
	UpdatedAt      utc.Time                  `json:"updated_at" yaml:"updated_at"`
	ContentHash    string                    `json:"content_sha256_jcs,omitempty" yaml:"content_sha256_jcs,omitempty"`
	ExtractionDate utc.Time                  `json:"extraction_date" yaml:"extraction_date"`
	Sources        SourceSummary             `json:"sources" yaml:"sources"`
	Models         map[ModelKey]*ModelRecord `json:"models" yaml:"models"`
}

// NewProductionCatalogue returns an empty catalogue for a provider,
// the starting point for a first promotion.
func NewProductionCatalogue(provider string) *ProductionCatalogue {
	return &ProductionCatalogue{
		Provider: provider,
		Models:   make(map[ModelKey]*ModelRecord),
	}
}

// Clone returns a deep copy of the catalogue.
func (c *ProductionCatalogue) Clone() *ProductionCatalogue {
	if c == nil {
		return nil
	}
	clone := *c
	clone.Models = make(map[ModelKey]*ModelRecord, len(c.Models))
	for key, record := range c.Models {
		clone.Models[key] = record.Clone()
	}
	return &clone
}

// Validate checks structural integrity of a loaded catalogue.
func (c *ProductionCatalogue) Validate() error {
	if c.Provider == "" {
		return errors.NewValidationError("provider", nil, "cannot be empty")
	}
	if c.Version < 0 {
		return errors.NewValidationError("version", c.Version, "must be non-negative")
	}
	for key := range c.Models {
		if err := key.Validate(); err != nil {
			return err
		}
	}
	return nil
}
