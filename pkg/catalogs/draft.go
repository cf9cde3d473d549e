package catalogs

import (
	"github.com/agentstation/utc"

	"github.com/llmring/registry/pkg/errors"
)

// SourceSummary counts the documents that contributed to an extraction run,
// broken down by source type.
type SourceSummary struct {
	Documents       int `json:"documents" yaml:"documents"`
	PNGFiles        int `json:"png_files" yaml:"png_files"`
	PDFFiles        int `json:"pdf_files" yaml:"pdf_files"`
	MarkdownFiles   int `json:"md_files" yaml:"md_files"`
	ModelsExtracted int `json:"models_extracted" yaml:"models_extracted"`
}

// DraftCatalogue is the output of one provider's extraction run: the
// resolved, paid-filtered model records awaiting review and promotion.
// A draft is immutable once assembled.
type DraftCatalogue struct {
	Provider       string                    `json:"provider" yaml:"provider"`
	ExtractionDate utc.Time                  `json:"extraction_date" yaml:"extraction_date"`
	Sources        SourceSummary             `json:"sources" yaml:"sources"`
	Models         map[ModelKey]*ModelRecord `json:"models" yaml:"models"`
}

// Validate performs the structural checks required before a draft may be
// promoted: a models mapping must exist, every key must be well-formed and
// belong to this provider, and each record must carry a model name.
func (d *DraftCatalogue) Validate() error {
	if d.Provider == "" {
		return errors.NewValidationError("provider", nil, "cannot be empty")
	}
	if d.Models == nil {
		return errors.NewValidationError("models", nil, "missing models mapping")
	}
	for key, record := range d.Models {
		if err := key.Validate(); err != nil {
			return err
		}
		if key.Provider() != d.Provider {
			return errors.NewValidationError("models", string(key), "key provider does not match catalogue provider")
		}
		if record == nil || record.ModelName == "" {
			return errors.NewValidationError("model_name", string(key), "record missing model name")
		}
	}
	return nil
}
