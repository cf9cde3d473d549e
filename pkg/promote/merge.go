// Package promote merges draft catalogues into production and commits new
// versions. Merging is a pure, in-memory transformation; the caller owns
// loading the current catalogue and persisting the committed result.
package promote

import (
	"github.com/llmring/registry/pkg/catalogs"
	"github.com/llmring/registry/pkg/errors"
	"github.com/llmring/registry/pkg/fields"
)

// Merge applies a draft onto the current production catalogue and returns a
// new catalogue instance. Neither input is mutated.
//
// Rules, per model:
//   - present in both: start from the current record; overwrite only
//     update-class fields (pricing, token limits, capability flags) that the
//     draft carries with a non-null value. An explicit 0 or false is a value
//     and does overwrite. Curated fields always come from current, even when
//     the draft carries them; free-text changes go through review.
//   - present only in the draft: inserted verbatim.
//   - present only in current: preserved untouched. Promotion never deletes.
//
// Provider-level extraction metadata is always taken from the draft.
func Merge(current *catalogs.ProductionCatalogue, draft *catalogs.DraftCatalogue) (*catalogs.ProductionCatalogue, error) {
	if draft == nil {
		return nil, errors.NewValidationError("draft", nil, "cannot be nil")
	}
	if current == nil {
		current = catalogs.NewProductionCatalogue(draft.Provider)
	}

	merged := &catalogs.ProductionCatalogue{
		Provider:       draft.Provider,
		Version:        current.Version,
		UpdatedAt:      current.UpdatedAt,
		ExtractionDate: draft.ExtractionDate,
		Sources:        draft.Sources,
		Models:         make(map[catalogs.ModelKey]*catalogs.ModelRecord, len(current.Models)+len(draft.Models)),
	}

	for key, record := range current.Models {
		if draftRecord, ok := draft.Models[key]; ok {
			mergedRecord, err := mergeRecord(record, draftRecord)
			if err != nil {
				return nil, errors.NewMergeError(draft.Provider, []string{string(key)}, err)
			}
			merged.Models[key] = mergedRecord
		} else {
			merged.Models[key] = record.Clone()
		}
	}
	for key, record := range draft.Models {
		if _, ok := current.Models[key]; !ok {
			merged.Models[key] = record.Clone()
		}
	}

	return merged, nil
}

// mergeRecord folds a draft record onto the current one field by field.
// Only update-class fields present and non-null in the draft overwrite.
func mergeRecord(current, draft *catalogs.ModelRecord) (*catalogs.ModelRecord, error) {
	base, err := current.AsMap()
	if err != nil {
		return nil, err
	}
	overlay, err := draft.AsMap()
	if err != nil {
		return nil, err
	}

	for field, value := range overlay {
		if !fields.IsUpdateField(field) {
			continue
		}
		if value == nil {
			continue
		}
		base[field] = value
	}

	return catalogs.RecordFromMap(base)
}
