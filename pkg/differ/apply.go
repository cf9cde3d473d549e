package differ

import (
	"github.com/llmring/registry/pkg/catalogs"
)

// Apply materializes a reviewed changeset onto a model set and returns a new
// mapping; the input is never mutated. Removed models are dropped, added
// models inserted, and changed fields overwritten with their new values. A
// field change whose new value is null removes the field.
//
// Applying the diff of (current, draft) to current reproduces the draft's
// reviewable content, which lets an operator edit the artifact before it is
// merged.
func (c *Changeset) Apply(models map[catalogs.ModelKey]*catalogs.ModelRecord) (map[catalogs.ModelKey]*catalogs.ModelRecord, error) {
	out := make(map[catalogs.ModelKey]*catalogs.ModelRecord, len(models))
	for key, record := range models {
		if _, removed := c.Removed[key]; removed {
			continue
		}
		out[key] = record.Clone()
	}
	for key, record := range c.Added {
		out[key] = record.Clone()
	}

	for key, changes := range c.Changed {
		record, ok := out[key]
		if !ok {
			continue
		}
		fields, err := record.AsMap()
		if err != nil {
			return nil, err
		}
		for field, change := range changes {
			if change.New == nil {
				delete(fields, field)
				continue
			}
			fields[field] = change.New
		}
		updated, err := catalogs.RecordFromMap(fields)
		if err != nil {
			return nil, err
		}
		out[key] = updated
	}

	return out, nil
}
