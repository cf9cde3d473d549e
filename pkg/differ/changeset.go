// Package differ computes the review artifact between a production
// catalogue and a draft: which models would be added or removed and which
// fields would change. The diff is a pure function of its inputs; nothing is
// mutated until a changeset is explicitly applied.
package differ

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/llmring/registry/pkg/catalogs"
)

// FieldChange records one field's old and new values.
type FieldChange struct {
	Old any `json:"old"`
	New any `json:"new"`
}

// Changeset is the review artifact between current production and a draft.
type Changeset struct {
	Added   map[catalogs.ModelKey]*catalogs.ModelRecord       `json:"added"`
	Removed map[catalogs.ModelKey]*catalogs.ModelRecord       `json:"removed"`
	Changed map[catalogs.ModelKey]map[string]FieldChange      `json:"changed"`
}

// HasChanges reports whether the changeset contains any difference.
func (c *Changeset) HasChanges() bool {
	return len(c.Added) > 0 || len(c.Removed) > 0 || len(c.Changed) > 0
}

// Summary returns a one-line human-readable description.
func (c *Changeset) Summary() string {
	if !c.HasChanges() {
		return "no changes"
	}
	parts := []string{}
	if n := len(c.Added); n > 0 {
		parts = append(parts, fmt.Sprintf("%d added", n))
	}
	if n := len(c.Removed); n > 0 {
		parts = append(parts, fmt.Sprintf("%d removed", n))
	}
	if n := len(c.Changed); n > 0 {
		parts = append(parts, fmt.Sprintf("%d changed", n))
	}
	return strings.Join(parts, ", ")
}

// Keys returns all model keys the changeset touches, sorted.
func (c *Changeset) Keys() []catalogs.ModelKey {
	seen := make(map[catalogs.ModelKey]struct{})
	for key := range c.Added {
		seen[key] = struct{}{}
	}
	for key := range c.Removed {
		seen[key] = struct{}{}
	}
	for key := range c.Changed {
		seen[key] = struct{}{}
	}
	keys := make([]catalogs.ModelKey, 0, len(seen))
	for key := range seen {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// confidence fields are extraction bookkeeping, not model content; they are
// invisible to review.
func isConfidenceField(name string) bool {
	return strings.HasSuffix(name, "_confidence")
}

// Diff compares current model records against a draft's and builds the
// changeset. A model in the draft but not in current is added; one in
// current but not the draft is removed; one in both with differing fields is
// changed, field by field.
func Diff(current, draft map[catalogs.ModelKey]*catalogs.ModelRecord) (*Changeset, error) {
	changeset := &Changeset{
		Added:   make(map[catalogs.ModelKey]*catalogs.ModelRecord),
		Removed: make(map[catalogs.ModelKey]*catalogs.ModelRecord),
		Changed: make(map[catalogs.ModelKey]map[string]FieldChange),
	}

	for key, record := range draft {
		if _, ok := current[key]; !ok {
			changeset.Added[key] = record.Clone()
		}
	}
	for key, record := range current {
		if _, ok := draft[key]; !ok {
			changeset.Removed[key] = record.Clone()
		}
	}

	for key, currentRecord := range current {
		draftRecord, ok := draft[key]
		if !ok {
			continue
		}
		changes, err := diffRecord(currentRecord, draftRecord)
		if err != nil {
			return nil, err
		}
		if len(changes) > 0 {
			changeset.Changed[key] = changes
		}
	}

	return changeset, nil
}

func diffRecord(current, draft *catalogs.ModelRecord) (map[string]FieldChange, error) {
	currentFields, err := current.AsMap()
	if err != nil {
		return nil, err
	}
	draftFields, err := draft.AsMap()
	if err != nil {
		return nil, err
	}

	changes := make(map[string]FieldChange)
	for field, draftValue := range draftFields {
		if isConfidenceField(field) {
			continue
		}
		currentValue, ok := currentFields[field]
		if !ok {
			changes[field] = FieldChange{Old: nil, New: draftValue}
			continue
		}
		if !reflect.DeepEqual(currentValue, draftValue) {
			changes[field] = FieldChange{Old: currentValue, New: draftValue}
		}
	}
	for field, currentValue := range currentFields {
		if isConfidenceField(field) {
			continue
		}
		if _, ok := draftFields[field]; !ok {
			changes[field] = FieldChange{Old: currentValue, New: nil}
		}
	}
	return changes, nil
}
