package reconcile

import (
	"reflect"

	"github.com/llmring/registry/pkg/catalogs"
	"github.com/llmring/registry/pkg/fields"
)

// Resolve picks one winning value per field from a model's ledger and builds
// the typed record. It runs once, after the provider's full document sequence
// has been accumulated, so every winner reflects the complete evidence set.
//
// Class rules:
//   - PRICE: most frequent strictly-positive vote; if no positive vote
//     exists the field resolves to null. A price of exactly 0 from every
//     source means "unknown", not "free".
//   - COUNT: same positive preference, but falls back to the most frequent
//     vote including zero; a model may legitimately report zero. The tier
//     requirement field uses a plain majority since zero is a published tier.
//   - CAPABILITY_BOOL: majority over boolean votes.
//   - LIST, SCALAR_STRING, OTHER: majority over non-null votes with deep
//     equality grouping.
//
// All ties break to the first-encountered value in vote order.
func Resolve(key catalogs.ModelKey, ledger *FieldLedger) (*catalogs.ModelRecord, error) {
	resolved := make(map[string]any)

	for _, field := range ledger.Fields() {
		votes := ledger.Votes(field)
		if len(votes) == 0 {
			continue
		}
		switch fields.Classify(field) {
		case fields.ClassPrice:
			if winner, ok := resolvePositive(votes); ok {
				resolved[field] = winner
			}
		case fields.ClassCount:
			if field == fields.TierRequirementField {
				resolved[field] = mostFrequent(votes)
				break
			}
			if winner, ok := resolvePositive(votes); ok {
				resolved[field] = winner
			} else {
				resolved[field] = mostFrequent(votes)
			}
		default:
			resolved[field] = mostFrequent(votes)
		}
	}

	record, err := catalogs.RecordFromMap(resolved)
	if err != nil {
		return nil, err
	}
	if record.ModelName == "" {
		record.ModelName = key.ModelID()
	}
	return record, nil
}

// resolvePositive returns the most frequent strictly-positive vote, or
// ok=false when no positive vote exists.
func resolvePositive(votes []any) (any, bool) {
	positive := make([]any, 0, len(votes))
	for _, v := range votes {
		switch n := v.(type) {
		case float64:
			if n > 0 {
				positive = append(positive, v)
			}
		case int64:
			if n > 0 {
				positive = append(positive, v)
			}
		}
	}
	if len(positive) == 0 {
		return nil, false
	}
	return mostFrequent(positive), true
}

// mostFrequent returns the vote with the highest occurrence count. Values
// are grouped by deep equality so structurally equal lists count as one
// candidate. Groups are built in vote order and a strict comparison keeps
// the earliest group on ties.
func mostFrequent(votes []any) any {
	type group struct {
		value any
		count int
	}
	var groups []group
	for _, vote := range votes {
		matched := false
		for i := range groups {
			if reflect.DeepEqual(groups[i].value, vote) {
				groups[i].count++
				matched = true
				break
			}
		}
		if !matched {
			groups = append(groups, group{value: vote, count: 1})
		}
	}
	best := groups[0]
	for _, g := range groups[1:] {
		if g.count > best.count {
			best = g
		}
	}
	return best.value
}
