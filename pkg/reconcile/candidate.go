// Package reconcile folds noisy per-document candidate records into one
// consensus record per model. Accumulation is a two-phase process: a
// write-only FieldLedger collects validated votes across documents, then a
// single resolution pass picks one winning value per field. The two phases
// never share a structure; a ledger is consumed exactly once.
package reconcile

import "strings"

// CandidateRecord is one document's raw extraction output for one model:
// a flat, untyped field mapping. It has no identity beyond its model
// identifier field and is not retained after accumulation.
type CandidateRecord map[string]any

// ModelIdentifier returns the candidate's model identifier, preferring
// model_id over model_name. An empty result means the record cannot be keyed
// and must be discarded.
func (c CandidateRecord) ModelIdentifier() string {
	for _, field := range []string{"model_id", "model_name"} {
		if v, ok := c[field]; ok {
			if s, ok := v.(string); ok {
				if s = strings.TrimSpace(s); s != "" {
					return s
				}
			}
		}
	}
	return ""
}
