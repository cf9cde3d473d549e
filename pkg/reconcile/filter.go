package reconcile

import "github.com/llmring/registry/pkg/catalogs"

// IsPaid reports whether a resolved record carries strictly positive base
// input and output pricing. This is the sole gate deciding whether a model
// is a real, billable offering.
func IsPaid(record *catalogs.ModelRecord) bool {
	if record == nil {
		return false
	}
	in := record.DollarsPerMillionTokensInput
	out := record.DollarsPerMillionTokensOutput
	return in != nil && *in > 0 && out != nil && *out > 0
}

// FilterPaid drops records without strictly positive base pricing and
// returns the survivors plus the number filtered out. The count is reported,
// never treated as an error.
func FilterPaid(records map[catalogs.ModelKey]*catalogs.ModelRecord) (map[catalogs.ModelKey]*catalogs.ModelRecord, int) {
	kept := make(map[catalogs.ModelKey]*catalogs.ModelRecord, len(records))
	filtered := 0
	for key, record := range records {
		if IsPaid(record) {
			kept[key] = record
		} else {
			filtered++
		}
	}
	return kept, filtered
}
