package reconcile

import (
	"github.com/agentstation/utc"

	"github.com/llmring/registry/pkg/catalogs"
)

// AssembleDraft resolves every accumulated ledger, normalizes the records,
// applies the paid-model filter, and packages the survivors as the
// provider's draft catalogue. The ledgers are terminal after this call and
// must not be accumulated into again.
//
// Returns the draft and the number of records the paid filter dropped.
func AssembleDraft(ledgers *Ledgers, sources catalogs.SourceSummary) (*catalogs.DraftCatalogue, int, error) {
	resolved := make(map[catalogs.ModelKey]*catalogs.ModelRecord, ledgers.Len())
	for _, key := range ledgers.Keys() {
		record, err := Resolve(key, ledgers.Ledger(key))
		if err != nil {
			return nil, 0, err
		}
		Normalize(record)
		resolved[key] = record
	}

	models, filtered := FilterPaid(resolved)
	sources.ModelsExtracted = len(models)

	draft := &catalogs.DraftCatalogue{
		Provider:       ledgers.Provider(),
		ExtractionDate: utc.Now(),
		Sources:        sources,
		Models:         models,
	}
	return draft, filtered, nil
}
