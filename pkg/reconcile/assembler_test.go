package reconcile

import (
	"testing"

	"github.com/llmring/registry/pkg/catalogs"
)

// Two documents for one provider: the second outweighs the first on price
// and the paid filter drops the free tier model.
func TestAssembleDraft(t *testing.T) {
	ledgers := NewLedgers("openai")

	ledgers.Accumulate([]CandidateRecord{
		{
			"model_id":                          "gpt-4o",
			"dollars_per_million_tokens_input":  5.0,
			"dollars_per_million_tokens_output": 15.0,
			"supports_vision":                   true,
		},
		{
			"model_id":                          "free-tier",
			"dollars_per_million_tokens_input":  0.0,
			"dollars_per_million_tokens_output": 0.0,
		},
	})
	ledgers.Accumulate([]CandidateRecord{
		{
			"model_id":                          "gpt-4o",
			"dollars_per_million_tokens_input":  2.5,
			"dollars_per_million_tokens_output": 10.0,
		},
		{
			"model_id":                          "gpt-4o",
			"dollars_per_million_tokens_input":  2.5,
			"dollars_per_million_tokens_output": 10.0,
		},
	})

	draft, filtered, err := AssembleDraft(ledgers, catalogs.SourceSummary{Documents: 2, MarkdownFiles: 2})
	if err != nil {
		t.Fatal(err)
	}

	if draft.Provider != "openai" {
		t.Errorf("provider = %q", draft.Provider)
	}
	if filtered != 1 {
		t.Errorf("filtered = %d, want 1", filtered)
	}
	if len(draft.Models) != 1 {
		t.Fatalf("models = %d, want 1", len(draft.Models))
	}

	record := draft.Models["openai:gpt-4o"]
	if record == nil {
		t.Fatal("gpt-4o missing from draft")
	}
	// Majority over the full vote list [5.0, 2.5, 2.5].
	if *record.DollarsPerMillionTokensInput != 2.5 {
		t.Errorf("input price = %v, want 2.5", *record.DollarsPerMillionTokensInput)
	}
	if *record.DollarsPerMillionTokensOutput != 10.0 {
		t.Errorf("output price = %v, want 10", *record.DollarsPerMillionTokensOutput)
	}
	if !*record.SupportsVision {
		t.Error("supports_vision = false, want true")
	}
	// Normalization ran: lists non-nil, defaults applied.
	if record.ModelAliases == nil {
		t.Error("draft records must be normalized")
	}
	if !*record.IsActive {
		t.Error("is_active must default true")
	}

	if draft.Sources.ModelsExtracted != 1 {
		t.Errorf("models_extracted = %d, want 1", draft.Sources.ModelsExtracted)
	}
	if err := draft.Validate(); err != nil {
		t.Errorf("assembled draft must validate: %v", err)
	}
}

func TestAssembleDraftEmpty(t *testing.T) {
	draft, filtered, err := AssembleDraft(NewLedgers("openai"), catalogs.SourceSummary{})
	if err != nil {
		t.Fatal(err)
	}
	if filtered != 0 || len(draft.Models) != 0 {
		t.Errorf("empty ledgers: filtered=%d models=%d", filtered, len(draft.Models))
	}
}
