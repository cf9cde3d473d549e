package reconcile

import (
	"testing"
)

func TestAccumulateSeedsFirstSighting(t *testing.T) {
	ledgers := NewLedgers("openai")

	accepted := ledgers.Accumulate([]CandidateRecord{{
		"model_id":                         "gpt-4o",
		"dollars_per_million_tokens_input": 5.0,
		"supports_vision":                  true,
	}})

	if accepted != 1 {
		t.Fatalf("Accumulate() = %d, want 1", accepted)
	}
	ledger := ledgers.Ledger("openai:gpt-4o")
	if ledger == nil {
		t.Fatal("ledger not created for openai:gpt-4o")
	}
	if got := ledger.Votes("dollars_per_million_tokens_input"); len(got) != 1 || got[0] != 5.0 {
		t.Errorf("price votes = %v, want [5]", got)
	}
	if got := ledger.Votes("supports_vision"); len(got) != 1 || got[0] != true {
		t.Errorf("vision votes = %v, want [true]", got)
	}
}

func TestAccumulateAppendsAcrossDocuments(t *testing.T) {
	ledgers := NewLedgers("openai")

	ledgers.Accumulate([]CandidateRecord{{"model_id": "gpt-4o", "dollars_per_million_tokens_input": 5.0}})
	ledgers.Accumulate([]CandidateRecord{{"model_id": "gpt-4o", "dollars_per_million_tokens_input": 2.5}})
	ledgers.Accumulate([]CandidateRecord{{"model_id": "gpt-4o", "dollars_per_million_tokens_input": 2.5}})

	votes := ledgers.Ledger("openai:gpt-4o").Votes("dollars_per_million_tokens_input")
	want := []float64{5.0, 2.5, 2.5}
	if len(votes) != len(want) {
		t.Fatalf("votes = %v, want %v", votes, want)
	}
	for i, w := range want {
		if votes[i] != w {
			t.Errorf("votes[%d] = %v, want %v", i, votes[i], w)
		}
	}
}

func TestAccumulateDiscardsRecordsWithoutIdentifier(t *testing.T) {
	ledgers := NewLedgers("openai")

	accepted := ledgers.Accumulate([]CandidateRecord{
		{"dollars_per_million_tokens_input": 5.0},
		{"model_id": "", "supports_vision": true},
		{"model_id": "   ", "supports_vision": true},
		{"model_id": 42, "supports_vision": true},
	})

	if accepted != 0 {
		t.Errorf("Accumulate() = %d, want 0", accepted)
	}
	if ledgers.Len() != 0 {
		t.Errorf("Len() = %d, want 0", ledgers.Len())
	}
}

func TestAccumulateDropsTypeMismatchedVotes(t *testing.T) {
	ledgers := NewLedgers("openai")

	ledgers.Accumulate([]CandidateRecord{{
		"model_id":                         "gpt-4o",
		"max_input_tokens":                 "N/A",
		"dollars_per_million_tokens_input": "free",
		"supports_vision":                  "yes",
		"model_aliases":                    "gpt-4o-latest",
		"display_name":                     12.5,
	}})

	ledger := ledgers.Ledger("openai:gpt-4o")
	for _, field := range []string{
		"max_input_tokens",
		"dollars_per_million_tokens_input",
		"supports_vision",
		"model_aliases",
		"display_name",
	} {
		if votes := ledger.Votes(field); len(votes) != 0 {
			t.Errorf("Votes(%q) = %v, want empty", field, votes)
		}
	}
}

func TestAccumulateDropsNullVotes(t *testing.T) {
	ledgers := NewLedgers("openai")

	ledgers.Accumulate([]CandidateRecord{{
		"model_id":        "gpt-4o",
		"supports_vision": nil,
		"notes":           nil,
	}})

	ledger := ledgers.Ledger("openai:gpt-4o")
	if votes := ledger.Votes("supports_vision"); len(votes) != 0 {
		t.Errorf("null must not vote: %v", votes)
	}
	if votes := ledger.Votes("notes"); len(votes) != 0 {
		t.Errorf("null must not vote: %v", votes)
	}
}

func TestAccumulateIntegralFloatCountVotes(t *testing.T) {
	ledgers := NewLedgers("openai")

	// JSON numbers arrive as float64; integral values are legal count votes.
	ledgers.Accumulate([]CandidateRecord{{
		"model_id":         "gpt-4o",
		"max_input_tokens": float64(128000),
		"max_output_tokens": 16.5,
	}})

	ledger := ledgers.Ledger("openai:gpt-4o")
	if votes := ledger.Votes("max_input_tokens"); len(votes) != 1 || votes[0] != int64(128000) {
		t.Errorf("integral float vote = %v, want [128000]", votes)
	}
	if votes := ledger.Votes("max_output_tokens"); len(votes) != 0 {
		t.Errorf("fractional count vote must be dropped: %v", votes)
	}
}

func TestAccumulateOtherFieldsAcceptedWhenNonNull(t *testing.T) {
	ledgers := NewLedgers("openai")

	ledgers.Accumulate([]CandidateRecord{{
		"model_id":        "gpt-4o",
		"max_temperature": 2.0,
	}})

	votes := ledgers.Ledger("openai:gpt-4o").Votes("max_temperature")
	if len(votes) != 1 || votes[0] != 2.0 {
		t.Errorf("other-class vote = %v, want [2]", votes)
	}
}

func TestAccumulateListVoteCanonicalization(t *testing.T) {
	ledgers := NewLedgers("openai")

	ledgers.Accumulate([]CandidateRecord{{"model_id": "gpt-4o", "model_aliases": []string{"a", "b"}}})
	ledgers.Accumulate([]CandidateRecord{{"model_id": "gpt-4o", "model_aliases": []any{"a", "b"}}})

	votes := ledgers.Ledger("openai:gpt-4o").Votes("model_aliases")
	if len(votes) != 2 {
		t.Fatalf("votes = %v, want 2 entries", votes)
	}
	// Both shapes canonicalize to []any so they group as one candidate.
	if winner := mostFrequent(votes); len(winner.([]any)) != 2 {
		t.Errorf("winner = %v", winner)
	}
}
