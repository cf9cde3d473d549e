package gemini

import (
	"encoding/json"
	"strings"

	"github.com/llmring/registry/pkg/errors"
	"github.com/llmring/registry/pkg/reconcile"
)

// parseReply turns the model's JSON reply into candidate records. The model
// is asked for a bare array, but replies wrapped in code fences or in a
// {"models": [...]} envelope show up often enough to handle.
func parseReply(document, reply string) ([]reconcile.CandidateRecord, error) {
	text := stripCodeFence(reply)
	if text == "" {
		return nil, errors.NewParseError("json", document, "empty extraction reply", nil)
	}

	var records []reconcile.CandidateRecord
	if err := json.Unmarshal([]byte(text), &records); err == nil {
		return records, nil
	}

	var envelope struct {
		Models []reconcile.CandidateRecord `json:"models"`
	}
	if err := json.Unmarshal([]byte(text), &envelope); err != nil {
		return nil, errors.NewParseError("json", document, "extraction reply is not a JSON array", err)
	}
	if envelope.Models == nil {
		return nil, errors.NewParseError("json", document, "extraction reply is not a JSON array", nil)
	}
	return envelope.Models, nil
}

// stripCodeFence removes a surrounding markdown code fence, if present.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
