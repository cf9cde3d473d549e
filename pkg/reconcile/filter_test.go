package reconcile

import (
	"testing"

	"github.com/llmring/registry/internal/utils/ptr"
	"github.com/llmring/registry/pkg/catalogs"
)

func TestIsPaid(t *testing.T) {
	tests := []struct {
		name   string
		input  *float64
		output *float64
		want   bool
	}{
		{"both positive", ptr.To(2.5), ptr.To(10.0), true},
		{"zero input", ptr.To(0.0), ptr.To(12.0), false},
		{"zero output", ptr.To(2.5), ptr.To(0.0), false},
		{"negative input", ptr.To(-1.0), ptr.To(10.0), false},
		{"nil input", nil, ptr.To(10.0), false},
		{"nil output", ptr.To(2.5), nil, false},
		{"both nil", nil, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := &catalogs.ModelRecord{
				ModelName:                     "m",
				DollarsPerMillionTokensInput:  tt.input,
				DollarsPerMillionTokensOutput: tt.output,
			}
			if got := IsPaid(record); got != tt.want {
				t.Errorf("IsPaid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsPaidNilRecord(t *testing.T) {
	if IsPaid(nil) {
		t.Error("IsPaid(nil) = true, want false")
	}
}

func TestFilterPaid(t *testing.T) {
	records := map[catalogs.ModelKey]*catalogs.ModelRecord{
		"openai:gpt-4o": {
			ModelName:                     "gpt-4o",
			DollarsPerMillionTokensInput:  ptr.To(2.5),
			DollarsPerMillionTokensOutput: ptr.To(10.0),
		},
		"openai:free-preview": {
			ModelName:                     "free-preview",
			DollarsPerMillionTokensInput:  ptr.To(0.0),
			DollarsPerMillionTokensOutput: ptr.To(12.0),
		},
		"openai:unpriced": {
			ModelName: "unpriced",
		},
	}

	kept, filtered := FilterPaid(records)

	if filtered != 2 {
		t.Errorf("filtered = %d, want 2", filtered)
	}
	if len(kept) != 1 {
		t.Fatalf("kept = %d records, want 1", len(kept))
	}
	if _, ok := kept["openai:gpt-4o"]; !ok {
		t.Error("paid model missing from kept set")
	}
}
