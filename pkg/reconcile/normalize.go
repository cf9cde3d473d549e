package reconcile

import (
	"github.com/llmring/registry/internal/utils/ptr"
	"github.com/llmring/registry/pkg/catalogs"
)

// Normalize applies the schema conventions to a resolved record in place:
//
//   - list fields are never nil, so they serialize as [] rather than null
//   - optional string fields are nil rather than "", except description
//     which is always present (possibly empty)
//   - every capability flag is explicit, defaulted when never voted
//   - token limit fields default to 0 rather than null; optional constraint
//     numerics (cache pricing tiers, max_tools) may stay null
func Normalize(record *catalogs.ModelRecord) {
	if record == nil {
		return
	}

	if record.ModelAliases == nil {
		record.ModelAliases = []string{}
	}
	if record.RecommendedUseCases == nil {
		record.RecommendedUseCases = []string{}
	}
	if record.UseCases == nil {
		record.UseCases = []string{}
	}
	if record.TemperatureValues == nil {
		record.TemperatureValues = []float64{}
	}

	for _, field := range []**string{
		&record.DisplayName, &record.ModelFamily, &record.SpeedTier,
		&record.IntelligenceTier, &record.ReleaseDate, &record.DeprecatedDate,
		&record.AddedDate, &record.Notes, &record.APIEndpoint, &record.ToolCallFormat,
	} {
		if *field != nil && **field == "" {
			*field = nil
		}
	}
	if record.Description == nil {
		record.Description = ptr.To("")
	}

	// Streaming, temperature, system messages, tool choice, and active
	// status default to true when never voted; every other flag to false.
	defaultFlag(&record.SupportsVision, false)
	defaultFlag(&record.SupportsFunctionCalling, false)
	defaultFlag(&record.SupportsJSONMode, false)
	defaultFlag(&record.SupportsParallelToolCalls, false)
	defaultFlag(&record.SupportsStreaming, true)
	defaultFlag(&record.SupportsAudio, false)
	defaultFlag(&record.SupportsDocuments, false)
	defaultFlag(&record.SupportsJSONSchema, false)
	defaultFlag(&record.SupportsLogprobs, false)
	defaultFlag(&record.SupportsMultipleResponses, false)
	defaultFlag(&record.SupportsCaching, false)
	defaultFlag(&record.SupportsTemperature, true)
	defaultFlag(&record.SupportsSystemMessage, true)
	defaultFlag(&record.SupportsPDFInput, false)
	defaultFlag(&record.SupportsToolChoice, true)
	defaultFlag(&record.IsReasoningModel, false)
	defaultFlag(&record.IsActive, true)
	defaultFlag(&record.RequiresWaitlist, false)
	defaultFlag(&record.RequiresFlatInput, false)

	if record.MaxInputTokens == nil {
		record.MaxInputTokens = ptr.To(int64(0))
	}
	if record.MaxOutputTokens == nil {
		record.MaxOutputTokens = ptr.To(int64(0))
	}
}

func defaultFlag(flag **bool, def bool) {
	if *flag == nil {
		*flag = ptr.To(def)
	}
}
