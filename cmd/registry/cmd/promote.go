package cmd

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/llmring/registry/internal/cmd/output"
	"github.com/llmring/registry/pkg/errors"
)

// NewPromoteCommand creates the promote command with app dependencies.
func NewPromoteCommand(app AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "promote [providers...]",
		Short: "Merge drafts into production and write a new version",
		Long: `Promote merges each provider's latest draft into its production
catalogue: extraction-owned fields (prices, token limits, capability
flags) are updated from the draft, curated fields are preserved, new
models are added, and missing models are kept.

Each promotion bumps the provider's version, archives the previous
state, and stamps the catalogue with a content hash. A draft that
changes nothing is reported and skipped without writing anything.

One provider failing does not stop the others; the summary reports every
provider's outcome.`,
		Example: `  registry promote            # every provider with a draft
  registry promote openai     # just one provider`,
		RunE: func(c *cobra.Command, args []string) error {
			return runPromote(app, args)
		},
	}
	return cmd
}

type promotionOutcome struct {
	Provider string `json:"provider"`
	Status   string `json:"status"`
	Version  int    `json:"version,omitempty"`
	Models   int    `json:"models,omitempty"`
	Error    string `json:"error,omitempty"`
}

func runPromote(app AppContext, providers []string) error {
	logger := app.Logger()

	if len(providers) == 0 {
		var err error
		providers, err = draftProviders(app)
		if err != nil {
			return err
		}
		if len(providers) == 0 {
			return errors.NewResourceError("promote", "draft", "any provider", errors.ErrNotFound)
		}
	}

	outcomes := make([]promotionOutcome, 0, len(providers))
	failures := 0
	for _, provider := range providers {
		outcome := promoteProvider(app, provider)
		if outcome.Status == "failed" {
			failures++
			logger.Error().Str("provider", provider).Str("error", outcome.Error).Msg("Promotion failed")
		}
		outcomes = append(outcomes, outcome)
	}

	if err := renderOutcomes(app, outcomes); err != nil {
		return err
	}
	if failures == len(providers) {
		return errors.New("promotion failed for every provider")
	}
	return nil
}

func promoteProvider(app AppContext, provider string) promotionOutcome {
	draft, err := app.Store().LoadDraft(provider)
	if err != nil {
		return promotionOutcome{Provider: provider, Status: "failed", Error: err.Error()}
	}

	catalogue, err := app.Store().Promote(draft)
	if err != nil {
		if errors.IsNoChanges(err) {
			return promotionOutcome{Provider: provider, Status: "no changes"}
		}
		return promotionOutcome{Provider: provider, Status: "failed", Error: err.Error()}
	}

	return promotionOutcome{
		Provider: provider,
		Status:   "promoted",
		Version:  catalogue.Version,
		Models:   len(catalogue.Models),
	}
}

// draftProviders lists every provider that currently has a draft.
func draftProviders(app AppContext) ([]string, error) {
	paths, err := app.Store().DraftPaths("")
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var providers []string
	for _, path := range paths {
		draft, err := app.Store().LoadDraftFile(path)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[draft.Provider]; ok {
			continue
		}
		seen[draft.Provider] = struct{}{}
		providers = append(providers, draft.Provider)
	}
	return providers, nil
}

func renderOutcomes(app AppContext, outcomes []promotionOutcome) error {
	format := output.DetectFormat(app.Format())
	if format != output.FormatTable {
		return output.NewFormatter(format).Format(os.Stdout, outcomes)
	}

	data := output.Data{Headers: []string{"Provider", "Status", "Version", "Models", "Error"}}
	for _, outcome := range outcomes {
		version, models := "", ""
		if outcome.Version > 0 {
			version = strconv.Itoa(outcome.Version)
			models = strconv.Itoa(outcome.Models)
		}
		data.Rows = append(data.Rows, []string{
			outcome.Provider, outcome.Status, version, models, outcome.Error,
		})
	}
	return output.NewFormatter(format).Format(os.Stdout, data)
}
