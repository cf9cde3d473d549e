package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/llmring/registry/internal/cmd/output"
	"github.com/llmring/registry/pkg/catalogs"
	"github.com/llmring/registry/pkg/differ"
	"github.com/llmring/registry/pkg/errors"
)

// NewReviewCommand creates the review command with app dependencies.
func NewReviewCommand(app AppContext) *cobra.Command {
	var draftPath string
	var changesOut string

	cmd := &cobra.Command{
		Use:   "review <provider>",
		Short: "Show what a draft would change in production",
		Long: `Review compares a provider's draft catalogue against the current
production catalogue and shows every model that would be added, removed,
or changed, field by field.

By default the latest draft for the provider is reviewed. The changeset
can be written to a file, hand-edited, and applied back to the draft with
'review apply'.`,
		Example: `  registry review openai
  registry review openai -o json
  registry review openai --changes-out changes.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runReview(app, args[0], draftPath, changesOut)
		},
	}

	cmd.Flags().StringVar(&draftPath, "draft", "", "review a specific draft file instead of the latest")
	cmd.Flags().StringVar(&changesOut, "changes-out", "", "write the changeset to this file for editing")

	cmd.AddCommand(newReviewApplyCommand(app))
	return cmd
}

func runReview(app AppContext, provider, draftPath, changesOut string) error {
	draft, err := loadDraft(app, provider, draftPath)
	if err != nil {
		return err
	}

	currentModels, err := loadCurrentModels(app, provider)
	if err != nil {
		return err
	}

	changes, err := differ.Diff(currentModels, draft.Models)
	if err != nil {
		return err
	}
	if !changes.HasChanges() {
		fmt.Printf("%s: draft matches production, nothing to review\n", provider)
		return nil
	}

	if changesOut != "" {
		data, err := json.MarshalIndent(changes, "", "  ")
		if err != nil {
			return errors.WrapIO("encode", changesOut, err)
		}
		if err := os.WriteFile(changesOut, append(data, '\n'), 0o644); err != nil {
			return errors.WrapIO("write", changesOut, err)
		}
		fmt.Printf("%s: changeset written to %s\n", provider, changesOut)
	}

	return renderChangeset(app, provider, changes)
}

// newReviewApplyCommand creates the "review apply" subcommand.
func newReviewApplyCommand(app AppContext) *cobra.Command {
	var changesFile string

	cmd := &cobra.Command{
		Use:   "apply <provider>",
		Short: "Apply an edited changeset back to the latest draft",
		Long: `Apply takes a changeset file (as produced by 'review --changes-out',
possibly hand-edited to drop unwanted changes) and rewrites the
provider's latest draft so it contains exactly those changes on top of
production.`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runReviewApply(app, args[0], changesFile)
		},
	}

	cmd.Flags().StringVar(&changesFile, "changes", "", "changeset file to apply (required)")
	_ = cmd.MarkFlagRequired("changes")
	return cmd
}

func runReviewApply(app AppContext, provider, changesFile string) error {
	data, err := os.ReadFile(changesFile)
	if err != nil {
		return errors.WrapIO("read", changesFile, err)
	}
	var changes differ.Changeset
	if err := json.Unmarshal(data, &changes); err != nil {
		return errors.NewParseError("json", changesFile, "invalid changeset file", err)
	}

	draft, err := app.Store().LoadDraft(provider)
	if err != nil {
		return err
	}
	currentModels, err := loadCurrentModels(app, provider)
	if err != nil {
		return err
	}

	models, err := changes.Apply(currentModels)
	if err != nil {
		return err
	}
	draft.Models = models

	path, err := app.Store().SaveDraft(draft)
	if err != nil {
		return err
	}
	fmt.Printf("%s: draft rewritten with %s -> %s\n", provider, changes.Summary(), path)
	return nil
}

func loadDraft(app AppContext, provider, draftPath string) (*catalogs.DraftCatalogue, error) {
	if draftPath != "" {
		return app.Store().LoadDraftFile(draftPath)
	}
	return app.Store().LoadDraft(provider)
}

// loadCurrentModels returns the production models for a provider, or an
// empty map when the provider has never been promoted.
func loadCurrentModels(app AppContext, provider string) (map[catalogs.ModelKey]*catalogs.ModelRecord, error) {
	current, err := app.Store().LoadProduction(provider)
	if err != nil {
		if errors.IsNotFound(err) {
			return map[catalogs.ModelKey]*catalogs.ModelRecord{}, nil
		}
		return nil, err
	}
	return current.Models, nil
}

// renderChangeset prints a changeset in the configured output format.
func renderChangeset(app AppContext, provider string, changes *differ.Changeset) error {
	format := output.DetectFormat(app.Format())
	if format != output.FormatTable {
		return output.NewFormatter(format).Format(os.Stdout, changes)
	}

	fmt.Printf("%s: %s\n\n", provider, changes.Summary())

	data := output.Data{Headers: []string{"Model", "Change", "Field", "Old", "New"}}
	for _, key := range changes.Keys() {
		if record, ok := changes.Added[key]; ok {
			data.Rows = append(data.Rows, []string{string(key), "added", "", "", record.ModelName})
			continue
		}
		if _, ok := changes.Removed[key]; ok {
			data.Rows = append(data.Rows, []string{string(key), "removed", "", "", ""})
			continue
		}
		fields := make([]string, 0, len(changes.Changed[key]))
		for field := range changes.Changed[key] {
			fields = append(fields, field)
		}
		sort.Strings(fields)
		for _, field := range fields {
			change := changes.Changed[key][field]
			data.Rows = append(data.Rows, []string{
				string(key), "changed", field, formatValue(change.Old), formatValue(change.New),
			})
		}
	}
	return output.NewFormatter(format).Format(os.Stdout, data)
}

func formatValue(v any) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%v", v)
}
