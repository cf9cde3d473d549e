package cmd

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/llmring/registry/internal/cmd/output"
	"github.com/llmring/registry/pkg/catalogs"
)

// NewListCommand creates the list command with app dependencies.
func NewListCommand(app AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [provider]",
		Short: "List models from the production catalogue",
		Long: `List displays models from the production catalogues. Without a
provider it summarizes every provider from the manifest; with one it
lists that provider's models.`,
		Example: `  registry list            # provider summary
  registry list openai      # models for one provider
  registry list openai -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			if len(args) == 0 {
				return listProviders(app)
			}
			return listModels(app, args[0])
		},
	}
	return cmd
}

func listProviders(app AppContext) error {
	manifest, err := app.Store().LoadManifest()
	if err != nil {
		return err
	}

	format := output.DetectFormat(app.Format())
	if format != output.FormatTable {
		return output.NewFormatter(format).Format(os.Stdout, manifest)
	}

	data := output.Data{Headers: []string{"Provider", "Version", "Models", "Last Updated"}}
	for _, name := range manifest.ProviderNames() {
		entry := manifest.Providers[name]
		data.Rows = append(data.Rows, []string{
			name,
			strconv.Itoa(entry.Version),
			strconv.Itoa(entry.ModelCount),
			entry.LastUpdated.Format("2006-01-02"),
		})
	}
	return output.NewFormatter(format).Format(os.Stdout, data)
}

func listModels(app AppContext, provider string) error {
	catalogue, err := app.Store().LoadProduction(provider)
	if err != nil {
		return err
	}

	format := output.DetectFormat(app.Format())
	if format != output.FormatTable {
		return output.NewFormatter(format).Format(os.Stdout, catalogue)
	}

	data := output.Data{Headers: []string{"Model", "Name", "$/M In", "$/M Out", "Context", "Active"}}
	for _, key := range sortedModelKeys(catalogue.Models) {
		record := catalogue.Models[key]
		data.Rows = append(data.Rows, []string{
			string(key),
			record.ModelName,
			formatPrice(record.DollarsPerMillionTokensInput),
			formatPrice(record.DollarsPerMillionTokensOutput),
			formatCount(record.MaxInputTokens),
			formatBool(record.IsActive),
		})
	}
	return output.NewFormatter(format).Format(os.Stdout, data)
}

func sortedModelKeys(models map[catalogs.ModelKey]*catalogs.ModelRecord) []catalogs.ModelKey {
	keys := make([]catalogs.ModelKey, 0, len(models))
	for key := range models {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func formatPrice(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f", *v)
}

func formatCount(v *int64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatInt(*v, 10)
}

func formatBool(v *bool) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatBool(*v)
}
