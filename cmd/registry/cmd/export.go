package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/llmring/registry/internal/cmd/output"
	"github.com/llmring/registry/pkg/errors"
	"github.com/llmring/registry/pkg/promote"
)

// NewExportCommand creates the export command with app dependencies.
func NewExportCommand(app AppContext) *cobra.Command {
	var outFile string
	var verify bool

	cmd := &cobra.Command{
		Use:   "export <provider|manifest>",
		Short: "Export a production catalogue as JSON or YAML",
		Long: `Export writes a provider's production catalogue (or the manifest)
to stdout or a file. The format follows -o; the default is JSON.

With --verify the catalogue's content hash is recomputed and checked
before exporting, catching files modified outside the registry.`,
		Example: `  registry export openai > openai.json
  registry export openai -o yaml --out openai.yaml
  registry export manifest
  registry export openai --verify`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runExport(app, args[0], outFile, verify)
		},
	}

	cmd.Flags().StringVar(&outFile, "out", "", "write to file instead of stdout")
	cmd.Flags().BoolVar(&verify, "verify", false, "verify the content hash before exporting")
	return cmd
}

func runExport(app AppContext, target, outFile string, verify bool) error {
	var data any
	if target == "manifest" {
		manifest, err := app.Store().LoadManifest()
		if err != nil {
			return err
		}
		data = manifest
	} else {
		catalogue, err := app.Store().LoadProduction(target)
		if err != nil {
			return err
		}
		if verify {
			ok, err := promote.VerifyContentHash(catalogue)
			if err != nil {
				return err
			}
			if !ok {
				return errors.NewValidationError("content_sha256_jcs", catalogue.ContentHash,
					"content hash mismatch: catalogue was modified outside the registry")
			}
		}
		data = catalogue
	}

	format := output.DetectFormat(app.Format())
	if format == output.FormatTable {
		// Export is for machine consumption; a bare terminal gets JSON.
		format = output.FormatJSON
	}

	w := os.Stdout
	if outFile != "" {
		f, err := os.Create(outFile)
		if err != nil {
			return errors.WrapIO("create", outFile, err)
		}
		defer func() { _ = f.Close() }()
		w = f
	}

	if err := output.NewFormatter(format).Format(w, data); err != nil {
		return err
	}
	if outFile != "" {
		fmt.Printf("exported %s to %s\n", target, outFile)
	}
	return nil
}
