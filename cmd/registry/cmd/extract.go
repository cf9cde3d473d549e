package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/llmring/registry/pkg/errors"
	"github.com/llmring/registry/pkg/extract"
)

// NewExtractCommand creates the extract command with app dependencies.
func NewExtractCommand(app AppContext) *cobra.Command {
	var docsDir string

	cmd := &cobra.Command{
		Use:   "extract [providers...]",
		Short: "Extract model metadata from provider documentation",
		Long: `Extract reads provider documentation (screenshots, PDFs, markdown)
and produces a draft catalogue per provider.

Documents live under the docs directory, one subdirectory per provider:

  docs/openai/pricing.png
  docs/openai/models.md
  docs/anthropic/models.pdf

Documents for one provider are processed in order; providers run in
parallel. A document whose extraction fails is skipped; a provider whose
documents all fail produces no draft but does not stop the others.

Requires GEMINI_API_KEY.`,
		Example: `  registry extract                    # every provider under docs/
  registry extract openai anthropic   # only these providers
  registry extract --docs ./my-docs openai`,
		RunE: func(c *cobra.Command, args []string) error {
			return runExtract(app, c, docsDir, args)
		},
	}

	cmd.Flags().StringVar(&docsDir, "docs", "docs", "documentation directory, one subdirectory per provider")
	return cmd
}

func runExtract(app AppContext, c *cobra.Command, docsDir string, providers []string) error {
	ctx := c.Context()
	logger := app.Logger()

	if len(providers) == 0 {
		var err error
		providers, err = listProviderDirs(docsDir)
		if err != nil {
			return err
		}
		if len(providers) == 0 {
			return errors.NewResourceError("discover", "provider documentation", docsDir, errors.ErrNotFound)
		}
	}

	docsByProvider := make(map[string][]extract.Document, len(providers))
	for _, provider := range providers {
		docs, err := loadDocuments(filepath.Join(docsDir, provider))
		if err != nil {
			return err
		}
		if len(docs) == 0 {
			logger.Warn().Str("provider", provider).Msg("No documents found, skipping")
			continue
		}
		docsByProvider[provider] = docs
	}
	if len(docsByProvider) == 0 {
		return errors.NewResourceError("load", "provider documentation", docsDir, errors.ErrNotFound)
	}

	engine, err := app.NewEngine(ctx)
	if err != nil {
		return err
	}

	pipeline := extract.NewPipeline(engine, extract.WithLogger(logger))
	result := pipeline.RunBatch(ctx, docsByProvider)

	for _, res := range result.Drafts() {
		path, err := app.Store().SaveDraft(res.Draft)
		if err != nil {
			return err
		}
		fmt.Printf("%s: %d models extracted (%d documents, %d failed, %d filtered) -> %s\n",
			res.Provider, len(res.Draft.Models), res.Documents, len(res.FailedDocs), res.FilteredOut, path)
	}
	for provider, err := range result.Failed {
		fmt.Printf("%s: extraction failed: %v\n", provider, err)
	}

	if len(result.Failed) == len(docsByProvider) {
		return errors.New("extraction failed for every provider")
	}
	return nil
}

// listProviderDirs discovers provider names from docs subdirectories.
func listProviderDirs(docsDir string) ([]string, error) {
	entries, err := os.ReadDir(docsDir)
	if err != nil {
		return nil, errors.WrapIO("read", docsDir, err)
	}
	var providers []string
	for _, entry := range entries {
		if entry.IsDir() {
			providers = append(providers, entry.Name())
		}
	}
	sort.Strings(providers)
	return providers, nil
}

// loadDocuments reads every file in a provider's docs directory, sorted by
// filename so extraction order is stable across runs.
func loadDocuments(dir string) ([]extract.Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewIOError("read", dir, errors.ErrNotFound)
		}
		return nil, errors.WrapIO("read", dir, err)
	}

	var docs []extract.Document
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.WrapIO("read", path, err)
		}
		docs = append(docs, extract.NewDocument(entry.Name(), content))
	}
	return docs, nil
}
