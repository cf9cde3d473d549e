package extract

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/llmring/registry/pkg/catalogs"
	"github.com/llmring/registry/pkg/errors"
	"github.com/llmring/registry/pkg/logging"
	"github.com/llmring/registry/pkg/reconcile"
)

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithRetryPolicy overrides the per-document retry policy.
func WithRetryPolicy(policy RetryPolicy) Option {
	return func(p *Pipeline) {
		p.policy = policy
	}
}

// WithLogger sets the pipeline logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// Pipeline runs extraction and reconciliation for providers.
type Pipeline struct {
	engine Engine
	policy RetryPolicy
	logger *zerolog.Logger
}

// NewPipeline creates a pipeline around an extraction engine.
func NewPipeline(engine Engine, opts ...Option) *Pipeline {
	p := &Pipeline{
		engine: engine,
		policy: DefaultRetryPolicy(),
		logger: logging.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ProviderResult is the outcome of one provider's extraction run.
type ProviderResult struct {
	Provider    string
	Draft       *catalogs.DraftCatalogue
	Documents   int
	FailedDocs  []string
	FilteredOut int
}

// FullySucceeded reports whether every document contributed.
func (r *ProviderResult) FullySucceeded() bool {
	return len(r.FailedDocs) == 0
}

// FullyFailed reports whether no document contributed.
func (r *ProviderResult) FullyFailed() bool {
	return r.Documents > 0 && len(r.FailedDocs) == r.Documents
}

// Run processes one provider's documents strictly in order and assembles the
// draft catalogue. A document whose extraction fails after the retry budget
// is skipped with a warning; its votes are simply absent and accumulated
// state is preserved. Run fails only when the context is canceled or draft
// assembly itself breaks.
func (p *Pipeline) Run(ctx context.Context, provider string, docs []Document) (*ProviderResult, error) {
	result := &ProviderResult{Provider: provider, Documents: len(docs)}
	ledgers := reconcile.NewLedgers(provider)
	sources := catalogs.SourceSummary{Documents: len(docs)}

	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		switch doc.Type {
		case DocumentTypePNG:
			sources.PNGFiles++
		case DocumentTypePDF:
			sources.PDFFiles++
		case DocumentTypeMarkdown:
			sources.MarkdownFiles++
		}

		doc := doc
		records, err := p.policy.Do(ctx, func(ctx context.Context) ([]reconcile.CandidateRecord, error) {
			return p.engine.ExtractDocument(ctx, doc)
		})
		if err != nil {
			p.logger.Warn().
				Err(errors.NewExtractionError(provider, doc.Name, p.policy.MaxAttempts, err)).
				Str("provider", provider).
				Str("document", doc.Name).
				Msg("Skipping document after failed extraction")
			result.FailedDocs = append(result.FailedDocs, doc.Name)
			continue
		}

		accepted := ledgers.Accumulate(records)
		p.logger.Debug().
			Str("provider", provider).
			Str("document", doc.Name).
			Int("candidates", len(records)).
			Int("accepted", accepted).
			Msg("Accumulated document")
	}

	draft, filtered, err := reconcile.AssembleDraft(ledgers, sources)
	if err != nil {
		return nil, err
	}
	result.Draft = draft
	result.FilteredOut = filtered

	p.logger.Info().
		Str("provider", provider).
		Int("documents", len(docs)).
		Int("failed_documents", len(result.FailedDocs)).
		Int("models", len(draft.Models)).
		Int("filtered_out", filtered).
		Msg("Assembled draft catalogue")

	return result, nil
}
