package extract

import (
	"context"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/llmring/registry/pkg/constants"
	"github.com/llmring/registry/pkg/errors"
)

// BatchResult classifies providers after a multi-provider run. A provider
// failure never aborts the batch; it lands in Failed and the rest continue.
type BatchResult struct {
	// Succeeded holds providers where every document contributed.
	Succeeded []*ProviderResult

	// Partial holds providers that produced a draft with some documents skipped.
	Partial []*ProviderResult

	// Failed maps providers that produced nothing usable to their error.
	Failed map[string]error
}

// Providers returns every provider in the batch, sorted.
func (r *BatchResult) Providers() []string {
	names := make([]string, 0, len(r.Succeeded)+len(r.Partial)+len(r.Failed))
	for _, res := range r.Succeeded {
		names = append(names, res.Provider)
	}
	for _, res := range r.Partial {
		names = append(names, res.Provider)
	}
	for name := range r.Failed {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Drafts returns the drafts from all providers that produced one.
func (r *BatchResult) Drafts() []*ProviderResult {
	out := make([]*ProviderResult, 0, len(r.Succeeded)+len(r.Partial))
	out = append(out, r.Succeeded...)
	out = append(out, r.Partial...)
	return out
}

// RunBatch processes several providers concurrently, bounded by
// constants.MaxConcurrentProviders. Providers own their ledgers outright, so
// no locking is needed beyond collecting results.
func (p *Pipeline) RunBatch(ctx context.Context, docsByProvider map[string][]Document) *BatchResult {
	result := &BatchResult{Failed: make(map[string]error)}
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(constants.MaxConcurrentProviders)

	for provider, docs := range docsByProvider {
		provider, docs := provider, docs
		g.Go(func() error {
			res, err := p.Run(ctx, provider, docs)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err != nil:
				result.Failed[provider] = err
			case res.FullyFailed():
				result.Failed[provider] = errors.NewExtractionError(provider, "", p.policy.MaxAttempts, errors.New("all documents failed"))
			case res.FullySucceeded():
				result.Succeeded = append(result.Succeeded, res)
			default:
				result.Partial = append(result.Partial, res)
			}
			return nil
		})
	}

	// Workers never return errors; Wait only observes context cancellation.
	_ = g.Wait()
	return result
}
