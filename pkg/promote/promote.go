package promote

import (
	"github.com/agentstation/utc"

	"github.com/llmring/registry/pkg/catalogs"
	"github.com/llmring/registry/pkg/errors"
)

// Option configures a promotion.
type Option func(*promoter)

// WithClock overrides the timestamp source. Tests use a fixed clock.
func WithClock(now func() utc.Time) Option {
	return func(p *promoter) {
		p.now = now
	}
}

type promoter struct {
	now func() utc.Time
}

// Promote validates a draft, merges it onto the current production
// catalogue, and commits the result: version bumped by exactly one, update
// timestamp stamped, content hash computed and stored.
//
// When the merged model content is identical to current, Promote returns
// errors.ErrNoChanges and the caller must not write anything; the version
// stays where it is. A structurally invalid draft is fatal for this
// provider's promotion only.
func Promote(current *catalogs.ProductionCatalogue, draft *catalogs.DraftCatalogue, opts ...Option) (*catalogs.ProductionCatalogue, error) {
	p := &promoter{now: utc.Now}
	for _, opt := range opts {
		opt(p)
	}

	if draft == nil {
		return nil, errors.NewValidationError("draft", nil, "cannot be nil")
	}
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	if current != nil && current.Provider != draft.Provider {
		return nil, errors.NewValidationError("provider", draft.Provider, "draft provider does not match current catalogue")
	}

	merged, err := Merge(current, draft)
	if err != nil {
		return nil, err
	}

	currentModels := map[catalogs.ModelKey]*catalogs.ModelRecord{}
	if current != nil {
		currentModels = current.Models
	}
	beforeHash, err := ModelsHash(currentModels)
	if err != nil {
		return nil, err
	}
	afterHash, err := ModelsHash(merged.Models)
	if err != nil {
		return nil, err
	}
	if current != nil && beforeHash == afterHash {
		return nil, errors.ErrNoChanges
	}

	merged.Version++
	merged.UpdatedAt = p.now()
	hash, err := ContentHash(merged)
	if err != nil {
		return nil, err
	}
	merged.ContentHash = hash

	return merged, nil
}
