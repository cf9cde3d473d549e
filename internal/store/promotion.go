package store

import (
	"github.com/llmring/registry/pkg/catalogs"
	"github.com/llmring/registry/pkg/errors"
	"github.com/llmring/registry/pkg/promote"
)

// Promote runs the full read-modify-write cycle for one provider: load the
// current catalogue, merge the draft into it, and persist the result with
// its version archive. The cycle holds the provider's lock throughout, so
// concurrent promotions for the same provider cannot interleave.
//
// A draft that changes nothing returns errors.ErrNoChanges and leaves every
// file untouched.
func (s *Store) Promote(draft *catalogs.DraftCatalogue, opts ...promote.Option) (*catalogs.ProductionCatalogue, error) {
	lock := s.providerLock(draft.Provider)
	lock.Lock()
	defer lock.Unlock()

	current, err := s.LoadProduction(draft.Provider)
	if err != nil && !errors.IsNotFound(err) {
		return nil, err
	}

	next, err := promote.Promote(current, draft, opts...)
	if err != nil {
		return nil, err
	}

	if err := s.SaveProduction(next); err != nil {
		return nil, err
	}
	return next, nil
}
