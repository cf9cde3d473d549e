package store

import (
	"github.com/llmring/registry/pkg/catalogs"
)

// LoadManifest reads the published manifest. A data root that has never seen
// a promotion returns errors.ErrNotFound.
func (s *Store) LoadManifest() (*catalogs.Manifest, error) {
	var manifest catalogs.Manifest
	if err := s.readJSON(s.manifestPath(), &manifest); err != nil {
		return nil, err
	}
	return &manifest, nil
}

// refreshManifest rebuilds manifest.json from every production catalogue on
// disk. Called after each successful promotion.
func (s *Store) refreshManifest() error {
	providers, err := s.Providers()
	if err != nil {
		return err
	}

	catalogues := make([]*catalogs.ProductionCatalogue, 0, len(providers))
	for _, provider := range providers {
		catalogue, err := s.LoadProduction(provider)
		if err != nil {
			return err
		}
		catalogues = append(catalogues, catalogue)
	}

	return s.writeJSON(s.manifestPath(), catalogs.BuildManifest(catalogues))
}
