package catalogs

import (
	"sort"

	"github.com/agentstation/utc"

	"github.com/llmring/registry/pkg/constants"
)

// ManifestEntry summarizes one provider's published catalogue.
type ManifestEntry struct {
	Version     int      `json:"version" yaml:"version"`
	ModelCount  int      `json:"model_count" yaml:"model_count"`
	LastUpdated utc.Time `json:"last_updated" yaml:"last_updated"`
}

// Manifest summarizes the full published catalogue set. It is derivable from
// the production catalogues and regenerated after every promotion.
type Manifest struct {
	Providers     map[string]ManifestEntry `json:"providers" yaml:"providers"`
	SchemaVersion string                   `json:"schema_version" yaml:"schema_version"`
	UpdatedAt     utc.Time                 `json:"updated_at" yaml:"updated_at"`
}

// BuildManifest derives a manifest from a set of production catalogues.
func BuildManifest(catalogues []*ProductionCatalogue) *Manifest {
	manifest := &Manifest{
		Providers:     make(map[string]ManifestEntry, len(catalogues)),
		SchemaVersion: constants.SchemaVersion,
		UpdatedAt:     utc.Now(),
	}
	for _, catalogue := range catalogues {
		if catalogue == nil {
			continue
		}
		manifest.Providers[catalogue.Provider] = ManifestEntry{
			Version:     catalogue.Version,
			ModelCount:  len(catalogue.Models),
			LastUpdated: catalogue.UpdatedAt,
		}
	}
	return manifest
}

// ProviderNames returns the manifest's providers in sorted order.
func (m *Manifest) ProviderNames() []string {
	names := make([]string, 0, len(m.Providers))
	for name := range m.Providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
