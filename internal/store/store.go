// Package store persists catalogue state under a single data root.
//
// Layout:
//
//	models/<provider>.json          current production catalogue
//	pages/<provider>/models.json    published copy of the current catalogue
//	pages/<provider>/v/<N>/models.json  immutable version archive
//	drafts/<provider>.<date>.draft.json draft awaiting review
//	manifest.json                   per-provider version summary
//
// Every write goes through a temp file in the destination directory followed
// by a rename, so a crash mid-write never leaves a torn catalogue behind.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/llmring/registry/pkg/catalogs"
	"github.com/llmring/registry/pkg/constants"
	"github.com/llmring/registry/pkg/errors"
)

// Store reads and writes catalogues under a data root directory.
type Store struct {
	root string

	// mu serializes read-modify-write cycles per provider.
	mu        sync.Mutex
	providers map[string]*sync.Mutex
}

// New creates a store rooted at dir. The directory is created lazily on
// first write.
func New(dir string) *Store {
	return &Store{
		root:      dir,
		providers: make(map[string]*sync.Mutex),
	}
}

// Root returns the data root directory.
func (s *Store) Root() string {
	return s.root
}

func (s *Store) providerLock(provider string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.providers[provider]
	if !ok {
		lock = &sync.Mutex{}
		s.providers[provider] = lock
	}
	return lock
}

// productionPath is the canonical current-catalogue file for a provider.
func (s *Store) productionPath(provider string) string {
	return filepath.Join(s.root, constants.ModelsDir, provider+".json")
}

// publishedPath is the published copy under the pages tree.
func (s *Store) publishedPath(provider string) string {
	return filepath.Join(s.root, constants.PagesDir, provider, "models.json")
}

// archivePath is the immutable per-version archive file.
func (s *Store) archivePath(provider string, version int) string {
	return filepath.Join(s.root, constants.PagesDir, provider, "v", fmt.Sprintf("%d", version), "models.json")
}

func (s *Store) manifestPath() string {
	return filepath.Join(s.root, constants.ManifestFile)
}

// LoadProduction loads the current production catalogue for a provider.
// A provider with no catalogue yet returns errors.ErrNotFound.
func (s *Store) LoadProduction(provider string) (*catalogs.ProductionCatalogue, error) {
	var catalogue catalogs.ProductionCatalogue
	if err := s.readJSON(s.productionPath(provider), &catalogue); err != nil {
		return nil, err
	}
	if err := catalogue.Validate(); err != nil {
		return nil, err
	}
	return &catalogue, nil
}

// SaveProduction writes a production catalogue to the canonical file, the
// published pages copy, and the version archive, then refreshes the
// manifest. The archive for a version is written once and never replaced.
func (s *Store) SaveProduction(catalogue *catalogs.ProductionCatalogue) error {
	if err := catalogue.Validate(); err != nil {
		return err
	}

	archive := s.archivePath(catalogue.Provider, catalogue.Version)
	if _, err := os.Stat(archive); err == nil {
		return errors.NewResourceError("archive", "catalogue version",
			fmt.Sprintf("%s/v%d", catalogue.Provider, catalogue.Version), errors.ErrAlreadyExists)
	}

	if err := s.writeJSON(s.productionPath(catalogue.Provider), catalogue); err != nil {
		return err
	}
	if err := s.writeJSON(s.publishedPath(catalogue.Provider), catalogue); err != nil {
		return err
	}
	if err := s.writeJSON(archive, catalogue); err != nil {
		return err
	}
	return s.refreshManifest()
}

// Providers lists every provider with a production catalogue, sorted.
func (s *Store) Providers() ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(s.root, constants.ModelsDir))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.WrapIO("read", "models directory", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ".json"))
	}
	return names, nil
}

// readJSON loads a JSON file into v, mapping a missing file to ErrNotFound
// and a malformed file to a ParseError.
func (s *Store) readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.NewIOError("read", path, errors.ErrNotFound)
		}
		return errors.WrapIO("read", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errors.NewParseError("json", path, "invalid catalogue file", err)
	}
	return nil
}

// writeJSON atomically writes v as indented JSON to path.
func (s *Store) writeJSON(path string, v any) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return errors.WrapIO("create", dir, err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.WrapIO("encode", path, err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return errors.WrapIO("create", "temp file", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return errors.WrapIO("write", path, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return errors.WrapIO("close", path, err)
	}
	if err := os.Chmod(tmpPath, constants.FilePermissions); err != nil {
		_ = os.Remove(tmpPath)
		return errors.WrapIO("chmod", path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return errors.WrapIO("move", path, err)
	}
	return nil
}
