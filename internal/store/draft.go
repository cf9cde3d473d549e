package store

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/llmring/registry/pkg/catalogs"
	"github.com/llmring/registry/pkg/constants"
	"github.com/llmring/registry/pkg/errors"
)

// draftPath builds the dated draft filename for a provider.
func (s *Store) draftPath(draft *catalogs.DraftCatalogue) string {
	name := draft.Provider + "." + draft.ExtractionDate.Format(constants.TimeFormatDraftDate) + ".draft.json"
	return filepath.Join(s.root, constants.DraftsDir, name)
}

// SaveDraft writes a draft catalogue for review. A second extraction on the
// same day overwrites the earlier draft.
func (s *Store) SaveDraft(draft *catalogs.DraftCatalogue) (string, error) {
	if err := draft.Validate(); err != nil {
		return "", err
	}
	path := s.draftPath(draft)
	if err := s.writeJSON(path, draft); err != nil {
		return "", err
	}
	return path, nil
}

// LoadDraftFile loads a draft from an explicit path.
func (s *Store) LoadDraftFile(path string) (*catalogs.DraftCatalogue, error) {
	var draft catalogs.DraftCatalogue
	if err := s.readJSON(path, &draft); err != nil {
		return nil, err
	}
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	return &draft, nil
}

// LoadDraft loads the most recent draft for a provider. Dated filenames sort
// lexicographically, so the newest draft is the last match.
func (s *Store) LoadDraft(provider string) (*catalogs.DraftCatalogue, error) {
	paths, err := s.DraftPaths(provider)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, errors.NewResourceError("load", "draft", provider, errors.ErrNotFound)
	}
	return s.LoadDraftFile(paths[len(paths)-1])
}

// DraftPaths lists draft files for a provider in date order. An empty
// provider lists every draft.
func (s *Store) DraftPaths(provider string) ([]string, error) {
	dir := filepath.Join(s.root, constants.DraftsDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.WrapIO("read", "drafts directory", err)
	}

	var paths []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".draft.json") {
			continue
		}
		if provider != "" && !strings.HasPrefix(name, provider+".") {
			continue
		}
		paths = append(paths, filepath.Join(dir, name))
	}
	sort.Strings(paths)
	return paths, nil
}
