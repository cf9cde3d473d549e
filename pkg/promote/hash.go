package promote

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/llmring/registry/pkg/catalogs"
)

// contentHashField is the one field excluded from hashing, since the hash is
// stored inside the document it covers.
const contentHashField = "content_sha256_jcs"

// canonicalJSON serializes a value deterministically: object keys sorted,
// compact separators, no trailing whitespace. encoding/json already sorts
// map keys, so a round trip through maps yields a canonical form.
func canonicalJSON(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var generic any
	if err := json.Unmarshal(data, &generic); err != nil {
		return nil, err
	}
	return json.Marshal(generic)
}

// ContentHash computes the SHA-256 of the catalogue's canonical JSON with
// the stored hash field removed. Recomputing over a loaded catalogue must
// reproduce the stored value exactly.
func ContentHash(catalogue *catalogs.ProductionCatalogue) (string, error) {
	data, err := json.Marshal(catalogue)
	if err != nil {
		return "", err
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return "", err
	}
	delete(doc, contentHashField)

	canonical, err := canonicalJSON(doc)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}

// ModelsHash computes a hash over the models mapping alone. Promotion uses
// it to detect no-op merges: version metadata and extraction dates differ on
// every run, but only model content decides whether a new version exists.
func ModelsHash(models map[catalogs.ModelKey]*catalogs.ModelRecord) (string, error) {
	canonical, err := canonicalJSON(models)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}

// VerifyContentHash recomputes a catalogue's hash and reports whether it
// matches the stored value. Catalogues without a stored hash verify true.
func VerifyContentHash(catalogue *catalogs.ProductionCatalogue) (bool, error) {
	if catalogue.ContentHash == "" {
		return true, nil
	}
	computed, err := ContentHash(catalogue)
	if err != nil {
		return false, err
	}
	return computed == catalogue.ContentHash, nil
}
