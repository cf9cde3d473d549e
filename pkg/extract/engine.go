// Package extract drives the extraction engine over provider documentation
// and feeds its candidate records into reconciliation. Documents for one
// provider are processed strictly in order, because later evidence can
// change the leading vote for a field; providers share no state and run in
// parallel.
package extract

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/llmring/registry/pkg/reconcile"
)

// DocumentType classifies a source document.
type DocumentType string

const (
	DocumentTypePNG      DocumentType = "png"
	DocumentTypePDF      DocumentType = "pdf"
	DocumentTypeMarkdown DocumentType = "md"
	DocumentTypeText     DocumentType = "txt"
)

// DetectDocumentType infers the document type from a filename.
func DetectDocumentType(name string) DocumentType {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png":
		return DocumentTypePNG
	case ".pdf":
		return DocumentTypePDF
	case ".md", ".markdown":
		return DocumentTypeMarkdown
	default:
		return DocumentTypeText
	}
}

// Document is one raw provider documentation source handed to the engine.
type Document struct {
	Name    string
	Type    DocumentType
	Content []byte
}

// NewDocument builds a document, detecting its type from the name.
func NewDocument(name string, content []byte) Document {
	return Document{Name: name, Type: DetectDocumentType(name), Content: content}
}

// Engine turns one raw document into a list of loosely-typed candidate
// records, one per model the document mentions. Implementations call an
// external service and may fail or time out; callers wrap every invocation
// in a bounded retry policy.
type Engine interface {
	ExtractDocument(ctx context.Context, doc Document) ([]reconcile.CandidateRecord, error)
}

// EngineFunc adapts a function to the Engine interface.
type EngineFunc func(ctx context.Context, doc Document) ([]reconcile.CandidateRecord, error)

// ExtractDocument implements Engine.
func (f EngineFunc) ExtractDocument(ctx context.Context, doc Document) ([]reconcile.CandidateRecord, error) {
	return f(ctx, doc)
}
