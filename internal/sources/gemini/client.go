// Package gemini implements the extraction engine on top of the Gemini API.
// Documents are sent to a multimodal model together with an extraction
// prompt, and the model's JSON reply is parsed into candidate records.
package gemini

import (
	"context"
	stderrors "errors"
	"os"

	"google.golang.org/genai"

	"github.com/llmring/registry/pkg/errors"
	"github.com/llmring/registry/pkg/extract"
	"github.com/llmring/registry/pkg/reconcile"
)

// DefaultModel is the model used for extraction unless overridden.
const DefaultModel = "gemini-2.5-flash"

const providerName = "gemini"

// Client calls the Gemini API to extract model metadata from documents.
// It implements extract.Engine.
type Client struct {
	genaiClient *genai.Client
	model       string
}

// Option configures a Client.
type Option func(*Client)

// WithModel overrides the extraction model.
func WithModel(model string) Option {
	return func(c *Client) {
		c.model = model
	}
}

// New creates a Gemini extraction client. The API key is read from the
// GEMINI_API_KEY environment variable.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, errors.NewConfigError(providerName,
			"GEMINI_API_KEY not set", errors.ErrAPIKeyRequired)
	}

	genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		Backend: genai.BackendGeminiAPI,
		APIKey:  apiKey,
	})
	if err != nil {
		return nil, errors.NewConfigError(providerName, "failed to create client", err)
	}

	c := &Client{
		genaiClient: genaiClient,
		model:       DefaultModel,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// ExtractDocument implements extract.Engine. It sends the document and the
// extraction prompt to the model and parses the JSON reply into candidate
// records.
func (c *Client) ExtractDocument(ctx context.Context, doc extract.Document) ([]reconcile.CandidateRecord, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts(c.buildParts(doc), genai.RoleUser),
	}

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	}

	resp, err := c.genaiClient.Models.GenerateContent(ctx, c.model, contents, config)
	if err != nil {
		return nil, c.wrapAPIError(err)
	}

	records, err := parseReply(doc.Name, resp.Text())
	if err != nil {
		return nil, err
	}
	return records, nil
}

// buildParts assembles the prompt and the document. Binary documents go as
// inline data; markdown and plain text are appended to the prompt itself.
func (c *Client) buildParts(doc extract.Document) []*genai.Part {
	parts := []*genai.Part{genai.NewPartFromText(extractionPrompt)}

	switch doc.Type {
	case extract.DocumentTypePNG:
		parts = append(parts, genai.NewPartFromBytes(doc.Content, "image/png"))
	case extract.DocumentTypePDF:
		parts = append(parts, genai.NewPartFromBytes(doc.Content, "application/pdf"))
	default:
		parts = append(parts, genai.NewPartFromText("\n--- DOCUMENT ---\n"+string(doc.Content)))
	}
	return parts
}

// wrapAPIError translates SDK failures into the registry's error taxonomy,
// preserving the status code so rate limits short-circuit retries.
func (c *Client) wrapAPIError(err error) error {
	var apiErr genai.APIError
	if stderrors.As(err, &apiErr) {
		wrapped := errors.NewAPIError(providerName, apiErr.Code, apiErr.Message)
		wrapped.Endpoint = c.model
		return wrapped
	}
	return errors.WrapAPI(providerName, 0, err)
}
