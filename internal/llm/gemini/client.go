package gemini

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"resume-tailor/internal/llm"
)

type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Client implements llm.Provider on the Gemini API.
type Client struct {
	models generator
	model  string
}

// NewClient constructs a Gemini client for the given model.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("AI_MODEL is required for Gemini")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &Client{models: client.Models, model: model}, nil
}

// WithModel returns a copy of the client bound to another model.
func (c *Client) WithModel(model string) *Client {
	cp := *c
	if strings.TrimSpace(model) != "" {
		cp.model = model
	}
	return &cp
}

// Complete sends one generation request and returns the response text.
func (c *Client) Complete(ctx context.Context, req llm.Request) (string, error) {
	contents, config := buildRequest(req)
	resp, err := c.models.GenerateContent(ctx, c.model, contents, config)
	if err != nil {
		return "", llm.ProviderError("gemini", err)
	}
	if resp == nil {
		return "", llm.ProviderError("gemini", fmt.Errorf("nil response"))
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", llm.ProviderError("gemini", fmt.Errorf("no text content in response"))
	}
	return text, nil
}

func buildRequest(in llm.Request) ([]*genai.Content, *genai.GenerateContentConfig) {
	parts := []*genai.Part{genai.NewPartFromText(in.User)}
	for _, img := range in.Images {
		mime := img.MimeType
		if mime == "" {
			mime = "image/png"
		}
		parts = append(parts, genai.NewPartFromBytes(img.Data, mime))
	}

	config := &genai.GenerateContentConfig{}
	if strings.TrimSpace(in.System) != "" {
		config.SystemInstruction = genai.NewContentFromText(in.System, genai.RoleUser)
	}
	if in.JSON {
		config.ResponseMIMEType = "application/json"
	}
	if in.MaxTokens > 0 {
		config.MaxOutputTokens = int32(in.MaxTokens)
	}
	return []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}, config
}

var _ llm.Provider = (*Client)(nil)
