package llm

import (
	"context"
	"errors"
	"fmt"
)

// ErrProvider marks any failure of the external completion provider:
// transport errors, quota and timeout responses, or empty output.
var ErrProvider = errors.New("llm provider error")

// Provider is a chat completion backend.
type Provider interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// Image is an inline image attached to a request.
type Image struct {
	MimeType string
	Data     []byte
}

// Request is a single completion call.
type Request struct {
	System string
	User   string
	Images []Image
	// JSON asks the provider to constrain its output to a JSON object.
	JSON      bool
	MaxTokens int
}

// ProviderError wraps err so that errors.Is(err, ErrProvider) holds.
func ProviderError(provider string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrProvider) {
		return err
	}
	return fmt.Errorf("%w: %s: %w", ErrProvider, provider, err)
}

// Unconfigured stands in when no API credential is available. Every call fails.
type Unconfigured struct {
	Reason string
}

// Complete always fails with ErrProvider.
func (u Unconfigured) Complete(ctx context.Context, req Request) (string, error) {
	_ = ctx
	_ = req
	return "", fmt.Errorf("%w: %s", ErrProvider, u.Reason)
}

var _ Provider = Unconfigured{}
