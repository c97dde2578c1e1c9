// internal/ai/httpapi.go
package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gameforge/internal/common/httpclient"
)

// HTTPProvider talks to a self-hosted model server exposing /embed and
// /complete JSON endpoints. Useful for local models and for test harnesses.
type HTTPProvider struct {
	baseURL string
	client  *httpclient.Client
}

type embedRequest struct {
	Text string `json:"text"`
}

type embedResponse struct {
	Embedding []float32 `json:"embedding"`
}

type completeRequest struct {
	System string `json:"system,omitempty"`
	User   string `json:"user"`
}

type completeResponse struct {
	Text string `json:"text"`
}

// NewHTTPProvider creates a provider against baseURL with the given timeout.
func NewHTTPProvider(baseURL string, timeout time.Duration) *HTTPProvider {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  httpclient.NewClient(timeout),
	}
}

// Embed requests an embedding from the model server.
func (p *HTTPProvider) Embed(ctx context.Context, text string) ([]float32, error) {
	var resp embedResponse
	if err := p.client.PostJSON(ctx, p.baseURL+"/embed", embedRequest{Text: text}, &resp); err != nil {
		return nil, fmt.Errorf("embed request failed: %w", err)
	}
	if len(resp.Embedding) == 0 {
		return nil, fmt.Errorf("empty embedding returned")
	}
	return resp.Embedding, nil
}

// Complete requests a completion from the model server.
func (p *HTTPProvider) Complete(ctx context.Context, system, user string) (string, error) {
	var resp completeResponse
	req := completeRequest{System: system, User: user}
	if err := p.client.PostJSON(ctx, p.baseURL+"/complete", req, &resp); err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	if resp.Text == "" {
		return "", fmt.Errorf("empty completion returned")
	}
	return resp.Text, nil
}

// Close is a no-op; the underlying transport manages its own connections.
func (p *HTTPProvider) Close() error {
	return nil
}
