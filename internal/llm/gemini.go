package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"
)

// GeminiClient summarizes through the Gemini API.
type GeminiClient struct {
	Model  string
	client *genai.Client
}

// NewGeminiClient creates a Gemini-backed client. baseURL may be empty to use
// the default endpoint; timeout of zero means no timeout.
func NewGeminiClient(ctx context.Context, apiKey, model, baseURL string, timeout time.Duration) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, errors.New("gemini API key is required")
	}

	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}
	if timeout > 0 {
		cfg.HTTPClient = &http.Client{Timeout: timeout}
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &GeminiClient{Model: model, client: client}, nil
}

// Summarize sends prompt as a single user turn and returns the reply text.
func (g *GeminiClient) Summarize(ctx context.Context, prompt string) ([]byte, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.Model, genai.Text(prompt), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	text, err := responseText(resp)
	if err != nil {
		return nil, err
	}
	return []byte(text), nil
}

// responseText joins the non-thought text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", errors.New("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate == nil || candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", errors.New("no parts in candidate content")
	}

	var b strings.Builder
	for _, part := range candidate.Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		b.WriteString(part.Text)
	}

	if b.Len() == 0 {
		return "", errors.New("no text in response")
	}
	return b.String(), nil
}
