package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// ModelAvailable reports whether the configured model is listed by the
// server's /v1/models endpoint.
func (c *Client) ModelAvailable(ctx context.Context) (bool, error) {
	url := fmt.Sprintf("%s/v1/models", c.BaseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, fmt.Errorf("failed to create models request: %w", err)
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.APIKey))

	resp, err := c.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("failed to list models: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return false, fmt.Errorf("bad status %d: %s", resp.StatusCode, string(raw))
	}

	var models ModelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&models); err != nil {
		return false, fmt.Errorf("failed to decode models response: %w", err)
	}

	for _, m := range models.Data {
		if m.ID == c.Model {
			return true, nil
		}
	}
	return false, nil
}
