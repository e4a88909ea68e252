package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// ClientInterface is what handlers depend on for machine translation.
type ClientInterface interface {
	Translate(ctx context.Context, text, from, to string) (string, error)
}

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Translate sends the text to the translation service and returns the result.
func (c *Client) Translate(ctx context.Context, text, from, to string) (string, error) {
	url := fmt.Sprintf("%s/translate", c.baseURL)

	payload := translateRequest{
		Q:      text,
		Source: from,
		Target: to,
		Format: "text",
		APIKey: c.apiKey,
	}

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshaling translate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("translate request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errResp errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Error != "" {
			return "", fmt.Errorf("translate service (status %d): %s", resp.StatusCode, errResp.Error)
		}
		return "", fmt.Errorf("translate service (status %d)", resp.StatusCode)
	}

	var response translateResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", fmt.Errorf("decoding translate response: %w", err)
	}

	return response.TranslatedText, nil
}
