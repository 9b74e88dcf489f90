package translator

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Google translates through the public translate endpoint, the same one the
// original deep-translator tooling speaks. No API key required.
type Google struct {
	endpoint string
	client   *http.Client
}

// NewGoogle creates a translator against the given endpoint base URL
func NewGoogle(endpoint string, timeout time.Duration) *Google {
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Google{
		endpoint: strings.TrimSuffix(endpoint, "/"),
		client:   &http.Client{Timeout: timeout},
	}
}

// Translate requests a translation with auto-detected source language.
// The endpoint answers with nested JSON arrays where the first element lists
// translated segments; segments are concatenated in order.
func (g *Google) Translate(ctx context.Context, text, targetCode string) (string, error) {
	params := url.Values{}
	params.Set("client", "gtx")
	params.Set("sl", "auto")
	params.Set("tl", targetCode)
	params.Set("dt", "t")
	params.Set("q", text)

	reqURL := fmt.Sprintf("%s/translate_a/single?%s", g.endpoint, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("translate request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("translate request failed: status %d, %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload []any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	translated, err := extractSegments(payload)
	if err != nil {
		return "", err
	}
	if translated == "" {
		return "", fmt.Errorf("empty translation returned")
	}
	return translated, nil
}

// Name returns the backend name
func (g *Google) Name() string { return "google" }

// extractSegments walks payload[0][i][0] and joins the translated segments
func extractSegments(payload []any) (string, error) {
	if len(payload) == 0 {
		return "", fmt.Errorf("unexpected response shape: empty payload")
	}
	segments, ok := payload[0].([]any)
	if !ok {
		return "", fmt.Errorf("unexpected response shape: first element is not a list")
	}

	var b strings.Builder
	for _, seg := range segments {
		parts, ok := seg.([]any)
		if !ok || len(parts) == 0 {
			continue
		}
		if s, ok := parts[0].(string); ok {
			b.WriteString(s)
		}
	}
	return strings.TrimSpace(b.String()), nil
}
