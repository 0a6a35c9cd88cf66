package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
)

func loadHTTP(ctx context.Context, client *http.Client, rawURL string) ([]byte, error) {
	if client == nil {
		return nil, errors.New("openapi loader: http client is nil")
	}
	if rawURL == "" {
		return nil, errors.New("openapi loader: url is required")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("openapi loader: build request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openapi loader: fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("openapi loader: fetch %s: unexpected status %d", rawURL, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("openapi loader: read body: %w", err)
	}
	return data, nil
}
