package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	tunnelAttempts = 10
	tunnelInterval = 3 * time.Second
)

// tunnelsResponse matches the /api/tunnels response of the ngrok local API.
type tunnelsResponse struct {
	Tunnels []tunnel `json:"tunnels"`
}

type tunnel struct {
	PublicURL string `json:"public_url"`
	Proto     string `json:"proto"`
}

// detectTunnelURL queries the ngrok local API and returns the first HTTPS
// tunnel URL. The voice platform only calls HTTPS endpoints.
func detectTunnelURL(ctx context.Context, apiBase string) (string, error) {
	url := apiBase + "/api/tunnels"
	client := &http.Client{Timeout: 5 * time.Second}

	for attempt := 1; attempt <= tunnelAttempts; attempt++ {
		publicURL, err := fetchTunnelURL(ctx, client, url)
		if err == nil && publicURL != "" {
			return publicURL, nil
		}
		if attempt == tunnelAttempts {
			if err != nil {
				return "", fmt.Errorf("tunnel API not usable after %d attempts: %w", tunnelAttempts, err)
			}
			break
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(tunnelInterval):
		}
	}

	return "", fmt.Errorf("no https tunnel after %d attempts", tunnelAttempts)
}

func fetchTunnelURL(ctx context.Context, client *http.Client, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create tunnel API request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var tunnels tunnelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&tunnels); err != nil {
		return "", fmt.Errorf("failed to decode tunnel API response: %w", err)
	}

	for _, t := range tunnels.Tunnels {
		if t.Proto == "https" {
			return t.PublicURL, nil
		}
	}
	return "", nil
}
