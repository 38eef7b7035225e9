package kucoin

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const DefaultBaseURL = "https://api-futures.kucoin.com"

// Client is a thin REST client for the KuCoin futures public API.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// get performs a GET request and decodes the standard KuCoin envelope into out.
// Any non-2xx status or non-success envelope code is an error.
func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("kucoin %s: status %d", path, resp.StatusCode)
	}
	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("kucoin %s: decode: %w", path, err)
	}
	return nil
}

type envelope struct {
	Code string `json:"code"`
}

func (e envelope) ok() bool {
	return e.Code == "" || e.Code == "200000"
}
