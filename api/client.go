// Package api is the HTTP client for the pitch booking backend. All
// canonical state lives server-side; this client only fetches and submits.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultBaseURL    = "http://localhost:8080/api"
	defaultGeocodeURL = "https://nominatim.openstreetmap.org/search"
	defaultUserAgent  = "datsan-cli/1.0"
)

type Client struct {
	HTTP        *http.Client
	BaseURL     string
	GeocodeURL  string
	UserAgent   string
	AccessToken string
}

func NewClient() *Client {
	return &Client{
		HTTP:       &http.Client{Timeout: 15 * time.Second},
		BaseURL:    defaultBaseURL,
		GeocodeURL: defaultGeocodeURL,
		UserAgent:  defaultUserAgent,
	}
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, payload any) (*http.Request, error) {
	base, err := url.Parse(c.BaseURL)
	if err != nil {
		return nil, err
	}
	path = strings.TrimPrefix(path, "/")
	base.Path = strings.TrimSuffix(base.Path, "/") + "/" + path
	if query != nil {
		base.RawQuery = query.Encode()
	}

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, base.String(), body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	// The backend enforces auth; an absent token simply omits the header.
	if c.AccessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.AccessToken)
	}
	return req, nil
}

func (c *Client) doJSON(req *http.Request, dest any) error {
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("request failed: %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}

	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		if err == io.EOF {
			return nil
		}
		return err
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, dest any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	return c.doJSON(req, dest)
}

func (c *Client) postJSON(ctx context.Context, path string, payload, dest any) error {
	req, err := c.newRequest(ctx, http.MethodPost, path, nil, payload)
	if err != nil {
		return err
	}
	return c.doJSON(req, dest)
}

func (c *Client) putJSON(ctx context.Context, path string, payload, dest any) error {
	req, err := c.newRequest(ctx, http.MethodPut, path, nil, payload)
	if err != nil {
		return err
	}
	return c.doJSON(req, dest)
}
