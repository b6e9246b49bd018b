// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package source fetches the remote menu catalog. The catalog is
// consulted exactly once, when the local store is empty; everything
// after that runs against the store.
package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/pdiddy/menu-browser/internal/httputil"
	"github.com/pdiddy/menu-browser/pkg/types"
)

// FetchError wraps a network or payload failure against the remote
// catalog. Callers degrade to an empty catalog rather than abort.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching catalog %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Client fetches the catalog endpoint.
type Client struct {
	HTTP *http.Client
	// Token, when set, is sent as a bearer Authorization header.
	Token string
	cfg   types.SourceConfig
	log   *zap.Logger
}

// NewClient returns a Client for the configured catalog endpoint.
func NewClient(cfg types.SourceConfig, token string, log *zap.Logger) *Client {
	return &Client{
		HTTP:  &http.Client{Timeout: cfg.Timeout},
		Token: token,
		cfg:   cfg,
		log:   log,
	}
}

// menuResponse mirrors the remote document:
// { "menu": [ { id, title, price, category: { title } }, ... ] }.
type menuResponse struct {
	Menu []menuEntry `json:"menu"`
}

type menuEntry struct {
	ID       int64     `json:"id"`
	Title    string    `json:"title"`
	Price    priceText `json:"price"`
	Category struct {
		Title string `json:"title"`
	} `json:"category"`
}

// priceText accepts a JSON string or number and keeps the exact text
// either way, so "9.50" never becomes 9.5.
type priceText string

func (p *priceText) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*p = priceText(s)
		return nil
	}
	*p = priceText(data)
	return nil
}

// FetchMenu performs the one-shot catalog GET and flattens each entry
// to a MenuItem. Any network, status, or parse failure surfaces as a
// *FetchError; the request is not retried (HTTP 429 backoff inside the
// transport helper aside).
func (c *Client) FetchMenu(ctx context.Context) ([]types.MenuItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.URL, nil)
	if err != nil {
		return nil, &FetchError{URL: c.cfg.URL, Err: err}
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := httputil.DoWithRetry(ctx, c.HTTP, req, c.cfg.MaxRetries)
	if err != nil {
		return nil, &FetchError{URL: c.cfg.URL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{URL: c.cfg.URL, Err: fmt.Errorf("catalog returned HTTP %d", resp.StatusCode)}
	}

	var doc menuResponse
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, &FetchError{URL: c.cfg.URL, Err: fmt.Errorf("parsing catalog response: %w", err)}
	}

	items := make([]types.MenuItem, 0, len(doc.Menu))
	for _, entry := range doc.Menu {
		items = append(items, types.MenuItem{
			ID:       entry.ID,
			Title:    entry.Title,
			Price:    string(entry.Price),
			Category: entry.Category.Title,
		})
	}

	c.log.Debug("catalog fetched", zap.Int("items", len(items)))
	return items, nil
}
