// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// DefaultCategories is the fixed category list the browse surface
// exposes as toggles. The catalog may contain more categories; toggles
// only cover these.
var DefaultCategories = []string{"Appetizers", "Salads", "Beverages"}

// HTTPConfig holds shared HTTP settings for components that make
// network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "menu-browser/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SourceConfig holds settings for the remote catalog source.
type SourceConfig struct {
	HTTPConfig `yaml:",inline"`

	// URL is the catalog endpoint returning the menu JSON document.
	URL string `json:"url" yaml:"url"`

	// MaxRetries bounds backoff attempts on HTTP 429 responses.
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// StoreConfig holds settings for the local menu store.
type StoreConfig struct {
	// Path is the SQLite database file. ":memory:" is accepted for
	// an ephemeral store.
	Path string `json:"path" yaml:"path"`
}

// BrowseConfig holds settings for the interactive search surface.
type BrowseConfig struct {
	// Categories is the ordered toggle list shown to the user.
	// Defaults to DefaultCategories when empty.
	Categories []string `json:"categories" yaml:"categories"`

	// DebounceInterval is the quiet period before typed search text
	// is committed (default 500ms).
	DebounceInterval time.Duration `json:"debounce_interval" yaml:"debounce_interval"`
}

// Config groups all component configurations.
type Config struct {
	Source SourceConfig `json:"source" yaml:"source"`
	Store  StoreConfig  `json:"store" yaml:"store"`
	Browse BrowseConfig `json:"browse" yaml:"browse"`
}
