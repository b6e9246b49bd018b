// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package menu combines the local store, category selection, and free
// text into filtered, section-grouped catalog views.
package menu

import (
	"context"
	"strings"

	"github.com/pdiddy/menu-browser/pkg/types"
)

// Selection is the category restriction applied to a query. The zero
// value (and AllCategories) matches every category; RestrictedTo
// limits matches to a subset. Using a two-variant value instead of a
// bare string set keeps "no restriction" distinct from "restricted to
// nothing".
type Selection struct {
	restricted []string
}

// AllCategories returns the unrestricted selection.
func AllCategories() Selection {
	return Selection{}
}

// RestrictedTo returns a selection limited to the given categories.
// With no arguments it is equivalent to AllCategories.
func RestrictedTo(categories ...string) Selection {
	return Selection{restricted: categories}
}

// SelectionFromFlags derives a Selection from a per-category toggle
// vector positionally aligned with known. An all-false vector selects
// the full known list, so it yields exactly the same results as an
// all-true one — including for catalog rows whose category lies
// outside the toggle list, which neither matches.
func SelectionFromFlags(known []string, flags []bool) Selection {
	var active []string
	for i, on := range flags {
		if on && i < len(known) {
			active = append(active, known[i])
		}
	}
	if len(active) == 0 {
		return RestrictedTo(append([]string(nil), known...)...)
	}
	return RestrictedTo(active...)
}

// Categories returns the restricted set, or nil when unrestricted.
func (s Selection) Categories() []string {
	return s.restricted
}

// Querier is the store surface the engine reads from.
type Querier interface {
	Query(ctx context.Context, categories []string) ([]types.MenuItem, error)
}

// Engine answers combined category-and-text queries against a store.
// It holds no state of its own; every call re-derives the result from
// the store's current contents.
type Engine struct {
	store Querier
}

// NewEngine returns an Engine reading from store.
func NewEngine(store Querier) *Engine {
	return &Engine{store: store}
}

// Filter returns the items matching both the selection and the text
// query, in storage order. Category membership is pushed to the store;
// text matching is case-insensitive substring matching on the title,
// applied afterwards. Empty or whitespace-only text matches every
// item.
func (e *Engine) Filter(ctx context.Context, text string, sel Selection) ([]types.MenuItem, error) {
	items, err := e.store.Query(ctx, sel.Categories())
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(text))
	if needle == "" {
		return items, nil
	}

	matched := items[:0:0]
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Title), needle) {
			matched = append(matched, item)
		}
	}
	return matched, nil
}
