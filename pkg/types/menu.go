// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data model for menu-browser.
package types

// MenuItem is one catalog entry as stored locally. Identity is ID;
// the store enforces uniqueness by replacing on conflict.
type MenuItem struct {
	// ID is the unique item identifier assigned by the remote catalog.
	ID int64 `json:"id" yaml:"id"`

	// Title is the display name of the dish.
	Title string `json:"title" yaml:"title"`

	// Price is kept as the exact text received from the catalog
	// (never parsed into a numeric type, so "9.50" stays "9.50").
	Price string `json:"price" yaml:"price"`

	// Category is the label of the menu category the item belongs to.
	Category string `json:"category" yaml:"category"`
}

// Section groups the items of one category under its label, in the
// order they appeared in the source sequence. Sections are derived per
// query and never persisted.
type Section struct {
	// Title is the category label used as the section header.
	Title string `json:"title" yaml:"title"`

	// Items holds the section's entries in input order.
	Items []MenuItem `json:"data" yaml:"data"`
}
