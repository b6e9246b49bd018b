// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package menu

import "github.com/pdiddy/menu-browser/pkg/types"

// GroupSections folds a flat ordered item list into category sections.
// A section is created the first time its category is seen, at that
// position in the output; items keep their relative order within each
// section. Concatenating all sections in order reproduces the input up
// to the category regrouping.
func GroupSections(items []types.MenuItem) []types.Section {
	index := make(map[string]int)
	var sections []types.Section

	for _, item := range items {
		i, ok := index[item.Category]
		if !ok {
			i = len(sections)
			index[item.Category] = i
			sections = append(sections, types.Section{Title: item.Category})
		}
		sections[i].Items = append(sections[i].Items, item)
	}

	return sections
}
