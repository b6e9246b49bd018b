// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package menu

import (
	"reflect"
	"testing"

	"github.com/pdiddy/menu-browser/pkg/types"
)

func TestGroupSectionsEmpty(t *testing.T) {
	if sections := GroupSections(nil); len(sections) != 0 {
		t.Errorf("got %d sections for empty input, want 0", len(sections))
	}
}

func TestGroupSectionsFirstSeenOrder(t *testing.T) {
	sections := GroupSections([]types.MenuItem{
		{ID: 1, Title: "Pasta", Price: "10", Category: "Appetizers"},
		{ID: 2, Title: "Caesar", Price: "2", Category: "Salads"},
		{ID: 3, Title: "Pizza", Price: "8", Category: "Appetizers"},
		{ID: 4, Title: "Greek", Price: "3", Category: "Salads"},
	})

	var titles []string
	for _, s := range sections {
		titles = append(titles, s.Title)
	}
	if !reflect.DeepEqual(titles, []string{"Appetizers", "Salads"}) {
		t.Errorf("section order = %v, want [Appetizers Salads]", titles)
	}
	if got := ids(sections[0].Items); !reflect.DeepEqual(got, []int64{1, 3}) {
		t.Errorf("Appetizers ids = %v, want [1 3]", got)
	}
	if got := ids(sections[1].Items); !reflect.DeepEqual(got, []int64{2, 4}) {
		t.Errorf("Salads ids = %v, want [2 4]", got)
	}
}

func TestGroupSectionsSingleCategory(t *testing.T) {
	sections := GroupSections([]types.MenuItem{
		{ID: 1, Title: "Water", Price: "1", Category: "Beverages"},
		{ID: 2, Title: "Lemonade", Price: "3", Category: "Beverages"},
	})
	if len(sections) != 1 {
		t.Fatalf("got %d sections, want 1", len(sections))
	}
	if len(sections[0].Items) != 2 {
		t.Errorf("got %d items, want 2", len(sections[0].Items))
	}
}

// Concatenating every section's items must reproduce a permutation of
// the input that keeps each category's internal order, and the section
// count must equal the number of distinct categories.
func TestGroupSectionsPermutationProperty(t *testing.T) {
	input := []types.MenuItem{
		{ID: 1, Category: "A"}, {ID: 2, Category: "B"}, {ID: 3, Category: "A"},
		{ID: 4, Category: "C"}, {ID: 5, Category: "B"}, {ID: 6, Category: "A"},
	}
	sections := GroupSections(input)

	distinct := map[string]bool{}
	for _, item := range input {
		distinct[item.Category] = true
	}
	if len(sections) != len(distinct) {
		t.Errorf("got %d sections, want %d", len(sections), len(distinct))
	}

	var flat []types.MenuItem
	for _, s := range sections {
		flat = append(flat, s.Items...)
	}
	if len(flat) != len(input) {
		t.Fatalf("got %d items after grouping, want %d", len(flat), len(input))
	}

	// Per-category order must match the input's.
	perCat := func(items []types.MenuItem) map[string][]int64 {
		m := map[string][]int64{}
		for _, item := range items {
			m[item.Category] = append(m[item.Category], item.ID)
		}
		return m
	}
	if !reflect.DeepEqual(perCat(flat), perCat(input)) {
		t.Errorf("per-category order changed:\n got %v\nwant %v", perCat(flat), perCat(input))
	}
}
