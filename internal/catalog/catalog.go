package catalog

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Item is a named, categorized entry in the catalogue.
type Item struct {
	Name     string `json:"name" yaml:"name"`         // Display identifier (e.g., "Golf")
	Category string `json:"category" yaml:"category"` // Free-form label (e.g., "red")
}

// String renders the item the way a list row shows it.
func (i Item) String() string {
	return fmt.Sprintf("%s, %s", i.Name, i.Category)
}

// Matches reports whether the item belongs to the given category.
// Comparison is case-insensitive.
func (i Item) Matches(category string) bool {
	return strings.EqualFold(i.Category, category)
}

// Default returns the built-in catalogue.
func Default() []Item {
	return []Item{
		{Name: "Golf", Category: "red"},
		{Name: "Polo", Category: "blue"},
	}
}

// Filter returns the items whose category equals selection, ignoring case.
// Order is preserved. An empty selection returns items as-is; a selection
// that matches nothing returns an empty, non-nil slice.
func Filter(items []Item, selection string) []Item {
	if selection == "" {
		return items
	}

	filtered := make([]Item, 0, len(items))
	for _, item := range items {
		if item.Matches(selection) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// Categories returns the distinct categories in items, lower-cased, in the
// order they first appear. Empty categories are skipped.
func Categories(items []Item) []string {
	seen := make(map[string]bool)
	var result []string

	for _, item := range items {
		key := strings.ToLower(item.Category)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, key)
	}
	return result
}

// maxSuggestDistance bounds how far a typo may be from a real category.
const maxSuggestDistance = 2

// Suggest returns the category in items closest to selection by edit
// distance, or "" when selection already matches a category or nothing is
// close enough.
func Suggest(items []Item, selection string) string {
	if selection == "" {
		return ""
	}

	want := strings.ToLower(selection)
	best := ""
	bestDist := maxSuggestDistance + 1

	for _, category := range Categories(items) {
		if category == want {
			return ""
		}
		if d := levenshtein.ComputeDistance(want, category); d < bestDist {
			best = category
			bestDist = d
		}
	}
	return best
}
