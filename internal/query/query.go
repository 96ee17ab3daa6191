// Package query implements the client-side catalog query pipeline: a pure
// filter-then-sort transform over an in-memory product collection. The
// pipeline never mutates its input and never fails; it is re-run from scratch
// on every criteria change.
package query

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/mazia777/fakestore-app/internal/models"
)

// AllCategories is the sentinel category meaning "no category filter".
const AllCategories = "All"

// SortKey selects the ordering applied after filtering.
type SortKey string

const (
	SortNone      SortKey = "none"
	SortPriceAsc  SortKey = "price_asc"
	SortPriceDesc SortKey = "price_desc"
	SortTitleAsc  SortKey = "title_asc"
	SortTitleDesc SortKey = "title_desc"
)

// ParseSortKey normalizes a user-supplied sort key. An empty or unrecognized
// value falls back to SortNone, preserving the catalog's original order.
func ParseSortKey(s string) SortKey {
	switch SortKey(strings.ToLower(strings.TrimSpace(s))) {
	case SortPriceAsc:
		return SortPriceAsc
	case SortPriceDesc:
		return SortPriceDesc
	case SortTitleAsc:
		return SortTitleAsc
	case SortTitleDesc:
		return SortTitleDesc
	default:
		return SortNone
	}
}

// Criteria is the user-selected filter and sort configuration for one
// invocation of the pipeline. It is transient UI state with no persistence.
type Criteria struct {
	Text     string
	Category string
	Sort     SortKey
}

// Apply filters items by the criteria and then sorts the result. Filtering
// always runs before sorting, and sorting never changes membership. The
// returned slice is a fresh, stable permutation of a subset of items; the
// input is left untouched.
func Apply(items []models.Product, c Criteria) []models.Product {
	out := filter(items, c)
	sortProducts(out, c.Sort)
	return out
}

// Categories derives the category universe of a catalog: every distinct
// non-empty category value, collated lexicographically, with the
// AllCategories sentinel prepended.
func Categories(items []models.Product) []string {
	seen := make(map[string]struct{})
	cats := make([]string, 0)
	for _, item := range items {
		if item.Category == "" {
			continue
		}
		if _, ok := seen[item.Category]; ok {
			continue
		}
		seen[item.Category] = struct{}{}
		cats = append(cats, item.Category)
	}

	// Collators are not safe for concurrent use, so build one per call.
	collate.New(language.English).SortStrings(cats)

	return append([]string{AllCategories}, cats...)
}

func filter(items []models.Product, c Criteria) []models.Product {
	text := strings.ToLower(strings.TrimSpace(c.Text))

	out := make([]models.Product, 0, len(items))
	for _, item := range items {
		if c.Category != AllCategories && c.Category != "" && item.Category != c.Category {
			continue
		}
		if text != "" && !matchesText(item, text) {
			continue
		}
		out = append(out, item)
	}
	return out
}

// matchesText reports whether the lowercased title or description contains
// the already-lowercased search text. Missing fields read as empty strings.
func matchesText(item models.Product, text string) bool {
	return strings.Contains(strings.ToLower(item.Title), text) ||
		strings.Contains(strings.ToLower(item.Description), text)
}

func sortProducts(items []models.Product, key SortKey) {
	if key == SortNone || key == "" {
		return
	}

	// Stable sort throughout: items with equal keys keep their pre-sort
	// relative order, so listings do not jitter between re-renders. NaN
	// prices compare as unordered and simply stay where the stable sort
	// leaves them.
	switch key {
	case SortPriceAsc:
		sort.SliceStable(items, func(i, j int) bool {
			return float64(items[i].Price) < float64(items[j].Price)
		})
	case SortPriceDesc:
		sort.SliceStable(items, func(i, j int) bool {
			return float64(items[i].Price) > float64(items[j].Price)
		})
	case SortTitleAsc:
		col := collate.New(language.English)
		sort.SliceStable(items, func(i, j int) bool {
			return col.CompareString(items[i].Title, items[j].Title) < 0
		})
	case SortTitleDesc:
		col := collate.New(language.English)
		sort.SliceStable(items, func(i, j int) bool {
			return col.CompareString(items[i].Title, items[j].Title) > 0
		})
	}
}
