package query_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mazia777/fakestore-app/internal/models"
	"github.com/mazia777/fakestore-app/internal/query"
)

func sampleCatalog() []models.Product {
	return []models.Product{
		{ID: 1, Title: "Red Shirt", Description: "A bright red cotton shirt", Category: "men", Price: 20},
		{ID: 2, Title: "Blue Hat", Description: "A warm knitted hat", Category: "women", Price: 10},
		{ID: 3, Title: "Gold Ring", Description: "A plain gold band", Category: "jewelery", Price: 150},
		{ID: 4, Title: "Green Shirt", Description: "A green linen shirt", Category: "men", Price: 20},
	}
}

func TestApply_IdentityCriteria(t *testing.T) {
	items := sampleCatalog()

	out := query.Apply(items, query.Criteria{Text: "", Category: query.AllCategories, Sort: query.SortNone})

	assert.Equal(t, items, out, "empty criteria must return the full input in original order")
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	items := sampleCatalog()
	original := sampleCatalog()

	_ = query.Apply(items, query.Criteria{Category: query.AllCategories, Sort: query.SortPriceDesc})

	assert.Equal(t, original, items, "sorting the view must not reorder the caller's slice")
}

func TestApply_CategoryFilter(t *testing.T) {
	items := sampleCatalog()

	out := query.Apply(items, query.Criteria{Category: "men", Sort: query.SortNone})

	assert.Len(t, out, 2)
	for _, p := range out {
		assert.Equal(t, "men", p.Category)
	}
}

func TestApply_UnknownCategoryYieldsEmpty(t *testing.T) {
	out := query.Apply(sampleCatalog(), query.Criteria{Category: "nonexistent", Sort: query.SortNone})

	assert.Empty(t, out)
	assert.NotNil(t, out)
}

func TestApply_TextSearch(t *testing.T) {
	items := sampleCatalog()

	out := query.Apply(items, query.Criteria{Text: "red", Category: query.AllCategories, Sort: query.SortNone})
	assert.Len(t, out, 1)
	assert.Equal(t, "Red Shirt", out[0].Title)

	// Search text is trimmed and matched case-insensitively against title
	// and description.
	out = query.Apply(items, query.Criteria{Text: "  KNITTED  ", Category: query.AllCategories, Sort: query.SortNone})
	assert.Len(t, out, 1)
	assert.Equal(t, "Blue Hat", out[0].Title)
}

func TestApply_TextAndCategoryAreConjunctive(t *testing.T) {
	items := sampleCatalog()

	out := query.Apply(items, query.Criteria{Text: "shirt", Category: "women", Sort: query.SortNone})

	assert.Empty(t, out, "an item must satisfy both predicates to pass")
}

func TestApply_MissingFieldsNeverPanic(t *testing.T) {
	items := []models.Product{{ID: 9, Price: 5}} // no title, description, category

	assert.NotPanics(t, func() {
		out := query.Apply(items, query.Criteria{Text: "anything", Category: query.AllCategories, Sort: query.SortTitleAsc})
		assert.Empty(t, out)
	})
}

func TestApply_PriceSortAscThenDescReverse(t *testing.T) {
	items := []models.Product{
		{ID: 1, Title: "A", Price: 30},
		{ID: 2, Title: "B", Price: 10},
		{ID: 3, Title: "C", Price: 20},
	}

	asc := query.Apply(items, query.Criteria{Category: query.AllCategories, Sort: query.SortPriceAsc})
	desc := query.Apply(items, query.Criteria{Category: query.AllCategories, Sort: query.SortPriceDesc})

	assert.Equal(t, []int{2, 3, 1}, ids(asc))

	// With no duplicate prices, descending is exactly the reverse.
	for i := range asc {
		assert.Equal(t, asc[i].ID, desc[len(desc)-1-i].ID)
	}
}

func TestApply_PriceSortIsStable(t *testing.T) {
	items := []models.Product{
		{ID: 1, Title: "First", Price: 20},
		{ID: 2, Title: "Cheap", Price: 10},
		{ID: 3, Title: "Second", Price: 20},
		{ID: 4, Title: "Third", Price: 20},
	}

	out := query.Apply(items, query.Criteria{Category: query.AllCategories, Sort: query.SortPriceAsc})

	assert.Equal(t, []int{2, 1, 3, 4}, ids(out), "equal-price items must retain their relative order")
}

func TestApply_TitleSort(t *testing.T) {
	items := []models.Product{
		{ID: 1, Title: "banana"},
		{ID: 2, Title: "Apple"},
		{ID: 3, Title: "cherry"},
	}

	out := query.Apply(items, query.Criteria{Category: query.AllCategories, Sort: query.SortTitleAsc})
	assert.Equal(t, []int{2, 1, 3}, ids(out), "collation is case-insensitive lexicographic")

	out = query.Apply(items, query.Criteria{Category: query.AllCategories, Sort: query.SortTitleDesc})
	assert.Equal(t, []int{3, 1, 2}, ids(out))
}

// Malformed upstream prices decode to NaN. The pipeline treats that as
// non-fatal: NaN-priced items land in an unspecified position relative to
// each other, but membership is never affected. This pins the degraded
// behavior down so a future "fix" is a deliberate choice.
func TestApply_NaNPricesDoNotDropItems(t *testing.T) {
	items := []models.Product{
		{ID: 1, Title: "Good", Price: 5},
		{ID: 2, Title: "Broken", Price: models.Price(math.NaN())},
		{ID: 3, Title: "Fine", Price: 1},
	}

	out := query.Apply(items, query.Criteria{Category: query.AllCategories, Sort: query.SortPriceAsc})

	assert.Len(t, out, 3, "NaN prices must degrade ordering only, never membership")
}

func TestApply_BrowseScenarios(t *testing.T) {
	items := []models.Product{
		{Title: "Red Shirt", Category: "men", Price: 20},
		{Title: "Blue Hat", Category: "women", Price: 10},
	}

	out := query.Apply(items, query.Criteria{Text: "", Category: query.AllCategories, Sort: query.SortPriceAsc})
	assert.Equal(t, []string{"Blue Hat", "Red Shirt"}, titles(out))

	out = query.Apply(items, query.Criteria{Text: "red", Category: query.AllCategories, Sort: query.SortNone})
	assert.Equal(t, []string{"Red Shirt"}, titles(out))

	out = query.Apply(items, query.Criteria{Text: "", Category: "nonexistent", Sort: query.SortNone})
	assert.Empty(t, out)
}

func TestCategories(t *testing.T) {
	items := []models.Product{
		{Category: "women"},
		{Category: "men"},
		{Category: ""},
		{Category: "men"},
		{Category: "electronics"},
	}

	cats := query.Categories(items)

	assert.Equal(t, []string{query.AllCategories, "electronics", "men", "women"}, cats)
}

func TestCategories_EmptyCatalog(t *testing.T) {
	cats := query.Categories(nil)

	assert.Equal(t, []string{query.AllCategories}, cats)
}

func TestParseSortKey(t *testing.T) {
	assert.Equal(t, query.SortPriceAsc, query.ParseSortKey("price_asc"))
	assert.Equal(t, query.SortTitleDesc, query.ParseSortKey("  TITLE_DESC "))
	assert.Equal(t, query.SortNone, query.ParseSortKey(""))
	assert.Equal(t, query.SortNone, query.ParseSortKey("bogus"))
}

func ids(items []models.Product) []int {
	out := make([]int, 0, len(items))
	for _, p := range items {
		out = append(out, p.ID)
	}
	return out
}

func titles(items []models.Product) []string {
	out := make([]string, 0, len(items))
	for _, p := range items {
		out = append(out, p.Title)
	}
	return out
}
