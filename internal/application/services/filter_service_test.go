package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/keebscout/keebscout/internal/domain/entities"
)

func testCatalog() []*entities.Product {
	return []*entities.Product{
		{
			Title:        "Kinesis Advantage360 Professional",
			Brand:        "Kinesis",
			SourceSite:   "Amazon",
			Price:        ptrPrice("449"),
			RatingCount:  ptrInt(312),
			LayoutSize:   "Split Contoured",
			Connectivity: "Bluetooth + USB-C",
		},
		{
			Title:        "Keychron Q11 QMK Split",
			Brand:        "Keychron",
			SourceSite:   "Amazon",
			Price:        ptrPrice("209"),
			RatingCount:  ptrInt(280),
			LayoutSize:   "Split 75%",
			Connectivity: "USB-C (Wired)",
		},
		{
			Title:        "Perixx PERIBOARD-535 Ergonomic",
			Brand:        "Perixx",
			SourceSite:   "Walmart",
			Price:        ptrPrice("69"),
			RatingCount:  ptrInt(580),
			LayoutSize:   "Split Wave Full",
			Connectivity: "USB",
		},
		{
			Title:      "Mystery Board",
			Brand:      "Unknown Co",
			SourceSite: "CSV",
			// no price, no rating count
			LayoutSize:   "Alice 75%",
			Connectivity: "2.4GHz dongle",
		},
	}
}

func TestApply_NoFiltersPassesEverything(t *testing.T) {
	svc := NewFilterService()
	got := svc.Apply(testCatalog(), FilterOptions{})
	assert.Len(t, got, 4)
}

func TestApply_BudgetExcludesOverBudgetAndUnknownPrice(t *testing.T) {
	svc := NewFilterService()

	got := svc.Apply(testCatalog(), FilterOptions{Budget: ptrPrice("300")})

	assert.Len(t, got, 2)
	assert.Equal(t, "Keychron Q11 QMK Split", got[0].Title)
	assert.Equal(t, "Perixx PERIBOARD-535 Ergonomic", got[1].Title)
}

func TestApply_BudgetBoundaryIsInclusive(t *testing.T) {
	svc := NewFilterService()
	got := svc.Apply(testCatalog(), FilterOptions{Budget: ptrPrice("209")})
	assert.Len(t, got, 2) // Q11 at exactly 209 stays in
}

func TestApply_WirelessFilter(t *testing.T) {
	svc := NewFilterService()

	wireless := svc.Apply(testCatalog(), FilterOptions{Wireless: ptrBool(true)})
	assert.Len(t, wireless, 2)
	assert.Equal(t, "Kinesis Advantage360 Professional", wireless[0].Title)
	assert.Equal(t, "Mystery Board", wireless[1].Title)

	wired := svc.Apply(testCatalog(), FilterOptions{Wireless: ptrBool(false)})
	assert.Len(t, wired, 2)
	assert.Equal(t, "Keychron Q11 QMK Split", wired[0].Title)
}

func TestApply_LayoutMatchesSubstring(t *testing.T) {
	svc := NewFilterService()

	split := svc.Apply(testCatalog(), FilterOptions{Layout: "split"})
	assert.Len(t, split, 3)

	alice := svc.Apply(testCatalog(), FilterOptions{Layout: "alice"})
	assert.Len(t, alice, 1)
	assert.Equal(t, "Mystery Board", alice[0].Title)
}

func TestApply_MinRatingCountTreatsUnknownAsZero(t *testing.T) {
	svc := NewFilterService()

	got := svc.Apply(testCatalog(), FilterOptions{MinRatingCount: 300})
	assert.Len(t, got, 2)
	for _, p := range got {
		assert.NotEqual(t, "Mystery Board", p.Title)
	}
}

func TestApply_FiltersCompose(t *testing.T) {
	svc := NewFilterService()

	got := svc.Apply(testCatalog(), FilterOptions{
		Budget:         ptrPrice("500"),
		Wireless:       ptrBool(true),
		Layout:         "split",
		MinRatingCount: 100,
	})

	assert.Len(t, got, 1)
	assert.Equal(t, "Kinesis Advantage360 Professional", got[0].Title)
}

func TestApply_EmptyResultIsNotAnError(t *testing.T) {
	svc := NewFilterService()
	got := svc.Apply(testCatalog(), FilterOptions{Budget: ptrPrice("10")})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestApply_PreservesOrderAndDoesNotMutate(t *testing.T) {
	svc := NewFilterService()
	catalog := testCatalog()

	got := svc.Apply(catalog, FilterOptions{Layout: "split"})

	assert.Equal(t, "Kinesis Advantage360 Professional", got[0].Title)
	assert.Equal(t, "Keychron Q11 QMK Split", got[1].Title)
	assert.Equal(t, "Perixx PERIBOARD-535 Ergonomic", got[2].Title)
	assert.Len(t, catalog, 4)
}
