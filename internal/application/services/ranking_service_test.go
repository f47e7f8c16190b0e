package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keebscout/keebscout/internal/domain/entities"
)

func listing(brand, title, source, price string, total float64) entities.RankedProduct {
	p := &entities.Product{Brand: brand, Title: title, SourceSite: source}
	if price != "" {
		d := decimal.RequireFromString(price)
		p.Price = &d
	}
	return entities.RankedProduct{Product: p, Score: entities.ScoreBreakdown{Total: total}}
}

func TestRank_DedupeKeepsLowestPrice(t *testing.T) {
	svc := NewRankingService()

	got := svc.Rank([]entities.RankedProduct{
		listing("Logitech", "Ergo K860", "Amazon", "149.99", 70),
		listing("Logitech", "Ergo K860", "Walmart", "129.99", 70),
	}, 0)

	require.Len(t, got, 1)
	assert.Equal(t, "Walmart", got[0].Product.SourceSite)
	assert.True(t, got[0].Product.Price.Equal(decimal.RequireFromString("129.99")))
}

func TestRank_DedupeKnownPriceBeatsUnknown(t *testing.T) {
	svc := NewRankingService()

	got := svc.Rank([]entities.RankedProduct{
		listing("Logitech", "Ergo K860", "CSV", "", 90),
		listing("Logitech", "Ergo K860", "Amazon", "129.99", 70),
	}, 0)

	require.Len(t, got, 1)
	assert.Equal(t, "Amazon", got[0].Product.SourceSite)
}

func TestRank_DedupePriceTieBreaksOnScore(t *testing.T) {
	svc := NewRankingService()

	got := svc.Rank([]entities.RankedProduct{
		listing("Logitech", "Ergo K860", "Amazon", "129.99", 70),
		listing("Logitech", "Ergo K860", "BestBuy", "129.99", 75),
	}, 0)

	require.Len(t, got, 1)
	assert.Equal(t, "BestBuy", got[0].Product.SourceSite)
}

func TestRank_DedupeFullTieKeepsFirstEncountered(t *testing.T) {
	svc := NewRankingService()

	got := svc.Rank([]entities.RankedProduct{
		listing("Logitech", "Ergo K860", "Amazon", "129.99", 70),
		listing("Logitech", "Ergo K860", "BestBuy", "129.99", 70),
	}, 0)

	require.Len(t, got, 1)
	assert.Equal(t, "Amazon", got[0].Product.SourceSite)
}

func TestRank_DedupeKeyIgnoresCaseAndPunctuation(t *testing.T) {
	svc := NewRankingService()

	got := svc.Rank([]entities.RankedProduct{
		listing("Logitech", "ERGO K860", "Amazon", "149.99", 70),
		listing("logitech", "Ergo-K860", "Walmart", "129.99", 70),
	}, 0)

	require.Len(t, got, 1)
}

func TestRank_SortsByScoreThenPrice(t *testing.T) {
	svc := NewRankingService()

	got := svc.Rank([]entities.RankedProduct{
		listing("A", "Board A", "T", "150", 80),
		listing("B", "Board B", "T", "100", 80),
		listing("C", "Board C", "T", "50", 60),
	}, 0)

	require.Len(t, got, 3)
	assert.Equal(t, "Board B", got[0].Product.Title) // 80 points, cheaper
	assert.Equal(t, "Board A", got[1].Product.Title) // 80 points, pricier
	assert.Equal(t, "Board C", got[2].Product.Title) // 60 points
}

func TestRank_UnknownPriceSortsLastWithinScoreTie(t *testing.T) {
	svc := NewRankingService()

	got := svc.Rank([]entities.RankedProduct{
		listing("A", "Board A", "T", "", 80),
		listing("B", "Board B", "T", "300", 80),
	}, 0)

	require.Len(t, got, 2)
	assert.Equal(t, "Board B", got[0].Product.Title)
	assert.Equal(t, "Board A", got[1].Product.Title)
}

func TestRank_FullTieKeepsInsertionOrder(t *testing.T) {
	svc := NewRankingService()

	got := svc.Rank([]entities.RankedProduct{
		listing("A", "Board A", "T", "100", 80),
		listing("B", "Board B", "T", "100", 80),
		listing("C", "Board C", "T", "100", 80),
	}, 0)

	require.Len(t, got, 3)
	assert.Equal(t, "Board A", got[0].Product.Title)
	assert.Equal(t, "Board B", got[1].Product.Title)
	assert.Equal(t, "Board C", got[2].Product.Title)
}

func TestRank_TruncatesToTopN(t *testing.T) {
	svc := NewRankingService()

	in := []entities.RankedProduct{
		listing("A", "Board A", "T", "100", 90),
		listing("B", "Board B", "T", "100", 80),
		listing("C", "Board C", "T", "100", 70),
	}

	got := svc.Rank(in, 2)
	require.Len(t, got, 2)
	assert.Equal(t, "Board A", got[0].Product.Title)
	assert.Equal(t, "Board B", got[1].Product.Title)

	all := svc.Rank(in, 0)
	assert.Len(t, all, 3)
}

func TestRank_Empty(t *testing.T) {
	svc := NewRankingService()
	assert.Empty(t, svc.Rank(nil, 10))
}
