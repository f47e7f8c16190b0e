package sources

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/keebscout/keebscout/internal/domain/entities"
	"github.com/keebscout/keebscout/internal/infrastructure/clients/retail"
)

// bestBuySearcher is the slice of the Best Buy client this adapter needs.
type bestBuySearcher interface {
	SearchProducts(ctx context.Context, query string, pageSize int) (*retail.BestBuySearchResponse, error)
}

// BestBuyAdapter supplies Best Buy listings from the Products API v1 when
// a key is configured, falling back to curated seed data otherwise.
type BestBuyAdapter struct {
	client bestBuySearcher
	useAPI bool
}

// NewBestBuyAdapter creates a Best Buy adapter. An empty API key in
// online mode is an error; in auto mode it selects seed data.
func NewBestBuyAdapter(apiKey string, mode Mode) (*BestBuyAdapter, error) {
	useAPI := apiKey != ""
	switch mode {
	case ModeSeed:
		useAPI = false
	case ModeOnline:
		if apiKey == "" {
			return nil, missingKeyError("bestbuy", "BESTBUY_API_KEY")
		}
	}

	adapter := &BestBuyAdapter{useAPI: useAPI}
	if useAPI {
		adapter.client = retail.NewBestBuyClient(apiKey)
	}
	return adapter, nil
}

// Name returns the registry name
func (a *BestBuyAdapter) Name() string { return "bestbuy" }

// Search returns Best Buy listings as source records.
func (a *BestBuyAdapter) Search(ctx context.Context, req SearchRequest) ([]entities.SourceRecord, error) {
	if !a.useAPI {
		records := seedRecords(bestBuySeed, "Best Buy", req, false)
		log.Info().Str("adapter", a.Name()).Int("records", len(records)).Msg("seed search complete")
		return records, nil
	}

	resp, err := a.client.SearchProducts(ctx, req.Query, req.MaxResults)
	if err != nil {
		// API trouble degrades to seed data rather than losing the source.
		log.Warn().Err(err).Str("adapter", a.Name()).Msg("API search failed, falling back to seed data")
		return seedRecords(bestBuySeed, "Best Buy", req, false), nil
	}

	records := make([]entities.SourceRecord, 0, len(resp.Products))
	for _, item := range resp.Products {
		availability := "Out of Stock"
		if item.OnlineAvailability {
			availability = "In Stock"
		}
		records = append(records, entities.SourceRecord{
			"source_site":        "Best Buy",
			"product_title":      item.Name,
			"brand":              item.Manufacturer,
			"price_usd":          item.SalePrice,
			"rating_avg":         item.CustomerReviewAverage,
			"rating_count":       item.CustomerReviewCount,
			"availability":       availability,
			"ship_to_zip":        req.ShipToZip,
			"product_url":        item.URL,
			"ergonomic_features": item.ShortDescription,
			"category":           "Best Buy",
		})
	}

	log.Info().Str("adapter", a.Name()).Int("records", len(records)).Msg("API search complete")
	return records, nil
}
