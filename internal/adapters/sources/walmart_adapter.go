package sources

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/keebscout/keebscout/internal/domain/entities"
	"github.com/keebscout/keebscout/internal/infrastructure/clients/retail"
)

// walmartSearcher is the slice of the Walmart client this adapter needs.
type walmartSearcher interface {
	SearchItems(ctx context.Context, query string, numItems int) (*retail.WalmartSearchResponse, error)
}

// WalmartAdapter supplies Walmart listings from the Affiliate API when a
// key is configured, falling back to curated seed data otherwise.
type WalmartAdapter struct {
	client walmartSearcher
	useAPI bool
}

// NewWalmartAdapter creates a Walmart adapter.
func NewWalmartAdapter(apiKey string, mode Mode) (*WalmartAdapter, error) {
	useAPI := apiKey != ""
	switch mode {
	case ModeSeed:
		useAPI = false
	case ModeOnline:
		if apiKey == "" {
			return nil, missingKeyError("walmart", "WALMART_API_KEY")
		}
	}

	adapter := &WalmartAdapter{useAPI: useAPI}
	if useAPI {
		adapter.client = retail.NewWalmartClient(apiKey)
	}
	return adapter, nil
}

// Name returns the registry name
func (a *WalmartAdapter) Name() string { return "walmart" }

// Search returns Walmart listings as source records.
func (a *WalmartAdapter) Search(ctx context.Context, req SearchRequest) ([]entities.SourceRecord, error) {
	if !a.useAPI {
		records := seedRecords(walmartSeed, "Walmart", req, false)
		log.Info().Str("adapter", a.Name()).Int("records", len(records)).Msg("seed search complete")
		return records, nil
	}

	resp, err := a.client.SearchItems(ctx, req.Query, req.MaxResults)
	if err != nil {
		log.Warn().Err(err).Str("adapter", a.Name()).Msg("API search failed, falling back to seed data")
		return seedRecords(walmartSeed, "Walmart", req, false), nil
	}

	records := make([]entities.SourceRecord, 0, len(resp.Items))
	for _, item := range resp.Items {
		availability := "Out of Stock"
		if item.AvailableOnline {
			availability = "In Stock"
		}
		records = append(records, entities.SourceRecord{
			"source_site":        "Walmart",
			"product_title":      item.Name,
			"brand":              item.BrandName,
			"price_usd":          item.SalePrice,
			"rating_avg":         item.CustomerRating,
			"rating_count":       item.NumReviews,
			"availability":       availability,
			"ship_to_zip":        req.ShipToZip,
			"product_url":        item.ProductURL,
			"ergonomic_features": item.ShortDescription,
			"category":           "Walmart",
		})
	}

	log.Info().Str("adapter", a.Name()).Int("records", len(records)).Msg("API search complete")
	return records, nil
}
