package services

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/keebscout/keebscout/internal/domain/entities"
	apperrors "github.com/keebscout/keebscout/pkg/errors"
	"github.com/keebscout/keebscout/pkg/utils"
)

// NormalizerService converts heterogeneous source records into Product
// records. Only missing identity fields (title and source) are fatal for a
// record; every optional field defaults without raising.
type NormalizerService struct{}

// NewNormalizerService creates a new normalizer
func NewNormalizerService() *NormalizerService {
	return &NormalizerService{}
}

// Normalize produces exactly one Product from a source record, or a
// malformed record error when the title or source site is missing.
func (s *NormalizerService) Normalize(rec entities.SourceRecord) (*entities.Product, error) {
	title := firstString(rec, "product_title", "title", "name")
	source := firstString(rec, "source_site", "store", "source")

	if title == "" || source == "" {
		return nil, apperrors.NewMalformedRecordError(
			fmt.Sprintf("record missing identity fields (title=%q, source=%q)", title, source),
		)
	}

	return &entities.Product{
		SourceSite:        source,
		Title:             title,
		Brand:             firstString(rec, "brand", "manufacturer"),
		Price:             utils.ParsePrice(firstValue(rec, "price_usd", "price", "sale_price")),
		RatingAvg:         utils.ParseRating(firstValue(rec, "rating_avg", "rating")),
		RatingCount:       utils.ParseCount(firstValue(rec, "rating_count", "review_count")),
		Availability:      entities.NormalizeAvailability(firstString(rec, "availability")),
		ShipToZip:         firstString(rec, "ship_to_zip", "zip"),
		LayoutSize:        firstString(rec, "layout_size", "layout"),
		SwitchType:        firstString(rec, "switch_type"),
		SwitchBrand:       firstString(rec, "switch_brand"),
		Connectivity:      firstString(rec, "connectivity"),
		HotSwappable:      utils.ParseBool(firstValue(rec, "hot_swappable")),
		Programmable:      firstString(rec, "programmable"),
		ErgonomicFeatures: utils.SplitFeatureTags(firstString(rec, "ergonomic_features", "features")),
		Category:          firstString(rec, "category"),
		ProductURL:        firstString(rec, "product_url", "url"),
	}, nil
}

// NormalizeAll normalizes a batch of source records, dropping malformed
// ones with a logged skip. The skipped count is reported to the caller.
func (s *NormalizerService) NormalizeAll(records []entities.SourceRecord) ([]*entities.Product, int) {
	products := make([]*entities.Product, 0, len(records))
	skipped := 0

	for i, rec := range records {
		product, err := s.Normalize(rec)
		if err != nil {
			skipped++
			log.Warn().Err(err).Int("index", i).Msg("skipping malformed source record")
			continue
		}
		products = append(products, product)
	}

	return products, skipped
}

// firstValue returns the first present value among the aliased keys.
func firstValue(rec entities.SourceRecord, keys ...string) any {
	for _, key := range keys {
		if v, ok := rec[key]; ok && v != nil {
			return v
		}
	}
	return nil
}

// firstString returns the first non-empty string value among the aliased
// keys, with non-string values rendered via fmt.
func firstString(rec entities.SourceRecord, keys ...string) string {
	for _, key := range keys {
		v, ok := rec[key]
		if !ok || v == nil {
			continue
		}
		if str, ok := v.(string); ok {
			if trimmed := strings.TrimSpace(str); trimmed != "" {
				return trimmed
			}
			continue
		}
		if rendered := strings.TrimSpace(fmt.Sprintf("%v", v)); rendered != "" {
			return rendered
		}
	}
	return ""
}
