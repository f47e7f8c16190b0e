package services

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/keebscout/keebscout/internal/domain/entities"
	"github.com/keebscout/keebscout/pkg/utils"
)

// curatedReviewEntry is one product's entry in the curated review config.
type curatedReviewEntry struct {
	Brand   string                   `json:"brand"`
	Title   string                   `json:"product_title"`
	Reviews []entities.CuratedReview `json:"reviews"`
}

// EnrichmentService attaches curated professional review summaries to
// top-ranked products by identity-key lookup. It performs a pure join; it
// never scores or ranks, and a missing key is not an error.
type EnrichmentService struct {
	reviews map[string][]entities.CuratedReview
}

// NewEnrichmentService creates an enrichment joiner over an in-memory
// review lookup keyed by normalized brand+title.
func NewEnrichmentService(reviews map[string][]entities.CuratedReview) *EnrichmentService {
	if reviews == nil {
		reviews = map[string][]entities.CuratedReview{}
	}
	return &EnrichmentService{reviews: reviews}
}

// NewEnrichmentServiceFromFile loads the curated review database from a
// JSON config file.
func NewEnrichmentServiceFromFile(path string) (*EnrichmentService, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read curated reviews config: %w", err)
	}

	var entries []curatedReviewEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse curated reviews config: %w", err)
	}

	reviews := make(map[string][]entities.CuratedReview, len(entries))
	for _, entry := range entries {
		key := lookupKey(entry.Brand, entry.Title)
		reviews[key] = append(reviews[key], entry.Reviews...)
	}

	return NewEnrichmentService(reviews), nil
}

// GetReviewsConfigPath returns the curated reviews config path, honoring
// the CURATED_REVIEWS_CONFIG environment variable.
func GetReviewsConfigPath() string {
	if path := os.Getenv("CURATED_REVIEWS_CONFIG"); path != "" {
		return path
	}
	return "config/curated_reviews.json"
}

// Enrich returns a new collection with curated reviews attached where the
// identity key matches. Products without curated reviews keep an empty
// review list.
func (s *EnrichmentService) Enrich(ranked []entities.RankedProduct) []entities.RankedProduct {
	enriched := make([]entities.RankedProduct, len(ranked))
	found := 0

	for i, rp := range ranked {
		enriched[i] = rp
		if reviews, ok := s.reviews[rp.Product.DedupeKey()]; ok && len(reviews) > 0 {
			enriched[i].Reviews = reviews
			found++
		}
	}

	log.Debug().
		Int("products", len(ranked)).
		Int("with_reviews", found).
		Msg("enrichment join complete")

	return enriched
}

func lookupKey(brand, title string) string {
	return utils.NormalizeIdentifier(brand) + "|" + utils.NormalizeIdentifier(title)
}
