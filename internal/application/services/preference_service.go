package services

import (
	"math"
	"strings"

	"github.com/keebscout/keebscout/internal/domain/entities"
	"github.com/keebscout/keebscout/pkg/utils"
)

// DefaultBoostPerMatch is the composite-score boost added per matched
// preference keyword.
const DefaultBoostPerMatch = 5.0

// scoreCap is the ceiling the composite score may never exceed, boosted
// or not.
const scoreCap = 100.0

// PreferenceService boosts the composite score of products matching
// free-text preference keywords. It runs after scoring and before the
// final sort: it adjusts the ranking signal, never the sub-scores.
type PreferenceService struct {
	keywords []string
	boost    float64
}

// NewPreferenceService creates a preference booster for the given keyword
// list. A non-positive boost falls back to the default.
func NewPreferenceService(keywords []string, boostPerMatch float64) *PreferenceService {
	if boostPerMatch <= 0 {
		boostPerMatch = DefaultBoostPerMatch
	}

	normalized := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if trimmed := strings.ToLower(strings.TrimSpace(kw)); trimmed != "" {
			normalized = append(normalized, trimmed)
		}
	}

	return &PreferenceService{keywords: normalized, boost: boostPerMatch}
}

// ParsePreferences splits a comma-separated preference string into
// normalized keywords.
func ParsePreferences(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var keywords []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			keywords = append(keywords, trimmed)
		}
	}
	return keywords
}

// Boost returns a new collection with each matching product's composite
// score increased by the fixed boost per matched keyword, capped at 100.
// Non-matching products pass through unchanged.
func (s *PreferenceService) Boost(scored []entities.RankedProduct) []entities.RankedProduct {
	if len(s.keywords) == 0 {
		return scored
	}

	boosted := make([]entities.RankedProduct, len(scored))
	for i, rp := range scored {
		matches := utils.MatchCount(searchableText(rp.Product), s.keywords)
		breakdown := rp.Score
		if matches > 0 {
			breakdown.Total = math.Min(breakdown.Total+float64(matches)*s.boost, scoreCap)
		}
		boosted[i] = entities.RankedProduct{Product: rp.Product, Score: breakdown}
	}
	return boosted
}

// searchableText joins the product attributes preference keywords are
// matched against.
func searchableText(p *entities.Product) string {
	fields := []string{
		p.Brand,
		p.Title,
		strings.Join(p.ErgonomicFeatures, " "),
		p.SwitchType,
		p.SwitchBrand,
		p.Programmable,
		p.Connectivity,
		p.Category,
	}
	return strings.Join(fields, " ")
}
