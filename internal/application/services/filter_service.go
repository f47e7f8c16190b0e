package services

import (
	"github.com/shopspring/decimal"

	"github.com/keebscout/keebscout/internal/domain/entities"
	"github.com/keebscout/keebscout/pkg/utils"
)

// FilterOptions holds the user-specified filter predicates. Nil/zero
// fields are no-ops; specified filters compose with logical AND.
type FilterOptions struct {
	Budget         *decimal.Decimal `json:"budget,omitempty"`
	Wireless       *bool            `json:"wireless,omitempty"`
	Layout         string           `json:"layout,omitempty"`
	MinRatingCount int              `json:"min_rating_count,omitempty"`
}

// FilterService applies filter predicates to a collection of products.
// Filtering never mutates records and preserves relative order. An empty
// result set is a legitimate outcome, not an error.
type FilterService struct{}

// NewFilterService creates a new filter engine
func NewFilterService() *FilterService {
	return &FilterService{}
}

// Apply returns the subset of products matching all specified filters.
func (s *FilterService) Apply(products []*entities.Product, opts FilterOptions) []*entities.Product {
	filtered := make([]*entities.Product, 0, len(products))
	for _, p := range products {
		if s.matches(p, opts) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

func (s *FilterService) matches(p *entities.Product, opts FilterOptions) bool {
	// Unknown price cannot satisfy a budget ceiling, so it is excluded
	// whenever a budget filter is active.
	if opts.Budget != nil {
		if p.Price == nil || p.Price.GreaterThan(*opts.Budget) {
			return false
		}
	}

	if opts.Wireless != nil && p.IsWireless() != *opts.Wireless {
		return false
	}

	if opts.Layout != "" {
		if !utils.ContainsFold(p.LayoutSize, opts.Layout) &&
			!utils.ContainsFold(p.Category, opts.Layout) &&
			!utils.AnyContainsFold(p.ErgonomicFeatures, opts.Layout) {
			return false
		}
	}

	if opts.MinRatingCount > 0 {
		count := 0
		if p.RatingCount != nil {
			count = *p.RatingCount
		}
		if count < opts.MinRatingCount {
			return false
		}
	}

	return true
}
