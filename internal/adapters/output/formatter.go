package output

import (
	"github.com/shopspring/decimal"

	"github.com/keebscout/keebscout/internal/domain/entities"
)

// Metadata describes the pipeline run an output surface is rendering.
type Metadata struct {
	RunID   string           `json:"run_id,omitempty"`
	Query   string           `json:"query,omitempty"`
	Budget  *decimal.Decimal `json:"budget,omitempty"`
	Mode    string           `json:"mode,omitempty"`
	Weights entities.Weights `json:"scoring_weights"`
	Count   int              `json:"result_count"`
}

// priceDisplay renders a price for the text surfaces, with "—" for unknown.
func priceDisplay(p *entities.Product) string {
	if p.Price == nil {
		return "—"
	}
	return "$" + p.Price.StringFixed(0)
}

// ratingDisplay renders the rating average, with "—" for unknown.
func ratingDisplay(p *entities.Product) string {
	if p.RatingAvg == nil {
		return "—"
	}
	return decimal.NewFromFloat(*p.RatingAvg).String() + "/5"
}
