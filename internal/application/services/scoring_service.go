package services

import (
	"math"

	"github.com/keebscout/keebscout/internal/domain/entities"
	"github.com/keebscout/keebscout/pkg/utils"
)

// pointRule awards points once when any of its keywords matches.
// Alternatives within a rule are not cumulative.
type pointRule struct {
	keywords []string
	points   float64
}

// Ergonomics point table, applied to the normalized feature tag set.
var ergonomicsRules = []pointRule{
	{keywords: []string{"split"}, points: 30},
	{keywords: []string{"tent"}, points: 20},
	{keywords: []string{"contour"}, points: 15},
	{keywords: []string{"tilt", "negative tilt"}, points: 10},
	{keywords: []string{"wrist rest", "palm"}, points: 10},
	{keywords: []string{"thumb"}, points: 10},
	{keywords: []string{"ortholinear", "columnar"}, points: 5},
}

// ScoringService computes the four sub-scores and the weighted composite
// for a product. It is a pure function of (product, weights): no side
// effects, no I/O, fully deterministic.
type ScoringService struct {
	weights entities.Weights
}

// NewScoringService creates a scoring engine with the given weight vector.
// Invalid weights are rejected here, before any scoring work begins.
func NewScoringService(weights entities.Weights) (*ScoringService, error) {
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	return &ScoringService{weights: weights}, nil
}

// Weights returns the immutable weight vector this engine was built with.
func (s *ScoringService) Weights() entities.Weights {
	return s.weights
}

// Score computes the full score breakdown for a product.
func (s *ScoringService) Score(p *entities.Product) entities.ScoreBreakdown {
	ergo := s.scoreErgonomics(p)
	reviews := s.scoreReviews(p)
	value := s.scoreValue(p)
	build := s.scoreBuild(p)

	total := ergo*s.weights.Ergonomics +
		reviews*s.weights.Reviews +
		value*s.weights.Value +
		build*s.weights.Build

	return entities.ScoreBreakdown{
		Total:      round1(total),
		Ergonomics: round1(ergo),
		Reviews:    round1(reviews),
		Value:      round1(value),
		Build:      round1(build),
		Weights:    s.weights,
	}
}

// ScoreAll attaches a score breakdown to every product, preserving order.
func (s *ScoringService) ScoreAll(products []*entities.Product) []entities.RankedProduct {
	scored := make([]entities.RankedProduct, len(products))
	for i, p := range products {
		scored[i] = entities.RankedProduct{Product: p, Score: s.Score(p)}
	}
	return scored
}

// scoreErgonomics applies the additive feature point table, clipped to
// [0,100]. Multiple matching rules all add.
func (s *ScoringService) scoreErgonomics(p *entities.Product) float64 {
	score := 0.0
	for _, rule := range ergonomicsRules {
		for _, kw := range rule.keywords {
			if utils.AnyContainsFold(p.ErgonomicFeatures, kw) {
				score += rule.points
				break
			}
		}
	}
	return clamp(score, 0, 100)
}

// scoreReviews blends rating quality (up to 70 points) with review volume
// (up to 30 points). Absent rating or count contributes zero.
func (s *ScoringService) scoreReviews(p *entities.Product) float64 {
	rating := 0.0
	if p.RatingAvg != nil {
		rating = math.Min(5, math.Max(0, *p.RatingAvg))
	}
	count := 0.0
	if p.RatingCount != nil {
		count = float64(*p.RatingCount)
	}
	return rating/5.0*70 + math.Min(count/100, 30)
}

// scoreValue rewards lower prices. An unknown price is treated as zero and
// therefore scores the full 100; the budget filter, not this score, is
// where unknown prices get excluded.
func (s *ScoringService) scoreValue(p *entities.Product) float64 {
	price := 0.0
	if p.Price != nil {
		price = p.Price.InexactFloat64()
	}
	return math.Max(0, 100-price/5)
}

// scoreBuild scores build quality signals. The point table can go negative
// before the final clip to [0,100].
func (s *ScoringService) scoreBuild(p *entities.Product) float64 {
	score := 0.0

	if utils.ContainsFold(p.SwitchType, "membrane") {
		score -= 30
	}
	if p.IsHotSwappable() {
		score += 25
	}
	if utils.ContainsAnyFold(p.Programmable, "qmk", "via", "zmk") {
		score += 30
	}
	if utils.ContainsAnyFold(p.Connectivity, "bluetooth", "2.4") {
		score += 15
	}
	if utils.ContainsAnyFold(p.SwitchBrand, "cherry", "kailh", "gateron") {
		score += 15
	}
	if utils.AnyContainsFold(p.ErgonomicFeatures, "aluminum") {
		score += 15
	}

	return clamp(score, 0, 100)
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
