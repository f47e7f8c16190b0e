package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keebscout/keebscout/internal/domain/entities"
	apperrors "github.com/keebscout/keebscout/pkg/errors"
)

func ptrFloat(v float64) *float64    { return &v }
func ptrInt(v int) *int              { return &v }
func ptrBool(v bool) *bool           { return &v }
func ptrPrice(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

func newScorer(t *testing.T) *ScoringService {
	t.Helper()
	svc, err := NewScoringService(entities.DefaultWeights())
	require.NoError(t, err)
	return svc
}

func TestNewScoringService_RejectsBadWeights(t *testing.T) {
	_, err := NewScoringService(entities.Weights{
		Ergonomics: 0.5, Reviews: 0.2, Value: 0.2, Build: 0.2,
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidWeights(err))
}

func TestScore_ErgonomicsPointTable(t *testing.T) {
	svc := newScorer(t)

	tests := []struct {
		name     string
		features []string
		want     float64
	}{
		{"no features", nil, 0},
		{"split only", []string{"split"}, 30},
		{"split and tented", []string{"split", "tented"}, 50},
		{"full contoured board", []string{"split", "tented", "contoured keywells", "thumb clusters"}, 75},
		{"wrist rest via palm keyword", []string{"palm rest"}, 10},
		{"alternatives are not cumulative", []string{"tilt", "negative tilt"}, 10},
		{"columnar", []string{"columnar stagger"}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &entities.Product{Title: "kb", SourceSite: "Test", ErgonomicFeatures: tt.features}
			got := svc.Score(p)
			assert.Equal(t, tt.want, got.Ergonomics)
		})
	}
}

func TestScore_ReviewsBlendsRatingAndVolume(t *testing.T) {
	svc := newScorer(t)

	p := &entities.Product{
		Title:       "kb",
		SourceSite:  "Test",
		RatingAvg:   ptrFloat(4.5),
		RatingCount: ptrInt(340),
	}
	got := svc.Score(p)
	// 4.5/5*70 = 63 rating points plus 340/100 = 3.4 volume points
	assert.Equal(t, 66.4, got.Reviews)
}

func TestScore_ReviewVolumeCapsAtThirty(t *testing.T) {
	svc := newScorer(t)

	p := &entities.Product{
		Title:       "kb",
		SourceSite:  "Test",
		RatingAvg:   ptrFloat(5.0),
		RatingCount: ptrInt(18000),
	}
	got := svc.Score(p)
	assert.Equal(t, 100.0, got.Reviews)
}

func TestScore_ReviewsMissingDataScoresZero(t *testing.T) {
	svc := newScorer(t)

	p := &entities.Product{Title: "kb", SourceSite: "Test"}
	got := svc.Score(p)
	assert.Equal(t, 0.0, got.Reviews)
}

func TestScore_ValueRewardsLowerPrices(t *testing.T) {
	svc := newScorer(t)

	cheap := svc.Score(&entities.Product{Title: "a", SourceSite: "T", Price: ptrPrice("44")})
	pricey := svc.Score(&entities.Product{Title: "b", SourceSite: "T", Price: ptrPrice("449")})

	assert.Equal(t, 91.2, cheap.Value)
	assert.Equal(t, 10.2, pricey.Value)
	assert.Greater(t, cheap.Value, pricey.Value)
}

func TestScore_ValueFloorsAtZero(t *testing.T) {
	svc := newScorer(t)
	got := svc.Score(&entities.Product{Title: "a", SourceSite: "T", Price: ptrPrice("600")})
	assert.Equal(t, 0.0, got.Value)
}

func TestScore_UnknownPriceScoresFullValue(t *testing.T) {
	svc := newScorer(t)
	got := svc.Score(&entities.Product{Title: "a", SourceSite: "T"})
	assert.Equal(t, 100.0, got.Value)
}

func TestScore_BuildSignals(t *testing.T) {
	svc := newScorer(t)

	tests := []struct {
		name string
		p    *entities.Product
		want float64
	}{
		{
			"membrane floor clips at zero",
			&entities.Product{Title: "kb", SourceSite: "T", SwitchType: "Membrane"},
			0,
		},
		{
			"enthusiast board stacks signals",
			&entities.Product{
				Title:             "kb",
				SourceSite:        "T",
				SwitchType:        "Gateron Jupiter Brown",
				SwitchBrand:       "Gateron",
				Connectivity:      "Bluetooth + USB-C",
				Programmable:      "QMK/VIA",
				HotSwappable:      ptrBool(true),
				ErgonomicFeatures: []string{"alice curved split", "full aluminum"},
			},
			100,
		},
		{
			"premium switch brand by containment",
			&entities.Product{Title: "kb", SourceSite: "T", SwitchBrand: "Kailh Box"},
			15,
		},
		{
			"wireless via 2.4ghz",
			&entities.Product{Title: "kb", SourceSite: "T", Connectivity: "2.4GHz dongle"},
			15,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.Score(tt.p)
			assert.Equal(t, tt.want, got.Build)
		})
	}
}

func TestScore_WeightedTotalRoundedToOneDecimal(t *testing.T) {
	svc := newScorer(t)

	p := &entities.Product{
		Title:             "Keychron Q10 Pro",
		SourceSite:        "Amazon",
		Brand:             "Keychron",
		Price:             ptrPrice("219"),
		RatingAvg:         ptrFloat(4.5),
		RatingCount:       ptrInt(340),
		SwitchType:        "Gateron Jupiter Brown",
		SwitchBrand:       "Gateron",
		Connectivity:      "Bluetooth + USB-C",
		Programmable:      "QMK/VIA",
		HotSwappable:      ptrBool(true),
		ErgonomicFeatures: []string{"alice curved split", "knob"},
	}
	got := svc.Score(p)

	// ergo 30, reviews 66.4, value 56.2, build 85
	assert.Equal(t, 30.0, got.Ergonomics)
	assert.Equal(t, 66.4, got.Reviews)
	assert.Equal(t, 56.2, got.Value)
	assert.Equal(t, 85.0, got.Build)
	assert.Equal(t, 53.5, got.Total) // 30*0.4 + 66.4*0.2 + 56.2*0.2 + 85*0.2
}

func TestScore_Deterministic(t *testing.T) {
	svc := newScorer(t)
	p := &entities.Product{
		Title:             "kb",
		SourceSite:        "T",
		Price:             ptrPrice("129"),
		RatingAvg:         ptrFloat(4.4),
		RatingCount:       ptrInt(12500),
		ErgonomicFeatures: []string{"split wave", "tented", "padded wrist rest", "negative tilt"},
	}

	first := svc.Score(p)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, svc.Score(p))
	}
}

func TestScoreAll_PreservesOrder(t *testing.T) {
	svc := newScorer(t)
	products := []*entities.Product{
		{Title: "first", SourceSite: "T"},
		{Title: "second", SourceSite: "T"},
	}

	scored := svc.ScoreAll(products)
	require.Len(t, scored, 2)
	assert.Equal(t, "first", scored[0].Product.Title)
	assert.Equal(t, "second", scored[1].Product.Title)
}
