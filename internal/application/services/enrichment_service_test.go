package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keebscout/keebscout/internal/domain/entities"
)

func TestEnrich_AttachesByIdentityKey(t *testing.T) {
	svc := NewEnrichmentService(map[string][]entities.CuratedReview{
		"keychron|keychron_q10_pro": {
			{Source: "TechGearLab", Verdict: "Best mainstream ergonomic mechanical keyboard"},
		},
	})

	ranked := []entities.RankedProduct{{
		Product: &entities.Product{Brand: "Keychron", Title: "Keychron Q10 Pro", SourceSite: "Amazon"},
	}}

	got := svc.Enrich(ranked)

	require.Len(t, got, 1)
	require.Len(t, got[0].Reviews, 1)
	assert.Equal(t, "TechGearLab", got[0].Reviews[0].Source)
}

func TestEnrich_MissingKeyIsNotAnError(t *testing.T) {
	svc := NewEnrichmentService(nil)

	ranked := []entities.RankedProduct{{
		Product: &entities.Product{Brand: "Obscure", Title: "Obscure Board 9000", SourceSite: "CSV"},
	}}

	got := svc.Enrich(ranked)

	require.Len(t, got, 1)
	assert.Empty(t, got[0].Reviews)
}

func TestEnrich_DoesNotMutateInput(t *testing.T) {
	svc := NewEnrichmentService(map[string][]entities.CuratedReview{
		"keychron|keychron_q10_pro": {{Source: "TechGearLab"}},
	})

	ranked := []entities.RankedProduct{{
		Product: &entities.Product{Brand: "Keychron", Title: "Keychron Q10 Pro", SourceSite: "Amazon"},
	}}

	_ = svc.Enrich(ranked)

	assert.Empty(t, ranked[0].Reviews)
}

func TestNewEnrichmentServiceFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reviews.json")
	payload := `[
		{
			"brand": "Logitech",
			"product_title": "Logitech Ergo K860",
			"reviews": [
				{"source": "Wirecutter", "pros": "Excellent wrist rest", "verdict": "Best for most people"}
			]
		}
	]`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	svc, err := NewEnrichmentServiceFromFile(path)
	require.NoError(t, err)

	got := svc.Enrich([]entities.RankedProduct{{
		Product: &entities.Product{Brand: "Logitech", Title: "Logitech Ergo K860", SourceSite: "Amazon"},
	}})

	require.Len(t, got, 1)
	require.Len(t, got[0].Reviews, 1)
	assert.Equal(t, "Wirecutter", got[0].Reviews[0].Source)
}

func TestNewEnrichmentServiceFromFile_MissingFile(t *testing.T) {
	_, err := NewEnrichmentServiceFromFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
