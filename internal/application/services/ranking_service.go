package services

import (
	"sort"

	"github.com/keebscout/keebscout/internal/domain/entities"
)

// RankingService collapses duplicate listings of the same logical product
// and orders the remainder by composite score. Output is deterministic for
// identical input: all tie-breaks bottom out in insertion order.
type RankingService struct{}

// NewRankingService creates a new deduplicator/ranker
func NewRankingService() *RankingService {
	return &RankingService{}
}

// Rank deduplicates the scored collection by identity key, sorts by
// composite score descending (ties: price ascending, then insertion
// order), and truncates to topN when topN is positive.
func (s *RankingService) Rank(scored []entities.RankedProduct, topN int) []entities.RankedProduct {
	deduped := s.deduplicate(scored)

	sort.SliceStable(deduped, func(i, j int) bool {
		if deduped[i].Score.Total != deduped[j].Score.Total {
			return deduped[i].Score.Total > deduped[j].Score.Total
		}
		return priceLess(deduped[i], deduped[j])
	})

	if topN > 0 && len(deduped) > topN {
		deduped = deduped[:topN]
	}
	return deduped
}

// deduplicate keeps one representative per identity key: the lowest-priced
// listing; on a price tie the higher composite score; on a further tie the
// first-encountered. The surviving group keeps its first-encountered
// position so the pre-sort order stays stable.
func (s *RankingService) deduplicate(scored []entities.RankedProduct) []entities.RankedProduct {
	kept := make([]entities.RankedProduct, 0, len(scored))
	position := make(map[string]int, len(scored))

	for _, rp := range scored {
		key := rp.Product.DedupeKey()
		idx, seen := position[key]
		if !seen {
			position[key] = len(kept)
			kept = append(kept, rp)
			continue
		}
		if betterRepresentative(rp, kept[idx]) {
			kept[idx] = rp
		}
	}

	return kept
}

// betterRepresentative reports whether candidate should replace incumbent
// within a duplicate group. A known price always beats an unknown one.
func betterRepresentative(candidate, incumbent entities.RankedProduct) bool {
	cp, ip := candidate.Product.Price, incumbent.Product.Price

	switch {
	case cp == nil && ip == nil:
		return candidate.Score.Total > incumbent.Score.Total
	case cp == nil:
		return false
	case ip == nil:
		return true
	case cp.LessThan(*ip):
		return true
	case cp.Equal(*ip):
		return candidate.Score.Total > incumbent.Score.Total
	default:
		return false
	}
}

// priceLess orders known prices ascending and sorts unknown prices last.
func priceLess(a, b entities.RankedProduct) bool {
	ap, bp := a.Product.Price, b.Product.Price
	if ap == nil {
		return false
	}
	if bp == nil {
		return true
	}
	return ap.LessThan(*bp)
}
