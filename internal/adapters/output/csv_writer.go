package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/keebscout/keebscout/internal/domain/entities"
)

var csvHeader = []string{
	"rank", "product_title", "brand", "price_usd", "rating_avg", "rating_count",
	"availability", "layout_size", "switch_type", "switch_brand", "connectivity",
	"hot_swappable", "programmable", "ergonomic_features", "category",
	"score_total", "score_ergonomics", "score_reviews", "score_value", "score_build",
	"source_site", "product_url",
}

// WriteCSV writes the ranked results to a timestamped CSV file in dir and
// returns the file path.
func WriteCSV(ranked []entities.RankedProduct, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("keyboards_%s.csv", time.Now().Format("20060102_150405")))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create CSV output: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return "", err
	}

	for i, rp := range ranked {
		if err := w.Write(csvRow(i+1, rp)); err != nil {
			return "", err
		}
	}

	w.Flush()
	return path, w.Error()
}

func csvRow(rank int, rp entities.RankedProduct) []string {
	p := rp.Product
	s := rp.Score

	price, rating, count, hotSwap := "", "", "", ""
	if p.Price != nil {
		price = p.Price.StringFixed(2)
	}
	if p.RatingAvg != nil {
		rating = strconv.FormatFloat(*p.RatingAvg, 'f', -1, 64)
	}
	if p.RatingCount != nil {
		count = strconv.Itoa(*p.RatingCount)
	}
	if p.HotSwappable != nil {
		hotSwap = strconv.FormatBool(*p.HotSwappable)
	}

	return []string{
		strconv.Itoa(rank),
		p.Title,
		p.Brand,
		price,
		rating,
		count,
		string(p.Availability),
		p.LayoutSize,
		p.SwitchType,
		p.SwitchBrand,
		p.Connectivity,
		hotSwap,
		p.Programmable,
		joinTags(p.ErgonomicFeatures),
		p.Category,
		formatScore(s.Total),
		formatScore(s.Ergonomics),
		formatScore(s.Reviews),
		formatScore(s.Value),
		formatScore(s.Build),
		p.SourceSite,
		p.ProductURL,
	}
}

func joinTags(tags []string) string {
	out := ""
	for i, t := range tags {
		if i > 0 {
			out += ", "
		}
		out += t
	}
	return out
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
