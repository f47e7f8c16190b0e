package sources

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/keebscout/keebscout/internal/domain/entities"
)

// AmazonAdapter supplies Amazon listings. The Product Advertising API
// requires HMAC-signed requests and an approved affiliate account, so this
// adapter ships with curated seed data; bring-your-own data goes through
// the CSV adapter.
type AmazonAdapter struct {
	mode Mode
}

// NewAmazonAdapter creates an Amazon adapter.
func NewAmazonAdapter(mode Mode) (*AmazonAdapter, error) {
	if mode == ModeOnline {
		if os.Getenv("AMAZON_ACCESS_KEY") == "" ||
			os.Getenv("AMAZON_SECRET_KEY") == "" ||
			os.Getenv("AMAZON_PARTNER_TAG") == "" {
			return nil, missingKeyError("amazon", "AMAZON_ACCESS_KEY", "AMAZON_SECRET_KEY", "AMAZON_PARTNER_TAG")
		}
	}
	return &AmazonAdapter{mode: mode}, nil
}

// Name returns the registry name
func (a *AmazonAdapter) Name() string { return "amazon" }

// Search returns seed listings matching the query.
func (a *AmazonAdapter) Search(ctx context.Context, req SearchRequest) ([]entities.SourceRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	records := seedRecords(amazonSeed, "Amazon", req, true)
	log.Info().Str("adapter", a.Name()).Int("records", len(records)).Msg("seed search complete")
	return records, nil
}
