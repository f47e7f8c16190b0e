package entities

import (
	"github.com/shopspring/decimal"

	"github.com/keebscout/keebscout/pkg/utils"
)

// SourceRecord is a raw, loosely-typed listing as emitted by a retailer
// adapter. Field-mapping from retailer payloads to the canonical keys
// happens inside each adapter; type coercion happens in the normalizer.
type SourceRecord map[string]any

// Availability represents stock status for a listing
type Availability string

const (
	AvailabilityInStock    Availability = "in_stock"
	AvailabilityOutOfStock Availability = "out_of_stock"
	AvailabilityUnknown    Availability = "unknown"
)

// NormalizeAvailability maps free-text availability values to the enum.
func NormalizeAvailability(raw string) Availability {
	switch {
	case utils.ContainsAnyFold(raw, "out of stock", "sold out", "unavailable"):
		return AvailabilityOutOfStock
	case utils.ContainsAnyFold(raw, "in stock", "available", "in-stock"):
		return AvailabilityInStock
	default:
		return AvailabilityUnknown
	}
}

// Product is the normalized representation of one listing of one item from
// one source. Products are immutable value objects after normalization;
// scoring attaches a derived ScoreBreakdown rather than mutating the record.
type Product struct {
	SourceSite        string           `json:"source_site"`
	Title             string           `json:"product_title"`
	Brand             string           `json:"brand,omitempty"`
	Price             *decimal.Decimal `json:"price_usd,omitempty"`
	RatingAvg         *float64         `json:"rating_avg,omitempty"`
	RatingCount       *int             `json:"rating_count,omitempty"`
	Availability      Availability     `json:"availability"`
	ShipToZip         string           `json:"ship_to_zip,omitempty"`
	LayoutSize        string           `json:"layout_size,omitempty"`
	SwitchType        string           `json:"switch_type,omitempty"`
	SwitchBrand       string           `json:"switch_brand,omitempty"`
	Connectivity      string           `json:"connectivity,omitempty"`
	HotSwappable      *bool            `json:"hot_swappable,omitempty"`
	Programmable      string           `json:"programmable,omitempty"`
	ErgonomicFeatures []string         `json:"ergonomic_features,omitempty"`
	Category          string           `json:"category,omitempty"`
	ProductURL        string           `json:"product_url,omitempty"`
}

// DedupeKey returns the source-agnostic identity key (normalized
// brand + title) used for deduplication and enrichment lookup. Listings
// from different sources collapse only when this key matches.
func (p *Product) DedupeKey() string {
	return utils.NormalizeIdentifier(p.Brand) + "|" + utils.NormalizeIdentifier(p.Title)
}

// RecordKey returns the per-listing identity key (dedupe key + source).
// It is stable within a source but deliberately not unique across sources.
func (p *Product) RecordKey() string {
	return p.DedupeKey() + "|" + utils.NormalizeIdentifier(p.SourceSite)
}

// IsWireless reports whether the listing's connectivity classifies as
// wireless (Bluetooth or 2.4GHz).
func (p *Product) IsWireless() bool {
	return utils.ContainsAnyFold(p.Connectivity, "bluetooth", "2.4")
}

// IsHotSwappable reports the hot-swappable flag, treating unknown as false.
func (p *Product) IsHotSwappable() bool {
	return p.HotSwappable != nil && *p.HotSwappable
}
