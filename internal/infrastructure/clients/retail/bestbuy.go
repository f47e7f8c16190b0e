package retail

import (
	"context"
	"fmt"
	"net/url"
)

const bestBuyBaseURL = "https://api.bestbuy.com/v1"

// BestBuyClient queries the Best Buy Products API v1.
type BestBuyClient struct {
	baseClient
	apiKey  string
	baseURL string
}

// BestBuyProduct is one product in a Best Buy search response.
type BestBuyProduct struct {
	SKU                   int     `json:"sku"`
	Name                  string  `json:"name"`
	Manufacturer          string  `json:"manufacturer"`
	SalePrice             float64 `json:"salePrice"`
	URL                   string  `json:"url"`
	Image                 string  `json:"image"`
	CustomerReviewAverage float64 `json:"customerReviewAverage"`
	CustomerReviewCount   int     `json:"customerReviewCount"`
	ShortDescription      string  `json:"shortDescription"`
	OnlineAvailability    bool    `json:"onlineAvailability"`
}

// BestBuySearchResponse is the envelope of a products search.
type BestBuySearchResponse struct {
	Products     []BestBuyProduct `json:"products"`
	Total        int              `json:"total"`
	TotalPages   int              `json:"totalPages"`
	CurrentPage  int              `json:"currentPage"`
}

// NewBestBuyClient creates a Best Buy API client.
func NewBestBuyClient(apiKey string) *BestBuyClient {
	return &BestBuyClient{
		baseClient: newBaseClient(),
		apiKey:     apiKey,
		baseURL:    bestBuyBaseURL,
	}
}

// SearchProducts searches the products catalog by keyword.
func (c *BestBuyClient) SearchProducts(ctx context.Context, query string, pageSize int) (*BestBuySearchResponse, error) {
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 100
	}

	params := url.Values{}
	params.Set("apiKey", c.apiKey)
	params.Set("format", "json")
	params.Set("show", "sku,name,manufacturer,salePrice,url,image,"+
		"customerReviewAverage,customerReviewCount,shortDescription,onlineAvailability")
	params.Set("pageSize", fmt.Sprintf("%d", pageSize))
	params.Set("page", "1")

	endpoint := fmt.Sprintf("%s/products(search=%s)?%s",
		c.baseURL, url.QueryEscape(query), params.Encode())

	var resp BestBuySearchResponse
	if err := c.getJSON(ctx, endpoint, nil, &resp); err != nil {
		return nil, fmt.Errorf("bestbuy product search failed: %w", err)
	}
	return &resp, nil
}
