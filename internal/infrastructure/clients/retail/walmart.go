package retail

import (
	"context"
	"fmt"
	"net/url"
)

const walmartBaseURL = "https://developer.api.walmart.com/api-proxy/service/affil/product/v2"

// WalmartClient queries the Walmart Affiliate API.
type WalmartClient struct {
	baseClient
	apiKey  string
	baseURL string
}

// WalmartItem is one item in a Walmart search response.
type WalmartItem struct {
	ItemID          int     `json:"itemId"`
	Name            string  `json:"name"`
	BrandName       string  `json:"brandName"`
	SalePrice       float64 `json:"salePrice"`
	CustomerRating  string  `json:"customerRating"`
	NumReviews      int     `json:"numReviews"`
	AvailableOnline bool    `json:"availableOnline"`
	ProductURL      string  `json:"productUrl"`
	ThumbnailImage  string  `json:"thumbnailImage"`
	ShortDescription string `json:"shortDescription"`
}

// WalmartSearchResponse is the envelope of an item search.
type WalmartSearchResponse struct {
	Query      string        `json:"query"`
	TotalResults int         `json:"totalResults"`
	Items      []WalmartItem `json:"items"`
}

// NewWalmartClient creates a Walmart API client.
func NewWalmartClient(apiKey string) *WalmartClient {
	return &WalmartClient{
		baseClient: newBaseClient(),
		apiKey:     apiKey,
		baseURL:    walmartBaseURL,
	}
}

// SearchItems searches the affiliate catalog by keyword.
func (c *WalmartClient) SearchItems(ctx context.Context, query string, numItems int) (*WalmartSearchResponse, error) {
	if numItems <= 0 || numItems > 25 {
		numItems = 25
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("numItems", fmt.Sprintf("%d", numItems))

	endpoint := fmt.Sprintf("%s/search?%s", c.baseURL, params.Encode())
	headers := map[string]string{"WM_SEC.ACCESS_TOKEN": c.apiKey}

	var resp WalmartSearchResponse
	if err := c.getJSON(ctx, endpoint, headers, &resp); err != nil {
		return nil, fmt.Errorf("walmart item search failed: %w", err)
	}
	return &resp, nil
}
