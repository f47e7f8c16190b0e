package retail

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/keebscout/keebscout/pkg/retry"
)

// httpDoer allows tests to stub the underlying HTTP transport.
type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// baseClient wraps an HTTP client with retry and JSON decoding for the
// retail API clients.
type baseClient struct {
	httpClient httpDoer
	retryCfg   retry.Config
}

func newBaseClient() baseClient {
	return baseClient{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		retryCfg:   retry.DefaultConfig(),
	}
}

// getJSON performs a GET with exponential backoff retry and decodes the
// JSON response body into out.
func (c *baseClient) getJSON(ctx context.Context, url string, headers map[string]string, out any) error {
	return retry.Do(ctx, c.retryCfg, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}
		for k, v := range headers {
			req.Header.Set(k, v)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
		}

		return json.NewDecoder(resp.Body).Decode(out)
	})
}
