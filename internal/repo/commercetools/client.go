package commercetools

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/colorful-demo/commerce-gateway/internal/config"
	"github.com/colorful-demo/commerce-gateway/internal/models"
)

// Client queries the commerce platform's product-projection search.
type Client interface {
	ProductBySku(ctx context.Context, sku string) (*models.ProductProjection, error)
}

type client struct {
	httpClient *http.Client
	tokens     TokenSource
	apiURL     string
	projectKey string
}

func NewClient(conf *config.Config, tokens TokenSource) Client {
	return &client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		tokens:     tokens,
		apiURL:     conf.Commercetools.APIURL,
		projectKey: conf.Commercetools.ProjectKey,
	}
}

// ProductBySku returns the first product whose master variant or any
// alternate variant carries the exact given SKU, or models.ErrNotFound when
// the search matches nothing.
func (c *client) ProductBySku(ctx context.Context, sku string) (*models.ProductProjection, error) {
	token, err := c.tokens.AccessToken(ctx)
	if err != nil {
		return nil, err
	}

	// The raw SKU goes into the filter expression; Encode below performs
	// the one round of percent-encoding the platform decodes.
	query := url.Values{
		"where": {fmt.Sprintf(`masterVariant(sku="%s") or variants(sku="%s")`, sku, sku)},
		"limit": {"1"},
	}
	endpoint := fmt.Sprintf("%s/%s/product-projections?%s", c.apiURL, c.projectKey, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("product search returned status %d", resp.StatusCode)
	}

	var search models.ProductProjectionSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&search); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(search.Results) == 0 {
		return nil, models.ErrNotFound
	}

	return &search.Results[0], nil
}
