// Package catalog talks to the storefront search API.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/axitpadasala108/roven-global/internal/domain"
)

// Searcher is the search capability the UI consumes. The concrete
// Client satisfies it; tests substitute a fake.
type Searcher interface {
	Search(ctx context.Context, query string, limit int) (domain.ResultSet, error)
}

// Client queries the category and product search endpoints.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a catalog client. httpClient may be nil, in which
// case a client with a sane timeout is used.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
	}
}

// categoryEnvelope is the wire shape of GET /api/category/search.
type categoryEnvelope struct {
	Data []domain.CategorySummary `json:"data"`
}

// productEnvelope is the wire shape of GET /api/product/search.
type productEnvelope struct {
	Data struct {
		Products []domain.ProductSummary `json:"products"`
	} `json:"data"`
}

// SearchCategories looks up categories matching the query.
func (c *Client) SearchCategories(ctx context.Context, query string) ([]domain.CategorySummary, error) {
	q := "q=" + url.QueryEscape(query)

	var env categoryEnvelope
	if err := c.get(ctx, "/api/category/search", q, &env); err != nil {
		return nil, fmt.Errorf("category search: %w", err)
	}
	return env.Data, nil
}

// SearchProducts looks up products matching the query, capped at limit.
func (c *Client) SearchProducts(ctx context.Context, query string, limit int) ([]domain.ProductSummary, error) {
	// q comes before limit on the wire.
	q := "q=" + url.QueryEscape(query) + "&limit=" + strconv.Itoa(limit)

	var env productEnvelope
	if err := c.get(ctx, "/api/product/search", q, &env); err != nil {
		return nil, fmt.Errorf("product search: %w", err)
	}
	return env.Data.Products, nil
}

// Search runs both lookups concurrently and joins them. It succeeds
// only when both succeed; otherwise it fails with the first observed
// failure and cancels the sibling request.
func (c *Client) Search(ctx context.Context, query string, limit int) (domain.ResultSet, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		categories []domain.CategorySummary
		products   []domain.ProductSummary
	)

	errc := make(chan error, 2)
	go func() {
		var err error
		categories, err = c.SearchCategories(ctx, query)
		errc <- err
	}()
	go func() {
		var err error
		products, err = c.SearchProducts(ctx, query, limit)
		errc <- err
	}()

	for i := 0; i < 2; i++ {
		if err := <-errc; err != nil {
			cancel()
			return domain.ResultSet{}, err
		}
	}

	return domain.ResultSet{Categories: categories, Products: products}, nil
}

// get issues a GET request and decodes the JSON response into out.
// rawQuery is pre-encoded so parameter order survives.
func (c *Client) get(ctx context.Context, path string, rawQuery string, out any) error {
	u := c.baseURL + path + "?" + rawQuery

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
