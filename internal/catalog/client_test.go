package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axitpadasala108/roven-global/internal/domain"
)

const (
	categoryBody = `{"data":[{"id":1,"name":"Shoes","slug":"shoes"}]}`
	productBody  = `{"data":{"products":[{"id":42,"name":"Sneaker 42","slug":"sneaker-42","brand":"Roven"}]}}`
)

func newFixtureServer(t *testing.T) (*httptest.Server, *[]string) {
	t.Helper()
	var mu sync.Mutex
	var requests []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		requests = append(requests, r.URL.String())
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/category/search":
			w.Write([]byte(categoryBody))
		case "/api/product/search":
			w.Write([]byte(productBody))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return srv, &requests
}

func TestSearchCategoriesWireShape(t *testing.T) {
	srv, requests := newFixtureServer(t)
	c := NewClient(srv.URL, srv.Client())

	cats, err := c.SearchCategories(context.Background(), "running shoes")
	require.NoError(t, err)

	require.Len(t, *requests, 1)
	assert.Equal(t, "/api/category/search?q=running+shoes", (*requests)[0])

	require.Len(t, cats, 1)
	assert.Equal(t, domain.CategorySummary{ID: 1, Name: "Shoes", Slug: "shoes"}, cats[0])
}

func TestSearchProductsWireShape(t *testing.T) {
	srv, requests := newFixtureServer(t)
	c := NewClient(srv.URL, srv.Client())

	prods, err := c.SearchProducts(context.Background(), "sneaker", 10)
	require.NoError(t, err)

	require.Len(t, *requests, 1)
	assert.Equal(t, "/api/product/search?q=sneaker&limit=10", (*requests)[0])

	require.Len(t, prods, 1)
	assert.Equal(t, domain.ProductSummary{ID: 42, Name: "Sneaker 42", Slug: "sneaker-42", Brand: "Roven"}, prods[0])
}

func TestSearchJoinsBothLookups(t *testing.T) {
	srv, _ := newFixtureServer(t)
	c := NewClient(srv.URL, srv.Client())

	rs, err := c.Search(context.Background(), "sneaker", 10)
	require.NoError(t, err)

	assert.Len(t, rs.Categories, 1)
	assert.Len(t, rs.Products, 1)
	assert.False(t, rs.IsEmpty())
	assert.Equal(t, 2, rs.Len())
}

func TestSearchFailsWhenEitherLookupFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/category/search" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(productBody))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.Client())
	_, err := c.Search(context.Background(), "sneaker", 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 500")
}

func TestSearchCancelsSiblingOnFailure(t *testing.T) {
	var productStarted atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/category/search":
			w.WriteHeader(http.StatusBadGateway)
		case "/api/product/search":
			productStarted.Store(true)
			// Block until the request context is cancelled.
			select {
			case <-r.Context().Done():
			case <-time.After(5 * time.Second):
			}
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.Client())

	start := time.Now()
	_, err := c.Search(context.Background(), "sneaker", 10)
	require.Error(t, err)
	// The failed category lookup must not leave us waiting on the slow
	// product lookup.
	assert.Less(t, time.Since(start), 3*time.Second)
	assert.True(t, productStarted.Load())
}

func TestSearchDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.Client())
	_, err := c.SearchCategories(context.Background(), "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode response")
}

func TestNewClientDefaultsHTTPClient(t *testing.T) {
	c := NewClient("http://localhost:3000", nil)
	require.NotNil(t, c.httpClient)
	assert.Equal(t, 10*time.Second, c.httpClient.Timeout)
}
