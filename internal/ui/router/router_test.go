package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		path    string
		want    Route
		wantErr bool
	}{
		{path: "/", want: Route{Screen: ScreenHome, Path: "/"}},
		{path: "", want: Route{Screen: ScreenHome, Path: "/"}},
		{path: "/category/shoes", want: Route{Screen: ScreenCategory, Slug: "shoes", Path: "/category/shoes"}},
		{path: "/product/sneaker-42", want: Route{Screen: ScreenProduct, Slug: "sneaker-42", Path: "/product/sneaker-42"}},
		{path: "/category/", wantErr: true},
		{path: "/basket/123", wantErr: true},
		{path: "/category/shoes/extra", wantErr: true},
	}

	for _, tt := range tests {
		got, err := Parse(tt.path)
		if tt.wantErr {
			assert.Error(t, err, "path %q", tt.path)
			continue
		}
		require.NoError(t, err, "path %q", tt.path)
		assert.Equal(t, tt.want, got)
	}
}

func TestNavigateAndBack(t *testing.T) {
	r := New(nil)
	assert.Equal(t, ScreenHome, r.Current().Screen)

	r.Navigate("/category/shoes")
	assert.Equal(t, ScreenCategory, r.Current().Screen)
	assert.Equal(t, "shoes", r.Current().Slug)

	r.Navigate("/product/sneaker-42")
	assert.Equal(t, ScreenProduct, r.Current().Screen)

	assert.True(t, r.Back())
	assert.Equal(t, ScreenCategory, r.Current().Screen)

	assert.True(t, r.Back())
	assert.Equal(t, ScreenHome, r.Current().Screen)

	// Home is never popped.
	assert.False(t, r.Back())
	assert.Equal(t, ScreenHome, r.Current().Screen)
}

func TestNavigateUnknownPathKeepsCurrentRoute(t *testing.T) {
	r := New(nil)
	r.Navigate("/category/shoes")
	r.Navigate("/checkout")
	assert.Equal(t, "/category/shoes", r.Current().Path)
}
