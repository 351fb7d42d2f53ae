package views

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/axitpadasala108/roven-global/internal/ui/router"
)

func TestHumanizeSlug(t *testing.T) {
	assert.Equal(t, "Running Shoes", HumanizeSlug("running-shoes"))
	assert.Equal(t, "Shoes", HumanizeSlug("shoes"))
	assert.Equal(t, "", HumanizeSlug(""))
}

func TestRenderDetailPlain(t *testing.T) {
	route, err := router.Parse("/product/sneaker-42")
	assert.NoError(t, err)

	out := RenderDetailPlain(route)
	assert.Contains(t, out, "Product: Sneaker 42")
	assert.Contains(t, out, "Path: /product/sneaker-42")
}
