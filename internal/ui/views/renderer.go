package views

import (
	"fmt"
	"strings"

	"github.com/axitpadasala108/roven-global/internal/ui/router"
)

// Renderer draws the storefront screens.
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new view renderer
func NewRenderer() *Renderer {
	return &Renderer{
		styles: NewStyles(),
	}
}

// RenderScreen renders the main view for the current route.
func (r *Renderer) RenderScreen(route router.Route) string {
	switch route.Screen {
	case router.ScreenCategory:
		return r.renderCategory(route)
	case router.ScreenProduct:
		return r.renderProduct(route)
	default:
		return r.renderHome()
	}
}

// Frame wraps a screen body with padding and a footer line.
func (r *Renderer) Frame(body, footer string) string {
	var b strings.Builder
	b.WriteString(body)
	if footer != "" {
		b.WriteString("\n\n")
		b.WriteString(r.styles.Help.Render(footer))
	}
	return r.styles.Main.Render(b.String())
}

func (r *Renderer) renderHome() string {
	var b strings.Builder
	b.WriteString(r.styles.Title.Render("roven"))
	b.WriteString("\n")
	b.WriteString(r.styles.Tagline.Render("Terminal storefront browser"))
	b.WriteString("\n\n")
	b.WriteString(r.styles.Body.Render("Press / to search the catalog."))
	return b.String()
}

func (r *Renderer) renderCategory(route router.Route) string {
	var b strings.Builder
	b.WriteString(r.styles.Breadcrumb.Render(route.Path))
	b.WriteString("\n\n")
	b.WriteString(r.styles.Heading.Render(fmt.Sprintf("Category: %s", HumanizeSlug(route.Slug))))
	b.WriteString("\n\n")
	b.WriteString(r.styles.Dim.Render("enter full view · esc back · / search"))
	return b.String()
}

func (r *Renderer) renderProduct(route router.Route) string {
	var b strings.Builder
	b.WriteString(r.styles.Breadcrumb.Render(route.Path))
	b.WriteString("\n\n")
	b.WriteString(r.styles.Heading.Render(fmt.Sprintf("Product: %s", HumanizeSlug(route.Slug))))
	b.WriteString("\n\n")
	b.WriteString(r.styles.Dim.Render("enter full view · esc back · / search"))
	return b.String()
}

// RenderDetailPlain produces the unstyled long-form text for a detail
// screen, suitable for paging.
func RenderDetailPlain(route router.Route) string {
	var b strings.Builder
	switch route.Screen {
	case router.ScreenCategory:
		b.WriteString("Category: " + HumanizeSlug(route.Slug) + "\n")
	case router.ScreenProduct:
		b.WriteString("Product: " + HumanizeSlug(route.Slug) + "\n")
	default:
		b.WriteString("roven\n")
	}
	b.WriteString(strings.Repeat("=", 40) + "\n\n")
	b.WriteString("Path: " + route.Path + "\n")
	b.WriteString("Slug: " + route.Slug + "\n")
	return b.String()
}

// HumanizeSlug turns "running-shoes" into "Running Shoes".
func HumanizeSlug(slug string) string {
	words := strings.Split(slug, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
