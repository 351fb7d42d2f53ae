// Package router maps path strings onto application screens.
package router

import (
	"fmt"
	"strings"

	"github.com/axitpadasala108/roven-global/internal/eventbus"
)

// Screen identifies what the main view is showing.
type Screen int

const (
	ScreenHome Screen = iota
	ScreenCategory
	ScreenProduct
)

// Route is a parsed path.
type Route struct {
	Screen Screen
	Slug   string
	Path   string
}

// Parse turns a path string into a Route. Paths follow the storefront
// URL scheme: "/", "/category/{slug}", "/product/{slug}".
func Parse(path string) (Route, error) {
	if path == "/" || path == "" {
		return Route{Screen: ScreenHome, Path: "/"}, nil
	}

	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) != 2 || parts[1] == "" {
		return Route{}, fmt.Errorf("unknown route: %s", path)
	}

	switch parts[0] {
	case "category":
		return Route{Screen: ScreenCategory, Slug: parts[1], Path: path}, nil
	case "product":
		return Route{Screen: ScreenProduct, Slug: parts[1], Path: path}, nil
	default:
		return Route{}, fmt.Errorf("unknown route: %s", path)
	}
}

// Router keeps the current route and a history stack.
type Router struct {
	bus   eventbus.EventBus
	stack []Route
}

// New creates a router positioned at the home screen.
func New(bus eventbus.EventBus) *Router {
	return &Router{
		bus:   bus,
		stack: []Route{{Screen: ScreenHome, Path: "/"}},
	}
}

// Navigate parses the path and makes it the current route. Unknown
// paths are reported on the bus and leave the current route unchanged.
func (r *Router) Navigate(path string) {
	route, err := Parse(path)
	if err != nil {
		if r.bus != nil {
			r.bus.Publish(eventbus.ErrorEvent{Message: "navigation failed", Err: err})
		}
		return
	}

	r.stack = append(r.stack, route)
	if r.bus != nil {
		r.bus.Publish(eventbus.NavigatedEvent{Path: route.Path})
	}
}

// Current returns the route on top of the stack.
func (r *Router) Current() Route {
	return r.stack[len(r.stack)-1]
}

// Back pops the current route. It reports whether a pop happened; the
// home screen at the bottom of the stack is never popped.
func (r *Router) Back() bool {
	if len(r.stack) <= 1 {
		return false
	}
	r.stack = r.stack[:len(r.stack)-1]
	if r.bus != nil {
		r.bus.Publish(eventbus.NavigatedEvent{Path: r.Current().Path})
	}
	return true
}
