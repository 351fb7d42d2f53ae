package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSearchCompleted EventType = "SearchCompleted"
	EventNavigated       EventType = "Navigated"
	EventError           EventType = "Error"
	EventConfigLoaded    EventType = "ConfigLoaded"
	EventConfigSaved     EventType = "ConfigSaved"
	EventConfigChanged   EventType = "ConfigChanged"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SearchCompletedEvent is emitted when a fetch cycle finishes successfully
type SearchCompletedEvent struct {
	Query         string
	CategoryCount int
	ProductCount  int
}

func (e SearchCompletedEvent) Type() EventType { return EventSearchCompleted }

// NavigatedEvent is emitted when the router changes the current route
type NavigatedEvent struct {
	Path string
}

func (e NavigatedEvent) Type() EventType { return EventNavigated }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted after configuration is read from disk
type ConfigLoadedEvent struct {
	APIBaseURL string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted after configuration is written to disk
type ConfigSavedEvent struct{}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ConfigChangedEvent is emitted when a setting changes at runtime and
// should be persisted
type ConfigChangedEvent struct {
	APIBaseURL       string
	SearchLimit      int
	SearchDebounceMS int
}

func (e ConfigChangedEvent) Type() EventType { return EventConfigChanged }
