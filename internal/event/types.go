package event

import "time"

// Event type identifiers.
const (
	TypeSelectionChanged = "selection.changed"
	TypeCatalogReloaded  = "catalog.reloaded"
)

// Event is the interface that all events must implement.
type Event interface {
	// EventType returns a "category.action" identifier.
	EventType() string

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// baseEvent provides common fields for all events.
type baseEvent struct {
	eventType string
	timestamp time.Time
}

func (e baseEvent) EventType() string    { return e.eventType }
func (e baseEvent) Timestamp() time.Time { return e.timestamp }

func newBaseEvent(eventType string) baseEvent {
	return baseEvent{
		eventType: eventType,
		timestamp: time.Now(),
	}
}

// SelectionChangedEvent is emitted when the current selection takes a new value.
type SelectionChangedEvent struct {
	baseEvent
	Previous string // Selection before the change ("" = no filter)
	Current  string // Selection after the change ("" = no filter)
}

// NewSelectionChangedEvent creates a SelectionChangedEvent.
func NewSelectionChangedEvent(previous, current string) SelectionChangedEvent {
	return SelectionChangedEvent{
		baseEvent: newBaseEvent(TypeSelectionChanged),
		Previous:  previous,
		Current:   current,
	}
}

// CatalogReloadedEvent is emitted when the catalogue is rebuilt from config.
type CatalogReloadedEvent struct {
	baseEvent
	Source string // Config file the catalogue was read from
	Items  int    // Number of items after the reload
}

// NewCatalogReloadedEvent creates a CatalogReloadedEvent.
func NewCatalogReloadedEvent(source string, items int) CatalogReloadedEvent {
	return CatalogReloadedEvent{
		baseEvent: newBaseEvent(TypeCatalogReloaded),
		Source:    source,
		Items:     items,
	}
}
