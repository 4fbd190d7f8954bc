// Package event provides a synchronous pub-sub bus for showroom.
//
// The selection state publishes on the bus whenever its value changes, and
// the config watcher publishes when the catalogue is reloaded. Views
// subscribe without knowing who produces the events.
//
// # Event Types
//
// Event types follow the pattern "category.action":
//   - selection.changed ([SelectionChangedEvent])
//   - catalog.reloaded ([CatalogReloadedEvent])
//
// # Basic Usage
//
//	bus := event.NewBus(logger)
//
//	id := bus.Subscribe(event.TypeSelectionChanged, func(e event.Event) {
//	    changed := e.(event.SelectionChangedEvent)
//	    fmt.Println(changed.Previous, "->", changed.Current)
//	})
//	defer bus.Unsubscribe(id)
//
//	bus.Publish(event.NewSelectionChangedEvent("", "red"))
//
// Handlers run synchronously on the publisher's goroutine, specific handlers
// before wildcard ones, each group in registration order. A panicking handler
// is logged and does not stop delivery to the rest.
package event
