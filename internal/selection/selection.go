// Package selection holds the showroom's current category selection.
//
// [State] is the one owned, settable, observable value that every view reads
// from and writes to. Writers call [State.Set] (usually through a handler made
// by [Notify]); readers call [State.Current] and subscribe for changes. An
// empty selection means "no filter".
package selection

import (
	"sync"

	"github.com/Iron-Ham/showroom/internal/event"
	"github.com/Iron-Ham/showroom/internal/logging"
)

// State owns the current selection and publishes a
// [event.SelectionChangedEvent] on its bus whenever the value changes.
// Listeners are called synchronously on the goroutine that called Set.
type State struct {
	mu      sync.RWMutex
	current string
	bus     *event.Bus
	logger  *logging.Logger
}

// New creates a State holding initial. A nil bus gets a private one, so
// Subscribe works either way.
func New(initial string, bus *event.Bus, logger *logging.Logger) *State {
	if logger == nil {
		logger = logging.NopLogger()
	}
	if bus == nil {
		bus = event.NewBus(logger)
	}
	return &State{
		current: initial,
		bus:     bus,
		logger:  logger,
	}
}

// Current returns the selection ("" when no filter is applied).
func (s *State) Current() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Set stores value and notifies subscribers if it differs from the current
// selection. Returns true if the value changed.
func (s *State) Set(value string) bool {
	s.mu.Lock()
	previous := s.current
	if previous == value {
		s.mu.Unlock()
		return false
	}
	s.current = value
	s.mu.Unlock()

	s.logger.Debug("selection changed", "previous", previous, "current", value)
	s.bus.Publish(event.NewSelectionChangedEvent(previous, value))
	return true
}

// Clear removes the selection. Equivalent to Set("").
func (s *State) Clear() bool {
	return s.Set("")
}

// Subscribe calls fn with the new selection after every change.
// Returns an ID for Unsubscribe.
func (s *State) Subscribe(fn func(current string)) string {
	return s.bus.Subscribe(event.TypeSelectionChanged, func(e event.Event) {
		if changed, ok := e.(event.SelectionChangedEvent); ok {
			fn(changed.Current)
		}
	})
}

// Unsubscribe removes a subscription made with Subscribe.
func (s *State) Unsubscribe(id string) bool {
	return s.bus.Unsubscribe(id)
}

// Notify returns a handler that forwards its argument unchanged, once and
// synchronously, to update. A nil update yields a no-op handler.
//
//	onChange := selection.Notify(func(v string) { state.Set(v) })
//	onChange("red")
func Notify(update func(string)) func(string) {
	return func(value string) {
		if update == nil {
			return
		}
		update(value)
	}
}
