package event

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/Iron-Ham/showroom/internal/logging"
)

func TestBus_Subscribe(t *testing.T) {
	bus := NewBus(nil)

	called := false
	id := bus.Subscribe(TypeSelectionChanged, func(e Event) {
		called = true
	})

	if id == "" {
		t.Error("Subscribe should return a non-empty ID")
	}
	if bus.SubscriptionCount() != 1 {
		t.Errorf("Expected 1 subscription, got %d", bus.SubscriptionCount())
	}
	if called {
		t.Error("Handler should not be called until an event is published")
	}
}

func TestBus_PublishSelectionChanged(t *testing.T) {
	bus := NewBus(nil)

	var received Event
	bus.Subscribe(TypeSelectionChanged, func(e Event) {
		received = e
	})

	bus.Publish(NewSelectionChangedEvent("", "red"))

	if received == nil {
		t.Fatal("Handler should have received the event")
	}
	changed, ok := received.(SelectionChangedEvent)
	if !ok {
		t.Fatalf("received %T, want SelectionChangedEvent", received)
	}
	if changed.Previous != "" || changed.Current != "red" {
		t.Errorf("got %q -> %q, want \"\" -> \"red\"", changed.Previous, changed.Current)
	}
	if changed.Timestamp().IsZero() {
		t.Error("Timestamp should be set")
	}
}

func TestBus_PublishNoMatchingHandlers(t *testing.T) {
	bus := NewBus(nil)

	bus.Subscribe(TypeCatalogReloaded, func(e Event) {
		t.Error("Handler should not be called for non-matching event type")
	})

	bus.Publish(NewSelectionChangedEvent("red", "blue"))
}

func TestBus_SpecificBeforeWildcard(t *testing.T) {
	bus := NewBus(nil)

	var order []string
	bus.SubscribeAll(func(e Event) {
		order = append(order, "wildcard")
	})
	bus.Subscribe(TypeCatalogReloaded, func(e Event) {
		order = append(order, "specific")
	})

	bus.Publish(NewCatalogReloadedEvent("config.yaml", 3))

	if strings.Join(order, ",") != "specific,wildcard" {
		t.Errorf("dispatch order = %v, want [specific wildcard]", order)
	}
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := NewBus(nil)

	calls := make(map[string]int)
	id1 := bus.Subscribe(TypeSelectionChanged, func(e Event) { calls["first"]++ })
	bus.Subscribe(TypeSelectionChanged, func(e Event) { calls["second"]++ })

	if !bus.Unsubscribe(id1) {
		t.Error("Unsubscribe should return true when subscription exists")
	}
	if bus.Unsubscribe(id1) {
		t.Error("Unsubscribe should return false the second time")
	}

	bus.Publish(NewSelectionChangedEvent("", "blue"))

	if calls["first"] != 0 {
		t.Error("first handler should not be called after unsubscribing")
	}
	if calls["second"] != 1 {
		t.Error("second handler should still be called")
	}
}

func TestBus_Clear(t *testing.T) {
	bus := NewBus(nil)

	bus.Subscribe(TypeSelectionChanged, func(e Event) {})
	bus.Subscribe(TypeCatalogReloaded, func(e Event) {})
	bus.SubscribeAll(func(e Event) {})

	bus.Clear()

	if bus.SubscriptionCount() != 0 {
		t.Errorf("Expected 0 subscriptions after clear, got %d", bus.SubscriptionCount())
	}
}

func TestBus_HandlerPanicRecovery(t *testing.T) {
	var buf bytes.Buffer
	bus := NewBus(logging.NewWriterLogger(&buf, logging.LevelError))

	calls := 0
	bus.Subscribe(TypeSelectionChanged, func(e Event) {
		calls++
		panic("handler panic")
	})
	bus.Subscribe(TypeSelectionChanged, func(e Event) {
		calls++
	})

	bus.Publish(NewSelectionChangedEvent("", "red"))

	if calls != 2 {
		t.Errorf("Expected both handlers to be called despite panic, got %d calls", calls)
	}
	if !strings.Contains(buf.String(), "event handler panicked") {
		t.Errorf("panic was not logged: %s", buf.String())
	}
}

func TestBus_ConcurrentPublish(t *testing.T) {
	bus := NewBus(nil)

	var mu sync.Mutex
	calls := 0
	bus.Subscribe(TypeSelectionChanged, func(e Event) {
		mu.Lock()
		calls++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			bus.Publish(NewSelectionChangedEvent("", "red"))
		}()
	}
	wg.Wait()

	if calls != 100 {
		t.Errorf("Expected 100 calls, got %d", calls)
	}
}

func TestBus_UniqueIDs(t *testing.T) {
	bus := NewBus(nil)

	ids := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := bus.Subscribe(TypeSelectionChanged, func(e Event) {})
		if ids[id] {
			t.Errorf("Duplicate subscription ID: %s", id)
		}
		ids[id] = true
	}
}
