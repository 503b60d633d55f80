package notify

import (
	"testing"

	"github.com/Apurva9997/planning-poker/internal/domain"
)

func TestPublishReachesSubscribers(t *testing.T) {
	hub := NewHub()
	ch := hub.Subscribe("ABC123")
	defer hub.Unsubscribe("ABC123", ch)

	room := &domain.Room{Code: "ABC123"}
	hub.Publish("ABC123", room)

	select {
	case got := <-ch:
		if got.Code != "ABC123" {
			t.Fatalf("unexpected room: %+v", got)
		}
	default:
		t.Fatal("expected a buffered state update")
	}
}

func TestPublishScopedToRoom(t *testing.T) {
	hub := NewHub()
	ch := hub.Subscribe("ABC123")
	defer hub.Unsubscribe("ABC123", ch)

	hub.Publish("OTHER0", &domain.Room{Code: "OTHER0"})

	select {
	case got := <-ch:
		t.Fatalf("subscriber received foreign room %+v", got)
	default:
	}
}

func TestPublishNilSignalsDeletion(t *testing.T) {
	hub := NewHub()
	ch := hub.Subscribe("ABC123")
	defer hub.Unsubscribe("ABC123", ch)

	hub.Publish("ABC123", nil)
	select {
	case got := <-ch:
		if got != nil {
			t.Fatalf("expected nil deletion marker, got %+v", got)
		}
	default:
		t.Fatal("expected a deletion update")
	}
}

func TestPublishNeverBlocksOnSlowSubscriber(t *testing.T) {
	hub := NewHub()
	ch := hub.Subscribe("ABC123")
	defer hub.Unsubscribe("ABC123", ch)

	room := &domain.Room{Code: "ABC123"}
	// Overflow the buffer; the extra publishes must drop, not block.
	for i := 0; i < subscriberBuffer+5; i++ {
		hub.Publish("ABC123", room)
	}
	if len(ch) != subscriberBuffer {
		t.Fatalf("expected a full buffer, got %d", len(ch))
	}
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	hub := NewHub()
	ch := hub.Subscribe("ABC123")
	hub.Unsubscribe("ABC123", ch)

	if _, ok := <-ch; ok {
		t.Fatal("channel should be closed after unsubscribe")
	}

	// Double unsubscribe must not panic.
	hub.Unsubscribe("ABC123", ch)
	// Publishing to a room with no subscribers is a no-op.
	hub.Publish("ABC123", &domain.Room{Code: "ABC123"})
}
