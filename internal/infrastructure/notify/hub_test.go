package notify

import (
	"testing"
	"time"
)

func TestHubDeliversToAllSubscribers(t *testing.T) {
	h := NewHub()

	ch1, cancel1 := h.Subscribe()
	defer cancel1()
	ch2, cancel2 := h.Subscribe()
	defer cancel2()

	h.Publish()

	for i, ch := range []<-chan struct{}{ch1, ch2} {
		select {
		case <-ch:
		case <-time.After(time.Second):
			t.Fatalf("subscriber %d never received the signal", i)
		}
	}
}

func TestHubCoalescesPendingSignals(t *testing.T) {
	h := NewHub()
	ch, cancel := h.Subscribe()
	defer cancel()

	// Publishing repeatedly into an undrained subscriber never blocks and
	// collapses into a single pending signal.
	for i := 0; i < 10; i++ {
		h.Publish()
	}

	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("no signal received")
	}
	select {
	case <-ch:
		t.Fatal("signals must coalesce to one")
	default:
	}
}

func TestHubCancelStopsDelivery(t *testing.T) {
	h := NewHub()
	ch, cancel := h.Subscribe()
	cancel()

	h.Publish()

	select {
	case <-ch:
		t.Fatal("cancelled subscriber received a signal")
	default:
	}
}

func TestHubPublishWithoutSubscribers(t *testing.T) {
	NewHub().Publish() // must not panic or block
}
