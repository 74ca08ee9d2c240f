package core

import (
	"context"
	"testing"
	"time"
)

func startHub(t *testing.T) *Hub {
	t.Helper()

	hub := NewHub(nil)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)
	return hub
}

// nextEvent reads the next queued event, whatever its kind.
func nextEvent(t *testing.T, ch <-chan *Event) *Event {
	t.Helper()

	select {
	case ev, ok := <-ch:
		if !ok {
			t.Fatalf("event channel closed")
		}
		return ev
	case <-time.After(2 * time.Second):
		t.Fatalf("no event received")
	}
	return nil
}

// mustEvent reads events until one of the wanted kind arrives.
func mustEvent(t *testing.T, ch <-chan *Event, kind EventKind) *Event {
	t.Helper()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case ev, ok := <-ch:
			if !ok {
				t.Fatalf("event channel closed while waiting for kind %v", kind)
			}
			if ev.Kind == kind {
				return ev
			}
		case <-deadline:
			t.Fatalf("expected event kind %v not received", kind)
		}
	}
}

// expectNoEvent asserts the channel stays quiet for a short window.
func expectNoEvent(t *testing.T, ch <-chan *Event) {
	t.Helper()

	select {
	case ev := <-ch:
		t.Fatalf("unexpected event: %+v", ev)
	case <-time.After(150 * time.Millisecond):
	}
}

// drainEvents discards queued events until the channel goes quiet.
func drainEvents(ch <-chan *Event) {
	for {
		select {
		case <-ch:
		case <-time.After(100 * time.Millisecond):
			return
		}
	}
}

// openClient registers a channel with the hub and consumes the initial
// me/onlineUsers/availableRooms handshake.
func openClient(t *testing.T, hub *Hub, handle string) *Client {
	t.Helper()

	c := NewClient(handle, 0)
	hub.RegisterClient(c)

	me := nextEvent(t, c.Events)
	if me.Kind != EventMe || me.Handle != handle {
		t.Fatalf("expected me event for %q, got %+v", handle, me)
	}
	if ev := nextEvent(t, c.Events); ev.Kind != EventOnlineUsers {
		t.Fatalf("expected onlineUsers snapshot, got %+v", ev)
	}
	if ev := nextEvent(t, c.Events); ev.Kind != EventAvailableRooms {
		t.Fatalf("expected availableRooms snapshot, got %+v", ev)
	}
	return c
}

// registerIdentity registers an identity and waits for the resulting
// presence broadcast on the same channel.
func registerIdentity(t *testing.T, c *Client, identity string) {
	t.Helper()

	c.Commands <- &Command{Kind: CommandRegisterUser, Identity: identity}
	mustEvent(t, c.Events, EventOnlineUsers)
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
