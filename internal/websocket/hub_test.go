package websocket

import (
	"testing"
	"time"

	"pawrescue-be/internal/model"

	"github.com/google/uuid"
)

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

func waitClosed(t *testing.T, ch chan []byte) {
	t.Helper()
	select {
	case _, open := <-ch:
		if open {
			t.Error("expected Send channel to be closed, got a message")
		}
	case <-time.After(2 * time.Second):
		t.Error("Send channel was never closed")
	}
}

// Two stalled clients in one sweep: the hub must drop both without blocking
// and must close each Send channel exactly once.
func TestBroadcastDropsSlowClients(t *testing.T) {
	hub := NewHub(nil, nopLogger{})
	go hub.Run()

	slow1 := &Client{Hub: hub, UserID: uuid.New(), Send: make(chan []byte)}
	slow2 := &Client{Hub: hub, UserID: uuid.New(), Send: make(chan []byte)}
	hub.register <- slow1
	hub.register <- slow2

	done := make(chan struct{})
	go func() {
		hub.Broadcast(model.Notification{ID: uuid.New(), Title: "New arrival"})
		hub.Broadcast(model.Notification{ID: uuid.New(), Title: "New arrival"})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Broadcast deadlocked on stalled clients")
	}

	waitClosed(t, slow1.Send)
	waitClosed(t, slow2.Send)
}

func TestSendDropsSlowClientOnce(t *testing.T) {
	hub := NewHub(nil, nopLogger{})
	go hub.Run()

	userID := uuid.New()
	slow := &Client{Hub: hub, UserID: userID, Send: make(chan []byte)}
	hub.register <- slow

	hub.Send(userID, model.Notification{ID: uuid.New(), UserID: userID, Title: "Update"})
	waitClosed(t, slow.Send)

	// Client is gone from the registry; further sends are a no-op.
	hub.Send(userID, model.Notification{ID: uuid.New(), UserID: userID, Title: "Update"})

	hub.mu.RLock()
	_, registered := hub.clients[userID]
	hub.mu.RUnlock()
	if registered {
		t.Error("slow client should have been unregistered")
	}
}

func TestHealthyClientReceivesBroadcast(t *testing.T) {
	hub := NewHub(nil, nopLogger{})
	go hub.Run()

	client := &Client{Hub: hub, UserID: uuid.New(), Send: make(chan []byte, 4)}
	hub.register <- client

	hub.Broadcast(model.Notification{ID: uuid.New(), Title: "New arrival"})

	select {
	case msg := <-client.Send:
		if len(msg) == 0 {
			t.Error("expected a serialized notification")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("healthy client never received the broadcast")
	}
}
