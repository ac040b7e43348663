package services

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

// Event is one tracker mutation or breathing transition, fanned out to
// every connected dashboard client.
type Event struct {
	Kind    string    `json:"kind"`
	Payload any       `json:"payload,omitempty"`
	At      time.Time `json:"at"`
}

// EventHub broadcasts events over websocket. A nil hub is valid and drops
// everything, so trackers can publish unconditionally.
type EventHub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
	now     Clock
}

func NewEventHub(now Clock) *EventHub {
	return &EventHub{clients: make(map[*websocket.Conn]struct{}), now: now}
}

func (h *EventHub) Register(conn *websocket.Conn) {
	h.mu.Lock()
	h.clients[conn] = struct{}{}
	h.mu.Unlock()
}

func (h *EventHub) Unregister(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
	_ = conn.Close()
}

func (h *EventHub) Publish(kind string, payload any) {
	if h == nil {
		return
	}
	msg, err := json.Marshal(Event{Kind: kind, Payload: payload, At: h.now()})
	if err != nil {
		log.Errorf("publish %s: marshal: %s", kind, err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			log.Debugf("publish %s: dropping client: %s", kind, err)
			delete(h.clients, conn)
			_ = conn.Close()
		}
	}
}
