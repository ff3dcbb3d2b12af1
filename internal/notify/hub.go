package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Conn is the slice of a websocket connection the hub needs. Satisfied by
// *websocket.Conn.
type Conn interface {
	WriteJSON(v interface{}) error
}

// Hub fans status events out to every connected page. Pages are passive
// listeners; nothing is read back.
type Hub struct {
	log     *zap.Logger
	mu      sync.Mutex
	clients map[uuid.UUID]Conn
}

func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		log:     log,
		clients: make(map[uuid.UUID]Conn),
	}
}

// Register adds a page connection and returns its id for removal.
func (h *Hub) Register(c Conn) uuid.UUID {
	id := uuid.New()
	h.mu.Lock()
	h.clients[id] = c
	h.mu.Unlock()
	h.log.Debug("notification client connected", zap.String("client", id.String()))
	return id
}

func (h *Hub) Unregister(id uuid.UUID) {
	h.mu.Lock()
	delete(h.clients, id)
	h.mu.Unlock()
	h.log.Debug("notification client disconnected", zap.String("client", id.String()))
}

// Broadcast sends one event to every connected page. A write failure drops
// that event for that page only; the connection is cleaned up by its own
// read loop.
func (h *Hub) Broadcast(ev Event) {
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now()
	}

	h.mu.Lock()
	conns := make([]Conn, 0, len(h.clients))
	for _, c := range h.clients {
		conns = append(conns, c)
	}
	h.mu.Unlock()

	for _, c := range conns {
		if err := c.WriteJSON(ev); err != nil {
			h.log.Warn("notification write failed", zap.Error(err))
		}
	}
}

// Loading toggles the busy indicator on every page.
func (h *Hub) Loading(active bool) {
	h.Broadcast(Event{Kind: KindLoading, Active: active})
}

// Error sets the persistent error banner; an empty message clears it.
func (h *Hub) Error(message string) {
	h.Broadcast(Event{Kind: KindError, Message: message, Active: message != ""})
}

// Toast appends a transient notice on every page.
func (h *Hub) Toast(message string) {
	h.Broadcast(Event{Kind: KindToast, Message: message, Active: true})
}
