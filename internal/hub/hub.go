package hub

import "sync"

type Writer interface {
	Write(message []byte) error
	Close() error
}

// Connection is one attached websocket peer.
type Connection struct {
	Username string
	Writer   Writer
}

// Hub tracks every connected peer. Delivery is best effort: a connection
// whose write fails is closed and dropped.
type Hub struct {
	mu          sync.RWMutex
	connections map[*Connection]struct{}
}

func New() *Hub {
	return &Hub{connections: make(map[*Connection]struct{})}
}

func (h *Hub) Register(conn *Connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.connections[conn] = struct{}{}
}

func (h *Hub) Unregister(conn *Connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.connections, conn)
}

// Count reports the number of attached peers.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.connections)
}

// Broadcast fans a message out to every peer except the sender.
// A nil sender reaches everyone.
func (h *Hub) Broadcast(message []byte, sender *Connection) {
	h.mu.RLock()
	conns := make([]*Connection, 0, len(h.connections))
	for c := range h.connections {
		if c == sender {
			continue
		}
		conns = append(conns, c)
	}
	h.mu.RUnlock()

	var failed []*Connection
	for _, c := range conns {
		if err := c.Writer.Write(message); err != nil {
			failed = append(failed, c)
		}
	}
	for _, c := range failed {
		_ = c.Writer.Close()
		h.Unregister(c)
	}
}
