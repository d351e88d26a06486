// SPDX-License-Identifier: EPL-2.0

package web

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/ik5/noisewatch/monitor"
)

// sendBuffer is how many undelivered events a client may fall behind
// before it is dropped.
const sendBuffer = 32

// writeWait bounds a single websocket write. A peer that stops
// acknowledging errors the write out instead of holding the writer.
const writeWait = 5 * time.Second

// levelEvent streams one loudness sample to live clients.
type levelEvent struct {
	Type   string  `json:"type"`
	Level  float64 `json:"level"`
	Active bool    `json:"active"`
}

// recordEvent announces a newly stored noise record.
type recordEvent struct {
	Type   string         `json:"type"`
	Record monitor.Record `json:"record"`
}

// client is one live websocket consumer. Events are queued on send
// and delivered by the client's own writer goroutine, so a slow peer
// never holds up the goroutine that produced the event.
type client struct {
	conn *websocket.Conn
	send chan any
}

// writePump drains the send queue onto the connection. It exits when
// the queue is closed or a write fails, closing the connection either
// way so the read side unblocks too.
func (c *client) writePump() {
	defer c.conn.Close()

	for v := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))

		if err := c.conn.WriteJSON(v); err != nil {
			return
		}
	}
}

// hub fans pipeline events out to connected websocket clients.
// Broadcasting never blocks: each client has a bounded queue and its
// own writer goroutine, and a client whose queue is full is dropped.
// The sampling and reporting cycles therefore never wait on a peer.
type hub struct {
	mtx     sync.Mutex
	clients map[string]*client
	log     *slog.Logger
}

func newHub(log *slog.Logger) *hub {
	return &hub{
		clients: make(map[string]*client),
		log:     log,
	}
}

// add registers a connection, starts its writer and returns the
// client id.
func (h *hub) add(conn *websocket.Conn) string {
	id := uuid.NewString()

	c := &client{
		conn: conn,
		send: make(chan any, sendBuffer),
	}

	h.mtx.Lock()
	h.clients[id] = c
	h.mtx.Unlock()

	go c.writePump()

	h.log.Info("live client connected", "client", id)

	return id
}

func (h *hub) remove(id string) {
	h.mtx.Lock()

	c, ok := h.clients[id]
	delete(h.clients, id)

	h.mtx.Unlock()

	if !ok {
		return
	}

	close(c.send)
	c.conn.Close()

	h.log.Info("live client disconnected", "client", id)
}

func (h *hub) count() int {
	h.mtx.Lock()
	defer h.mtx.Unlock()

	return len(h.clients)
}

// broadcast queues v for every client. A client whose queue is full
// is not keeping up and gets dropped; the send itself never blocks.
func (h *hub) broadcast(v any) {
	h.mtx.Lock()

	var stalled []string

	for id, c := range h.clients {
		select {
		case c.send <- v:
		default:
			stalled = append(stalled, id)
		}
	}

	for _, id := range stalled {
		c := h.clients[id]
		delete(h.clients, id)

		close(c.send)
		c.conn.Close()
	}

	h.mtx.Unlock()

	for _, id := range stalled {
		h.log.Warn("dropped stalled live client", "client", id)
	}
}
