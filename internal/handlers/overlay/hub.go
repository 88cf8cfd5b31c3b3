// Package overlay serves the stream overlay: a websocket feed of game events
// plus a small JSON API.
package overlay

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/wordlive/internal/events"
	"github.com/KirkDiggler/wordlive/internal/models"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512

	clientBuffer = 16
)

// replayOrder is the order cached events are sent to a new client
var replayOrder = []events.Type{
	events.TypeLeaderboard,
	events.TypeRoundSnapshot,
	events.TypeRoundSummary,
	events.TypeValidationNotice,
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

type frame struct {
	event *events.Event
	data  []byte
}

// Hub fans game events out to every connected overlay. It keeps the latest
// event of each type so a client that connects mid round sees the full state.
type Hub struct {
	clients map[*client]bool
	latest  map[events.Type]frame

	register   chan *client
	unregister chan *client
	broadcast  chan frame
	done       chan struct{}

	count atomic.Int32
}

// NewHub creates a hub, Run must be called to serve it
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*client]bool),
		latest:     make(map[events.Type]frame),
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan frame),
		done:       make(chan struct{}),
	}
}

// Run serves the hub until ctx is done, then disconnects every client
func (h *Hub) Run(ctx context.Context) {
	defer func() {
		close(h.done)
		for c := range h.clients {
			h.drop(c)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case c := <-h.register:
			h.clients[c] = true
			h.count.Store(int32(len(h.clients)))
			for _, t := range replayOrder {
				if f, ok := h.latest[t]; ok {
					h.deliver(c, f.data)
				}
			}
		case c := <-h.unregister:
			h.drop(c)
		case f := <-h.broadcast:
			h.remember(f)
			for c := range h.clients {
				h.deliver(c, f.data)
			}
		}
	}
}

// Publish implements events.Publisher. It returns once the hub has cached
// the event and queued it for every client.
func (h *Hub) Publish(ctx context.Context, event *events.Event) error {
	if event == nil {
		return nil
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode %s event: %w", event.Type, err)
	}

	select {
	case h.broadcast <- frame{event: event, data: data}:
		return nil
	case <-h.done:
		return ErrHubStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ClientCount is the number of connected overlays
func (h *Hub) ClientCount() int {
	return int(h.count.Load())
}

// remember updates the replay cache
func (h *Hub) remember(f frame) {
	switch f.event.Type {
	case events.TypeNoticeCleared:
		delete(h.latest, events.TypeValidationNotice)
		return
	case events.TypeRoundSnapshot:
		if cached, ok := h.latest[events.TypeRoundSummary]; ok && cached.event.RoundID != f.event.RoundID {
			delete(h.latest, events.TypeRoundSummary)
		}
		if snap, ok := f.event.Payload.(*models.RoundSnapshot); ok && snap.State != models.RoundStateActive {
			delete(h.latest, events.TypeValidationNotice)
		}
	}
	h.latest[f.event.Type] = f
}

// deliver drops clients that cannot keep up
func (h *Hub) deliver(c *client, data []byte) {
	select {
	case c.send <- data:
	default:
		log.Warn().Msg("dropping slow overlay client")
		h.drop(c)
	}
}

func (h *Hub) drop(c *client) {
	if !h.clients[c] {
		return
	}
	delete(h.clients, c)
	close(c.send)
	h.count.Store(int32(len(h.clients)))
}

// serve registers an upgraded connection and pumps it until it closes
func (h *Hub) serve(conn *websocket.Conn) {
	c := &client{
		conn: conn,
		send: make(chan []byte, clientBuffer),
	}

	select {
	case h.register <- c:
	case <-h.done:
		_ = conn.Close()
		return
	}

	go c.writePump()
	c.readPump(h)
}

// readPump discards inbound frames, it only exists to notice disconnects
func (c *client) readPump(h *Hub) {
	defer func() {
		select {
		case h.unregister <- c:
		case <-h.done:
		}
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
