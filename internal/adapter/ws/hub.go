// Package ws is the notification bus: a WebSocket hub fanning domain
// events out to clients subscribed by wallet address.
package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/fillipeguerrabtc/agro-token-kaleido/internal/core/domain"
	"github.com/fillipeguerrabtc/agro-token-kaleido/pkg/logger"
)

const (
	// writeWait is the maximum time to wait for a write to complete.
	writeWait = 10 * time.Second

	// pongWait is the maximum silence tolerated from a client. Clients
	// probe every 30s, so two missed probes end the connection.
	pongWait = 60 * time.Second

	// pingPeriod sends protocol pings at this interval. Must be less
	// than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// maxMessageSize is the maximum size of an incoming message.
	maxMessageSize = 1024

	// sendBufferSize is the channel buffer for outgoing messages per client.
	sendBufferSize = 64
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins. In production, restrict this to known origins.
		return true
	},
}

// inboundMsg is what clients may send us.
type inboundMsg struct {
	Type    string `json:"type"`
	Address string `json:"address,omitempty"`
}

// connectedMsg is the first frame every client receives.
type connectedMsg struct {
	Type      string    `json:"type"`
	ClientID  string    `json:"clientId"`
	Timestamp time.Time `json:"timestamp"`
}

// pongMsg acknowledges a client keep-alive probe.
type pongMsg struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
}

// client is one WebSocket connection. Its address subscription lives in
// the hub's registry, not here, so all registry state has a single writer.
type client struct {
	hub  *Hub
	conn *websocket.Conn
	id   string
	send chan []byte
}

// subscription retargets a client to an address; empty address means
// unsubscribe.
type subscription struct {
	c       *client
	address string
}

// delivery routes marshaled bytes to one address's subscribers, or to
// everyone when address is empty.
type delivery struct {
	address string
	data    []byte
}

// Hub owns the connection registry. Register, unregister and subscription
// changes are all applied by the Run loop, one at a time; nothing else
// touches the maps. Each connection is subscribed to at most one address,
// and subscribing again replaces the previous address.
type Hub struct {
	log zerolog.Logger

	register    chan *client
	unregister  chan *client
	subscribe   chan subscription
	deliveries  chan delivery
	clients     map[*client]string          // client -> subscribed address ("" = none)
	subscribers map[string]map[*client]bool // normalized address -> clients
}

// NewHub creates a hub. Call Run before accepting connections.
func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		log:         logger.Component(log, "ws_hub"),
		register:    make(chan *client),
		unregister:  make(chan *client),
		subscribe:   make(chan subscription),
		deliveries:  make(chan delivery, 256),
		clients:     make(map[*client]string),
		subscribers: make(map[string]map[*client]bool),
	}
}

// Run is the hub's event loop; it exits when ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			for c := range h.clients {
				close(c.send)
				delete(h.clients, c)
			}
			h.subscribers = make(map[string]map[*client]bool)
			return

		case c := <-h.register:
			h.clients[c] = ""
			h.log.Info().Str("client_id", c.id).Int("total", len(h.clients)).Msg("client connected")

		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				h.dropSubscription(c)
				delete(h.clients, c)
				close(c.send)
				h.log.Info().Str("client_id", c.id).Int("total", len(h.clients)).Msg("client disconnected")
			}

		case sub := <-h.subscribe:
			if _, ok := h.clients[sub.c]; !ok {
				continue
			}
			h.dropSubscription(sub.c)
			if sub.address != "" {
				addr := domain.NormalizeAddress(sub.address)
				h.clients[sub.c] = addr
				if h.subscribers[addr] == nil {
					h.subscribers[addr] = make(map[*client]bool)
				}
				h.subscribers[addr][sub.c] = true
				h.log.Debug().Str("client_id", sub.c.id).Str("address", addr).Msg("client subscribed")
			}

		case d := <-h.deliveries:
			if d.address == "" {
				for c := range h.clients {
					c.enqueue(d.data, h.log)
				}
				continue
			}
			for c := range h.subscribers[d.address] {
				c.enqueue(d.data, h.log)
			}
		}
	}
}

// dropSubscription removes c from the address index. Run loop only.
func (h *Hub) dropSubscription(c *client) {
	addr := h.clients[c]
	if addr == "" {
		return
	}
	delete(h.subscribers[addr], c)
	if len(h.subscribers[addr]) == 0 {
		delete(h.subscribers, addr)
	}
	h.clients[c] = ""
}

// Publish delivers an event to clients subscribed to address. Best-effort:
// dropped when the hub is saturated or the client is slow.
func (h *Hub) Publish(address string, ev domain.Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		h.log.Error().Err(err).Str("type", ev.Type).Msg("marshaling event failed")
		return
	}
	h.offer(delivery{address: domain.NormalizeAddress(address), data: data})
}

// Broadcast delivers an event to every connected client.
func (h *Hub) Broadcast(ev domain.Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		h.log.Error().Err(err).Str("type", ev.Type).Msg("marshaling event failed")
		return
	}
	h.offer(delivery{data: data})
}

func (h *Hub) offer(d delivery) {
	select {
	case h.deliveries <- d:
	default:
		h.log.Warn().Msg("delivery queue full, dropping event")
	}
}

// HandleWS upgrades the request and registers the connection.
// GET /ws
func (h *Hub) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Error().Err(err).Msg("websocket upgrade failed")
		return
	}

	c := &client{
		hub:  h,
		conn: conn,
		id:   uuid.NewString(),
		send: make(chan []byte, sendBufferSize),
	}
	h.register <- c

	if data, err := json.Marshal(connectedMsg{
		Type:      domain.EventConnected,
		ClientID:  c.id,
		Timestamp: time.Now().UTC(),
	}); err == nil {
		c.enqueue(data, h.log)
	}

	go c.writePump()
	go c.readPump()
}

func (c *client) enqueue(data []byte, log zerolog.Logger) {
	select {
	case c.send <- data:
	default:
		log.Warn().Str("client_id", c.id).Msg("slow client, dropping message")
	}
}

// readPump consumes inbound frames: subscribe, unsubscribe and ping.
// Malformed payloads and unknown types are dropped, never fatal.
func (c *client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.hub.log.Warn().Err(err).Str("client_id", c.id).Msg("unexpected close")
			}
			return
		}
		c.conn.SetReadDeadline(time.Now().Add(pongWait))

		var msg inboundMsg
		if err := json.Unmarshal(message, &msg); err != nil {
			continue
		}
		switch msg.Type {
		case "subscribe":
			c.hub.subscribe <- subscription{c: c, address: msg.Address}
		case "unsubscribe":
			c.hub.subscribe <- subscription{c: c}
		case "ping":
			if data, err := json.Marshal(pongMsg{Type: domain.EventPong, Timestamp: time.Now().UTC()}); err == nil {
				c.enqueue(data, c.hub.log)
			}
		default:
			// Unknown inbound types are ignored.
		}
	}
}

// writePump drains the send queue and keeps the transport alive with
// protocol pings.
func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
