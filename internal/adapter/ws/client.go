package ws

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/fillipeguerrabtc/agro-token-kaleido/internal/core/domain"
	"github.com/fillipeguerrabtc/agro-token-kaleido/pkg/logger"
)

const (
	handshakeTimeout = 4 * time.Second
	pingInterval     = 30 * time.Second
	reconnectDelay   = 5 * time.Second
)

// EventHandler receives every event delivered to the client's address.
type EventHandler func(ev domain.Event)

// Client is a reconnecting consumer of the notification bus. It keeps one
// address subscription alive across connection drops: on every (re)connect
// it re-subscribes, and it probes the server every 30 seconds. Used by
// backoffice consumers and integration tests; browsers speak the same
// protocol directly.
type Client struct {
	url     string
	handler EventHandler
	log     zerolog.Logger

	mu      sync.RWMutex
	address string
}

// NewClient builds a client for the hub at url. Run starts it.
func NewClient(url string, handler EventHandler, log zerolog.Logger) *Client {
	return &Client{
		url:     url,
		handler: handler,
		log:     logger.Component(log, "ws_client"),
	}
}

// Subscribe sets the address the client follows. Takes effect on the next
// (re)connect; call before Run for immediate effect.
func (c *Client) Subscribe(address string) {
	c.mu.Lock()
	c.address = domain.NormalizeAddress(address)
	c.mu.Unlock()
}

// Run dials, consumes and reconnects until ctx is cancelled.
func (c *Client) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if err := c.session(ctx); err != nil {
			c.log.Warn().Err(err).Dur("retry_in", reconnectDelay).Msg("connection lost, reconnecting")
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(reconnectDelay):
		}
	}
}

// session runs one connection lifecycle: dial, subscribe, consume.
func (c *Client) session(ctx context.Context) error {
	dialer := websocket.Dialer{HandshakeTimeout: handshakeTimeout}
	conn, _, err := dialer.DialContext(ctx, c.url, nil)
	if err != nil {
		return fmt.Errorf("dialing %s: %w", c.url, err)
	}
	defer conn.Close()

	c.mu.RLock()
	address := c.address
	c.mu.RUnlock()
	if address != "" {
		if err := conn.WriteJSON(inboundMsg{Type: "subscribe", Address: address}); err != nil {
			return fmt.Errorf("subscribing: %w", err)
		}
	}

	done := make(chan struct{})
	defer close(done)
	go c.keepAlive(ctx, conn, done)

	for {
		var ev domain.Event
		if err := conn.ReadJSON(&ev); err != nil {
			return fmt.Errorf("reading: %w", err)
		}
		switch ev.Type {
		case domain.EventConnected, domain.EventPong:
			// Control frames, not domain events.
		default:
			if c.handler != nil {
				c.handler(ev)
			}
		}
	}
}

// keepAlive probes the server on the protocol's fixed interval until the
// session ends.
func (c *Client) keepAlive(ctx context.Context, conn *websocket.Conn, done <-chan struct{}) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-done:
			return
		case <-ticker.C:
			data, err := json.Marshal(inboundMsg{Type: "ping"})
			if err != nil {
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		}
	}
}
