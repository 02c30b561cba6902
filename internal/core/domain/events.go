package domain

import "time"

// Event kinds pushed over the notification bus. Domain kinds are addressed
// to a single wallet; connected and pong are per-connection control frames.
const (
	EventConnected           = "connected"
	EventPong                = "pong"
	EventTransaction         = "transaction"
	EventMarketplaceListing  = "marketplace_listing"
	EventMarketplacePurchase = "marketplace_purchase"
	EventStablecoinMint      = "stablecoin_mint"
	EventStablecoinBurn      = "stablecoin_burn"
	EventCrossBorderPayment  = "cross_border_payment"
)

// Event is a notification envelope delivered to subscribed clients.
type Event struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// NewEvent builds an event stamped with the current time.
func NewEvent(kind string, data interface{}) Event {
	return Event{Type: kind, Data: data, Timestamp: time.Now().UTC()}
}
