package domain

import (
	"time"

	"github.com/google/uuid"
)

// ListingStatus is the lifecycle state of a marketplace listing.
// active -> sold and active -> cancelled are the only transitions; sold
// and cancelled are terminal.
type ListingStatus string

const (
	ListingStatusActive    ListingStatus = "active"
	ListingStatusSold      ListingStatus = "sold"
	ListingStatusCancelled ListingStatus = "cancelled"
)

// Listing offers an asset token for sale at a fixed BRLX price.
type Listing struct {
	ID              uuid.UUID     `json:"id"`
	AssetTokenID    uuid.UUID     `json:"asset_token_id"`
	SellerAddress   string        `json:"seller_address"`
	Price           string        `json:"price"`
	Status          ListingStatus `json:"status"`
	ListedAt        time.Time     `json:"listed_at"`
	SoldAt          *time.Time    `json:"sold_at,omitempty"`
	SettlementTxRef string        `json:"settlement_tx_ref,omitempty"`
}

// OrderStatus is the settlement state of a buy order.
// pending -> completed and pending -> failed; both terminal.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusFailed    OrderStatus = "failed"
)

// Order records one purchase attempt against a listing, including both
// settlement legs. A failed order with a non-empty PaymentTxRef means the
// payment leg settled but the asset leg did not.
type Order struct {
	ID            uuid.UUID   `json:"id"`
	ListingID     uuid.UUID   `json:"listing_id"`
	BuyerAddress  string      `json:"buyer_address"`
	SellerAddress string      `json:"seller_address"`
	Price         string      `json:"price"`
	PaymentTxRef  string      `json:"payment_tx_ref,omitempty"`
	TransferTxRef string      `json:"transfer_tx_ref,omitempty"`
	Status        OrderStatus `json:"status"`
	FailReason    string      `json:"fail_reason,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}
