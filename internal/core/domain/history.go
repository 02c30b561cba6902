package domain

import (
	"time"

	"github.com/google/uuid"
)

// HistoryEntry is an append-only audit record of an external-ledger
// reference produced by the system. It backs reconciliation and the
// per-wallet activity feed.
type HistoryEntry struct {
	ID          uuid.UUID `json:"id"`
	Kind        string    `json:"kind"`
	FromAddress string    `json:"from_address,omitempty"`
	ToAddress   string    `json:"to_address,omitempty"`
	Amount      string    `json:"amount,omitempty"`
	TokenID     string    `json:"token_id,omitempty"`
	TxRef       string    `json:"tx_ref"`
	CreatedAt   time.Time `json:"created_at"`
}
