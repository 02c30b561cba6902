package domain

import (
	"time"

	"github.com/google/uuid"
)

// StablecoinKind identifies the kind of a stablecoin movement.
type StablecoinKind string

const (
	StablecoinKindMint     StablecoinKind = "mint"
	StablecoinKindBurn     StablecoinKind = "burn"
	StablecoinKindTransfer StablecoinKind = "transfer"
)

// StablecoinTxConfirmed is the only status a recorded movement carries:
// rows are appended after the chain call succeeds, never before.
const StablecoinTxConfirmed = "confirmed"

// StablecoinTransaction records a BRLX supply or transfer operation.
// FromAddress is empty for mints; ToAddress is empty for burns.
// Append-only.
type StablecoinTransaction struct {
	ID          uuid.UUID      `json:"id"`
	Kind        StablecoinKind `json:"kind"`
	FromAddress string         `json:"from_address,omitempty"`
	ToAddress   string         `json:"to_address,omitempty"`
	Amount      string         `json:"amount"`
	TxRef       string         `json:"tx_ref"`
	Status      string         `json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
}
