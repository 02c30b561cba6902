package domain

import (
	"time"

	"github.com/google/uuid"
)

// AssetToken is an on-chain token representing a real-world agricultural
// asset (a harvest lot, a land parcel, a warehouse receipt). OwnerAddress
// is the only mutable field after creation; it changes only through a
// successful settlement.
type AssetToken struct {
	ID              uuid.UUID  `json:"id"`
	OnChainTokenID  string     `json:"on_chain_token_id"`
	ContractAddress string     `json:"contract_address,omitempty"`
	AssetType       string     `json:"asset_type"`
	Description     string     `json:"description,omitempty"`
	Value           string     `json:"value"`
	MaturityDate    *time.Time `json:"maturity_date,omitempty"`
	OwnerAddress    string     `json:"owner_address"`
	TxRef           string     `json:"tx_ref"`
	CreatedAt       time.Time  `json:"created_at"`
}
