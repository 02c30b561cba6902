package domain

import (
	"time"

	"github.com/google/uuid"
)

// CrossBorderStatus is the state of a cross-border payment.
type CrossBorderStatus string

const (
	CrossBorderStatusProcessing CrossBorderStatus = "processing"
	CrossBorderStatusCompleted  CrossBorderStatus = "completed"
	CrossBorderStatusFailed     CrossBorderStatus = "failed"
)

// CrossBorderPayment is an international BRLX transfer with an FX quote
// attached for the recipient's local currency. The BRLX leg settles into
// a holding address and the payment stays processing until the
// liquidation partner confirms the foreign payout; PartnerTxID is the
// partner's reference for that leg.
type CrossBorderPayment struct {
	ID             uuid.UUID         `json:"id"`
	FromAddress    string            `json:"from_address"`
	ToAddress      string            `json:"to_address"`
	AmountBRLX     string            `json:"amount_brlx"`
	TargetCurrency string            `json:"target_currency"`
	FXRate         string            `json:"fx_rate"`
	TargetAmount   string            `json:"target_amount"`
	TxRef          string            `json:"tx_ref"`
	PartnerTxID    string            `json:"partner_tx_id"`
	Status         CrossBorderStatus `json:"status"`
	CreatedAt      time.Time         `json:"created_at"`
}
