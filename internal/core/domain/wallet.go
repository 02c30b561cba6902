package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Wallet is a custodial blockchain wallet. The signing key is held only in
// encrypted form; plaintext keys exist transiently inside the key vault.
type Wallet struct {
	ID                  uuid.UUID `json:"id"`
	Address             string    `json:"address"`
	DisplayName         string    `json:"display_name"`
	EncryptedSigningKey string    `json:"-"`
	CreatedAt           time.Time `json:"created_at"`
}

// NormalizeAddress lowercases an address. All address comparisons and
// lookups in the system are case-insensitive.
func NormalizeAddress(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}

// Balances is the point-in-time balance view for a wallet. All amounts are
// decimal strings; conversion to chain units happens only at the live
// chain boundary.
type Balances struct {
	Address string `json:"address"`
	Native  string `json:"native"`
	BRLX    string `json:"brlx"`
}
