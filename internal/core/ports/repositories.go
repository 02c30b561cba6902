package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/fillipeguerrabtc/agro-token-kaleido/internal/core/domain"
)

// WalletRepository persists custodial wallets. Address lookups are
// case-insensitive; absent rows return nil, not an error.
type WalletRepository interface {
	Create(ctx context.Context, w *domain.Wallet) error
	GetByAddress(ctx context.Context, address string) (*domain.Wallet, error)
	List(ctx context.Context) ([]*domain.Wallet, error)
}

// AssetTokenRepository persists tokenized assets.
type AssetTokenRepository interface {
	Create(ctx context.Context, tok *domain.AssetToken) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.AssetToken, error)
	ListByOwner(ctx context.Context, address string) ([]*domain.AssetToken, error)
	UpdateOwner(ctx context.Context, id uuid.UUID, newOwner string) error
}

// ListingRepository persists marketplace listings. ClaimActive is the
// settlement engine's concurrency gate: it atomically moves an active
// listing to sold and reports whether this caller won the claim, so
// concurrent buys of the same listing cannot both observe it active.
type ListingRepository interface {
	Create(ctx context.Context, l *domain.Listing) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Listing, error)
	ListActive(ctx context.Context) ([]*domain.Listing, error)
	ClaimActive(ctx context.Context, id uuid.UUID) (bool, error)
	Reactivate(ctx context.Context, id uuid.UUID) error
	SetSettlementTxRef(ctx context.Context, id uuid.UUID, txRef string) error
	Cancel(ctx context.Context, id uuid.UUID) error
}

// OrderRepository persists buy orders.
type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) error
	Update(ctx context.Context, o *domain.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	ListByBuyer(ctx context.Context, address string) ([]*domain.Order, error)
}

// StablecoinTransactionRepository persists BRLX movements. Append-only.
type StablecoinTransactionRepository interface {
	Create(ctx context.Context, tx *domain.StablecoinTransaction) error
	ListByAddress(ctx context.Context, address string, limit int) ([]*domain.StablecoinTransaction, error)
}

// HistoryRepository appends and reads the audit trail of ledger references.
type HistoryRepository interface {
	Create(ctx context.Context, e *domain.HistoryEntry) error
	ListByAddress(ctx context.Context, address string, limit int) ([]*domain.HistoryEntry, error)
}

// CrossBorderPaymentRepository persists international transfers.
// UpdateStatus moves a payment out of processing once the liquidation
// partner confirms (or rejects) the foreign leg.
type CrossBorderPaymentRepository interface {
	Create(ctx context.Context, p *domain.CrossBorderPayment) error
	ListByAddress(ctx context.Context, address string, limit int) ([]*domain.CrossBorderPayment, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.CrossBorderStatus) error
}
