package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fillipeguerrabtc/agro-token-kaleido/internal/core/domain"
)

// KeyVault encrypts and decrypts wallet signing keys. Sealed blobs are
// opaque strings; Open fails on any tampering or wrong secret. Safe for
// concurrent use.
type KeyVault interface {
	Seal(plaintext string) (string, error)
	Open(sealed string) (string, error)
}

// ChainBackend is the full ledger capability set. Exactly one
// implementation (mock or live) is selected at startup; callers never
// branch on mode. All amounts are decimal strings; the live backend alone
// converts to 18-decimal chain units.
type ChainBackend interface {
	Mode() string
	GenerateKey() (address, privateKeyHex string, err error)
	NativeBalance(ctx context.Context, address string) (string, error)
	TokenBalance(ctx context.Context, address string) (string, error)
	MintStablecoin(ctx context.Context, to, amount string) (txRef string, err error)
	BurnStablecoin(ctx context.Context, privateKeyHex, amount string) (txRef string, err error)
	TransferStablecoin(ctx context.Context, privateKeyHex, to, amount string) (txRef string, err error)
	CreateAssetToken(ctx context.Context, privateKeyHex, assetType, value string, maturity time.Time) (tokenID, txRef string, err error)
	TransferAssetToken(ctx context.Context, privateKeyHex, to, tokenID string) (txRef string, err error)
	TransferHistory(ctx context.Context, address string, limit int) ([]*domain.HistoryEntry, error)
}

// Notifier pushes events to subscribed wallet clients. Delivery is
// best-effort: nothing is queued for disconnected clients.
type Notifier interface {
	Publish(address string, ev domain.Event)
	Broadcast(ev domain.Event)
}

// ListingLock serializes concurrent settlement of the same listing.
// Acquire returns ok=false without blocking when another settlement holds
// the lock.
type ListingLock interface {
	Acquire(ctx context.Context, listingID uuid.UUID, ttl time.Duration) (release func(), ok bool, err error)
}

// WalletService manages custodial wallet lifecycle.
type WalletService interface {
	Create(ctx context.Context, displayName string) (*domain.Wallet, error)
	Import(ctx context.Context, displayName, privateKeyHex string) (*domain.Wallet, error)
	Get(ctx context.Context, address string) (*domain.Wallet, error)
	List(ctx context.Context) ([]*domain.Wallet, error)
	Balances(ctx context.Context, address string) (*domain.Balances, error)
}

// SettlementService executes stablecoin and marketplace settlement flows.
type SettlementService interface {
	Mint(ctx context.Context, amount, to string) (*domain.StablecoinTransaction, error)
	Burn(ctx context.Context, amount, from string) (*domain.StablecoinTransaction, error)
	Transfer(ctx context.Context, amount, from, to string) (*domain.StablecoinTransaction, error)
	Buy(ctx context.Context, listingID uuid.UUID, buyerAddress string) (*domain.Order, error)
	SendCrossBorder(ctx context.Context, from, to, amount, targetCurrency string) (*domain.CrossBorderPayment, error)
	CrossBorderPayments(ctx context.Context, address string, limit int) ([]*domain.CrossBorderPayment, error)
	StablecoinTransactions(ctx context.Context, address string, limit int) ([]*domain.StablecoinTransaction, error)
	OrdersByBuyer(ctx context.Context, address string) ([]*domain.Order, error)
	History(ctx context.Context, address string, limit int) ([]*domain.HistoryEntry, error)
}

// TokenizationService creates asset tokens and marketplace listings.
type TokenizationService interface {
	Tokenize(ctx context.Context, ownerAddress, assetType, description, value string, maturity time.Time) (*domain.AssetToken, error)
	ListForSale(ctx context.Context, assetTokenID uuid.UUID, sellerAddress, price string) (*domain.Listing, error)
	CancelListing(ctx context.Context, listingID uuid.UUID, sellerAddress string) (*domain.Listing, error)
	AssetsByOwner(ctx context.Context, address string) ([]*domain.AssetToken, error)
	ActiveListings(ctx context.Context) ([]*domain.Listing, error)
}
