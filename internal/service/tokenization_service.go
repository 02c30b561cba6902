package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/fillipeguerrabtc/agro-token-kaleido/internal/core/domain"
	"github.com/fillipeguerrabtc/agro-token-kaleido/internal/core/ports"
	"github.com/fillipeguerrabtc/agro-token-kaleido/pkg/apperror"
)

// TokenizationServiceImpl implements ports.TokenizationService.
type TokenizationServiceImpl struct {
	walletRepo  ports.WalletRepository
	assetRepo   ports.AssetTokenRepository
	listingRepo ports.ListingRepository
	historyRepo ports.HistoryRepository
	vault       ports.KeyVault
	backend     ports.ChainBackend
	notifier    ports.Notifier
	log         zerolog.Logger
}

// NewTokenizationService creates a new TokenizationServiceImpl.
func NewTokenizationService(
	walletRepo ports.WalletRepository,
	assetRepo ports.AssetTokenRepository,
	listingRepo ports.ListingRepository,
	historyRepo ports.HistoryRepository,
	vault ports.KeyVault,
	backend ports.ChainBackend,
	notifier ports.Notifier,
	log zerolog.Logger,
) *TokenizationServiceImpl {
	return &TokenizationServiceImpl{
		walletRepo:  walletRepo,
		assetRepo:   assetRepo,
		listingRepo: listingRepo,
		historyRepo: historyRepo,
		vault:       vault,
		backend:     backend,
		notifier:    notifier,
		log:         log,
	}
}

// Tokenize mints an on-chain token for a real-world asset and records it.
func (s *TokenizationServiceImpl) Tokenize(ctx context.Context, ownerAddress, assetType, description, value string, maturity time.Time) (*domain.AssetToken, error) {
	if strings.TrimSpace(assetType) == "" {
		return nil, apperror.Validation("asset type is required")
	}
	if err := validateAmount(value); err != nil {
		return nil, err
	}

	owner, err := s.walletRepo.GetByAddress(ctx, ownerAddress)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("getting wallet: %w", err))
	}
	if owner == nil {
		return nil, apperror.ErrNotFound("wallet")
	}

	privHex, err := s.vault.Open(owner.EncryptedSigningKey)
	if err != nil {
		return nil, err
	}

	tokenID, txRef, err := s.backend.CreateAssetToken(ctx, privHex, assetType, value, maturity)
	if err != nil {
		return nil, err
	}

	var maturityPtr *time.Time
	if !maturity.IsZero() {
		maturityPtr = &maturity
	}
	asset := &domain.AssetToken{
		ID:             uuid.New(),
		OnChainTokenID: tokenID,
		AssetType:      assetType,
		Description:    description,
		Value:          value,
		MaturityDate:   maturityPtr,
		OwnerAddress:   owner.Address,
		TxRef:          txRef,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.assetRepo.Create(ctx, asset); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("recording asset token: %w", err))
	}

	s.notifier.Publish(owner.Address, domain.NewEvent(domain.EventTransaction, asset))
	s.log.Info().
		Str("owner", owner.Address).
		Str("asset_type", assetType).
		Str("token_id", tokenID).
		Str("tx_ref", txRef).
		Msg("asset tokenized")
	return asset, nil
}

// ListForSale puts an owned asset token on the marketplace.
func (s *TokenizationServiceImpl) ListForSale(ctx context.Context, assetTokenID uuid.UUID, sellerAddress, price string) (*domain.Listing, error) {
	if err := validateAmount(price); err != nil {
		return nil, err
	}

	asset, err := s.assetRepo.GetByID(ctx, assetTokenID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("getting asset token: %w", err))
	}
	if asset == nil {
		return nil, apperror.ErrNotFound("asset token")
	}
	seller := domain.NormalizeAddress(sellerAddress)
	if asset.OwnerAddress != seller {
		return nil, apperror.ErrInvalidState("only the owner may list an asset for sale")
	}

	listing := &domain.Listing{
		ID:            uuid.New(),
		AssetTokenID:  asset.ID,
		SellerAddress: seller,
		Price:         price,
		Status:        domain.ListingStatusActive,
		ListedAt:      time.Now().UTC(),
	}
	if err := s.listingRepo.Create(ctx, listing); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("creating listing: %w", err))
	}

	s.notifier.Broadcast(domain.NewEvent(domain.EventMarketplaceListing, map[string]interface{}{
		"listing": listing,
		"asset":   asset,
	}))
	s.log.Info().Str("listing_id", listing.ID.String()).Str("seller", seller).Str("price", price).Msg("asset listed for sale")
	return listing, nil
}

// CancelListing takes a seller's own listing off the marketplace. Only
// active listings can be cancelled; a sold or already-cancelled listing
// is an invalid-state error.
func (s *TokenizationServiceImpl) CancelListing(ctx context.Context, listingID uuid.UUID, sellerAddress string) (*domain.Listing, error) {
	listing, err := s.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("getting listing: %w", err))
	}
	if listing == nil {
		return nil, apperror.ErrNotFound("listing")
	}
	if listing.SellerAddress != domain.NormalizeAddress(sellerAddress) {
		return nil, apperror.ErrInvalidState("only the seller may cancel a listing")
	}
	if listing.Status != domain.ListingStatusActive {
		return nil, apperror.ErrInvalidState(fmt.Sprintf("listing is %s", listing.Status))
	}

	// The repo cancel is conditional on active, so a buy that claims the
	// listing between the read above and here still wins.
	if err := s.listingRepo.Cancel(ctx, listingID); err != nil {
		return nil, apperror.ErrInvalidState("listing is no longer active")
	}
	listing.Status = domain.ListingStatusCancelled

	s.notifier.Broadcast(domain.NewEvent(domain.EventMarketplaceListing, map[string]interface{}{
		"listing": listing,
	}))
	s.log.Info().Str("listing_id", listing.ID.String()).Str("seller", listing.SellerAddress).Msg("listing cancelled")
	return listing, nil
}

// AssetsByOwner returns the asset tokens a wallet currently owns.
func (s *TokenizationServiceImpl) AssetsByOwner(ctx context.Context, address string) ([]*domain.AssetToken, error) {
	assets, err := s.assetRepo.ListByOwner(ctx, domain.NormalizeAddress(address))
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("listing assets: %w", err))
	}
	return assets, nil
}

// ActiveListings returns everything currently for sale.
func (s *TokenizationServiceImpl) ActiveListings(ctx context.Context) ([]*domain.Listing, error) {
	listings, err := s.listingRepo.ListActive(ctx)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("listing marketplace: %w", err))
	}
	return listings, nil
}
