package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/fillipeguerrabtc/agro-token-kaleido/internal/core/domain"
	"github.com/fillipeguerrabtc/agro-token-kaleido/internal/core/ports"
	"github.com/fillipeguerrabtc/agro-token-kaleido/pkg/apperror"
)

// WalletServiceImpl implements ports.WalletService.
type WalletServiceImpl struct {
	walletRepo ports.WalletRepository
	vault      ports.KeyVault
	backend    ports.ChainBackend
	log        zerolog.Logger
}

// NewWalletService creates a new WalletServiceImpl.
func NewWalletService(
	walletRepo ports.WalletRepository,
	vault ports.KeyVault,
	backend ports.ChainBackend,
	log zerolog.Logger,
) *WalletServiceImpl {
	return &WalletServiceImpl{
		walletRepo: walletRepo,
		vault:      vault,
		backend:    backend,
		log:        log,
	}
}

// Create generates a fresh keypair and stores the wallet with its signing
// key sealed. The plaintext key never leaves this call.
func (s *WalletServiceImpl) Create(ctx context.Context, displayName string) (*domain.Wallet, error) {
	if strings.TrimSpace(displayName) == "" {
		return nil, apperror.Validation("display name is required")
	}

	address, privHex, err := s.backend.GenerateKey()
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("generating key: %w", err))
	}

	return s.store(ctx, displayName, address, privHex)
}

// Import registers a wallet for an externally held private key.
func (s *WalletServiceImpl) Import(ctx context.Context, displayName, privateKeyHex string) (*domain.Wallet, error) {
	if strings.TrimSpace(displayName) == "" {
		return nil, apperror.Validation("display name is required")
	}

	key, err := ethcrypto.HexToECDSA(strings.TrimPrefix(privateKeyHex, "0x"))
	if err != nil {
		return nil, apperror.Validation("malformed private key")
	}
	address := ethcrypto.PubkeyToAddress(key.PublicKey).Hex()

	existing, err := s.walletRepo.GetByAddress(ctx, address)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("checking wallet: %w", err))
	}
	if existing != nil {
		return nil, apperror.ErrDuplicateWallet(address)
	}

	return s.store(ctx, displayName, address, strings.TrimPrefix(privateKeyHex, "0x"))
}

func (s *WalletServiceImpl) store(ctx context.Context, displayName, address, privHex string) (*domain.Wallet, error) {
	sealed, err := s.vault.Seal(privHex)
	if err != nil {
		return nil, err
	}

	wallet := &domain.Wallet{
		ID:                  uuid.New(),
		Address:             domain.NormalizeAddress(address),
		DisplayName:         displayName,
		EncryptedSigningKey: sealed,
		CreatedAt:           time.Now().UTC(),
	}
	if err := s.walletRepo.Create(ctx, wallet); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("creating wallet: %w", err))
	}

	s.log.Info().Str("address", wallet.Address).Str("display_name", displayName).Msg("wallet created")
	return wallet, nil
}

// Get returns the wallet for an address, case-insensitively.
func (s *WalletServiceImpl) Get(ctx context.Context, address string) (*domain.Wallet, error) {
	if !common.IsHexAddress(address) {
		return nil, apperror.ErrInvalidAddress(address)
	}
	wallet, err := s.walletRepo.GetByAddress(ctx, address)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("getting wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrNotFound("wallet")
	}
	return wallet, nil
}

// List returns all registered wallets.
func (s *WalletServiceImpl) List(ctx context.Context) ([]*domain.Wallet, error) {
	wallets, err := s.walletRepo.List(ctx)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("listing wallets: %w", err))
	}
	return wallets, nil
}

// Balances re-derives the wallet's native and BRLX balances from the
// ledger; balances are never stored.
func (s *WalletServiceImpl) Balances(ctx context.Context, address string) (*domain.Balances, error) {
	wallet, err := s.Get(ctx, address)
	if err != nil {
		return nil, err
	}

	native, err := s.backend.NativeBalance(ctx, wallet.Address)
	if err != nil {
		return nil, err
	}
	brlx, err := s.backend.TokenBalance(ctx, wallet.Address)
	if err != nil {
		return nil, err
	}

	return &domain.Balances{Address: wallet.Address, Native: native, BRLX: brlx}, nil
}
