package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/fillipeguerrabtc/agro-token-kaleido/internal/core/domain"
)

// WalletRepo implements ports.WalletRepository.
type WalletRepo struct {
	pool Pool
}

// NewWalletRepo creates a new WalletRepo.
func NewWalletRepo(pool Pool) *WalletRepo {
	return &WalletRepo{pool: pool}
}

// Create inserts a new wallet. The address is stored normalized.
func (r *WalletRepo) Create(ctx context.Context, w *domain.Wallet) error {
	query := `INSERT INTO wallets (id, address, display_name, encrypted_signing_key, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.pool.Exec(ctx, query,
		w.ID, domain.NormalizeAddress(w.Address), w.DisplayName, w.EncryptedSigningKey, w.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert wallet: %w", err)
	}
	return nil
}

// GetByAddress fetches a wallet by address, case-insensitively.
func (r *WalletRepo) GetByAddress(ctx context.Context, address string) (*domain.Wallet, error) {
	query := `SELECT id, address, display_name, encrypted_signing_key, created_at
		FROM wallets WHERE address = $1`

	w := &domain.Wallet{}
	err := r.pool.QueryRow(ctx, query, domain.NormalizeAddress(address)).Scan(
		&w.ID, &w.Address, &w.DisplayName, &w.EncryptedSigningKey, &w.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wallet by address: %w", err)
	}
	return w, nil
}

// List returns all wallets, newest first.
func (r *WalletRepo) List(ctx context.Context) ([]*domain.Wallet, error) {
	query := `SELECT id, address, display_name, encrypted_signing_key, created_at
		FROM wallets ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list wallets: %w", err)
	}
	defer rows.Close()

	var wallets []*domain.Wallet
	for rows.Next() {
		w := &domain.Wallet{}
		if err := rows.Scan(&w.ID, &w.Address, &w.DisplayName, &w.EncryptedSigningKey, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan wallet: %w", err)
		}
		wallets = append(wallets, w)
	}
	return wallets, rows.Err()
}
