package postgres

import (
	"context"
	"fmt"

	"github.com/fillipeguerrabtc/agro-token-kaleido/internal/core/domain"
)

// StablecoinTxRepo implements ports.StablecoinTransactionRepository.
// Append-only: there is no update path.
type StablecoinTxRepo struct {
	pool Pool
}

// NewStablecoinTxRepo creates a new StablecoinTxRepo.
func NewStablecoinTxRepo(pool Pool) *StablecoinTxRepo {
	return &StablecoinTxRepo{pool: pool}
}

func (r *StablecoinTxRepo) Create(ctx context.Context, tx *domain.StablecoinTransaction) error {
	query := `INSERT INTO stablecoin_transactions (id, kind, from_address, to_address, amount, tx_ref, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.pool.Exec(ctx, query,
		tx.ID, tx.Kind, tx.FromAddress, tx.ToAddress, tx.Amount, tx.TxRef, tx.Status, tx.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stablecoin transaction: %w", err)
	}
	return nil
}

func (r *StablecoinTxRepo) ListByAddress(ctx context.Context, address string, limit int) ([]*domain.StablecoinTransaction, error) {
	query := `SELECT id, kind, from_address, to_address, amount, tx_ref, status, created_at
		FROM stablecoin_transactions
		WHERE from_address = $1 OR to_address = $1
		ORDER BY created_at DESC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, domain.NormalizeAddress(address), limit)
	if err != nil {
		return nil, fmt.Errorf("list stablecoin transactions: %w", err)
	}
	defer rows.Close()

	var txs []*domain.StablecoinTransaction
	for rows.Next() {
		tx := &domain.StablecoinTransaction{}
		if err := rows.Scan(&tx.ID, &tx.Kind, &tx.FromAddress, &tx.ToAddress, &tx.Amount, &tx.TxRef, &tx.Status, &tx.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stablecoin transaction: %w", err)
		}
		txs = append(txs, tx)
	}
	return txs, rows.Err()
}
