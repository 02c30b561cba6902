package postgres

import (
	"context"
	"fmt"

	"github.com/fillipeguerrabtc/agro-token-kaleido/internal/core/domain"
)

// HistoryRepo implements ports.HistoryRepository. Append-only audit trail.
type HistoryRepo struct {
	pool Pool
}

// NewHistoryRepo creates a new HistoryRepo.
func NewHistoryRepo(pool Pool) *HistoryRepo {
	return &HistoryRepo{pool: pool}
}

func (r *HistoryRepo) Create(ctx context.Context, e *domain.HistoryEntry) error {
	query := `INSERT INTO history_entries (id, kind, from_address, to_address, amount, token_id, tx_ref, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.pool.Exec(ctx, query,
		e.ID, e.Kind, e.FromAddress, e.ToAddress, e.Amount, e.TokenID, e.TxRef, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert history entry: %w", err)
	}
	return nil
}

func (r *HistoryRepo) ListByAddress(ctx context.Context, address string, limit int) ([]*domain.HistoryEntry, error) {
	query := `SELECT id, kind, from_address, to_address, amount, token_id, tx_ref, created_at
		FROM history_entries
		WHERE from_address = $1 OR to_address = $1
		ORDER BY created_at DESC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, domain.NormalizeAddress(address), limit)
	if err != nil {
		return nil, fmt.Errorf("list history entries: %w", err)
	}
	defer rows.Close()

	var entries []*domain.HistoryEntry
	for rows.Next() {
		e := &domain.HistoryEntry{}
		if err := rows.Scan(&e.ID, &e.Kind, &e.FromAddress, &e.ToAddress, &e.Amount, &e.TokenID, &e.TxRef, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan history entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
