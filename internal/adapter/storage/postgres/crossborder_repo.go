package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/fillipeguerrabtc/agro-token-kaleido/internal/core/domain"
)

// CrossBorderRepo implements ports.CrossBorderPaymentRepository.
type CrossBorderRepo struct {
	pool Pool
}

// NewCrossBorderRepo creates a new CrossBorderRepo.
func NewCrossBorderRepo(pool Pool) *CrossBorderRepo {
	return &CrossBorderRepo{pool: pool}
}

func (r *CrossBorderRepo) Create(ctx context.Context, p *domain.CrossBorderPayment) error {
	query := `INSERT INTO cross_border_payments
		(id, from_address, to_address, amount_brlx, target_currency, fx_rate, target_amount, tx_ref, partner_tx_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.pool.Exec(ctx, query,
		p.ID, p.FromAddress, p.ToAddress, p.AmountBRLX, p.TargetCurrency,
		p.FXRate, p.TargetAmount, p.TxRef, p.PartnerTxID, p.Status, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert cross-border payment: %w", err)
	}
	return nil
}

func (r *CrossBorderRepo) ListByAddress(ctx context.Context, address string, limit int) ([]*domain.CrossBorderPayment, error) {
	query := `SELECT id, from_address, to_address, amount_brlx, target_currency, fx_rate, target_amount, tx_ref, partner_tx_id, status, created_at
		FROM cross_border_payments
		WHERE from_address = $1 OR to_address = $1
		ORDER BY created_at DESC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, domain.NormalizeAddress(address), limit)
	if err != nil {
		return nil, fmt.Errorf("list cross-border payments: %w", err)
	}
	defer rows.Close()

	var payments []*domain.CrossBorderPayment
	for rows.Next() {
		p := &domain.CrossBorderPayment{}
		if err := rows.Scan(
			&p.ID, &p.FromAddress, &p.ToAddress, &p.AmountBRLX, &p.TargetCurrency,
			&p.FXRate, &p.TargetAmount, &p.TxRef, &p.PartnerTxID, &p.Status, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan cross-border payment: %w", err)
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func (r *CrossBorderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.CrossBorderStatus) error {
	query := `UPDATE cross_border_payments SET status = $2 WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("update cross-border payment status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("cross-border payment %s not found", id)
	}
	return nil
}
