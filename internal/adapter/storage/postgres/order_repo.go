package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/fillipeguerrabtc/agro-token-kaleido/internal/core/domain"
)

// OrderRepo implements ports.OrderRepository.
type OrderRepo struct {
	pool Pool
}

// NewOrderRepo creates a new OrderRepo.
func NewOrderRepo(pool Pool) *OrderRepo {
	return &OrderRepo{pool: pool}
}

const orderColumns = `id, listing_id, buyer_address, seller_address, price,
		payment_tx_ref, transfer_tx_ref, status, fail_reason, created_at, updated_at`

func (r *OrderRepo) Create(ctx context.Context, o *domain.Order) error {
	query := `INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.pool.Exec(ctx, query,
		o.ID, o.ListingID, o.BuyerAddress, o.SellerAddress, o.Price,
		o.PaymentTxRef, o.TransferTxRef, o.Status, o.FailReason, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// Update writes the terminal outcome of an order. Pending is the only
// state this overwrites; terminal states stay as first written.
func (r *OrderRepo) Update(ctx context.Context, o *domain.Order) error {
	query := `UPDATE orders SET payment_tx_ref = $2, transfer_tx_ref = $3, status = $4,
		fail_reason = $5, updated_at = $6
		WHERE id = $1 AND status = $7`

	_, err := r.pool.Exec(ctx, query,
		o.ID, o.PaymentTxRef, o.TransferTxRef, o.Status, o.FailReason, o.UpdatedAt,
		domain.OrderStatusPending,
	)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	return nil
}

func (r *OrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	o := &domain.Order{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.ListingID, &o.BuyerAddress, &o.SellerAddress, &o.Price,
		&o.PaymentTxRef, &o.TransferTxRef, &o.Status, &o.FailReason, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return o, nil
}

func (r *OrderRepo) ListByBuyer(ctx context.Context, address string) ([]*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders
		WHERE buyer_address = $1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, domain.NormalizeAddress(address))
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var orders []*domain.Order
	for rows.Next() {
		o := &domain.Order{}
		if err := rows.Scan(
			&o.ID, &o.ListingID, &o.BuyerAddress, &o.SellerAddress, &o.Price,
			&o.PaymentTxRef, &o.TransferTxRef, &o.Status, &o.FailReason, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}
