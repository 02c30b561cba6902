package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/fillipeguerrabtc/agro-token-kaleido/internal/core/domain"
)

// ListingRepo implements ports.ListingRepository.
type ListingRepo struct {
	pool Pool
}

// NewListingRepo creates a new ListingRepo.
func NewListingRepo(pool Pool) *ListingRepo {
	return &ListingRepo{pool: pool}
}

const listingColumns = `id, asset_token_id, seller_address, price, status, listed_at, sold_at,
		COALESCE(settlement_tx_ref, '')`

func (r *ListingRepo) Create(ctx context.Context, l *domain.Listing) error {
	query := `INSERT INTO listings (id, asset_token_id, seller_address, price, status, listed_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.pool.Exec(ctx, query,
		l.ID, l.AssetTokenID, domain.NormalizeAddress(l.SellerAddress), l.Price, l.Status, l.ListedAt,
	)
	if err != nil {
		return fmt.Errorf("insert listing: %w", err)
	}
	return nil
}

func (r *ListingRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings WHERE id = $1`

	l := &domain.Listing{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&l.ID, &l.AssetTokenID, &l.SellerAddress, &l.Price, &l.Status, &l.ListedAt, &l.SoldAt, &l.SettlementTxRef,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get listing: %w", err)
	}
	return l, nil
}

func (r *ListingRepo) ListActive(ctx context.Context) ([]*domain.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings
		WHERE status = $1 ORDER BY listed_at DESC`

	rows, err := r.pool.Query(ctx, query, domain.ListingStatusActive)
	if err != nil {
		return nil, fmt.Errorf("list active listings: %w", err)
	}
	defer rows.Close()

	var listings []*domain.Listing
	for rows.Next() {
		l := &domain.Listing{}
		if err := rows.Scan(
			&l.ID, &l.AssetTokenID, &l.SellerAddress, &l.Price, &l.Status, &l.ListedAt, &l.SoldAt, &l.SettlementTxRef,
		); err != nil {
			return nil, fmt.Errorf("scan listing: %w", err)
		}
		listings = append(listings, l)
	}
	return listings, rows.Err()
}

// ClaimActive is the compare-and-swap gate for concurrent buys: the row
// moves active -> sold only if it is still active, and the caller learns
// whether its update won. No check-then-act window exists.
func (r *ListingRepo) ClaimActive(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `UPDATE listings SET status = $2, sold_at = NOW()
		WHERE id = $1 AND status = $3`

	tag, err := r.pool.Exec(ctx, query, id, domain.ListingStatusSold, domain.ListingStatusActive)
	if err != nil {
		return false, fmt.Errorf("claim listing: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// Reactivate undoes a claim after a failed settlement.
func (r *ListingRepo) Reactivate(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE listings SET status = $2, sold_at = NULL, settlement_tx_ref = NULL
		WHERE id = $1 AND status = $3`

	_, err := r.pool.Exec(ctx, query, id, domain.ListingStatusActive, domain.ListingStatusSold)
	if err != nil {
		return fmt.Errorf("reactivate listing: %w", err)
	}
	return nil
}

func (r *ListingRepo) SetSettlementTxRef(ctx context.Context, id uuid.UUID, txRef string) error {
	query := `UPDATE listings SET settlement_tx_ref = $2 WHERE id = $1`

	_, err := r.pool.Exec(ctx, query, id, txRef)
	if err != nil {
		return fmt.Errorf("set settlement tx ref: %w", err)
	}
	return nil
}

// Cancel moves an active listing to cancelled; cancelling anything else is
// a no-op reported as invalid.
func (r *ListingRepo) Cancel(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE listings SET status = $2 WHERE id = $1 AND status = $3`

	tag, err := r.pool.Exec(ctx, query, id, domain.ListingStatusCancelled, domain.ListingStatusActive)
	if err != nil {
		return fmt.Errorf("cancel listing: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("listing %s is not active", id)
	}
	return nil
}
