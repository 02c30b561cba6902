package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/fillipeguerrabtc/agro-token-kaleido/internal/core/domain"
)

// AssetTokenRepo implements ports.AssetTokenRepository.
type AssetTokenRepo struct {
	pool Pool
}

// NewAssetTokenRepo creates a new AssetTokenRepo.
func NewAssetTokenRepo(pool Pool) *AssetTokenRepo {
	return &AssetTokenRepo{pool: pool}
}

const assetTokenColumns = `id, on_chain_token_id, contract_address, asset_type, description,
		value, maturity_date, owner_address, tx_ref, created_at`

func (r *AssetTokenRepo) Create(ctx context.Context, tok *domain.AssetToken) error {
	query := `INSERT INTO asset_tokens (` + assetTokenColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.pool.Exec(ctx, query,
		tok.ID, tok.OnChainTokenID, tok.ContractAddress, tok.AssetType, tok.Description,
		tok.Value, tok.MaturityDate, domain.NormalizeAddress(tok.OwnerAddress), tok.TxRef, tok.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert asset token: %w", err)
	}
	return nil
}

func (r *AssetTokenRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.AssetToken, error) {
	query := `SELECT ` + assetTokenColumns + ` FROM asset_tokens WHERE id = $1`

	tok := &domain.AssetToken{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&tok.ID, &tok.OnChainTokenID, &tok.ContractAddress, &tok.AssetType, &tok.Description,
		&tok.Value, &tok.MaturityDate, &tok.OwnerAddress, &tok.TxRef, &tok.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get asset token: %w", err)
	}
	return tok, nil
}

func (r *AssetTokenRepo) ListByOwner(ctx context.Context, address string) ([]*domain.AssetToken, error) {
	query := `SELECT ` + assetTokenColumns + ` FROM asset_tokens
		WHERE owner_address = $1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, domain.NormalizeAddress(address))
	if err != nil {
		return nil, fmt.Errorf("list asset tokens: %w", err)
	}
	defer rows.Close()

	var tokens []*domain.AssetToken
	for rows.Next() {
		tok := &domain.AssetToken{}
		if err := rows.Scan(
			&tok.ID, &tok.OnChainTokenID, &tok.ContractAddress, &tok.AssetType, &tok.Description,
			&tok.Value, &tok.MaturityDate, &tok.OwnerAddress, &tok.TxRef, &tok.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan asset token: %w", err)
		}
		tokens = append(tokens, tok)
	}
	return tokens, rows.Err()
}

// UpdateOwner reassigns ownership; the settlement engine is the only caller.
func (r *AssetTokenRepo) UpdateOwner(ctx context.Context, id uuid.UUID, newOwner string) error {
	query := `UPDATE asset_tokens SET owner_address = $2 WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id, domain.NormalizeAddress(newOwner))
	if err != nil {
		return fmt.Errorf("update asset token owner: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("asset token %s not found", id)
	}
	return nil
}
