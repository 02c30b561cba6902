package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fillipeguerrabtc/agro-token-kaleido/internal/core/domain"
)

func newTestListing() *domain.Listing {
	return &domain.Listing{
		ID:            uuid.New(),
		AssetTokenID:  uuid.New(),
		SellerAddress: "0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb",
		Price:         "237500.00",
		Status:        domain.ListingStatusActive,
		ListedAt:      time.Now().UTC().Truncate(time.Microsecond),
	}
}

func listingRowColumns() []string {
	return []string{"id", "asset_token_id", "seller_address", "price", "status", "listed_at", "sold_at", "coalesce"}
}

func TestListingRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewListingRepo(mock)
	l := newTestListing()

	mock.ExpectExec("INSERT INTO listings").
		WithArgs(l.ID, l.AssetTokenID, l.SellerAddress, l.Price, l.Status, l.ListedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Create(context.Background(), l)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingRepo_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewListingRepo(mock)
	l := newTestListing()

	mock.ExpectQuery("SELECT .+ FROM listings WHERE id").
		WithArgs(l.ID).
		WillReturnRows(pgxmock.NewRows(listingRowColumns()).AddRow(
			l.ID, l.AssetTokenID, l.SellerAddress, l.Price, l.Status, l.ListedAt, l.SoldAt, "",
		))

	result, err := repo.GetByID(context.Background(), l.ID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, domain.ListingStatusActive, result.Status)
	assert.Empty(t, result.SettlementTxRef)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingRepo_ClaimActive_Wins(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewListingRepo(mock)
	id := uuid.New()

	mock.ExpectExec("UPDATE listings SET status").
		WithArgs(id, domain.ListingStatusSold, domain.ListingStatusActive).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	claimed, err := repo.ClaimActive(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, claimed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingRepo_ClaimActive_Loses(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewListingRepo(mock)
	id := uuid.New()

	// Another settlement already moved the row out of active.
	mock.ExpectExec("UPDATE listings SET status").
		WithArgs(id, domain.ListingStatusSold, domain.ListingStatusActive).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	claimed, err := repo.ClaimActive(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, claimed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingRepo_Reactivate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewListingRepo(mock)
	id := uuid.New()

	mock.ExpectExec("UPDATE listings SET status").
		WithArgs(id, domain.ListingStatusActive, domain.ListingStatusSold).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err = repo.Reactivate(context.Background(), id)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingRepo_Cancel_NotActive(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewListingRepo(mock)
	id := uuid.New()

	mock.ExpectExec("UPDATE listings SET status").
		WithArgs(id, domain.ListingStatusCancelled, domain.ListingStatusActive).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err = repo.Cancel(context.Background(), id)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingRepo_ListActive(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewListingRepo(mock)
	l := newTestListing()

	mock.ExpectQuery("SELECT .+ FROM listings").
		WithArgs(domain.ListingStatusActive).
		WillReturnRows(pgxmock.NewRows(listingRowColumns()).AddRow(
			l.ID, l.AssetTokenID, l.SellerAddress, l.Price, l.Status, l.ListedAt, l.SoldAt, "",
		))

	listings, err := repo.ListActive(context.Background())
	require.NoError(t, err)
	assert.Len(t, listings, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}
