package chain

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fillipeguerrabtc/agro-token-kaleido/pkg/apperror"
)

func newMock(t *testing.T) *MockBackend {
	t.Helper()
	return NewMockBackend(zerolog.Nop())
}

func TestMockBackend_GenerateKey(t *testing.T) {
	m := newMock(t)

	addr, priv, err := m.GenerateKey()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(addr, "0x"))
	assert.Len(t, addr, 42)
	assert.Len(t, priv, 64)

	addr2, _, err := m.GenerateKey()
	require.NoError(t, err)
	assert.NotEqual(t, addr, addr2)
}

func TestMockBackend_TxRefShape(t *testing.T) {
	m := newMock(t)
	ctx := context.Background()

	ref, err := m.MintStablecoin(ctx, "0x00000000000000000000000000000000000000aa", "100")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ref, "0x"))
	assert.Len(t, ref, 66)

	ref2, err := m.MintStablecoin(ctx, "0x00000000000000000000000000000000000000aa", "100")
	require.NoError(t, err)
	assert.NotEqual(t, ref, ref2)
}

func TestMockBackend_MintTransferBurnMovesBalances(t *testing.T) {
	m := newMock(t)
	ctx := context.Background()

	aliceAddr, alicePriv, err := m.GenerateKey()
	require.NoError(t, err)
	bobAddr, bobPriv, err := m.GenerateKey()
	require.NoError(t, err)

	_, err = m.MintStablecoin(ctx, aliceAddr, "100.50")
	require.NoError(t, err)

	bal, err := m.TokenBalance(ctx, aliceAddr)
	require.NoError(t, err)
	assert.Equal(t, "100.5", bal)

	_, err = m.TransferStablecoin(ctx, alicePriv, bobAddr, "40.5")
	require.NoError(t, err)

	bal, err = m.TokenBalance(ctx, aliceAddr)
	require.NoError(t, err)
	assert.Equal(t, "60", bal)

	bal, err = m.TokenBalance(ctx, bobAddr)
	require.NoError(t, err)
	assert.Equal(t, "40.5", bal)

	_, err = m.BurnStablecoin(ctx, bobPriv, "40.5")
	require.NoError(t, err)

	bal, err = m.TokenBalance(ctx, bobAddr)
	require.NoError(t, err)
	assert.Equal(t, "0", bal)
}

func TestMockBackend_InsufficientBalance(t *testing.T) {
	m := newMock(t)
	ctx := context.Background()

	_, priv, err := m.GenerateKey()
	require.NoError(t, err)

	_, err = m.BurnStablecoin(ctx, priv, "1")
	require.Error(t, err)

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperror.CodeChainExecution, appErr.Code)
}

func TestMockBackend_AssetTokenLifecycle(t *testing.T) {
	m := newMock(t)
	ctx := context.Background()

	_, sellerPriv, err := m.GenerateKey()
	require.NoError(t, err)
	buyerAddr, _, err := m.GenerateKey()
	require.NoError(t, err)

	tokenID, ref, err := m.CreateAssetToken(ctx, sellerPriv, "soy_harvest", "250000", time.Now().AddDate(1, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, "1", tokenID)
	assert.NotEmpty(t, ref)

	_, err = m.TransferAssetToken(ctx, sellerPriv, buyerAddr, tokenID)
	require.NoError(t, err)

	// Seller no longer owns it.
	_, err = m.TransferAssetToken(ctx, sellerPriv, buyerAddr, tokenID)
	require.Error(t, err)
}

func TestMockBackend_FailOn(t *testing.T) {
	m := newMock(t)
	ctx := context.Background()

	sellerAddr, sellerPriv, err := m.GenerateKey()
	require.NoError(t, err)
	require.NoError(t, m.Credit(sellerAddr, "10"))

	m.FailOn("transfer_asset", errors.New("simulated revert"))

	// Fungible transfers still work.
	buyerAddr, _, err := m.GenerateKey()
	require.NoError(t, err)
	_, err = m.TransferStablecoin(ctx, sellerPriv, buyerAddr, "1")
	require.NoError(t, err)

	_, err = m.TransferAssetToken(ctx, sellerPriv, buyerAddr, "1")
	require.Error(t, err)

	m.FailOn("transfer_asset", nil)
	_, err = m.TransferAssetToken(ctx, sellerPriv, buyerAddr, "1")
	require.NoError(t, err)
}

func TestMockBackend_TransferHistory(t *testing.T) {
	m := newMock(t)
	ctx := context.Background()

	aliceAddr, alicePriv, err := m.GenerateKey()
	require.NoError(t, err)
	bobAddr, _, err := m.GenerateKey()
	require.NoError(t, err)

	_, err = m.MintStablecoin(ctx, aliceAddr, "10")
	require.NoError(t, err)
	_, err = m.TransferStablecoin(ctx, alicePriv, bobAddr, "3")
	require.NoError(t, err)

	hist, err := m.TransferHistory(ctx, aliceAddr, 10)
	require.NoError(t, err)
	require.Len(t, hist, 2)
	// Newest first.
	assert.Equal(t, "transaction", hist[0].Kind)
	assert.Equal(t, "stablecoin_mint", hist[1].Kind)

	hist, err = m.TransferHistory(ctx, bobAddr, 10)
	require.NoError(t, err)
	require.Len(t, hist, 1)

	hist, err = m.TransferHistory(ctx, aliceAddr, 1)
	require.NoError(t, err)
	assert.Len(t, hist, 1)
}

func TestMockBackend_InvalidAddress(t *testing.T) {
	m := newMock(t)
	ctx := context.Background()

	_, err := m.TokenBalance(ctx, "not-an-address")
	require.Error(t, err)

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperror.CodeInvalidAddress, appErr.Code)
}
