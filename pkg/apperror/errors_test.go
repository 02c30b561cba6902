package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   New("SET_002", "Listing is not active", http.StatusConflict),
			expected: "[SET_002] Listing is not active",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap("SYS_001", "DB error", http.StatusInternalServerError, fmt.Errorf("connection refused")),
			expected: "[SYS_001] DB error: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := Wrap("SYS_001", "wrapped", http.StatusInternalServerError, inner)

	assert.True(t, errors.Is(appErr, inner))
}

func TestAppError_IsNilUnwrap(t *testing.T) {
	appErr := New("SET_004", "test", http.StatusBadRequest)
	assert.Nil(t, appErr.Unwrap())
}

func TestKeyVaultErrors(t *testing.T) {
	inner := fmt.Errorf("cipher: message authentication failed")

	intErr := ErrIntegrity(inner)
	assert.Equal(t, "KEY_001", intErr.Code)
	assert.Equal(t, 500, intErr.HTTPStatus)
	assert.True(t, errors.Is(intErr, inner))

	vaultErr := ErrVaultFailure(inner)
	assert.Equal(t, "KEY_002", vaultErr.Code)
}

func TestChainExecutionError(t *testing.T) {
	inner := fmt.Errorf("timeout waiting for inclusion")
	err := ErrChainExecution(inner)
	assert.Equal(t, "CHN_001", err.Code)
	assert.Equal(t, 502, err.HTTPStatus)
	assert.True(t, errors.Is(err, inner))
}

func TestSettlementErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"NotFound", ErrNotFound("listing"), "SET_001", 404},
		{"InvalidState", ErrInvalidState("listing is not active"), "SET_002", 409},
		{"InvalidAmount", ErrInvalidAmount("amount must be positive"), "SET_004", 400},
		{"InvalidAddress", ErrInvalidAddress("0xZZ"), "SET_005", 400},
		{"DuplicateWallet", ErrDuplicateWallet("0xAAA"), "SET_006", 409},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestPartialSettlementCarriesPaymentRef(t *testing.T) {
	inner := fmt.Errorf("nft transfer reverted")
	err := ErrPartialSettlement("0xdeadbeef", inner)

	assert.Equal(t, "SET_003", err.Code)
	assert.Equal(t, "0xdeadbeef", err.PaymentTxRef)
	assert.True(t, errors.Is(err, inner))

	// The ref must survive errors.As through wrapping layers.
	wrapped := fmt.Errorf("buy listing L1: %w", err)
	var appErr *AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, "0xdeadbeef", appErr.PaymentTxRef)
}

func TestSystemErrors(t *testing.T) {
	inner := fmt.Errorf("pg: connection closed")
	dbErr := ErrDatabaseError(inner)
	assert.Equal(t, "SYS_001", dbErr.Code)
	assert.Equal(t, 500, dbErr.HTTPStatus)
	assert.True(t, errors.Is(dbErr, inner))
}

func TestNotFoundEntity(t *testing.T) {
	err := ErrNotFound("wallet")
	assert.Contains(t, err.Message, "wallet")
	assert.Equal(t, "SET_001", err.Code)
}
