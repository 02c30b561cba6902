package apperror

import (
	"fmt"
	"net/http"
)

// Error codes grouped by subsystem.
const (
	CodeIntegrity         = "KEY_001"
	CodeVaultFailure      = "KEY_002"
	CodeChainExecution    = "CHN_001"
	CodeNotFound          = "SET_001"
	CodeInvalidState      = "SET_002"
	CodePartialSettlement = "SET_003"
	CodeInvalidAmount     = "SET_004"
	CodeInvalidAddress    = "SET_005"
	CodeDuplicateWallet   = "SET_006"
	CodeInternal          = "SYS_001"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)

	// PaymentTxRef is set only on partial-settlement errors: the reference of
	// the stablecoin payment that completed before the asset leg failed.
	// Reconciliation needs it to complete or compensate the trade.
	PaymentTxRef string `json:"payment_tx_ref,omitempty"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Key Vault (KEY) ----

// ErrIntegrity reports a ciphertext that failed authentication: tampered or
// corrupted blob, or the wrong vault secret. Never retried.
func ErrIntegrity(err error) *AppError {
	return Wrap(CodeIntegrity, "Encrypted key material failed integrity check", http.StatusInternalServerError, err)
}

func ErrVaultFailure(err error) *AppError {
	return Wrap(CodeVaultFailure, "Key vault operation failed", http.StatusInternalServerError, err)
}

// ---- Chain Execution (CHN) ----

// ErrChainExecution reports a ledger submission failure, timeout, or
// non-inclusion. The gateway never retries; retry policy belongs to callers.
func ErrChainExecution(err error) *AppError {
	return Wrap(CodeChainExecution, "Blockchain transaction failed", http.StatusBadGateway, err)
}

// ---- Settlement Business Logic (SET) ----

func ErrNotFound(entity string) *AppError {
	return New(CodeNotFound, fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ErrInvalidState reports an operation against an entity whose lifecycle
// state forbids it, e.g. buying a listing that is no longer active.
func ErrInvalidState(message string) *AppError {
	return New(CodeInvalidState, message, http.StatusConflict)
}

// ErrPartialSettlement reports a Buy whose payment leg completed but whose
// asset-transfer leg failed. The buyer has paid and not received the asset;
// paymentTxRef identifies the completed payment for reconciliation.
func ErrPartialSettlement(paymentTxRef string, err error) *AppError {
	e := Wrap(CodePartialSettlement, "Payment completed but asset transfer failed", http.StatusBadGateway, err)
	e.PaymentTxRef = paymentTxRef
	return e
}

func ErrInvalidAmount(message string) *AppError {
	return New(CodeInvalidAmount, message, http.StatusBadRequest)
}

func ErrInvalidAddress(address string) *AppError {
	return New(CodeInvalidAddress, fmt.Sprintf("invalid wallet address: %s", address), http.StatusBadRequest)
}

func ErrDuplicateWallet(address string) *AppError {
	return New(CodeDuplicateWallet, fmt.Sprintf("wallet already imported: %s", address), http.StatusConflict)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap(CodeInternal, "Internal database error", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap(CodeInternal, "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a SET_004-style validation error.
func Validation(message string) *AppError {
	return New(CodeInvalidAmount, message, http.StatusBadRequest)
}
