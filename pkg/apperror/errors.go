package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string         `json:"error_code"`
	Message    string         `json:"message"`
	HTTPStatus int            `json:"-"`
	Details    map[string]any `json:"details,omitempty"`
	Err        error          `json:"-"` // Wrapped internal error (not exposed to client)
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

// Is matches two AppErrors by code so errors.Is works against the constructors below.
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
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

// WithDetails attaches client-visible details to the error.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	e.Details = details
	return e
}

// CodeOf returns the AppError code of err, or "" when err is not an AppError.
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// ---- Validation (VAL) ----

// Validation returns a VAL_001 validation error.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}

func ErrInvalidAmount() *AppError {
	return New("VAL_001", "Amount must be greater than zero", http.StatusBadRequest)
}

func ErrPayloadTooLarge(limit int64) *AppError {
	return New("VAL_002", fmt.Sprintf("Request body exceeds %d bytes", limit), http.StatusRequestEntityTooLarge)
}

// ---- Wallet Ledger (WAL) ----

func ErrInsufficientBalance() *AppError {
	return New("WAL_001", "Insufficient balance in wallet", http.StatusConflict)
}

func ErrWalletNotFound() *AppError {
	return New("WAL_002", "Wallet not found", http.StatusNotFound)
}

// ErrBalanceOverflow rejects a credit the balance cannot represent.
func ErrBalanceOverflow() *AppError {
	return New("WAL_003", "Credit would overflow the wallet balance", http.StatusUnprocessableEntity)
}

// ---- Limits (LIM) ----

// ErrLimitExceeded carries the remaining headroom so callers can show it.
func ErrLimitExceeded(reason string, remainingCount int64, remainingAmountCents int64) *AppError {
	return New("LIM_001", reason, http.StatusTooManyRequests).WithDetails(map[string]any{
		"remaining_count":        remainingCount,
		"remaining_amount_cents": remainingAmountCents,
	})
}

// ---- Security (SEC) ----

func ErrSignatureInvalid() *AppError {
	return New("SEC_002", "Invalid signature", http.StatusUnauthorized)
}

func ErrReplayDetected() *AppError {
	return New("SEC_003", "Event timestamp outside freshness window", http.StatusBadRequest)
}

// ---- Fraud (FRD) ----

func ErrInvalidAlertTransition(from, to string) *AppError {
	return New("FRD_001", fmt.Sprintf("Cannot move alert from %s to %s", from, to), http.StatusConflict)
}

// ---- Authentication (AUTH) ----

func ErrInvalidToken() *AppError {
	return New("AUTH_003", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrForbidden() *AppError {
	return New("AUTH_005", "Administrator role required", http.StatusForbidden)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- Dependencies (DEP) ----

// ErrDependencyUnavailable is returned when a circuit breaker is open. Callers
// must not retry synchronously.
func ErrDependencyUnavailable(name string, err error) *AppError {
	return Wrap("DEP_001", fmt.Sprintf("Dependency %s unavailable", name), http.StatusServiceUnavailable, err)
}

// ---- Not found (NF) ----

func ErrNotFound(entity string) *AppError {
	return New("NF_001", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// ErrTransientFailure marks a failure that is safe to retry.
func ErrTransientFailure(err error) *AppError {
	return Wrap("SYS_002", "Temporary processing failure, retry later", http.StatusInternalServerError, err)
}

func ErrProviderNotConfigured(provider string) *AppError {
	return New("SYS_003", fmt.Sprintf("Provider %s is not configured", provider), http.StatusInternalServerError)
}
