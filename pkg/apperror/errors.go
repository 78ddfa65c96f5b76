package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
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

// ---- Project Registry (REG) ----

func ErrDuplicateProject() *AppError {
	return New("REG_001", "Project with this verification identifier already registered", http.StatusConflict)
}

func ErrProjectNotFound() *AppError {
	return New("REG_002", "Project not found", http.StatusNotFound)
}

func ErrInvalidState() *AppError {
	return New("REG_003", "Project status does not allow this operation", http.StatusConflict)
}

// ---- Trading Engine (TRD) ----

func ErrInvalidPrice() *AppError {
	return New("TRD_001", "Price per credit must be greater than zero", http.StatusBadRequest)
}

func ErrInsufficientBalance(amount int64) *AppError {
	return New("TRD_002", fmt.Sprintf("Insufficient credit balance for amount %d", amount), http.StatusUnprocessableEntity)
}

func ErrTransferNotApproved() *AppError {
	return New("TRD_003", "Engine is not approved to transfer seller credits", http.StatusForbidden)
}

func ErrInactiveOrder() *AppError {
	return New("TRD_004", "Order is not active", http.StatusConflict)
}

func ErrNotOrderOwner() *AppError {
	return New("TRD_005", "Caller is not the order seller", http.StatusForbidden)
}

func ErrInsufficientPayment() *AppError {
	return New("TRD_006", "Payment does not cover the order total price", http.StatusPaymentRequired)
}

func ErrTransferFailed(err error) *AppError {
	return Wrap("TRD_007", "Settlement transfer failed", http.StatusUnprocessableEntity, err)
}

func ErrRefundFailed(err error) *AppError {
	return Wrap("TRD_008", "Refund transfer failed", http.StatusUnprocessableEntity, err)
}

func ErrArithmeticOverflow() *AppError {
	return New("TRD_009", "Amount arithmetic exceeds the supported range", http.StatusBadRequest)
}

func ErrTradingPaused() *AppError {
	return New("TRD_010", "Trading is paused", http.StatusServiceUnavailable)
}

func ErrFeeCapExceeded() *AppError {
	return New("TRD_011", "Platform fee exceeds the hard cap", http.StatusBadRequest)
}

// ---- Authorization & Accounts (AUTH) ----

// ErrUnauthorized reports a missing role; the required role is surfaced to the caller.
func ErrUnauthorized(requiredRole string) *AppError {
	return New("AUTH_001", fmt.Sprintf("Caller does not hold required role %s", requiredRole), http.StatusForbidden)
}

func ErrInvalidCredentials() *AppError {
	return New("AUTH_002", "Invalid credentials", http.StatusUnauthorized)
}

func ErrUsernameExists() *AppError {
	return New("AUTH_003", "Username already exists", http.StatusConflict)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_004", "Invalid or expired token", http.StatusUnauthorized)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a request validation error.
func Validation(message string) *AppError {
	return New("SYS_002", message, http.StatusBadRequest)
}

func ErrNotFound(entity string) *AppError {
	return New("SYS_003", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}
