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
			appErr:   New("TRD_004", "Order is not active", http.StatusConflict),
			expected: "[TRD_004] Order is not active",
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
	appErr := New("TRD_001", "test", http.StatusBadRequest)
	assert.Nil(t, appErr.Unwrap())
}

func TestRegistryErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"DuplicateProject", ErrDuplicateProject(), "REG_001", 409},
		{"ProjectNotFound", ErrProjectNotFound(), "REG_002", 404},
		{"InvalidState", ErrInvalidState(), "REG_003", 409},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestTradingErrors(t *testing.T) {
	inner := fmt.Errorf("payout leg failed")
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"InvalidPrice", ErrInvalidPrice(), "TRD_001", 400},
		{"InsufficientBalance", ErrInsufficientBalance(300), "TRD_002", 422},
		{"TransferNotApproved", ErrTransferNotApproved(), "TRD_003", 403},
		{"InactiveOrder", ErrInactiveOrder(), "TRD_004", 409},
		{"NotOrderOwner", ErrNotOrderOwner(), "TRD_005", 403},
		{"InsufficientPayment", ErrInsufficientPayment(), "TRD_006", 402},
		{"TransferFailed", ErrTransferFailed(inner), "TRD_007", 422},
		{"RefundFailed", ErrRefundFailed(inner), "TRD_008", 422},
		{"ArithmeticOverflow", ErrArithmeticOverflow(), "TRD_009", 400},
		{"TradingPaused", ErrTradingPaused(), "TRD_010", 503},
		{"FeeCapExceeded", ErrFeeCapExceeded(), "TRD_011", 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestInsufficientBalance_IncludesAmount(t *testing.T) {
	err := ErrInsufficientBalance(12345)
	assert.Contains(t, err.Message, "12345")
}

func TestAuthErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"Unauthorized", ErrUnauthorized("AUDITOR"), "AUTH_001", 403},
		{"InvalidCredentials", ErrInvalidCredentials(), "AUTH_002", 401},
		{"UsernameExists", ErrUsernameExists(), "AUTH_003", 409},
		{"InvalidToken", ErrInvalidToken(), "AUTH_004", 401},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestUnauthorized_NamesRole(t *testing.T) {
	err := ErrUnauthorized("MARKETPLACE_ADMIN")
	assert.Contains(t, err.Message, "MARKETPLACE_ADMIN")
}

func TestSystemErrors(t *testing.T) {
	inner := fmt.Errorf("pg: connection closed")
	dbErr := ErrDatabaseError(inner)
	assert.Equal(t, "SYS_001", dbErr.Code)
	assert.Equal(t, 500, dbErr.HTTPStatus)
	assert.True(t, errors.Is(dbErr, inner))
}

func TestRateLimitError(t *testing.T) {
	err := ErrRateLimitExceeded()
	assert.Equal(t, "RATE_001", err.Code)
	assert.Equal(t, 429, err.HTTPStatus)
}

func TestNotFoundEntity(t *testing.T) {
	err := ErrNotFound("Order")
	assert.Contains(t, err.Message, "Order")
	assert.Equal(t, "SYS_003", err.Code)
}
