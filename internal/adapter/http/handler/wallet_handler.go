package handler

import (
	"strconv"

	"carbon-credit-exchange/internal/adapter/http/dto"
	"carbon-credit-exchange/internal/core/domain"
	"carbon-credit-exchange/internal/core/ports"
	"carbon-credit-exchange/pkg/apperror"
	"carbon-credit-exchange/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// WalletHandler handles funds and credit balance endpoints.
type WalletHandler struct {
	fundsLedger  ports.FundsLedger
	creditLedger ports.CreditLedger
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(fundsLedger ports.FundsLedger, creditLedger ports.CreditLedger) *WalletHandler {
	return &WalletHandler{
		fundsLedger:  fundsLedger,
		creditLedger: creditLedger,
	}
}

// GetBalance handles GET /api/v1/wallet/balance.
func (h *WalletHandler) GetBalance(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	balance, err := h.fundsLedger.BalanceOf(c.Request.Context(), caller)
	if err != nil {
		response.Error(c, apperror.ErrDatabaseError(err))
		return
	}

	response.OK(c, dto.WalletBalanceResponse{
		AccountID: caller.String(),
		Balance:   balance.String(),
	})
}

// Deposit handles POST /api/v1/wallet/deposit.
func (h *WalletHandler) Deposit(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	amount, err := domain.ParseMoney(req.Amount)
	if err != nil || amount.Sign() <= 0 {
		response.Error(c, apperror.Validation("amount must be a positive decimal string"))
		return
	}

	if err := h.fundsLedger.Deposit(c.Request.Context(), caller, amount); err != nil {
		response.Error(c, apperror.ErrDatabaseError(err))
		return
	}

	balance, err := h.fundsLedger.BalanceOf(c.Request.Context(), caller)
	if err != nil {
		response.Error(c, apperror.ErrDatabaseError(err))
		return
	}

	response.OK(c, dto.WalletBalanceResponse{
		AccountID: caller.String(),
		Balance:   balance.String(),
	})
}

// GetCreditBalance handles GET /api/v1/wallet/credits/:projectID.
func (h *WalletHandler) GetCreditBalance(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	pid, err := strconv.ParseInt(c.Param("projectID"), 10, 64)
	if err != nil || pid <= 0 {
		response.Error(c, apperror.Validation("invalid project id"))
		return
	}

	balance, err := h.creditLedger.BalanceOf(c.Request.Context(), caller, pid)
	if err != nil {
		response.Error(c, apperror.ErrDatabaseError(err))
		return
	}

	response.OK(c, dto.CreditBalanceResponse{
		AccountID: caller.String(),
		ProjectID: pid,
		Balance:   balance,
	})
}

// SetApproval handles PUT /api/v1/wallet/approvals. Sellers approve the
// escrow account as operator before listing credits.
func (h *WalletHandler) SetApproval(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.ApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	operator, err := uuid.Parse(req.Operator)
	if err != nil {
		response.Error(c, apperror.Validation("invalid operator id"))
		return
	}

	if err := h.creditLedger.SetApprovalForAll(c.Request.Context(), caller, operator, req.Approved); err != nil {
		response.Error(c, apperror.ErrDatabaseError(err))
		return
	}

	response.OK(c, gin.H{"operator": operator.String(), "approved": req.Approved})
}
