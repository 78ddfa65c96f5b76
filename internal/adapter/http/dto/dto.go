package dto

import (
	"time"

	"carbon-credit-exchange/internal/core/domain"
)

// RegisterRequest is the request body for account registration.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50,safe_id"`
	Password string `json:"password" binding:"required,min=8,max=128"`
}

// LoginRequest is the request body for account login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterResponse is the response body for successful registration.
type RegisterResponse struct {
	AccountID string `json:"account_id"`
	Username  string `json:"username"`
}

// LoginResponse is the response body for successful login.
type LoginResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// SubmitProjectRequest is the request body for project submission.
type SubmitProjectRequest struct {
	CarbonRemoved          int64  `json:"carbon_removed" binding:"required,gt=0"`
	EvidenceRef            string `json:"evidence_ref" binding:"required,max=512"`
	ExternalVerificationID string `json:"external_verification_id" binding:"required,max=256"`
}

// EditProjectRequest is the request body for replacing project evidence.
type EditProjectRequest struct {
	EvidenceRef string `json:"evidence_ref" binding:"required,max=512"`
}

// ProjectResponse is the response body for project queries and transitions.
type ProjectResponse struct {
	ID            int64  `json:"id"`
	Owner         string `json:"owner"`
	Status        string `json:"status"`
	EvidenceRef   string `json:"evidence_ref"`
	CarbonRemoved int64  `json:"carbon_removed"`
	IssuedCredits int64  `json:"issued_credits"`
	AuditedAt     int64  `json:"audited_at,omitempty"`
	CreatedAt     string `json:"created_at"`
}

// ProjectListResponse wraps a project list.
type ProjectListResponse struct {
	Items []ProjectResponse `json:"items"`
	Total int               `json:"total"`
}

// CreateOrderRequest is the request body for sell order creation.
// PricePerCredit is a decimal string because prices routinely exceed int64.
type CreateOrderRequest struct {
	ProjectID      int64  `json:"project_id" binding:"required,gt=0"`
	CreditsAmount  int64  `json:"credits_amount" binding:"required,gt=0"`
	PricePerCredit string `json:"price_per_credit" binding:"required"`
}

// ExecuteTradeRequest is the request body for filling an order.
type ExecuteTradeRequest struct {
	Payment string `json:"payment" binding:"required"`
}

// OrderResponse is the response body for order queries and transitions.
type OrderResponse struct {
	ID             int64  `json:"id"`
	Seller         string `json:"seller"`
	ProjectID      int64  `json:"project_id"`
	CreditsAmount  int64  `json:"credits_amount"`
	PricePerCredit string `json:"price_per_credit"`
	TotalPrice     string `json:"total_price"`
	Status         string `json:"status"`
	ExpiresAt      int64  `json:"expires_at,omitempty"`
	CreatedAt      string `json:"created_at"`
}

// OrderListResponse wraps an open order list.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Total int             `json:"total"`
}

// ExpirationCheckResponse is the response for a lazy expiration probe.
type ExpirationCheckResponse struct {
	OrderID int64 `json:"order_id"`
	Expired bool  `json:"expired"`
}

// DepositRequest is the request body for wallet deposits.
// Amount is a decimal string (arbitrary precision).
type DepositRequest struct {
	Amount string `json:"amount" binding:"required"`
}

// ApprovalRequest is the request body for granting or revoking an escrow
// operator approval.
type ApprovalRequest struct {
	Operator string `json:"operator" binding:"required,uuid"`
	Approved bool   `json:"approved"`
}

// WalletBalanceResponse is the response for a funds balance query.
type WalletBalanceResponse struct {
	AccountID string `json:"account_id"`
	Balance   string `json:"balance"`
}

// CreditBalanceResponse is the response for a credit balance query.
type CreditBalanceResponse struct {
	AccountID string `json:"account_id"`
	ProjectID int64  `json:"project_id"`
	Balance   int64  `json:"balance"`
}

// UpdateFeeRequest is the request body for platform fee updates.
type UpdateFeeRequest struct {
	FeeBps int64 `json:"fee_bps" binding:"min=0"`
}

// SettingsResponse is the response for market settings queries.
type SettingsResponse struct {
	FeeBps int64 `json:"fee_bps"`
	Paused bool  `json:"paused"`
}

// PauseResponse is the response after toggling the trading pause switch.
type PauseResponse struct {
	Paused bool `json:"paused"`
}

// RoleRequest is the request body for granting or revoking a role.
type RoleRequest struct {
	AccountID string `json:"account_id" binding:"required,uuid"`
	Role      string `json:"role" binding:"required,oneof=AUDITOR PROJECT_OWNER MARKETPLACE_ADMIN"`
}

// RoleListResponse lists the roles held by an account.
type RoleListResponse struct {
	AccountID string   `json:"account_id"`
	Roles     []string `json:"roles"`
}

// NewProjectResponse maps a domain project to its API shape.
func NewProjectResponse(p *domain.Project) ProjectResponse {
	return ProjectResponse{
		ID:            p.ID,
		Owner:         p.Owner.String(),
		Status:        string(p.Status),
		EvidenceRef:   p.EvidenceRef,
		CarbonRemoved: p.CarbonRemoved,
		IssuedCredits: p.IssuedCredits,
		AuditedAt:     p.AuditedAt,
		CreatedAt:     p.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// NewOrderResponse maps a domain order to its API shape. Money fields are
// rendered as decimal strings.
func NewOrderResponse(o *domain.TradeOrder) OrderResponse {
	return OrderResponse{
		ID:             o.ID,
		Seller:         o.Seller.String(),
		ProjectID:      o.ProjectID,
		CreditsAmount:  o.CreditsAmount,
		PricePerCredit: o.PricePerCredit.String(),
		TotalPrice:     o.TotalPrice.String(),
		Status:         string(o.Status),
		ExpiresAt:      o.ExpiresAt,
		CreatedAt:      o.CreatedAt.UTC().Format(time.RFC3339),
	}
}
