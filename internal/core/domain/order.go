package domain

import (
	"math/big"
	"time"

	"github.com/google/uuid"
)

// OrderStatus represents the lifecycle state of a sell order.
// Open is the only active state; the other three are terminal and exclusive.
type OrderStatus string

const (
	OrderStatusOpen      OrderStatus = "OPEN"
	OrderStatusFilled    OrderStatus = "FILLED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
	OrderStatusExpired   OrderStatus = "EXPIRED"
)

// TradeOrder is a fixed-amount sell order. While the order is open, exactly
// CreditsAmount units of the project's credit class sit in engine custody and
// are unavailable to the seller.
type TradeOrder struct {
	ID             int64       `json:"id"`
	Seller         uuid.UUID   `json:"seller"`
	ProjectID      int64       `json:"project_id"`
	CreditsAmount  int64       `json:"credits_amount"`
	PricePerCredit *big.Int    `json:"price_per_credit"`
	TotalPrice     *big.Int    `json:"total_price"`
	Status         OrderStatus `json:"status"`
	ExpiresAt      int64       `json:"expires_at"` // unix seconds; 0 once the order is inactive
	CreatedAt      time.Time   `json:"created_at"`
}

// IsActive returns true while the order is open and escrow is held.
func (o *TradeOrder) IsActive() bool {
	return o.Status == OrderStatusOpen
}

// IsTerminal returns true for filled, cancelled and expired orders.
func (o *TradeOrder) IsTerminal() bool {
	return o.Status == OrderStatusFilled ||
		o.Status == OrderStatusCancelled ||
		o.Status == OrderStatusExpired
}

// HasLapsed reports whether an open order's expiration window has passed.
// Expiration is discovered lazily; nothing closes an order until it is touched.
func (o *TradeOrder) HasLapsed(now time.Time) bool {
	return o.IsActive() && o.ExpiresAt > 0 && now.Unix() > o.ExpiresAt
}
