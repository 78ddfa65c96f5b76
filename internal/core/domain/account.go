package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role is a capability held by an account. Every mutating registry or trading
// operation checks the caller's roles before proceeding.
type Role string

const (
	RoleAuditor          Role = "AUDITOR"
	RoleProjectOwner     Role = "PROJECT_OWNER"
	RoleMarketplaceAdmin Role = "MARKETPLACE_ADMIN"
)

// Account is an authenticated identity. Roles are stored separately in the
// capability table and looked up per operation.
type Account struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// MarketSettings is the runtime-adjustable trading-engine policy.
type MarketSettings struct {
	FeeBps    int64     `json:"fee_bps"`
	Paused    bool      `json:"paused"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FeeBpsHardCap is the maximum platform fee (10%). Admin updates above the cap
// are rejected.
const FeeBpsHardCap = 1000
