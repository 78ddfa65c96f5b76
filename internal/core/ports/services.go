package ports

import (
	"context"
	"math/big"
	"time"

	"carbon-credit-exchange/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// --- Collaborator Ports (external state owners) ---

// CreditLedger is the external credit-unit ledger. It exclusively owns balance
// state; the core mutates it only through these primitives. Transfer and mint
// enlist in the caller's transaction so a failed settlement rolls the whole
// operation back.
type CreditLedger interface {
	BalanceOf(ctx context.Context, owner uuid.UUID, projectID int64) (int64, error)
	IsApprovedForAll(ctx context.Context, owner, operator uuid.UUID) (bool, error)
	SetApprovalForAll(ctx context.Context, owner, operator uuid.UUID, approved bool) error
	// TransferFrom moves credit units of one project class. It fails when the
	// source balance is insufficient, or when operator is neither the source
	// account nor an approved operator for it.
	TransferFrom(ctx context.Context, tx pgx.Tx, operator, from, to uuid.UUID, projectID, amount int64) error
	// Mint credits newly issued units to an account. It fails when
	// amount + SupplyOf(projectID) would exceed supplyCap.
	Mint(ctx context.Context, tx pgx.Tx, account uuid.UUID, projectID, amount, supplyCap int64) error
	SupplyOf(ctx context.Context, tx pgx.Tx, projectID int64) (int64, error)
}

// FundsLedger is the payment-side wallet ledger used for settlement legs
// (payment, proceeds, fee, refund). Amounts are arbitrary-precision.
type FundsLedger interface {
	BalanceOf(ctx context.Context, account uuid.UUID) (*big.Int, error)
	Deposit(ctx context.Context, account uuid.UUID, amount *big.Int) error
	Transfer(ctx context.Context, tx pgx.Tx, from, to uuid.UUID, amount *big.Int) error
}

// EventPublisher delivers marketplace notifications to off-core observers.
// Delivery is best-effort and never part of the transactional state change.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
}

// AuthorizationPolicy is the capability check consulted at the entry of every
// mutating operation.
type AuthorizationPolicy interface {
	// Require returns Unauthorized(role) when the account does not hold role.
	Require(ctx context.Context, account uuid.UUID, role domain.Role) error
	HasRole(ctx context.Context, account uuid.UUID, role domain.Role) (bool, error)
}

// FingerprintService derives the collision-resistant de-duplication key from
// an externally supplied verification identifier.
type FingerprintService interface {
	Fingerprint(externalVerificationID string) string
}

// HashService handles password hashing (Argon2id).
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}

// TokenService handles JWT token operations.
type TokenService interface {
	Generate(accountID uuid.UUID) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	AccountID uuid.UUID
}

// --- Service Ports (Business Logic) ---

// SubmitProjectRequest holds validated input for project submission.
type SubmitProjectRequest struct {
	CarbonRemoved          int64
	EvidenceRef            string
	ExternalVerificationID string
}

// RegistryService drives the project certification state machine.
type RegistryService interface {
	SubmitProject(ctx context.Context, caller uuid.UUID, req SubmitProjectRequest) (*domain.Project, error)
	EditProject(ctx context.Context, caller uuid.UUID, projectID int64, newEvidenceRef string) (*domain.Project, error)
	AcceptProject(ctx context.Context, caller uuid.UUID, projectID int64) (*domain.Project, error)
	RejectProject(ctx context.Context, caller uuid.UUID, projectID int64) (*domain.Project, error)

	GetProject(ctx context.Context, projectID int64) (*domain.Project, error)
	ProjectExists(ctx context.Context, projectID int64) (bool, error)
	IsAudited(ctx context.Context, projectID int64) (bool, error)
	IssuedCreditsOf(ctx context.Context, projectID int64) (int64, error)
	ListByOwner(ctx context.Context, owner uuid.UUID) ([]domain.Project, error)
	MintPercentage() int64
}

// CreateOrderRequest holds validated input for sell order creation.
type CreateOrderRequest struct {
	ProjectID      int64
	CreditsAmount  int64
	PricePerCredit *big.Int
}

// TradingService drives the escrow-based order lifecycle.
type TradingService interface {
	CreateSellOrder(ctx context.Context, seller uuid.UUID, req CreateOrderRequest) (*domain.TradeOrder, error)
	ExecuteTrade(ctx context.Context, buyer uuid.UUID, orderID int64, payment *big.Int) (*domain.TradeOrder, error)
	RemoveSellOrder(ctx context.Context, caller uuid.UUID, orderID int64) (*domain.TradeOrder, error)
	// CheckOrderExpiration lazily closes a lapsed order, refunding escrow to
	// the seller. It is permissionless and available while trading is paused.
	CheckOrderExpiration(ctx context.Context, orderID int64) (bool, error)

	UpdatePlatformFee(ctx context.Context, caller uuid.UUID, newBps int64) error
	TogglePause(ctx context.Context, caller uuid.UUID) (bool, error)

	GetOrder(ctx context.Context, orderID int64) (*domain.TradeOrder, error)
	ListOpenOrders(ctx context.Context) ([]domain.TradeOrder, error)
	GetSettings(ctx context.Context) (*domain.MarketSettings, error)
}

// AuthService defines account authentication business logic.
type AuthService interface {
	Register(ctx context.Context, username, password string) (*domain.Account, error)
	Login(ctx context.Context, username, password string) (string, time.Time, error) // token, expiry, error
}
