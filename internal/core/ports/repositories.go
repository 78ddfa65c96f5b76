package ports

import (
	"context"

	"carbon-credit-exchange/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ProjectRepository defines persistence operations for the project arena.
// Records are append-only: projects are created and updated, never deleted,
// and ids are assigned monotonically by the store.
type ProjectRepository interface {
	Create(ctx context.Context, tx pgx.Tx, project *domain.Project) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Project, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id int64) (*domain.Project, error)
	Update(ctx context.Context, tx pgx.Tx, project *domain.Project) error
	FingerprintExists(ctx context.Context, fingerprint string) (bool, error)
	ListByOwner(ctx context.Context, owner uuid.UUID) ([]domain.Project, error)
}

// OrderRepository defines persistence operations for sell orders.
// Methods accepting pgx.Tx are used inside transaction blocks for pessimistic locking.
type OrderRepository interface {
	Create(ctx context.Context, tx pgx.Tx, order *domain.TradeOrder) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.TradeOrder, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id int64) (*domain.TradeOrder, error)
	// Close marks an order terminal and clears its expiration sentinel.
	Close(ctx context.Context, tx pgx.Tx, id int64, status domain.OrderStatus) error
	ListOpen(ctx context.Context) ([]domain.TradeOrder, error)
}

// SettingsRepository persists the single marketplace settings row (fee, pause).
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.MarketSettings, error)
	GetForUpdate(ctx context.Context, tx pgx.Tx) (*domain.MarketSettings, error)
	Update(ctx context.Context, tx pgx.Tx, settings *domain.MarketSettings) error
}

// AccountRepository defines persistence operations for accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	GetByUsername(ctx context.Context, username string) (*domain.Account, error)
}

// RoleRepository is the capability table keyed by (account, role).
type RoleRepository interface {
	Grant(ctx context.Context, account uuid.UUID, role domain.Role) error
	Revoke(ctx context.Context, account uuid.UUID, role domain.Role) error
	HasRole(ctx context.Context, account uuid.UUID, role domain.Role) (bool, error)
	RolesOf(ctx context.Context, account uuid.UUID) ([]domain.Role, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
