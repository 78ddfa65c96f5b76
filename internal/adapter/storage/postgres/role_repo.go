package postgres

import (
	"context"
	"fmt"

	"carbon-credit-exchange/internal/core/domain"

	"github.com/google/uuid"
)

// RoleRepo implements ports.RoleRepository as a capability table keyed by
// (account_id, role).
type RoleRepo struct {
	pool Pool
}

// NewRoleRepo creates a new RoleRepo.
func NewRoleRepo(pool Pool) *RoleRepo {
	return &RoleRepo{pool: pool}
}

// Grant adds a role to an account. Granting a held role is a no-op.
func (r *RoleRepo) Grant(ctx context.Context, account uuid.UUID, role domain.Role) error {
	query := `INSERT INTO account_roles (account_id, role) VALUES ($1, $2)
		ON CONFLICT (account_id, role) DO NOTHING`

	if _, err := r.pool.Exec(ctx, query, account, role); err != nil {
		return fmt.Errorf("grant role: %w", err)
	}
	return nil
}

// Revoke removes a role from an account. Revoking an unheld role is a no-op.
func (r *RoleRepo) Revoke(ctx context.Context, account uuid.UUID, role domain.Role) error {
	query := `DELETE FROM account_roles WHERE account_id = $1 AND role = $2`

	if _, err := r.pool.Exec(ctx, query, account, role); err != nil {
		return fmt.Errorf("revoke role: %w", err)
	}
	return nil
}

// HasRole reports whether the account holds the role.
func (r *RoleRepo) HasRole(ctx context.Context, account uuid.UUID, role domain.Role) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM account_roles WHERE account_id = $1 AND role = $2)`

	var held bool
	if err := r.pool.QueryRow(ctx, query, account, role).Scan(&held); err != nil {
		return false, fmt.Errorf("check role: %w", err)
	}
	return held, nil
}

// RolesOf returns all roles held by an account.
func (r *RoleRepo) RolesOf(ctx context.Context, account uuid.UUID) ([]domain.Role, error) {
	query := `SELECT role FROM account_roles WHERE account_id = $1 ORDER BY role`

	rows, err := r.pool.Query(ctx, query, account)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()

	var roles []domain.Role
	for rows.Next() {
		var role domain.Role
		if err := rows.Scan(&role); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		roles = append(roles, role)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate roles: %w", err)
	}
	return roles, nil
}
