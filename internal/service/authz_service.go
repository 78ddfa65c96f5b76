package service

import (
	"context"
	"fmt"

	"carbon-credit-exchange/internal/core/domain"
	"carbon-credit-exchange/internal/core/ports"
	"carbon-credit-exchange/pkg/apperror"

	"github.com/google/uuid"
)

// RoleAuthorizationPolicy implements ports.AuthorizationPolicy against the
// role repository. Roles are looked up per call rather than cached so that a
// revocation takes effect on the next operation.
type RoleAuthorizationPolicy struct {
	roleRepo ports.RoleRepository
}

// NewRoleAuthorizationPolicy creates a new RoleAuthorizationPolicy.
func NewRoleAuthorizationPolicy(roleRepo ports.RoleRepository) *RoleAuthorizationPolicy {
	return &RoleAuthorizationPolicy{roleRepo: roleRepo}
}

// HasRole reports whether the account holds the role.
func (p *RoleAuthorizationPolicy) HasRole(ctx context.Context, account uuid.UUID, role domain.Role) (bool, error) {
	held, err := p.roleRepo.HasRole(ctx, account, role)
	if err != nil {
		return false, apperror.InternalError(fmt.Errorf("role lookup: %w", err))
	}
	return held, nil
}

// Require fails with Unauthorized naming the missing role.
func (p *RoleAuthorizationPolicy) Require(ctx context.Context, account uuid.UUID, role domain.Role) error {
	held, err := p.HasRole(ctx, account, role)
	if err != nil {
		return err
	}
	if !held {
		return apperror.ErrUnauthorized(string(role))
	}
	return nil
}
