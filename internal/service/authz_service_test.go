package service

import (
	"context"
	"testing"

	"carbon-credit-exchange/internal/core/domain"
	"carbon-credit-exchange/internal/core/ports/mocks"
	"carbon-credit-exchange/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRoleAuthorizationPolicy_Require(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	roleRepo := mocks.NewMockRoleRepository(ctrl)
	policy := NewRoleAuthorizationPolicy(roleRepo)

	ctx := context.Background()
	account := uuid.New()

	roleRepo.EXPECT().HasRole(ctx, account, domain.RoleAuditor).Return(true, nil)
	require.NoError(t, policy.Require(ctx, account, domain.RoleAuditor))

	roleRepo.EXPECT().HasRole(ctx, account, domain.RoleMarketplaceAdmin).Return(false, nil)
	err := policy.Require(ctx, account, domain.RoleMarketplaceAdmin)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "AUTH_001", appErr.Code)
	// The denial names the missing role so callers can act on it.
	assert.Contains(t, appErr.Message, string(domain.RoleMarketplaceAdmin))
}

func TestRoleAuthorizationPolicy_HasRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	roleRepo := mocks.NewMockRoleRepository(ctrl)
	policy := NewRoleAuthorizationPolicy(roleRepo)

	ctx := context.Background()
	account := uuid.New()

	roleRepo.EXPECT().HasRole(ctx, account, domain.RoleProjectOwner).Return(true, nil)
	held, err := policy.HasRole(ctx, account, domain.RoleProjectOwner)
	require.NoError(t, err)
	assert.True(t, held)
}
