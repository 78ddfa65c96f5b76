package postgres

import (
	"context"
	"testing"

	"carbon-credit-exchange/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleRepo_Grant(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRoleRepo(mock)
	account := uuid.New()

	mock.ExpectExec("INSERT INTO account_roles").
		WithArgs(account, domain.RoleAuditor).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Grant(context.Background(), account, domain.RoleAuditor)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoleRepo_Revoke(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRoleRepo(mock)
	account := uuid.New()

	mock.ExpectExec("DELETE FROM account_roles").
		WithArgs(account, domain.RoleAuditor).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	err = repo.Revoke(context.Background(), account, domain.RoleAuditor)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoleRepo_HasRole(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRoleRepo(mock)
	account := uuid.New()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(account, domain.RoleMarketplaceAdmin).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	held, err := repo.HasRole(context.Background(), account, domain.RoleMarketplaceAdmin)
	require.NoError(t, err)
	assert.True(t, held)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoleRepo_RolesOf(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRoleRepo(mock)
	account := uuid.New()

	mock.ExpectQuery("SELECT role FROM account_roles").
		WithArgs(account).
		WillReturnRows(pgxmock.NewRows([]string{"role"}).
			AddRow(domain.RoleAuditor).
			AddRow(domain.RoleProjectOwner))

	roles, err := repo.RolesOf(context.Background(), account)
	require.NoError(t, err)
	assert.Equal(t, []domain.Role{domain.RoleAuditor, domain.RoleProjectOwner}, roles)
	assert.NoError(t, mock.ExpectationsWereMet())
}
