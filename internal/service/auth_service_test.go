package service

import (
	"context"
	"testing"
	"time"

	"carbon-credit-exchange/internal/core/domain"
	"carbon-credit-exchange/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupAuthService(t *testing.T) (
	*AuthServiceImpl,
	*mocks.MockAccountRepository,
	*mocks.MockHashService,
	*mocks.MockTokenService,
	*gomock.Controller,
) {
	ctrl := gomock.NewController(t)
	accountRepo := mocks.NewMockAccountRepository(ctrl)
	hashSvc := mocks.NewMockHashService(ctrl)
	tokenSvc := mocks.NewMockTokenService(ctrl)
	svc := NewAuthService(accountRepo, hashSvc, tokenSvc)
	return svc, accountRepo, hashSvc, tokenSvc, ctrl
}

func TestAuthService_Register_Success(t *testing.T) {
	svc, accountRepo, hashSvc, _, ctrl := setupAuthService(t)
	defer ctrl.Finish()

	ctx := context.Background()

	accountRepo.EXPECT().GetByUsername(ctx, "alice").Return(nil, nil)
	hashSvc.EXPECT().Hash("s3cret-password").Return("$argon2id$hash", nil)
	accountRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	account, err := svc.Register(ctx, "alice", "s3cret-password")
	require.NoError(t, err)
	assert.Equal(t, "alice", account.Username)
	assert.Equal(t, "$argon2id$hash", account.PasswordHash)
	assert.NotEqual(t, uuid.Nil, account.ID)
}

func TestAuthService_Register_UsernameTaken(t *testing.T) {
	svc, accountRepo, _, _, ctrl := setupAuthService(t)
	defer ctrl.Finish()

	ctx := context.Background()

	accountRepo.EXPECT().GetByUsername(ctx, "alice").Return(&domain.Account{
		ID:       uuid.New(),
		Username: "alice",
	}, nil)

	_, err := svc.Register(ctx, "alice", "s3cret-password")
	assertAppCode(t, err, "AUTH_003")
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, accountRepo, hashSvc, tokenSvc, ctrl := setupAuthService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	accountID := uuid.New()
	expiry := time.Now().Add(time.Hour)

	accountRepo.EXPECT().GetByUsername(ctx, "alice").Return(&domain.Account{
		ID:           accountID,
		Username:     "alice",
		PasswordHash: "$argon2id$hash",
	}, nil)
	hashSvc.EXPECT().Verify("s3cret-password", "$argon2id$hash").Return(true, nil)
	tokenSvc.EXPECT().Generate(accountID).Return("jwt-token", expiry, nil)

	token, exp, err := svc.Login(ctx, "alice", "s3cret-password")
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", token)
	assert.Equal(t, expiry, exp)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc, accountRepo, _, _, ctrl := setupAuthService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	accountRepo.EXPECT().GetByUsername(ctx, "nobody").Return(nil, nil)

	_, _, err := svc.Login(ctx, "nobody", "whatever")
	assertAppCode(t, err, "AUTH_002")
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, accountRepo, hashSvc, _, ctrl := setupAuthService(t)
	defer ctrl.Finish()

	ctx := context.Background()

	accountRepo.EXPECT().GetByUsername(ctx, "alice").Return(&domain.Account{
		ID:           uuid.New(),
		Username:     "alice",
		PasswordHash: "$argon2id$hash",
	}, nil)
	hashSvc.EXPECT().Verify("wrong", "$argon2id$hash").Return(false, nil)

	_, _, err := svc.Login(ctx, "alice", "wrong")
	assertAppCode(t, err, "AUTH_002")
}
