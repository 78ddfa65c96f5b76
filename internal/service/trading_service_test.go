package service

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"carbon-credit-exchange/internal/core/domain"
	"carbon-credit-exchange/internal/core/ports"
	"carbon-credit-exchange/internal/core/ports/mocks"
	"carbon-credit-exchange/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type tradingTestDeps struct {
	svc          *TradingServiceImpl
	orderRepo    *mocks.MockOrderRepository
	settingsRepo *mocks.MockSettingsRepository
	registry     *mocks.MockRegistryService
	creditLedger *mocks.MockCreditLedger
	fundsLedger  *mocks.MockFundsLedger
	authz        *mocks.MockAuthorizationPolicy
	publisher    *mocks.MockEventPublisher
	transactor   *mocks.MockDBTransactor
	escrow       uuid.UUID
	platform     uuid.UUID
	ctrl         *gomock.Controller
}

func setupTradingService(t *testing.T) *tradingTestDeps {
	ctrl := gomock.NewController(t)
	d := &tradingTestDeps{
		orderRepo:    mocks.NewMockOrderRepository(ctrl),
		settingsRepo: mocks.NewMockSettingsRepository(ctrl),
		registry:     mocks.NewMockRegistryService(ctrl),
		creditLedger: mocks.NewMockCreditLedger(ctrl),
		fundsLedger:  mocks.NewMockFundsLedger(ctrl),
		authz:        mocks.NewMockAuthorizationPolicy(ctrl),
		publisher:    mocks.NewMockEventPublisher(ctrl),
		transactor:   mocks.NewMockDBTransactor(ctrl),
		escrow:       uuid.New(),
		platform:     uuid.New(),
		ctrl:         ctrl,
	}
	d.svc = NewTradingService(
		d.orderRepo, d.settingsRepo, d.registry, d.creditLedger, d.fundsLedger,
		d.authz, d.publisher, d.transactor,
		d.escrow, d.platform, 168*time.Hour, zerolog.Nop(),
	)
	return d
}

func activeSettings() *domain.MarketSettings {
	return &domain.MarketSettings{FeeBps: 120, Paused: false}
}

func bigInt(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("bad big int literal: " + s)
	}
	return v
}

// ==================== CreateSellOrder Tests ====================

func TestTradingService_CreateSellOrder_Success(t *testing.T) {
	d := setupTradingService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	seller := uuid.New()
	tx := &mockTx{}

	fixedNow := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	d.svc.now = func() time.Time { return fixedNow }

	req := ports.CreateOrderRequest{
		ProjectID:      1,
		CreditsAmount:  300,
		PricePerCredit: bigInt("100000000000000000"), // 0.1 token units
	}

	d.settingsRepo.EXPECT().Get(ctx).Return(activeSettings(), nil)
	d.registry.EXPECT().ProjectExists(ctx, int64(1)).Return(true, nil)
	d.creditLedger.EXPECT().IsApprovedForAll(ctx, seller, d.escrow).Return(true, nil)
	d.creditLedger.EXPECT().BalanceOf(ctx, seller, int64(1)).Return(int64(500), nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.creditLedger.EXPECT().TransferFrom(ctx, tx, d.escrow, seller, d.escrow, int64(1), int64(300)).Return(nil)
	d.orderRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(int64(42), nil)
	d.publisher.EXPECT().Publish(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, event domain.Event) error {
			assert.Equal(t, domain.EventOrderCreated, event.Type)
			return nil
		})

	order, err := d.svc.CreateSellOrder(ctx, seller, req)
	require.NoError(t, err)
	assert.Equal(t, int64(42), order.ID)
	assert.Equal(t, domain.OrderStatusOpen, order.Status)
	// 300 credits at 0.1 each
	assert.Equal(t, bigInt("30000000000000000000"), order.TotalPrice)
	assert.Equal(t, fixedNow.Add(168*time.Hour).Unix(), order.ExpiresAt)
}

func TestTradingService_CreateSellOrder_Paused(t *testing.T) {
	d := setupTradingService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.settingsRepo.EXPECT().Get(ctx).Return(&domain.MarketSettings{FeeBps: 120, Paused: true}, nil)

	_, err := d.svc.CreateSellOrder(ctx, uuid.New(), ports.CreateOrderRequest{
		ProjectID:      1,
		CreditsAmount:  10,
		PricePerCredit: big.NewInt(100),
	})
	assertAppCode(t, err, "TRD_010")
}

func TestTradingService_CreateSellOrder_InvalidPrice(t *testing.T) {
	d := setupTradingService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	seller := uuid.New()
	d.settingsRepo.EXPECT().Get(ctx).Return(activeSettings(), nil).Times(2)

	_, err := d.svc.CreateSellOrder(ctx, seller, ports.CreateOrderRequest{
		ProjectID:      1,
		CreditsAmount:  10,
		PricePerCredit: big.NewInt(0),
	})
	assertAppCode(t, err, "TRD_001")

	_, err = d.svc.CreateSellOrder(ctx, seller, ports.CreateOrderRequest{
		ProjectID:     1,
		CreditsAmount: 10,
	})
	assertAppCode(t, err, "TRD_001")
}

func TestTradingService_CreateSellOrder_UnknownProject(t *testing.T) {
	d := setupTradingService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	seller := uuid.New()

	d.settingsRepo.EXPECT().Get(ctx).Return(activeSettings(), nil)
	d.registry.EXPECT().ProjectExists(ctx, int64(404)).Return(false, nil)

	_, err := d.svc.CreateSellOrder(ctx, seller, ports.CreateOrderRequest{
		ProjectID:      404,
		CreditsAmount:  10,
		PricePerCredit: big.NewInt(100),
	})
	assertAppCode(t, err, "REG_002")
}

func TestTradingService_CreateSellOrder_NotApproved(t *testing.T) {
	d := setupTradingService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	seller := uuid.New()

	d.settingsRepo.EXPECT().Get(ctx).Return(activeSettings(), nil)
	d.registry.EXPECT().ProjectExists(ctx, int64(1)).Return(true, nil)
	d.creditLedger.EXPECT().IsApprovedForAll(ctx, seller, d.escrow).Return(false, nil)

	_, err := d.svc.CreateSellOrder(ctx, seller, ports.CreateOrderRequest{
		ProjectID:      1,
		CreditsAmount:  10,
		PricePerCredit: big.NewInt(100),
	})
	assertAppCode(t, err, "TRD_003")
}

func TestTradingService_CreateSellOrder_InsufficientBalance(t *testing.T) {
	d := setupTradingService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	seller := uuid.New()

	d.settingsRepo.EXPECT().Get(ctx).Return(activeSettings(), nil)
	d.registry.EXPECT().ProjectExists(ctx, int64(1)).Return(true, nil)
	d.creditLedger.EXPECT().IsApprovedForAll(ctx, seller, d.escrow).Return(true, nil)
	d.creditLedger.EXPECT().BalanceOf(ctx, seller, int64(1)).Return(int64(5), nil)

	_, err := d.svc.CreateSellOrder(ctx, seller, ports.CreateOrderRequest{
		ProjectID:      1,
		CreditsAmount:  10,
		PricePerCredit: big.NewInt(100),
	})
	assertAppCode(t, err, "TRD_002")
}

// ==================== ExecuteTrade Tests ====================

func openOrder(seller uuid.UUID, expiresAt int64) *domain.TradeOrder {
	return &domain.TradeOrder{
		ID:             42,
		Seller:         seller,
		ProjectID:      1,
		CreditsAmount:  300,
		PricePerCredit: bigInt("100000000000000000"),
		TotalPrice:     bigInt("30000000000000000000"),
		Status:         domain.OrderStatusOpen,
		ExpiresAt:      expiresAt,
	}
}

func TestTradingService_ExecuteTrade_ExactPayment(t *testing.T) {
	d := setupTradingService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	seller := uuid.New()
	buyer := uuid.New()
	tx := &mockTx{}

	fixedNow := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	d.svc.now = func() time.Time { return fixedNow }

	order := openOrder(seller, fixedNow.Add(time.Hour).Unix())
	payment := bigInt("30000000000000000000")

	d.settingsRepo.EXPECT().Get(ctx).Return(activeSettings(), nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.orderRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(42)).Return(order, nil)
	// Credits leave escrow first.
	d.creditLedger.EXPECT().TransferFrom(ctx, tx, d.escrow, d.escrow, buyer, int64(1), int64(300)).Return(nil)
	// Payment in, then proceeds and fee out. 120 bps of 3e19 is 3.6e17.
	d.fundsLedger.EXPECT().Transfer(ctx, tx, buyer, d.escrow, payment).Return(nil)
	d.fundsLedger.EXPECT().Transfer(ctx, tx, d.escrow, seller, bigInt("29640000000000000000")).Return(nil)
	d.fundsLedger.EXPECT().Transfer(ctx, tx, d.escrow, d.platform, bigInt("360000000000000000")).Return(nil)
	// Exact payment: no refund leg.
	d.orderRepo.EXPECT().Close(ctx, tx, int64(42), domain.OrderStatusFilled).Return(nil)
	d.publisher.EXPECT().Publish(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, event domain.Event) error {
			assert.Equal(t, domain.EventOrderFilled, event.Type)
			return nil
		})

	result, err := d.svc.ExecuteTrade(ctx, buyer, 42, payment)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusFilled, result.Status)
	assert.Zero(t, result.ExpiresAt)
}

func TestTradingService_ExecuteTrade_ExcessPaymentRefunded(t *testing.T) {
	d := setupTradingService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	seller := uuid.New()
	buyer := uuid.New()
	tx := &mockTx{}

	fixedNow := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	d.svc.now = func() time.Time { return fixedNow }

	order := openOrder(seller, fixedNow.Add(time.Hour).Unix())
	// 1 token unit over the total.
	payment := bigInt("30000000000000000001")

	d.settingsRepo.EXPECT().Get(ctx).Return(activeSettings(), nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.orderRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(42)).Return(order, nil)
	d.creditLedger.EXPECT().TransferFrom(ctx, tx, d.escrow, d.escrow, buyer, int64(1), int64(300)).Return(nil)
	d.fundsLedger.EXPECT().Transfer(ctx, tx, buyer, d.escrow, payment).Return(nil)
	d.fundsLedger.EXPECT().Transfer(ctx, tx, d.escrow, seller, bigInt("29640000000000000000")).Return(nil)
	d.fundsLedger.EXPECT().Transfer(ctx, tx, d.escrow, d.platform, bigInt("360000000000000000")).Return(nil)
	d.fundsLedger.EXPECT().Transfer(ctx, tx, d.escrow, buyer, big.NewInt(1)).Return(nil)
	d.orderRepo.EXPECT().Close(ctx, tx, int64(42), domain.OrderStatusFilled).Return(nil)
	d.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	_, err := d.svc.ExecuteTrade(ctx, buyer, 42, payment)
	require.NoError(t, err)
}

func TestTradingService_ExecuteTrade_RefundFailure(t *testing.T) {
	d := setupTradingService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	seller := uuid.New()
	buyer := uuid.New()
	tx := &mockTx{}

	fixedNow := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	d.svc.now = func() time.Time { return fixedNow }

	order := openOrder(seller, fixedNow.Add(time.Hour).Unix())
	payment := bigInt("30000000000000000001")

	d.settingsRepo.EXPECT().Get(ctx).Return(activeSettings(), nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.orderRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(42)).Return(order, nil)
	d.creditLedger.EXPECT().TransferFrom(ctx, tx, d.escrow, d.escrow, buyer, int64(1), int64(300)).Return(nil)
	d.fundsLedger.EXPECT().Transfer(ctx, tx, buyer, d.escrow, payment).Return(nil)
	d.fundsLedger.EXPECT().Transfer(ctx, tx, d.escrow, seller, gomock.Any()).Return(nil)
	d.fundsLedger.EXPECT().Transfer(ctx, tx, d.escrow, d.platform, gomock.Any()).Return(nil)
	d.fundsLedger.EXPECT().Transfer(ctx, tx, d.escrow, buyer, big.NewInt(1)).
		Return(errors.New("wallet frozen"))

	// No Close and no Commit expectations: the whole settlement aborts.
	_, err := d.svc.ExecuteTrade(ctx, buyer, 42, payment)
	assertAppCode(t, err, "TRD_008")
}

func TestTradingService_ExecuteTrade_SellerPayoutFailureAborts(t *testing.T) {
	d := setupTradingService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	seller := uuid.New()
	buyer := uuid.New()
	tx := &mockTx{}

	fixedNow := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	d.svc.now = func() time.Time { return fixedNow }

	order := openOrder(seller, fixedNow.Add(time.Hour).Unix())
	payment := bigInt("30000000000000000000")

	d.settingsRepo.EXPECT().Get(ctx).Return(activeSettings(), nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.orderRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(42)).Return(order, nil)
	d.creditLedger.EXPECT().TransferFrom(ctx, tx, d.escrow, d.escrow, buyer, int64(1), int64(300)).Return(nil)
	d.fundsLedger.EXPECT().Transfer(ctx, tx, buyer, d.escrow, payment).Return(nil)
	d.fundsLedger.EXPECT().Transfer(ctx, tx, d.escrow, seller, gomock.Any()).
		Return(errors.New("wallet not found"))

	_, err := d.svc.ExecuteTrade(ctx, buyer, 42, payment)
	assertAppCode(t, err, "TRD_007")
}

func TestTradingService_ExecuteTrade_InsufficientPayment(t *testing.T) {
	d := setupTradingService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	buyer := uuid.New()
	tx := &mockTx{}

	fixedNow := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	d.svc.now = func() time.Time { return fixedNow }

	order := openOrder(uuid.New(), fixedNow.Add(time.Hour).Unix())

	d.settingsRepo.EXPECT().Get(ctx).Return(activeSettings(), nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.orderRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(42)).Return(order, nil)

	_, err := d.svc.ExecuteTrade(ctx, buyer, 42, bigInt("29999999999999999999"))
	assertAppCode(t, err, "TRD_006")
}

func TestTradingService_ExecuteTrade_UnknownOrder(t *testing.T) {
	d := setupTradingService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}

	d.settingsRepo.EXPECT().Get(ctx).Return(activeSettings(), nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.orderRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(404)).Return(nil, nil)

	_, err := d.svc.ExecuteTrade(ctx, uuid.New(), 404, big.NewInt(100))
	assertAppCode(t, err, "TRD_004")
}

func TestTradingService_ExecuteTrade_FilledOrder(t *testing.T) {
	d := setupTradingService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}

	order := openOrder(uuid.New(), 0)
	order.Status = domain.OrderStatusFilled

	d.settingsRepo.EXPECT().Get(ctx).Return(activeSettings(), nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.orderRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(42)).Return(order, nil)

	_, err := d.svc.ExecuteTrade(ctx, uuid.New(), 42, bigInt("30000000000000000000"))
	assertAppCode(t, err, "TRD_004")
}

func TestTradingService_ExecuteTrade_LapsedOrderExpiresAndRefunds(t *testing.T) {
	d := setupTradingService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	seller := uuid.New()
	buyer := uuid.New()
	tx := &mockTx{}

	createdAt := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	order := openOrder(seller, createdAt.Add(168*time.Hour).Unix())
	// One second past the deadline.
	d.svc.now = func() time.Time { return createdAt.Add(168*time.Hour + time.Second) }

	d.settingsRepo.EXPECT().Get(ctx).Return(activeSettings(), nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.orderRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(42)).Return(order, nil)
	d.creditLedger.EXPECT().TransferFrom(ctx, tx, d.escrow, d.escrow, seller, int64(1), int64(300)).Return(nil)
	d.orderRepo.EXPECT().Close(ctx, tx, int64(42), domain.OrderStatusExpired).Return(nil)
	d.publisher.EXPECT().Publish(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, event domain.Event) error {
			assert.Equal(t, domain.EventOrderExpired, event.Type)
			return nil
		})

	_, err := d.svc.ExecuteTrade(ctx, buyer, 42, bigInt("30000000000000000000"))
	assertAppCode(t, err, "TRD_004")
}

func TestTradingService_ExecuteTrade_Paused(t *testing.T) {
	d := setupTradingService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.settingsRepo.EXPECT().Get(ctx).Return(&domain.MarketSettings{FeeBps: 120, Paused: true}, nil)

	_, err := d.svc.ExecuteTrade(ctx, uuid.New(), 42, big.NewInt(100))
	assertAppCode(t, err, "TRD_010")
}

func TestTradingService_ExecuteTrade_ZeroFee(t *testing.T) {
	d := setupTradingService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	seller := uuid.New()
	buyer := uuid.New()
	tx := &mockTx{}

	fixedNow := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	d.svc.now = func() time.Time { return fixedNow }

	order := openOrder(seller, fixedNow.Add(time.Hour).Unix())
	payment := bigInt("30000000000000000000")

	d.settingsRepo.EXPECT().Get(ctx).Return(&domain.MarketSettings{FeeBps: 0}, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.orderRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(42)).Return(order, nil)
	d.creditLedger.EXPECT().TransferFrom(ctx, tx, d.escrow, d.escrow, buyer, int64(1), int64(300)).Return(nil)
	d.fundsLedger.EXPECT().Transfer(ctx, tx, buyer, d.escrow, payment).Return(nil)
	// Full total goes to the seller; no platform leg at zero bps.
	d.fundsLedger.EXPECT().Transfer(ctx, tx, d.escrow, seller, payment).Return(nil)
	d.orderRepo.EXPECT().Close(ctx, tx, int64(42), domain.OrderStatusFilled).Return(nil)
	d.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	_, err := d.svc.ExecuteTrade(ctx, buyer, 42, payment)
	require.NoError(t, err)
}

// ==================== RemoveSellOrder Tests ====================

func TestTradingService_RemoveSellOrder_Success(t *testing.T) {
	d := setupTradingService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	seller := uuid.New()
	tx := &mockTx{}

	fixedNow := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	d.svc.now = func() time.Time { return fixedNow }

	order := openOrder(seller, fixedNow.Add(time.Hour).Unix())

	d.settingsRepo.EXPECT().Get(ctx).Return(activeSettings(), nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.orderRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(42)).Return(order, nil)
	d.creditLedger.EXPECT().TransferFrom(ctx, tx, d.escrow, d.escrow, seller, int64(1), int64(300)).Return(nil)
	d.orderRepo.EXPECT().Close(ctx, tx, int64(42), domain.OrderStatusCancelled).Return(nil)
	d.publisher.EXPECT().Publish(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, event domain.Event) error {
			assert.Equal(t, domain.EventOrderClosed, event.Type)
			return nil
		})

	result, err := d.svc.RemoveSellOrder(ctx, seller, 42)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCancelled, result.Status)
}

func TestTradingService_RemoveSellOrder_NotOwner(t *testing.T) {
	d := setupTradingService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}

	fixedNow := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	d.svc.now = func() time.Time { return fixedNow }

	order := openOrder(uuid.New(), fixedNow.Add(time.Hour).Unix())

	d.settingsRepo.EXPECT().Get(ctx).Return(activeSettings(), nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.orderRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(42)).Return(order, nil)

	_, err := d.svc.RemoveSellOrder(ctx, uuid.New(), 42)
	assertAppCode(t, err, "TRD_005")
}

func TestTradingService_RemoveSellOrder_Paused(t *testing.T) {
	d := setupTradingService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.settingsRepo.EXPECT().Get(ctx).Return(&domain.MarketSettings{FeeBps: 120, Paused: true}, nil)

	_, err := d.svc.RemoveSellOrder(ctx, uuid.New(), 42)
	assertAppCode(t, err, "TRD_010")
}

// ==================== CheckOrderExpiration Tests ====================

func TestTradingService_CheckOrderExpiration_Lapsed(t *testing.T) {
	d := setupTradingService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	seller := uuid.New()
	tx := &mockTx{}

	createdAt := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	order := openOrder(seller, createdAt.Add(168*time.Hour).Unix())
	d.svc.now = func() time.Time { return createdAt.Add(168*time.Hour + time.Second) }

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.orderRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(42)).Return(order, nil)
	d.creditLedger.EXPECT().TransferFrom(ctx, tx, d.escrow, d.escrow, seller, int64(1), int64(300)).Return(nil)
	d.orderRepo.EXPECT().Close(ctx, tx, int64(42), domain.OrderStatusExpired).Return(nil)
	d.publisher.EXPECT().Publish(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, event domain.Event) error {
			assert.Equal(t, domain.EventOrderExpired, event.Type)
			return nil
		})

	expired, err := d.svc.CheckOrderExpiration(ctx, 42)
	require.NoError(t, err)
	assert.True(t, expired)
}

func TestTradingService_CheckOrderExpiration_AtDeadlineNotLapsed(t *testing.T) {
	d := setupTradingService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}

	// Exactly at the deadline the order is still live.
	createdAt := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	order := openOrder(uuid.New(), createdAt.Add(168*time.Hour).Unix())
	d.svc.now = func() time.Time { return createdAt.Add(168 * time.Hour) }

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.orderRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(42)).Return(order, nil)
	d.publisher.EXPECT().Publish(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, event domain.Event) error {
			assert.Equal(t, domain.EventOrderNotExpired, event.Type)
			return nil
		})

	expired, err := d.svc.CheckOrderExpiration(ctx, 42)
	require.NoError(t, err)
	assert.False(t, expired)
}

func TestTradingService_CheckOrderExpiration_AlreadyClosed(t *testing.T) {
	d := setupTradingService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}

	order := openOrder(uuid.New(), 0)
	order.Status = domain.OrderStatusExpired

	// Second check on an expired order: no refund, no event.
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.orderRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(42)).Return(order, nil)

	expired, err := d.svc.CheckOrderExpiration(ctx, 42)
	require.NoError(t, err)
	assert.False(t, expired)
}

func TestTradingService_CheckOrderExpiration_UnknownOrder(t *testing.T) {
	d := setupTradingService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.orderRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(404)).Return(nil, nil)

	expired, err := d.svc.CheckOrderExpiration(ctx, 404)
	require.NoError(t, err)
	assert.False(t, expired)
}

// ==================== Admin Tests ====================

func TestTradingService_UpdatePlatformFee_Success(t *testing.T) {
	d := setupTradingService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	admin := uuid.New()
	tx := &mockTx{}

	d.authz.EXPECT().Require(ctx, admin, domain.RoleMarketplaceAdmin).Return(nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.settingsRepo.EXPECT().GetForUpdate(ctx, tx).Return(activeSettings(), nil)
	d.settingsRepo.EXPECT().Update(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, settings *domain.MarketSettings) error {
			assert.Equal(t, int64(250), settings.FeeBps)
			return nil
		})
	d.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	err := d.svc.UpdatePlatformFee(ctx, admin, 250)
	require.NoError(t, err)
}

func TestTradingService_UpdatePlatformFee_AboveHardCap(t *testing.T) {
	d := setupTradingService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	admin := uuid.New()

	d.authz.EXPECT().Require(ctx, admin, domain.RoleMarketplaceAdmin).Return(nil)

	err := d.svc.UpdatePlatformFee(ctx, admin, 1001)
	assertAppCode(t, err, "TRD_011")
}

func TestTradingService_UpdatePlatformFee_NotAdmin(t *testing.T) {
	d := setupTradingService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	caller := uuid.New()

	d.authz.EXPECT().Require(ctx, caller, domain.RoleMarketplaceAdmin).
		Return(apperror.ErrUnauthorized(string(domain.RoleMarketplaceAdmin)))

	err := d.svc.UpdatePlatformFee(ctx, caller, 250)
	assertAppCode(t, err, "AUTH_001")
}

func TestTradingService_TogglePause(t *testing.T) {
	d := setupTradingService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	admin := uuid.New()
	tx := &mockTx{}

	d.authz.EXPECT().Require(ctx, admin, domain.RoleMarketplaceAdmin).Return(nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.settingsRepo.EXPECT().GetForUpdate(ctx, tx).Return(activeSettings(), nil)
	d.settingsRepo.EXPECT().Update(ctx, tx, gomock.Any()).Return(nil)
	d.publisher.EXPECT().Publish(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, event domain.Event) error {
			assert.Equal(t, domain.EventPauseToggled, event.Type)
			return nil
		})

	paused, err := d.svc.TogglePause(ctx, admin)
	require.NoError(t, err)
	assert.True(t, paused)
}
