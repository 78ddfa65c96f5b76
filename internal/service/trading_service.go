package service

import (
	"context"
	"fmt"
	"math/big"
	"sync"
	"time"

	"carbon-credit-exchange/internal/core/domain"
	"carbon-credit-exchange/internal/core/ports"
	"carbon-credit-exchange/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// TradingServiceImpl implements ports.TradingService. Credits listed for sale
// are pulled into the escrow account for the lifetime of the order; every
// state-changing operation runs in a single database transaction so a failed
// settlement leg rolls escrow, balances and order state back together.
type TradingServiceImpl struct {
	orderRepo    ports.OrderRepository
	settingsRepo ports.SettingsRepository
	registry     ports.RegistryService
	creditLedger ports.CreditLedger
	fundsLedger  ports.FundsLedger
	authz        ports.AuthorizationPolicy
	publisher    ports.EventPublisher
	transactor   ports.DBTransactor

	escrowAccount   uuid.UUID // custody + operator identity of the engine
	platformAccount uuid.UUID // receives fees
	orderTTL        time.Duration
	log             zerolog.Logger

	// orderLocks guards each order against re-entrant execution for the full
	// duration of an operation, on top of the row locks taken in the
	// transaction.
	orderLocks sync.Map // int64 -> *sync.Mutex

	now func() time.Time
}

// NewTradingService creates a new TradingServiceImpl.
func NewTradingService(
	orderRepo ports.OrderRepository,
	settingsRepo ports.SettingsRepository,
	registry ports.RegistryService,
	creditLedger ports.CreditLedger,
	fundsLedger ports.FundsLedger,
	authz ports.AuthorizationPolicy,
	publisher ports.EventPublisher,
	transactor ports.DBTransactor,
	escrowAccount uuid.UUID,
	platformAccount uuid.UUID,
	orderTTL time.Duration,
	log zerolog.Logger,
) *TradingServiceImpl {
	return &TradingServiceImpl{
		orderRepo:       orderRepo,
		settingsRepo:    settingsRepo,
		registry:        registry,
		creditLedger:    creditLedger,
		fundsLedger:     fundsLedger,
		authz:           authz,
		publisher:       publisher,
		transactor:      transactor,
		escrowAccount:   escrowAccount,
		platformAccount: platformAccount,
		orderTTL:        orderTTL,
		log:             log,
		now:             time.Now,
	}
}

// lockOrder serializes operations on one order id. Returns the unlock func.
func (s *TradingServiceImpl) lockOrder(orderID int64) func() {
	v, _ := s.orderLocks.LoadOrStore(orderID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// CreateSellOrder escrows the seller's credits and records a new open order.
// Precondition ordering: approval, then balance, then pull, then record.
// Custody is only taken once every precondition has passed.
func (s *TradingServiceImpl) CreateSellOrder(ctx context.Context, seller uuid.UUID, req ports.CreateOrderRequest) (*domain.TradeOrder, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load settings: %w", err))
	}
	if settings.Paused {
		return nil, apperror.ErrTradingPaused()
	}

	if req.PricePerCredit == nil || req.PricePerCredit.Sign() <= 0 {
		return nil, apperror.ErrInvalidPrice()
	}
	if req.CreditsAmount <= 0 {
		return nil, apperror.Validation("credits amount must be positive")
	}

	exists, err := s.registry.ProjectExists(ctx, req.ProjectID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperror.ErrProjectNotFound()
	}

	approved, err := s.creditLedger.IsApprovedForAll(ctx, seller, s.escrowAccount)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check approval: %w", err))
	}
	if !approved {
		return nil, apperror.ErrTransferNotApproved()
	}

	balance, err := s.creditLedger.BalanceOf(ctx, seller, req.ProjectID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check balance: %w", err))
	}
	if balance < req.CreditsAmount {
		return nil, apperror.ErrInsufficientBalance(req.CreditsAmount)
	}

	totalPrice, err := domain.CheckedTotalPrice(req.CreditsAmount, req.PricePerCredit)
	if err != nil {
		return nil, apperror.ErrArithmeticOverflow()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	// Pull the listed amount into engine custody. The ledger re-checks
	// balance and approval under the row lock.
	if err := s.creditLedger.TransferFrom(ctx, dbTx, s.escrowAccount, seller, s.escrowAccount, req.ProjectID, req.CreditsAmount); err != nil {
		return nil, apperror.ErrTransferFailed(fmt.Errorf("escrow pull: %w", err))
	}

	now := s.now().UTC()
	order := &domain.TradeOrder{
		Seller:         seller,
		ProjectID:      req.ProjectID,
		CreditsAmount:  req.CreditsAmount,
		PricePerCredit: req.PricePerCredit,
		TotalPrice:     totalPrice,
		Status:         domain.OrderStatusOpen,
		ExpiresAt:      now.Add(s.orderTTL).Unix(),
		CreatedAt:      now,
	}

	id, err := s.orderRepo.Create(ctx, dbTx, order)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create order: %w", err))
	}
	order.ID = id

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.publish(ctx, domain.NewEvent(domain.EventOrderCreated, domain.NewOrderEventData(order, nil)))

	s.log.Info().
		Int64("order_id", order.ID).
		Str("seller", seller.String()).
		Int64("project_id", req.ProjectID).
		Int64("credits", req.CreditsAmount).
		Str("total_price", totalPrice.String()).
		Msg("sell order created")

	return order, nil
}

// ExecuteTrade settles an order: credits move from escrow to the buyer before
// any money moves, then the seller is paid, the platform takes its fee and
// any excess payment is refunded to the buyer. All legs share one
// transaction; a failure in any leg leaves escrow, balances and order state
// untouched.
func (s *TradingServiceImpl) ExecuteTrade(ctx context.Context, buyer uuid.UUID, orderID int64, payment *big.Int) (*domain.TradeOrder, error) {
	if payment == nil || payment.Sign() < 0 {
		return nil, apperror.Validation("payment must be non-negative")
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load settings: %w", err))
	}
	if settings.Paused {
		return nil, apperror.ErrTradingPaused()
	}

	unlock := s.lockOrder(orderID)
	defer unlock()

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	order, err := s.orderRepo.GetByIDForUpdate(ctx, dbTx, orderID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock order: %w", err))
	}
	if order == nil {
		return nil, apperror.ErrInactiveOrder()
	}

	// Lazy expiration: a lapsed order is closed and refunded as a side
	// effect, then the trade itself fails.
	if order.HasLapsed(s.now()) {
		if err := s.closeAndRefund(ctx, dbTx, order, domain.OrderStatusExpired); err != nil {
			return nil, err
		}
		if err := dbTx.Commit(ctx); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
		}
		s.publish(ctx, domain.NewEvent(domain.EventOrderExpired, domain.NewOrderEventData(order, nil)))
		return nil, apperror.ErrInactiveOrder()
	}

	if !order.IsActive() {
		return nil, apperror.ErrInactiveOrder()
	}

	if payment.Cmp(order.TotalPrice) < 0 {
		return nil, apperror.ErrInsufficientPayment()
	}

	fee, proceeds := domain.SplitFee(order.TotalPrice, settings.FeeBps)

	// Asset before money: credits leave escrow first.
	if err := s.creditLedger.TransferFrom(ctx, dbTx, s.escrowAccount, s.escrowAccount, buyer, order.ProjectID, order.CreditsAmount); err != nil {
		return nil, apperror.ErrTransferFailed(fmt.Errorf("deliver credits: %w", err))
	}

	// Collect the declared payment into the clearing account, then pay out.
	if err := s.fundsLedger.Transfer(ctx, dbTx, buyer, s.escrowAccount, payment); err != nil {
		return nil, apperror.ErrTransferFailed(fmt.Errorf("collect payment: %w", err))
	}
	if err := s.fundsLedger.Transfer(ctx, dbTx, s.escrowAccount, order.Seller, proceeds); err != nil {
		return nil, apperror.ErrTransferFailed(fmt.Errorf("pay seller: %w", err))
	}
	if fee.Sign() > 0 {
		if err := s.fundsLedger.Transfer(ctx, dbTx, s.escrowAccount, s.platformAccount, fee); err != nil {
			return nil, apperror.ErrTransferFailed(fmt.Errorf("pay platform fee: %w", err))
		}
	}
	if excess := new(big.Int).Sub(payment, order.TotalPrice); excess.Sign() > 0 {
		if err := s.fundsLedger.Transfer(ctx, dbTx, s.escrowAccount, buyer, excess); err != nil {
			return nil, apperror.ErrRefundFailed(fmt.Errorf("refund excess payment: %w", err))
		}
	}

	if err := s.orderRepo.Close(ctx, dbTx, order.ID, domain.OrderStatusFilled); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("close order: %w", err))
	}
	order.Status = domain.OrderStatusFilled
	order.ExpiresAt = 0

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.publish(ctx, domain.NewEvent(domain.EventOrderFilled, domain.NewOrderEventData(order, &buyer)))

	s.log.Info().
		Int64("order_id", order.ID).
		Str("buyer", buyer.String()).
		Str("seller", order.Seller.String()).
		Str("total_price", order.TotalPrice.String()).
		Str("fee", fee.String()).
		Msg("trade executed")

	return order, nil
}

// RemoveSellOrder cancels an open order and returns the escrowed credits to
// the seller.
func (s *TradingServiceImpl) RemoveSellOrder(ctx context.Context, caller uuid.UUID, orderID int64) (*domain.TradeOrder, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load settings: %w", err))
	}
	if settings.Paused {
		return nil, apperror.ErrTradingPaused()
	}

	unlock := s.lockOrder(orderID)
	defer unlock()

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	order, err := s.orderRepo.GetByIDForUpdate(ctx, dbTx, orderID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock order: %w", err))
	}
	if order == nil || !order.IsActive() {
		return nil, apperror.ErrInactiveOrder()
	}
	if order.Seller != caller {
		return nil, apperror.ErrNotOrderOwner()
	}

	if err := s.closeAndRefund(ctx, dbTx, order, domain.OrderStatusCancelled); err != nil {
		return nil, err
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.publish(ctx, domain.NewEvent(domain.EventOrderClosed, domain.NewOrderEventData(order, nil)))

	s.log.Info().
		Int64("order_id", order.ID).
		Str("seller", caller.String()).
		Msg("sell order cancelled")

	return order, nil
}

// CheckOrderExpiration lazily closes a lapsed order. It is permissionless and
// deliberately not gated by the pause switch so housekeeping stays available.
// Calling it on an inactive or unknown order is a no-op returning false.
func (s *TradingServiceImpl) CheckOrderExpiration(ctx context.Context, orderID int64) (bool, error) {
	unlock := s.lockOrder(orderID)
	defer unlock()

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return false, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	order, err := s.orderRepo.GetByIDForUpdate(ctx, dbTx, orderID)
	if err != nil {
		return false, apperror.InternalError(fmt.Errorf("lock order: %w", err))
	}
	if order == nil || !order.IsActive() {
		return false, nil
	}

	if !order.HasLapsed(s.now()) {
		s.publish(ctx, domain.NewEvent(domain.EventOrderNotExpired, domain.NewOrderEventData(order, nil)))
		return false, nil
	}

	if err := s.closeAndRefund(ctx, dbTx, order, domain.OrderStatusExpired); err != nil {
		return false, err
	}

	if err := dbTx.Commit(ctx); err != nil {
		return false, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.publish(ctx, domain.NewEvent(domain.EventOrderExpired, domain.NewOrderEventData(order, nil)))

	s.log.Info().Int64("order_id", order.ID).Msg("order expired and reclaimed")

	return true, nil
}

// UpdatePlatformFee sets the fee rate, capped at 10%.
func (s *TradingServiceImpl) UpdatePlatformFee(ctx context.Context, caller uuid.UUID, newBps int64) error {
	if err := s.authz.Require(ctx, caller, domain.RoleMarketplaceAdmin); err != nil {
		return err
	}
	if newBps < 0 {
		return apperror.Validation("fee must be non-negative")
	}
	if newBps > domain.FeeBpsHardCap {
		return apperror.ErrFeeCapExceeded()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	settings, err := s.settingsRepo.GetForUpdate(ctx, dbTx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lock settings: %w", err))
	}

	settings.FeeBps = newBps
	settings.UpdatedAt = s.now().UTC()

	if err := s.settingsRepo.Update(ctx, dbTx, settings); err != nil {
		return apperror.InternalError(fmt.Errorf("update settings: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.publish(ctx, domain.NewEvent(domain.EventFeeUpdated, domain.FeeEventData{FeeBps: newBps}))

	return nil
}

// TogglePause flips the pause flag gating order creation, execution and
// cancellation. Expiration housekeeping and admin configuration stay open.
func (s *TradingServiceImpl) TogglePause(ctx context.Context, caller uuid.UUID) (bool, error) {
	if err := s.authz.Require(ctx, caller, domain.RoleMarketplaceAdmin); err != nil {
		return false, err
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return false, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	settings, err := s.settingsRepo.GetForUpdate(ctx, dbTx)
	if err != nil {
		return false, apperror.InternalError(fmt.Errorf("lock settings: %w", err))
	}

	settings.Paused = !settings.Paused
	settings.UpdatedAt = s.now().UTC()

	if err := s.settingsRepo.Update(ctx, dbTx, settings); err != nil {
		return false, apperror.InternalError(fmt.Errorf("update settings: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return false, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.publish(ctx, domain.NewEvent(domain.EventPauseToggled, domain.PauseEventData{Paused: settings.Paused}))

	return settings.Paused, nil
}

// GetOrder returns an order by id.
func (s *TradingServiceImpl) GetOrder(ctx context.Context, orderID int64) (*domain.TradeOrder, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get order: %w", err))
	}
	if order == nil {
		return nil, apperror.ErrNotFound("Order")
	}
	return order, nil
}

// ListOpenOrders returns all active orders.
func (s *TradingServiceImpl) ListOpenOrders(ctx context.Context) ([]domain.TradeOrder, error) {
	orders, err := s.orderRepo.ListOpen(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list orders: %w", err))
	}
	return orders, nil
}

// GetSettings returns the current fee and pause state.
func (s *TradingServiceImpl) GetSettings(ctx context.Context) (*domain.MarketSettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load settings: %w", err))
	}
	return settings, nil
}

// closeAndRefund returns the full escrowed amount to the seller and marks the
// order terminal. Used by cancellation and expiration, which share refund
// semantics. Mutates order.Status/ExpiresAt on success.
func (s *TradingServiceImpl) closeAndRefund(ctx context.Context, dbTx pgx.Tx, order *domain.TradeOrder, status domain.OrderStatus) error {
	if err := s.creditLedger.TransferFrom(ctx, dbTx, s.escrowAccount, s.escrowAccount, order.Seller, order.ProjectID, order.CreditsAmount); err != nil {
		return apperror.ErrRefundFailed(fmt.Errorf("return escrow: %w", err))
	}
	if err := s.orderRepo.Close(ctx, dbTx, order.ID, status); err != nil {
		return apperror.InternalError(fmt.Errorf("close order: %w", err))
	}
	order.Status = status
	order.ExpiresAt = 0
	return nil
}

// publish delivers a notification best-effort.
func (s *TradingServiceImpl) publish(ctx context.Context, event domain.Event) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.log.Warn().Err(err).Str("event", string(event.Type)).Msg("failed to publish notification")
	}
}
