package postgres

import (
	"context"
	"errors"
	"fmt"

	"carbon-credit-exchange/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// OrderRepo implements ports.OrderRepository. Prices are NUMERIC(78,0) in the
// database and cross the driver boundary as decimal strings so arbitrary
// precision survives the round trip.
type OrderRepo struct {
	pool Pool
}

// NewOrderRepo creates a new OrderRepo.
func NewOrderRepo(pool Pool) *OrderRepo {
	return &OrderRepo{pool: pool}
}

const orderColumns = `id, seller, project_id, credits_amount, price_per_credit::text, total_price::text, status, expires_at, created_at`

func scanOrder(row pgx.Row) (*domain.TradeOrder, error) {
	o := &domain.TradeOrder{}
	var priceStr, totalStr string
	err := row.Scan(
		&o.ID, &o.Seller, &o.ProjectID, &o.CreditsAmount,
		&priceStr, &totalStr, &o.Status, &o.ExpiresAt, &o.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if o.PricePerCredit, err = domain.ParseMoney(priceStr); err != nil {
		return nil, fmt.Errorf("parse price_per_credit: %w", err)
	}
	if o.TotalPrice, err = domain.ParseMoney(totalStr); err != nil {
		return nil, fmt.Errorf("parse total_price: %w", err)
	}
	return o, nil
}

// Create inserts a new order and returns the assigned id.
func (r *OrderRepo) Create(ctx context.Context, tx pgx.Tx, order *domain.TradeOrder) (int64, error) {
	query := `INSERT INTO trade_orders (seller, project_id, credits_amount, price_per_credit, total_price, status, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	var id int64
	err := tx.QueryRow(ctx, query,
		order.Seller, order.ProjectID, order.CreditsAmount,
		order.PricePerCredit.String(), order.TotalPrice.String(),
		order.Status, order.ExpiresAt, order.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert order: %w", err)
	}
	return id, nil
}

// GetByID fetches an order by id (non-locking read).
func (r *OrderRepo) GetByID(ctx context.Context, id int64) (*domain.TradeOrder, error) {
	query := `SELECT ` + orderColumns + ` FROM trade_orders WHERE id = $1`

	o, err := scanOrder(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order by id: %w", err)
	}
	return o, nil
}

// GetByIDForUpdate fetches an order by id with pessimistic locking.
// This MUST be called within a transaction.
func (r *OrderRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id int64) (*domain.TradeOrder, error) {
	query := `SELECT ` + orderColumns + ` FROM trade_orders WHERE id = $1 FOR UPDATE`

	o, err := scanOrder(tx.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order for update: %w", err)
	}
	return o, nil
}

// Close marks an order terminal and clears the expiration sentinel.
func (r *OrderRepo) Close(ctx context.Context, tx pgx.Tx, id int64, status domain.OrderStatus) error {
	query := `UPDATE trade_orders SET status = $2, expires_at = 0 WHERE id = $1`

	tag, err := tx.Exec(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("close order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("close order: id %d not found", id)
	}
	return nil
}

// ListOpen returns all open orders, oldest first.
func (r *OrderRepo) ListOpen(ctx context.Context) ([]domain.TradeOrder, error) {
	query := `SELECT ` + orderColumns + ` FROM trade_orders WHERE status = $1 ORDER BY id`

	rows, err := r.pool.Query(ctx, query, domain.OrderStatusOpen)
	if err != nil {
		return nil, fmt.Errorf("list open orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.TradeOrder
	for rows.Next() {
		o := domain.TradeOrder{}
		var priceStr, totalStr string
		if err := rows.Scan(
			&o.ID, &o.Seller, &o.ProjectID, &o.CreditsAmount,
			&priceStr, &totalStr, &o.Status, &o.ExpiresAt, &o.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		if o.PricePerCredit, err = domain.ParseMoney(priceStr); err != nil {
			return nil, fmt.Errorf("parse price_per_credit: %w", err)
		}
		if o.TotalPrice, err = domain.ParseMoney(totalStr); err != nil {
			return nil, fmt.Errorf("parse total_price: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate orders: %w", err)
	}
	return orders, nil
}
