package postgres

import (
	"context"
	"fmt"

	"carbon-credit-exchange/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// SettingsRepo implements ports.SettingsRepository over the single
// market_settings row. Seed is called once at startup, so reads never see an
// empty table.
type SettingsRepo struct {
	pool Pool
}

// NewSettingsRepo creates a new SettingsRepo.
func NewSettingsRepo(pool Pool) *SettingsRepo {
	return &SettingsRepo{pool: pool}
}

// Seed inserts the settings row with the configured initial policy if it does
// not exist yet. An existing row is left untouched so runtime admin changes
// survive restarts.
func (r *SettingsRepo) Seed(ctx context.Context, feeBps int64, paused bool) error {
	query := `
		INSERT INTO market_settings (id, fee_bps, paused, updated_at)
		VALUES (1, $1, $2, NOW())
		ON CONFLICT (id) DO NOTHING`

	if _, err := r.pool.Exec(ctx, query, feeBps, paused); err != nil {
		return fmt.Errorf("seed settings: %w", err)
	}
	return nil
}

// Get returns the current marketplace settings (non-locking read).
func (r *SettingsRepo) Get(ctx context.Context) (*domain.MarketSettings, error) {
	query := `SELECT fee_bps, paused, updated_at FROM market_settings WHERE id = 1`

	s := &domain.MarketSettings{}
	if err := r.pool.QueryRow(ctx, query).Scan(&s.FeeBps, &s.Paused, &s.UpdatedAt); err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return s, nil
}

// GetForUpdate returns the settings row with pessimistic locking.
// This MUST be called within a transaction.
func (r *SettingsRepo) GetForUpdate(ctx context.Context, tx pgx.Tx) (*domain.MarketSettings, error) {
	query := `SELECT fee_bps, paused, updated_at FROM market_settings WHERE id = 1 FOR UPDATE`

	s := &domain.MarketSettings{}
	if err := tx.QueryRow(ctx, query).Scan(&s.FeeBps, &s.Paused, &s.UpdatedAt); err != nil {
		return nil, fmt.Errorf("get settings for update: %w", err)
	}
	return s, nil
}

// Update persists the fee rate and pause flag.
func (r *SettingsRepo) Update(ctx context.Context, tx pgx.Tx, settings *domain.MarketSettings) error {
	query := `UPDATE market_settings SET fee_bps = $1, paused = $2, updated_at = $3 WHERE id = 1`

	if _, err := tx.Exec(ctx, query, settings.FeeBps, settings.Paused, settings.UpdatedAt); err != nil {
		return fmt.Errorf("update settings: %w", err)
	}
	return nil
}
