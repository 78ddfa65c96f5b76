package postgres

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"carbon-credit-exchange/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// FundsLedger implements ports.FundsLedger. Wallet balances are NUMERIC(78,0)
// and cross the driver boundary as decimal strings; settlement transfers run
// on the caller's transaction so all legs of a trade commit together.
type FundsLedger struct {
	pool Pool
}

// NewFundsLedger creates a new FundsLedger.
func NewFundsLedger(pool Pool) *FundsLedger {
	return &FundsLedger{pool: pool}
}

// BalanceOf returns the wallet balance, 0 for accounts without a wallet row.
func (l *FundsLedger) BalanceOf(ctx context.Context, account uuid.UUID) (*big.Int, error) {
	query := `SELECT balance::text FROM wallets WHERE account_id = $1`

	var balanceStr string
	err := l.pool.QueryRow(ctx, query, account).Scan(&balanceStr)
	if errors.Is(err, pgx.ErrNoRows) {
		return big.NewInt(0), nil
	}
	if err != nil {
		return nil, fmt.Errorf("get wallet balance: %w", err)
	}
	return domain.ParseMoney(balanceStr)
}

// Deposit credits an account's wallet, creating it on first use.
func (l *FundsLedger) Deposit(ctx context.Context, account uuid.UUID, amount *big.Int) error {
	if amount == nil || amount.Sign() <= 0 {
		return fmt.Errorf("deposit amount must be positive")
	}

	query := `INSERT INTO wallets (account_id, balance) VALUES ($1, $2::numeric)
		ON CONFLICT (account_id) DO UPDATE SET balance = wallets.balance + EXCLUDED.balance`

	if _, err := l.pool.Exec(ctx, query, account, amount.String()); err != nil {
		return fmt.Errorf("deposit funds: %w", err)
	}
	return nil
}

// Transfer moves funds between wallets. The source wallet is locked for the
// balance check. A zero amount is a no-op.
func (l *FundsLedger) Transfer(ctx context.Context, tx pgx.Tx, from, to uuid.UUID, amount *big.Int) error {
	if amount == nil || amount.Sign() < 0 {
		return fmt.Errorf("transfer amount must be non-negative")
	}
	if amount.Sign() == 0 {
		return nil
	}

	var balanceStr string
	err := tx.QueryRow(ctx,
		`SELECT balance::text FROM wallets WHERE account_id = $1 FOR UPDATE`,
		from,
	).Scan(&balanceStr)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("source wallet %s not found", from)
	}
	if err != nil {
		return fmt.Errorf("lock source wallet: %w", err)
	}

	balance, err := domain.ParseMoney(balanceStr)
	if err != nil {
		return fmt.Errorf("parse wallet balance: %w", err)
	}
	if balance.Cmp(amount) < 0 {
		return fmt.Errorf("insufficient funds: have %s, need %s", balance, amount)
	}

	if _, err := tx.Exec(ctx,
		`UPDATE wallets SET balance = balance - $2::numeric WHERE account_id = $1`,
		from, amount.String(),
	); err != nil {
		return fmt.Errorf("debit source wallet: %w", err)
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO wallets (account_id, balance) VALUES ($1, $2::numeric)
			ON CONFLICT (account_id) DO UPDATE SET balance = wallets.balance + EXCLUDED.balance`,
		to, amount.String(),
	); err != nil {
		return fmt.Errorf("credit destination wallet: %w", err)
	}
	return nil
}
