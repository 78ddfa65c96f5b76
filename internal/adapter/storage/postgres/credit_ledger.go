package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CreditLedger implements ports.CreditLedger. Balances are rows keyed by
// (account_id, project_id); per-project supply lives in its own table so the
// issuance cap can be enforced under a row lock. Transfer and mint run on the
// caller's transaction and roll back with it.
type CreditLedger struct {
	pool Pool
}

// NewCreditLedger creates a new CreditLedger.
func NewCreditLedger(pool Pool) *CreditLedger {
	return &CreditLedger{pool: pool}
}

// BalanceOf returns the credit balance of one project class, 0 when the
// account never held any.
func (l *CreditLedger) BalanceOf(ctx context.Context, owner uuid.UUID, projectID int64) (int64, error) {
	query := `SELECT COALESCE(
		(SELECT balance FROM credit_balances WHERE account_id = $1 AND project_id = $2), 0)`

	var balance int64
	if err := l.pool.QueryRow(ctx, query, owner, projectID).Scan(&balance); err != nil {
		return 0, fmt.Errorf("get credit balance: %w", err)
	}
	return balance, nil
}

// IsApprovedForAll reports whether operator may move any of owner's credits.
func (l *CreditLedger) IsApprovedForAll(ctx context.Context, owner, operator uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(
		SELECT 1 FROM credit_approvals WHERE owner = $1 AND operator = $2 AND approved)`

	var approved bool
	if err := l.pool.QueryRow(ctx, query, owner, operator).Scan(&approved); err != nil {
		return false, fmt.Errorf("check approval: %w", err)
	}
	return approved, nil
}

// SetApprovalForAll grants or revokes operator approval for all of owner's
// project classes.
func (l *CreditLedger) SetApprovalForAll(ctx context.Context, owner, operator uuid.UUID, approved bool) error {
	query := `INSERT INTO credit_approvals (owner, operator, approved) VALUES ($1, $2, $3)
		ON CONFLICT (owner, operator) DO UPDATE SET approved = EXCLUDED.approved`

	if _, err := l.pool.Exec(ctx, query, owner, operator, approved); err != nil {
		return fmt.Errorf("set approval: %w", err)
	}
	return nil
}

// TransferFrom moves credit units of one project class between accounts. The
// operator must be the source account itself or hold an approval from it.
// The source row is locked for the balance check.
func (l *CreditLedger) TransferFrom(ctx context.Context, tx pgx.Tx, operator, from, to uuid.UUID, projectID, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("transfer amount must be positive, got %d", amount)
	}

	if operator != from {
		var approved bool
		query := `SELECT EXISTS(
			SELECT 1 FROM credit_approvals WHERE owner = $1 AND operator = $2 AND approved)`
		if err := tx.QueryRow(ctx, query, from, operator).Scan(&approved); err != nil {
			return fmt.Errorf("check approval: %w", err)
		}
		if !approved {
			return fmt.Errorf("operator %s not approved by %s", operator, from)
		}
	}

	var balance int64
	err := tx.QueryRow(ctx,
		`SELECT balance FROM credit_balances WHERE account_id = $1 AND project_id = $2 FOR UPDATE`,
		from, projectID,
	).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		balance = 0
		err = nil
	}
	if err != nil {
		return fmt.Errorf("lock source balance: %w", err)
	}
	if balance < amount {
		return fmt.Errorf("insufficient credit balance: have %d, need %d", balance, amount)
	}

	if _, err := tx.Exec(ctx,
		`UPDATE credit_balances SET balance = balance - $3 WHERE account_id = $1 AND project_id = $2`,
		from, projectID, amount,
	); err != nil {
		return fmt.Errorf("debit source: %w", err)
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO credit_balances (account_id, project_id, balance) VALUES ($1, $2, $3)
			ON CONFLICT (account_id, project_id) DO UPDATE SET balance = credit_balances.balance + EXCLUDED.balance`,
		to, projectID, amount,
	); err != nil {
		return fmt.Errorf("credit destination: %w", err)
	}
	return nil
}

// Mint credits newly issued units to an account, enforcing the per-project
// supply cap under a row lock.
func (l *CreditLedger) Mint(ctx context.Context, tx pgx.Tx, account uuid.UUID, projectID, amount, supplyCap int64) error {
	if amount <= 0 {
		return fmt.Errorf("mint amount must be positive, got %d", amount)
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO credit_supplies (project_id, supply) VALUES ($1, 0)
			ON CONFLICT (project_id) DO NOTHING`,
		projectID,
	); err != nil {
		return fmt.Errorf("ensure supply row: %w", err)
	}

	var supply int64
	if err := tx.QueryRow(ctx,
		`SELECT supply FROM credit_supplies WHERE project_id = $1 FOR UPDATE`,
		projectID,
	).Scan(&supply); err != nil {
		return fmt.Errorf("lock supply: %w", err)
	}
	if supply+amount > supplyCap {
		return fmt.Errorf("mint would exceed supply cap: %d + %d > %d", supply, amount, supplyCap)
	}

	if _, err := tx.Exec(ctx,
		`UPDATE credit_supplies SET supply = supply + $2 WHERE project_id = $1`,
		projectID, amount,
	); err != nil {
		return fmt.Errorf("update supply: %w", err)
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO credit_balances (account_id, project_id, balance) VALUES ($1, $2, $3)
			ON CONFLICT (account_id, project_id) DO UPDATE SET balance = credit_balances.balance + EXCLUDED.balance`,
		account, projectID, amount,
	); err != nil {
		return fmt.Errorf("credit minted units: %w", err)
	}
	return nil
}

// SupplyOf returns the total minted supply of a project class.
func (l *CreditLedger) SupplyOf(ctx context.Context, tx pgx.Tx, projectID int64) (int64, error) {
	query := `SELECT COALESCE((SELECT supply FROM credit_supplies WHERE project_id = $1), 0)`

	var supply int64
	if err := tx.QueryRow(ctx, query, projectID).Scan(&supply); err != nil {
		return 0, fmt.Errorf("get supply: %w", err)
	}
	return supply, nil
}
