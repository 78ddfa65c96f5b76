package integration

import (
	"context"
	"fmt"
	"math/big"
	"sync"

	"carbon-credit-exchange/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// --- In-Memory Project Repo ---

type inMemoryProjectRepo struct {
	mu           sync.RWMutex
	nextID       int64
	projects     map[int64]*domain.Project
	fingerprints map[string]bool
}

func newInMemoryProjectRepo() *inMemoryProjectRepo {
	return &inMemoryProjectRepo{
		nextID:       1,
		projects:     make(map[int64]*domain.Project),
		fingerprints: make(map[string]bool),
	}
}

func (r *inMemoryProjectRepo) Create(ctx context.Context, tx pgx.Tx, project *domain.Project) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.nextID
	r.nextID++
	cp := *project
	cp.ID = id
	r.projects[id] = &cp
	r.fingerprints[project.Fingerprint] = true
	return id, nil
}

func (r *inMemoryProjectRepo) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.projects[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *inMemoryProjectRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id int64) (*domain.Project, error) {
	return r.GetByID(ctx, id)
}

func (r *inMemoryProjectRepo) Update(ctx context.Context, tx pgx.Tx, project *domain.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.projects[project.ID]; !ok {
		return fmt.Errorf("project %d not found", project.ID)
	}
	cp := *project
	r.projects[project.ID] = &cp
	return nil
}

func (r *inMemoryProjectRepo) FingerprintExists(ctx context.Context, fingerprint string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.fingerprints[fingerprint], nil
}

func (r *inMemoryProjectRepo) ListByOwner(ctx context.Context, owner uuid.UUID) ([]domain.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.Project
	for _, p := range r.projects {
		if p.Owner == owner {
			result = append(result, *p)
		}
	}
	return result, nil
}

// --- In-Memory Order Repo ---

type inMemoryOrderRepo struct {
	mu     sync.RWMutex
	nextID int64
	orders map[int64]*domain.TradeOrder
}

func newInMemoryOrderRepo() *inMemoryOrderRepo {
	return &inMemoryOrderRepo{nextID: 1, orders: make(map[int64]*domain.TradeOrder)}
}

func (r *inMemoryOrderRepo) Create(ctx context.Context, tx pgx.Tx, order *domain.TradeOrder) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.nextID
	r.nextID++
	cp := *order
	cp.ID = id
	r.orders[id] = &cp
	return id, nil
}

func (r *inMemoryOrderRepo) GetByID(ctx context.Context, id int64) (*domain.TradeOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *inMemoryOrderRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id int64) (*domain.TradeOrder, error) {
	return r.GetByID(ctx, id)
}

func (r *inMemoryOrderRepo) Close(ctx context.Context, tx pgx.Tx, id int64, status domain.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return fmt.Errorf("order %d not found", id)
	}
	o.Status = status
	o.ExpiresAt = 0
	return nil
}

func (r *inMemoryOrderRepo) ListOpen(ctx context.Context) ([]domain.TradeOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.TradeOrder
	for _, o := range r.orders {
		if o.Status == domain.OrderStatusOpen {
			result = append(result, *o)
		}
	}
	return result, nil
}

// --- In-Memory Settings Repo ---

type inMemorySettingsRepo struct {
	mu       sync.RWMutex
	settings domain.MarketSettings
}

func newInMemorySettingsRepo(feeBps int64) *inMemorySettingsRepo {
	return &inMemorySettingsRepo{settings: domain.MarketSettings{FeeBps: feeBps}}
}

func (r *inMemorySettingsRepo) Get(ctx context.Context) (*domain.MarketSettings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cp := r.settings
	return &cp, nil
}

func (r *inMemorySettingsRepo) GetForUpdate(ctx context.Context, tx pgx.Tx) (*domain.MarketSettings, error) {
	return r.Get(ctx)
}

func (r *inMemorySettingsRepo) Update(ctx context.Context, tx pgx.Tx, settings *domain.MarketSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings = *settings
	return nil
}

// --- In-Memory Account Repo ---

type inMemoryAccountRepo struct {
	mu       sync.RWMutex
	accounts map[uuid.UUID]*domain.Account
}

func newInMemoryAccountRepo() *inMemoryAccountRepo {
	return &inMemoryAccountRepo{accounts: make(map[uuid.UUID]*domain.Account)}
}

func (r *inMemoryAccountRepo) Create(ctx context.Context, account *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.accounts {
		if a.Username == account.Username {
			return fmt.Errorf("username already exists")
		}
	}
	cp := *account
	r.accounts[account.ID] = &cp
	return nil
}

func (r *inMemoryAccountRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.accounts[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *inMemoryAccountRepo) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.accounts {
		if a.Username == username {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

// --- In-Memory Role Repo ---

type roleKey struct {
	account uuid.UUID
	role    domain.Role
}

type inMemoryRoleRepo struct {
	mu    sync.RWMutex
	roles map[roleKey]bool
}

func newInMemoryRoleRepo() *inMemoryRoleRepo {
	return &inMemoryRoleRepo{roles: make(map[roleKey]bool)}
}

func (r *inMemoryRoleRepo) Grant(ctx context.Context, account uuid.UUID, role domain.Role) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.roles[roleKey{account, role}] = true
	return nil
}

func (r *inMemoryRoleRepo) Revoke(ctx context.Context, account uuid.UUID, role domain.Role) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.roles, roleKey{account, role})
	return nil
}

func (r *inMemoryRoleRepo) HasRole(ctx context.Context, account uuid.UUID, role domain.Role) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.roles[roleKey{account, role}], nil
}

func (r *inMemoryRoleRepo) RolesOf(ctx context.Context, account uuid.UUID) ([]domain.Role, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.Role
	for k := range r.roles {
		if k.account == account {
			result = append(result, k.role)
		}
	}
	return result, nil
}

// --- In-Memory Credit Ledger ---

type creditKey struct {
	account   uuid.UUID
	projectID int64
}

type approvalKey struct {
	owner    uuid.UUID
	operator uuid.UUID
}

type inMemoryCreditLedger struct {
	mu        sync.RWMutex
	balances  map[creditKey]int64
	approvals map[approvalKey]bool
	supplies  map[int64]int64
}

func newInMemoryCreditLedger() *inMemoryCreditLedger {
	return &inMemoryCreditLedger{
		balances:  make(map[creditKey]int64),
		approvals: make(map[approvalKey]bool),
		supplies:  make(map[int64]int64),
	}
}

func (l *inMemoryCreditLedger) BalanceOf(ctx context.Context, owner uuid.UUID, projectID int64) (int64, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.balances[creditKey{owner, projectID}], nil
}

func (l *inMemoryCreditLedger) IsApprovedForAll(ctx context.Context, owner, operator uuid.UUID) (bool, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.approvals[approvalKey{owner, operator}], nil
}

func (l *inMemoryCreditLedger) SetApprovalForAll(ctx context.Context, owner, operator uuid.UUID, approved bool) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.approvals[approvalKey{owner, operator}] = approved
	return nil
}

func (l *inMemoryCreditLedger) TransferFrom(ctx context.Context, tx pgx.Tx, operator, from, to uuid.UUID, projectID, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("transfer amount must be positive")
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if operator != from && !l.approvals[approvalKey{from, operator}] {
		return fmt.Errorf("operator %s not approved by %s", operator, from)
	}
	src := creditKey{from, projectID}
	if l.balances[src] < amount {
		return fmt.Errorf("insufficient credit balance: have %d, need %d", l.balances[src], amount)
	}
	l.balances[src] -= amount
	l.balances[creditKey{to, projectID}] += amount
	return nil
}

func (l *inMemoryCreditLedger) Mint(ctx context.Context, tx pgx.Tx, account uuid.UUID, projectID, amount, supplyCap int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.supplies[projectID]+amount > supplyCap {
		return fmt.Errorf("mint would exceed supply cap: %d + %d > %d", l.supplies[projectID], amount, supplyCap)
	}
	l.supplies[projectID] += amount
	l.balances[creditKey{account, projectID}] += amount
	return nil
}

func (l *inMemoryCreditLedger) SupplyOf(ctx context.Context, tx pgx.Tx, projectID int64) (int64, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.supplies[projectID], nil
}

// --- In-Memory Funds Ledger ---

type inMemoryFundsLedger struct {
	mu      sync.RWMutex
	wallets map[uuid.UUID]*big.Int
}

func newInMemoryFundsLedger() *inMemoryFundsLedger {
	return &inMemoryFundsLedger{wallets: make(map[uuid.UUID]*big.Int)}
}

func (l *inMemoryFundsLedger) BalanceOf(ctx context.Context, account uuid.UUID) (*big.Int, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	b, ok := l.wallets[account]
	if !ok {
		return big.NewInt(0), nil
	}
	return new(big.Int).Set(b), nil
}

func (l *inMemoryFundsLedger) Deposit(ctx context.Context, account uuid.UUID, amount *big.Int) error {
	if amount == nil || amount.Sign() <= 0 {
		return fmt.Errorf("deposit amount must be positive")
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	b, ok := l.wallets[account]
	if !ok {
		b = big.NewInt(0)
		l.wallets[account] = b
	}
	b.Add(b, amount)
	return nil
}

func (l *inMemoryFundsLedger) Transfer(ctx context.Context, tx pgx.Tx, from, to uuid.UUID, amount *big.Int) error {
	if amount == nil || amount.Sign() < 0 {
		return fmt.Errorf("transfer amount must be non-negative")
	}
	if amount.Sign() == 0 {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	src, ok := l.wallets[from]
	if !ok || src.Cmp(amount) < 0 {
		return fmt.Errorf("insufficient funds")
	}
	src.Sub(src, amount)
	dst, ok := l.wallets[to]
	if !ok {
		dst = big.NewInt(0)
		l.wallets[to] = dst
	}
	dst.Add(dst, amount)
	return nil
}

// --- In-Memory Transactor (no-op tx) ---

type inMemoryTransactor struct{}

func newInMemoryTransactor() *inMemoryTransactor {
	return &inMemoryTransactor{}
}

func (t *inMemoryTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	return &noopTx{}, nil
}

// noopTx is a no-op pgx.Tx implementation for in-memory testing.
type noopTx struct{}

func (t *noopTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *noopTx) Commit(ctx context.Context) error          { return nil }
func (t *noopTx) Rollback(ctx context.Context) error        { return nil }
func (t *noopTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *noopTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *noopTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *noopTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *noopTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *noopTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *noopTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *noopTx) Conn() *pgx.Conn { return nil }
