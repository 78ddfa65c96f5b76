package integration

import (
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"

	"carbon-credit-exchange/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcurrentTradeExecution fires many buyers at the same sell order.
// Exactly one trade may settle; every other attempt must observe the order
// as inactive. Credits and funds must remain conserved afterwards.
func TestConcurrentTradeExecution(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	ownerID, ownerToken := app.registerAccount(t, "concurrency_seller", domain.RoleProjectOwner)
	_, auditorToken := app.registerAccount(t, "concurrency_auditor", domain.RoleAuditor)

	status, envelope := app.request(t, http.MethodPost, "/api/v1/projects", ownerToken, map[string]interface{}{
		"carbon_removed":           1000,
		"evidence_ref":             "ipfs://QmConcurrency",
		"external_verification_id": "verra-2026-100",
	})
	require.Equal(t, http.StatusCreated, status)
	projectID := int64(data(t, envelope)["id"].(float64))

	status, _ = app.request(t, http.MethodPost, fmt.Sprintf("/api/v1/projects/%d/accept", projectID), auditorToken, nil)
	require.Equal(t, http.StatusOK, status)

	status, _ = app.request(t, http.MethodPut, "/api/v1/wallet/approvals", ownerToken, map[string]interface{}{
		"operator": app.escrowAccount.String(),
		"approved": true,
	})
	require.Equal(t, http.StatusOK, status)

	status, envelope = app.request(t, http.MethodPost, "/api/v1/orders", ownerToken, map[string]interface{}{
		"project_id":       projectID,
		"credits_amount":   100,
		"price_per_credit": "10",
	})
	require.Equal(t, http.StatusCreated, status)
	orderID := int64(data(t, envelope)["id"].(float64))

	const buyers = 20
	buyerIDs := make([]uuid.UUID, buyers)
	buyerTokens := make([]string, buyers)
	for i := 0; i < buyers; i++ {
		buyerIDs[i], buyerTokens[i] = app.registerAccount(t, fmt.Sprintf("concurrent_buyer_%d", i))
		status, _ = app.request(t, http.MethodPost, "/api/v1/wallet/deposit", buyerTokens[i], map[string]string{
			"amount": "1000",
		})
		require.Equal(t, http.StatusOK, status)
	}

	var filled, rejected int64
	var wg sync.WaitGroup
	wg.Add(buyers)
	for i := 0; i < buyers; i++ {
		go func(idx int) {
			defer wg.Done()
			code, _ := app.request(t, http.MethodPost, fmt.Sprintf("/api/v1/orders/%d/execute", orderID), buyerTokens[idx], map[string]string{
				"payment": "1000",
			})
			switch code {
			case http.StatusOK:
				atomic.AddInt64(&filled, 1)
			case http.StatusConflict:
				atomic.AddInt64(&rejected, 1)
			default:
				t.Errorf("unexpected status %d from buyer %d", code, idx)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int64(1), filled, "exactly one trade must settle")
	assert.Equal(t, int64(buyers-1), rejected)

	// Escrow is empty and exactly one buyer holds the credits
	escrowBalance, err := app.creditLedger.BalanceOf(t.Context(), app.escrowAccount, projectID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), escrowBalance)

	winners := 0
	for _, buyerID := range buyerIDs {
		balance, err := app.creditLedger.BalanceOf(t.Context(), buyerID, projectID)
		require.NoError(t, err)
		if balance > 0 {
			assert.Equal(t, int64(100), balance)
			winners++
		}
	}
	assert.Equal(t, 1, winners)

	// Funds conservation: 1000 paid, 12 fee (120 bps), 988 to the seller
	platformBalance, err := app.fundsLedger.BalanceOf(t.Context(), app.platformAccount)
	require.NoError(t, err)
	assert.Equal(t, "12", platformBalance.String())

	sellerBalance, err := app.fundsLedger.BalanceOf(t.Context(), ownerID)
	require.NoError(t, err)
	assert.Equal(t, "988", sellerBalance.String())
}

// TestConcurrentOrderCreation verifies escrow never over-pulls when the same
// seller lists overlapping amounts in parallel.
func TestConcurrentOrderCreation(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	ownerID, ownerToken := app.registerAccount(t, "parallel_seller", domain.RoleProjectOwner)
	_, auditorToken := app.registerAccount(t, "parallel_auditor", domain.RoleAuditor)

	status, envelope := app.request(t, http.MethodPost, "/api/v1/projects", ownerToken, map[string]interface{}{
		"carbon_removed":           100,
		"evidence_ref":             "ipfs://QmParallel",
		"external_verification_id": "verra-2026-101",
	})
	require.Equal(t, http.StatusCreated, status)
	projectID := int64(data(t, envelope)["id"].(float64))

	status, _ = app.request(t, http.MethodPost, fmt.Sprintf("/api/v1/projects/%d/accept", projectID), auditorToken, nil)
	require.Equal(t, http.StatusOK, status)
	// 90 credits issued

	status, _ = app.request(t, http.MethodPut, "/api/v1/wallet/approvals", ownerToken, map[string]interface{}{
		"operator": app.escrowAccount.String(),
		"approved": true,
	})
	require.Equal(t, http.StatusOK, status)

	const attempts = 5
	var created int64
	var wg sync.WaitGroup
	wg.Add(attempts)
	for i := 0; i < attempts; i++ {
		go func() {
			defer wg.Done()
			code, _ := app.request(t, http.MethodPost, "/api/v1/orders", ownerToken, map[string]interface{}{
				"project_id":       projectID,
				"credits_amount":   60,
				"price_per_credit": "10",
			})
			if code == http.StatusCreated {
				atomic.AddInt64(&created, 1)
			}
		}()
	}
	wg.Wait()

	// Only one 60-credit listing fits into a 90-credit balance
	assert.Equal(t, int64(1), created)

	ownerBalance, err := app.creditLedger.BalanceOf(t.Context(), ownerID, projectID)
	require.NoError(t, err)
	escrowBalance, err := app.creditLedger.BalanceOf(t.Context(), app.escrowAccount, projectID)
	require.NoError(t, err)
	assert.Equal(t, int64(30), ownerBalance)
	assert.Equal(t, int64(60), escrowBalance)
}
