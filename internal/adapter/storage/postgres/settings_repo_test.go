package postgres

import (
	"context"
	"testing"
	"time"

	"carbon-credit-exchange/internal/core/domain"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsRepo_Get(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSettingsRepo(mock)
	now := time.Now().UTC()

	mock.ExpectQuery("SELECT fee_bps, paused, updated_at FROM market_settings").
		WillReturnRows(pgxmock.NewRows([]string{"fee_bps", "paused", "updated_at"}).
			AddRow(int64(120), false, now))

	settings, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(120), settings.FeeBps)
	assert.False(t, settings.Paused)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettingsRepo_GetForUpdate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSettingsRepo(mock)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT fee_bps, paused, updated_at FROM market_settings .+ FOR UPDATE").
		WillReturnRows(pgxmock.NewRows([]string{"fee_bps", "paused", "updated_at"}).
			AddRow(int64(250), true, time.Now().UTC()))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	settings, err := repo.GetForUpdate(context.Background(), tx)
	require.NoError(t, err)
	assert.Equal(t, int64(250), settings.FeeBps)
	assert.True(t, settings.Paused)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettingsRepo_Update(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSettingsRepo(mock)
	settings := &domain.MarketSettings{FeeBps: 250, Paused: true, UpdatedAt: time.Now().UTC()}

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE market_settings").
		WithArgs(settings.FeeBps, settings.Paused, settings.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Update(context.Background(), tx, settings)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
