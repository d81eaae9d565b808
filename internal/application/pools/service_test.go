package pools

import (
	"context"
	"errors"
	"testing"

	"mudarabah-backend/internal/domain"
	"mudarabah-backend/internal/infrastructure/database"
	"mudarabah-backend/internal/infrastructure/seed"
	"mudarabah-backend/internal/infrastructure/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupPoolsService(t *testing.T) *Service {
	db, err := database.OpenMemory()
	require.NoError(t, err)
	st := store.New(db)
	require.NoError(t, seed.Run(context.Background(), st, seed.Config{Username: "demo", Password: "demo123"}))
	return &Service{Store: st}
}

func TestGetPool_NotFound(t *testing.T) {
	s := setupPoolsService(t)
	_, err := s.GetPool(context.Background(), 9)
	assert.True(t, errors.Is(err, domain.ErrPoolNotFound))
}

func TestProject_UsesPoolRates(t *testing.T) {
	s := setupPoolsService(t)
	pp, err := s.Project(context.Background(), 1, decimal.NewFromInt(100000))
	require.NoError(t, err)
	assert.Equal(t, 20, pp.Slots)
	assert.True(t, pp.Projection.MinProfit.Equal(decimal.NewFromInt(18000)))
	assert.True(t, pp.Projection.MaxProfit.Equal(decimal.NewFromInt(24000)))
	assert.True(t, pp.Units.TotalProfit.Equal(decimal.NewFromInt(55000)))
}

func TestProject_DoesNotTouchPool(t *testing.T) {
	s := setupPoolsService(t)
	_, err := s.Project(context.Background(), 1, decimal.NewFromInt(500000))
	require.NoError(t, err)

	p, err := s.GetPool(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 300, p.Slots)
	assert.True(t, p.Total.IsZero())
}

func TestPortfolio_EmptyUser(t *testing.T) {
	s := setupPoolsService(t)
	summary, err := s.Portfolio(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Investments)
	assert.Empty(t, summary.Holdings)
}
