package pools

import (
	"context"

	"mudarabah-backend/internal/application/capacity"
	"mudarabah-backend/internal/application/projection"
	"mudarabah-backend/internal/domain"
	"mudarabah-backend/internal/infrastructure/store"

	"github.com/shopspring/decimal"
)

// Service answers read-only questions about pools. It never mutates them.
type Service struct {
	Store *store.Store
}

func (s *Service) ListPools(ctx context.Context) ([]domain.Pool, error) {
	return s.Store.GetPools(ctx)
}

// GetPool returns ErrPoolNotFound (as a *domain.NotFoundError) for unknown ids.
func (s *Service) GetPool(ctx context.Context, id int64) (*domain.Pool, error) {
	pool, err := s.Store.GetPool(ctx, id)
	if err != nil {
		return nil, err
	}
	if pool == nil {
		return nil, domain.PoolNotFound(id)
	}
	return pool, nil
}

// Project reports what amount would earn in the pool. The amount is not
// checked against capacity; a projection is not an offer.
func (s *Service) Project(ctx context.Context, id int64, amount decimal.Decimal) (*projection.PoolProjection, error) {
	pool, err := s.GetPool(ctx, id)
	if err != nil {
		return nil, err
	}
	pp := projection.ForPool(amount, pool, capacity.SlotsConsumed(amount))
	return &pp, nil
}

func (s *Service) Events(ctx context.Context, id int64) ([]domain.PoolEvent, error) {
	if _, err := s.GetPool(ctx, id); err != nil {
		return nil, err
	}
	return s.Store.GetPoolEvents(ctx, id)
}

// Portfolio summarises a user's investments across all pools.
func (s *Service) Portfolio(ctx context.Context, userID int64) (projection.Summary, error) {
	investments, err := s.Store.GetInvestmentsByUser(ctx, userID)
	if err != nil {
		return projection.Summary{}, err
	}
	all, err := s.Store.GetPools(ctx)
	if err != nil {
		return projection.Summary{}, err
	}
	return projection.Portfolio(investments, all), nil
}
