package ledger

import (
	"context"
	"time"

	"mudarabah-backend/internal/application/capacity"
	"mudarabah-backend/internal/domain"
	"mudarabah-backend/internal/infrastructure/store"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Service is the only writer of investments and of pool capacity fields.
type Service struct {
	Store *store.Store
	Now   func() time.Time
}

type CreateInvestmentInput struct {
	UserID int64
	PoolID int64
	Amount decimal.Decimal
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// CreateInvestment validates the amount against the pool and, in one
// critical section, records the investment and moves the pool's total,
// investors and slots. On any error nothing is written.
func (s *Service) CreateInvestment(ctx context.Context, in CreateInvestmentInput) (*domain.Investment, error) {
	var created *domain.Investment

	err := s.Store.Atomic(ctx, func(tx *store.Store) error {
		pool, err := tx.GetPool(ctx, in.PoolID)
		if err != nil {
			return err
		}
		if pool == nil {
			return domain.PoolNotFound(in.PoolID)
		}

		user, err := tx.GetUser(ctx, in.UserID)
		if err != nil {
			return err
		}
		if user == nil {
			return domain.UserNotFound(in.UserID)
		}

		if err := capacity.Validate(pool, in.Amount); err != nil {
			return err
		}

		inv := domain.NewInvestment(in.UserID, in.PoolID, in.Amount, s.now())
		if err := tx.CreateInvestment(ctx, inv); err != nil {
			return err
		}

		slots := capacity.SlotsConsumed(in.Amount)
		total := pool.Total.Add(in.Amount)
		investors := pool.Investors + 1
		remainingSlots := pool.Slots - slots
		updated, err := tx.UpdatePool(ctx, pool.ID, domain.PoolPatch{
			Total:     &total,
			Investors: &investors,
			Slots:     &remainingSlots,
		})
		if err != nil {
			return err
		}

		if err := tx.CreatePoolEvent(ctx, domain.NewPoolEvent(pool.ID, in.UserID, inv.ID, domain.PoolEventInvested, map[string]interface{}{
			"amount":          in.Amount,
			"slots_consumed":  slots,
			"new_total":       updated.Total,
			"slots_remaining": updated.Slots,
			"status":          updated.Status,
		})); err != nil {
			return err
		}

		created = inv
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Int64("investment_id", created.ID).
		Int64("user_id", created.UserID).
		Int64("pool_id", created.PoolID).
		Str("amount", created.Amount.String()).
		Msg("investment created")
	return created, nil
}

// GetInvestmentsByUser lists a user's investments, oldest first. Unknown
// users simply have none.
func (s *Service) GetInvestmentsByUser(ctx context.Context, userID int64) ([]domain.Investment, error) {
	return s.Store.GetInvestmentsByUser(ctx, userID)
}
