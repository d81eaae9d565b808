package rollback

import (
	"context"

	"mudarabah-backend/internal/application/capacity"
	"mudarabah-backend/internal/domain"
	"mudarabah-backend/internal/infrastructure/store"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type Service struct {
	Store *store.Store
}

// ResetForUser reverses every investment the user holds and deletes them,
// giving each pool back its total, investor count and slots. When no
// investments remain anywhere afterwards, every pool returns to its seed
// state. Returns how many investments were reversed.
func (s *Service) ResetForUser(ctx context.Context, userID int64) (int, error) {
	reversed := 0
	globalReset := false

	err := s.Store.Atomic(ctx, func(tx *store.Store) error {
		investments, err := tx.GetInvestmentsByUser(ctx, userID)
		if err != nil {
			return err
		}

		for _, inv := range investments {
			pool, err := tx.GetPool(ctx, inv.PoolID)
			if err != nil {
				return err
			}
			if pool != nil {
				if err := reverse(ctx, tx, pool, &inv); err != nil {
					return err
				}
			}
			if err := tx.DeleteInvestment(ctx, inv.ID); err != nil {
				return err
			}
			reversed++
		}

		remaining, err := tx.CountInvestments(ctx)
		if err != nil {
			return err
		}
		if remaining > 0 {
			return nil
		}

		if _, err := tx.ResetPoolsToSeed(ctx); err != nil {
			return err
		}
		pools, err := tx.GetPools(ctx)
		if err != nil {
			return err
		}
		for _, p := range pools {
			if err := tx.CreatePoolEvent(ctx, domain.NewPoolEvent(p.ID, userID, 0, domain.PoolEventReset, map[string]interface{}{
				"slots": p.Slots,
			})); err != nil {
				return err
			}
		}
		globalReset = true
		return nil
	})
	if err != nil {
		return 0, err
	}

	log.Info().
		Int64("user_id", userID).
		Int("reversed", reversed).
		Bool("pools_reset", globalReset).
		Msg("user investments reset")
	return reversed, nil
}

func reverse(ctx context.Context, tx *store.Store, pool *domain.Pool, inv *domain.Investment) error {
	total := pool.Total.Sub(inv.Amount)
	if total.IsNegative() {
		total = decimal.Zero
	}
	investors := pool.Investors - 1
	if investors < 0 {
		investors = 0
	}
	slots := pool.Slots + capacity.SlotsConsumed(inv.Amount)

	updated, err := tx.UpdatePool(ctx, pool.ID, domain.PoolPatch{
		Total:     &total,
		Investors: &investors,
		Slots:     &slots,
	})
	if err != nil {
		return err
	}
	return tx.CreatePoolEvent(ctx, domain.NewPoolEvent(pool.ID, inv.UserID, inv.ID, domain.PoolEventReversed, map[string]interface{}{
		"amount":          inv.Amount,
		"slots_restored":  capacity.SlotsConsumed(inv.Amount),
		"new_total":       updated.Total,
		"slots_remaining": updated.Slots,
	}))
}
