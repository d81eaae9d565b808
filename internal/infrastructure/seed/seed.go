package seed

import (
	"context"
	"fmt"

	"mudarabah-backend/internal/domain"
	"mudarabah-backend/internal/infrastructure/store"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	Username string
	Password string
}

// Pools is the catalogue a fresh store starts with.
func Pools() []domain.Pool {
	return []domain.Pool{LEDPool()}
}

// LEDPool is the LED bulb manufacturing round: PKR 1,500,000 in 300 slots,
// 30-40% projected profit with 60% to investors. One bulb costs 120 to
// make and returns 66 over the three months.
func LEDPool() domain.Pool {
	return domain.Pool{
		Name:               "LED Bulb Manufacturing",
		StartDate:          "May 1, 2025",
		EndDate:            "Aug 1, 2025",
		Duration:           "3 Months",
		CloseDate:          "Jul 15, 2025",
		Total:              decimal.Zero,
		Target:             decimal.NewFromInt(1500000),
		Investors:          0,
		Slots:              300,
		MinProfitRate:      decimal.RequireFromString("0.30"),
		MaxProfitRate:      decimal.RequireFromString("0.40"),
		InvestorShare:      decimal.RequireFromString("0.60"),
		ReturnRatio:        "30-40%",
		CompanyDescription: "We manufacture high-quality, energy-efficient LED bulbs for residential and commercial use. Our products save up to 90% energy compared to traditional incandescent bulbs and last up to 25,000 hours. This investment will expand our production capacity to meet growing demand in the local market.",
		CompanyWebsite:     "www.ledpakistan.com",
		CompanySocial:      "@ledpakistan",
		CompanyContact:     "+92-300-1234567",
		BusinessModel:      "Manufacturing and wholesale distribution of LED lighting products to retailers and construction companies. Our business benefits from government incentives for energy-efficient products and growing consumer awareness about energy conservation.",
		UnitLabel:          "bulbs",
		CostPerUnit:        decimal.NewFromInt(120),
		ProfitPerUnit:      decimal.NewFromInt(66),
		DurationMonths:     3,
	}
}

// Run creates the demo user and the seed pools. It is a no-op for whichever
// of the two already exists, so restarts against a durable database keep
// their data.
func Run(ctx context.Context, st *store.Store, cfg Config) error {
	return st.Atomic(ctx, func(tx *store.Store) error {
		existing, err := tx.GetUserByUsername(ctx, cfg.Username)
		if err != nil {
			return err
		}
		if existing == nil {
			hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("hash demo password: %w", err)
			}
			u, err := tx.CreateUser(ctx, domain.User{Username: cfg.Username, Password: string(hash)})
			if err != nil {
				return err
			}
			log.Info().Int64("user_id", u.ID).Str("username", u.Username).Msg("seeded demo user")
		}

		pools, err := tx.GetPools(ctx)
		if err != nil {
			return err
		}
		if len(pools) > 0 {
			return nil
		}
		for _, p := range Pools() {
			created, err := tx.CreatePool(ctx, p)
			if err != nil {
				return err
			}
			log.Info().Int64("pool_id", created.ID).Str("name", created.Name).Msg("seeded pool")
		}
		return nil
	})
}
