// Package projection computes Mudarabah profit projections. Every function
// here is pure: nothing reads or writes the store.
package projection

import (
	"sort"

	"mudarabah-backend/internal/domain"

	"github.com/shopspring/decimal"
)

// Range is the projected investor profit and payout between the pool's
// minimum and maximum profit rates.
type Range struct {
	MinProfit decimal.Decimal `json:"minProfit"`
	MaxProfit decimal.Decimal `json:"maxProfit"`
	MinPayout decimal.Decimal `json:"minPayout"`
	MaxPayout decimal.Decimal `json:"maxPayout"`
}

// Project applies profit = amount * rate * investorShare at both rates. A
// non-positive amount projects to zero everywhere.
func Project(amount, minRate, maxRate, investorShare decimal.Decimal) Range {
	if !amount.IsPositive() {
		return Range{
			MinProfit: decimal.Zero,
			MaxProfit: decimal.Zero,
			MinPayout: decimal.Zero,
			MaxPayout: decimal.Zero,
		}
	}
	minProfit := amount.Mul(minRate).Mul(investorShare)
	maxProfit := amount.Mul(maxRate).Mul(investorShare)
	return Range{
		MinProfit: minProfit,
		MaxProfit: maxProfit,
		MinPayout: amount.Add(minProfit),
		MaxPayout: amount.Add(maxProfit),
	}
}

// Units is the investor's share of the business's physical output.
type Units struct {
	Label          string          `json:"unitLabel"`
	Units          int64           `json:"units"`
	ProfitPerUnit  decimal.Decimal `json:"profitPerUnit"`
	TotalProfit    decimal.Decimal `json:"totalProfit"`
	MonthlyProfit  decimal.Decimal `json:"monthlyProfit"`
	TotalReturn    decimal.Decimal `json:"totalReturn"`
	DurationMonths int             `json:"durationMonths"`
}

// UnitEconomics floors units, total profit and monthly profit to whole
// values. Pools without unit data yield zero units and profit.
func UnitEconomics(amount decimal.Decimal, pool *domain.Pool) Units {
	u := Units{
		Label:          pool.UnitLabel,
		ProfitPerUnit:  pool.ProfitPerUnit,
		TotalProfit:    decimal.Zero,
		MonthlyProfit:  decimal.Zero,
		TotalReturn:    amount,
		DurationMonths: pool.DurationMonths,
	}
	if !amount.IsPositive() {
		u.TotalReturn = decimal.Zero
		return u
	}
	if !pool.CostPerUnit.IsPositive() {
		return u
	}

	u.Units = amount.Div(pool.CostPerUnit).Floor().IntPart()
	u.TotalProfit = amount.Mul(pool.ProfitPerUnit).Div(pool.CostPerUnit).Floor()
	if pool.DurationMonths > 0 {
		u.MonthlyProfit = u.TotalProfit.Div(decimal.NewFromInt(int64(pool.DurationMonths))).Floor()
	}
	u.TotalReturn = amount.Add(u.TotalProfit)
	return u
}

// PoolProjection is what the projection endpoint and CLI report for one
// amount in one pool.
type PoolProjection struct {
	PoolID     int64           `json:"poolId"`
	PoolName   string          `json:"poolName"`
	Amount     decimal.Decimal `json:"amount"`
	Slots      int             `json:"slots"`
	Projection Range           `json:"projection"`
	Units      Units           `json:"units"`
}

// ForPool projects an amount at the pool's own rates and unit economics.
// slots is the capacity the amount would consume.
func ForPool(amount decimal.Decimal, pool *domain.Pool, slots int) PoolProjection {
	return PoolProjection{
		PoolID:     pool.ID,
		PoolName:   pool.Name,
		Amount:     amount,
		Slots:      slots,
		Projection: Project(amount, pool.MinProfitRate, pool.MaxProfitRate, pool.InvestorShare),
		Units:      UnitEconomics(amount, pool),
	}
}

// Holding sums one user's investments in one pool.
type Holding struct {
	PoolID      int64           `json:"poolId"`
	PoolName    string          `json:"poolName"`
	Investments int             `json:"investments"`
	Invested    decimal.Decimal `json:"invested"`
	Projection  Range           `json:"projection"`
	Units       Units           `json:"units"`
}

// Summary is a user's whole portfolio.
type Summary struct {
	Investments    int             `json:"investments"`
	TotalInvested  decimal.Decimal `json:"totalInvested"`
	Projection     Range           `json:"projection"`
	ExpectedProfit decimal.Decimal `json:"expectedProfit"`
	MonthlyProfit  decimal.Decimal `json:"monthlyProfit"`
	TotalReturn    decimal.Decimal `json:"totalReturn"`
	Holdings       []Holding       `json:"holdings"`
}

// Portfolio groups investments by pool and sums projections. Investments
// whose pool is missing still count toward the invested total but project
// nothing.
func Portfolio(investments []domain.Investment, pools []domain.Pool) Summary {
	byID := make(map[int64]*domain.Pool, len(pools))
	for i := range pools {
		byID[pools[i].ID] = &pools[i]
	}

	invested := map[int64]decimal.Decimal{}
	counts := map[int64]int{}
	s := Summary{
		TotalInvested: decimal.Zero,
		Projection:    Project(decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero),
		Holdings:      []Holding{},
	}
	for _, inv := range investments {
		s.Investments++
		s.TotalInvested = s.TotalInvested.Add(inv.Amount)
		if _, ok := byID[inv.PoolID]; !ok {
			continue
		}
		if _, ok := invested[inv.PoolID]; !ok {
			invested[inv.PoolID] = decimal.Zero
		}
		invested[inv.PoolID] = invested[inv.PoolID].Add(inv.Amount)
		counts[inv.PoolID]++
	}

	s.ExpectedProfit = decimal.Zero
	s.MonthlyProfit = decimal.Zero
	for poolID, amount := range invested {
		pool := byID[poolID]
		h := Holding{
			PoolID:      poolID,
			PoolName:    pool.Name,
			Investments: counts[poolID],
			Invested:    amount,
			Projection:  Project(amount, pool.MinProfitRate, pool.MaxProfitRate, pool.InvestorShare),
			Units:       UnitEconomics(amount, pool),
		}
		s.Holdings = append(s.Holdings, h)

		s.Projection.MinProfit = s.Projection.MinProfit.Add(h.Projection.MinProfit)
		s.Projection.MaxProfit = s.Projection.MaxProfit.Add(h.Projection.MaxProfit)
		s.ExpectedProfit = s.ExpectedProfit.Add(h.Units.TotalProfit)
		s.MonthlyProfit = s.MonthlyProfit.Add(h.Units.MonthlyProfit)
	}
	sort.Slice(s.Holdings, func(i, j int) bool { return s.Holdings[i].PoolID < s.Holdings[j].PoolID })

	s.Projection.MinPayout = s.TotalInvested.Add(s.Projection.MinProfit)
	s.Projection.MaxPayout = s.TotalInvested.Add(s.Projection.MaxProfit)
	s.TotalReturn = s.TotalInvested.Add(s.ExpectedProfit)
	return s
}
