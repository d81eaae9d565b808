package projection

import (
	"testing"

	"mudarabah-backend/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func ledPool() *domain.Pool {
	return &domain.Pool{
		ID:             1,
		Name:           "LED Bulb Manufacturing",
		Target:         d("1500000"),
		MinProfitRate:  d("0.30"),
		MaxProfitRate:  d("0.40"),
		InvestorShare:  d("0.60"),
		UnitLabel:      "bulbs",
		CostPerUnit:    d("120"),
		ProfitPerUnit:  d("66"),
		DurationMonths: 3,
	}
}

func TestProject(t *testing.T) {
	r := Project(d("100000"), d("0.30"), d("0.40"), d("0.60"))
	assert.True(t, r.MinProfit.Equal(d("18000")), r.MinProfit.String())
	assert.True(t, r.MaxProfit.Equal(d("24000")), r.MaxProfit.String())
	assert.True(t, r.MinPayout.Equal(d("118000")), r.MinPayout.String())
	assert.True(t, r.MaxPayout.Equal(d("124000")), r.MaxPayout.String())
}

func TestProject_NonPositiveAmount(t *testing.T) {
	for _, amount := range []string{"0", "-5000"} {
		r := Project(d(amount), d("0.30"), d("0.40"), d("0.60"))
		assert.True(t, r.MinProfit.IsZero())
		assert.True(t, r.MaxProfit.IsZero())
		assert.True(t, r.MinPayout.IsZero())
		assert.True(t, r.MaxPayout.IsZero())
	}
}

func TestUnitEconomics_LED(t *testing.T) {
	u := UnitEconomics(d("1500000"), ledPool())
	assert.Equal(t, int64(12500), u.Units)
	assert.True(t, u.TotalProfit.Equal(d("825000")))
	assert.True(t, u.MonthlyProfit.Equal(d("275000")))
	assert.True(t, u.TotalReturn.Equal(d("2325000")))
	assert.Equal(t, "bulbs", u.Label)

	small := UnitEconomics(d("5000"), ledPool())
	assert.Equal(t, int64(41), small.Units)
	assert.True(t, small.TotalProfit.Equal(d("2750")))
	assert.True(t, small.MonthlyProfit.Equal(d("916")))
}

func TestUnitEconomics_NoUnitData(t *testing.T) {
	p := ledPool()
	p.CostPerUnit = decimal.Zero
	u := UnitEconomics(d("10000"), p)
	assert.Equal(t, int64(0), u.Units)
	assert.True(t, u.TotalProfit.IsZero())
	assert.True(t, u.TotalReturn.Equal(d("10000")))
}

func TestForPool(t *testing.T) {
	pp := ForPool(d("100000"), ledPool(), 20)
	assert.Equal(t, int64(1), pp.PoolID)
	assert.Equal(t, 20, pp.Slots)
	assert.True(t, pp.Projection.MaxPayout.Equal(d("124000")))
	assert.True(t, pp.Units.TotalProfit.Equal(d("55000")))
}

func TestPortfolio(t *testing.T) {
	pools := []domain.Pool{*ledPool()}
	investments := []domain.Investment{
		{ID: 1, UserID: 1, PoolID: 1, Amount: d("50000")},
		{ID: 2, UserID: 1, PoolID: 1, Amount: d("50000")},
		{ID: 3, UserID: 1, PoolID: 9, Amount: d("5000")},
	}

	s := Portfolio(investments, pools)
	assert.Equal(t, 3, s.Investments)
	assert.True(t, s.TotalInvested.Equal(d("105000")))
	require.Len(t, s.Holdings, 1)
	assert.Equal(t, 2, s.Holdings[0].Investments)
	assert.True(t, s.Projection.MinProfit.Equal(d("18000")))
	assert.True(t, s.Projection.MaxPayout.Equal(d("129000")))
	assert.True(t, s.ExpectedProfit.Equal(d("55000")))
}

func TestPortfolio_Empty(t *testing.T) {
	s := Portfolio(nil, nil)
	assert.Equal(t, 0, s.Investments)
	assert.True(t, s.TotalInvested.IsZero())
	assert.NotNil(t, s.Holdings)
}
