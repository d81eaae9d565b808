package health

import (
	"context"
	"errors"
	"testing"

	"mudarabah-backend/internal/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type okPinger struct{}

func (okPinger) Ping() error { return nil }

type badPinger struct{}

func (badPinger) Ping() error { return errors.New("down") }

type fakeLedger struct {
	pools []domain.Pool
	count int64
	err   error
}

func (f fakeLedger) GetPools(context.Context) ([]domain.Pool, error) { return f.pools, f.err }
func (f fakeLedger) CountInvestments(context.Context) (int64, error) { return f.count, f.err }

func TestCollectHealth_NoRedis(t *testing.T) {
	ctx := context.Background()
	result := CollectHealth(ctx, nil, okPinger{}, nil)
	assert.Equal(t, "ok", result.Status)
	assert.Equal(t, "connected", result.Dependencies["database"].Status)
	assert.Equal(t, "disabled", result.Dependencies["redis"].Status)
	assert.Equal(t, 0, result.Traffic.TotalRequests)
	assert.Nil(t, result.Ledger)
}

func TestCollectHealth_DatabaseDown(t *testing.T) {
	result := CollectHealth(context.Background(), nil, badPinger{}, nil)
	assert.Equal(t, "issue", result.Status)
	assert.Equal(t, "error", result.Dependencies["database"].Status)
}

func TestCollectHealth_WithMiniredis(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()
	ctx := context.Background()

	result := CollectHealth(ctx, rdb, okPinger{}, nil)
	assert.Equal(t, "connected", result.Dependencies["redis"].Status)
	assert.Equal(t, "100", result.Traffic.SuccessRate)

	require.NoError(t, rdb.Set(ctx, "health:ledger:req_total", "10", 0).Err())
	require.NoError(t, rdb.Set(ctx, "health:ledger:req_errors", "2", 0).Err())
	require.NoError(t, rdb.Set(ctx, "health:ledger:res_time_total", "150.5", 0).Err())
	require.NoError(t, rdb.Set(ctx, "health:ledger:res_count", "10", 0).Err())
	require.NoError(t, rdb.Set(ctx, "health:ledger:start_time", "1000000", 0).Err())

	result2 := CollectHealth(ctx, rdb, okPinger{}, nil)
	assert.Equal(t, 10, result2.Traffic.TotalRequests)
	assert.Equal(t, 2, result2.Traffic.FailedCount)
	assert.Equal(t, 8, result2.Traffic.SuccessCount)
	assert.Equal(t, "80.0", result2.Traffic.SuccessRate)
	assert.Equal(t, "15.05", result2.Traffic.AvgResponseTime)
}

func TestCollectHealth_Ledger(t *testing.T) {
	ledger := fakeLedger{
		pools: []domain.Pool{
			{ID: 1, Slots: 0, Status: domain.PoolFull, Total: decimal.NewFromInt(10), Target: decimal.NewFromInt(10)},
			{ID: 2, Slots: 120, Status: domain.PoolOpen},
		},
		count: 7,
	}
	result := CollectHealth(context.Background(), nil, okPinger{}, ledger)
	require.NotNil(t, result.Ledger)
	assert.Equal(t, 2, result.Ledger.Pools)
	assert.Equal(t, 1, result.Ledger.FullPools)
	assert.Equal(t, 120, result.Ledger.OpenSlots)
	assert.Equal(t, int64(7), result.Ledger.Investments)

	failing := CollectHealth(context.Background(), nil, okPinger{}, fakeLedger{err: errors.New("x")})
	assert.Equal(t, "issue", failing.Status)
}
