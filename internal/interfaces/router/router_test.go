package router

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"mudarabah-backend/internal/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Env:            "test",
		SeedDemoData:   true,
		DemoUsername:   "demo",
		DemoPassword:   "demo123",
		HealthAdminKey: "admin",
	}
}

func do(t *testing.T, app *fiber.App, method, path string, body interface{}) (int, []byte) {
	t.Helper()
	var req = httptest.NewRequest(method, path, nil)
	if body != nil {
		raw, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	buf := new(bytes.Buffer)
	buf.ReadFrom(resp.Body)
	return resp.StatusCode, buf.Bytes()
}

func TestCreateApp_EndToEnd(t *testing.T) {
	app, db, rdb, err := CreateApp(testConfig())
	require.NoError(t, err)
	require.NotNil(t, db)
	assert.Nil(t, rdb)

	code, _ := do(t, app, "GET", "/api/pools", nil)
	assert.Equal(t, 200, code)

	for i := 0; i < 3; i++ {
		code, _ = do(t, app, "POST", "/api/investments", map[string]interface{}{"userId": 1, "poolId": 1, "amount": "500000"})
		require.Equal(t, 201, code)
	}

	code, raw := do(t, app, "GET", "/api/pools/1", nil)
	require.Equal(t, 200, code)
	var pool map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &pool))
	assert.Equal(t, "Full", pool["status"])
	assert.Equal(t, float64(0), pool["slots"])
	assert.Equal(t, float64(3), pool["investors"])

	code, raw = do(t, app, "POST", "/api/investments", map[string]interface{}{"userId": 1, "poolId": 1, "amount": "5000"})
	assert.Equal(t, 400, code)
	var rejected map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &rejected))
	assert.Equal(t, "PoolFull", rejected["reason"])

	code, _ = do(t, app, "POST", "/api/users/1/reset", nil)
	assert.Equal(t, 200, code)

	_, raw = do(t, app, "GET", "/api/pools/1", nil)
	require.NoError(t, json.Unmarshal(raw, &pool))
	assert.Equal(t, "Open", pool["status"])
	assert.Equal(t, float64(300), pool["slots"])

	code, raw = do(t, app, "GET", "/api/users/1/investments", nil)
	assert.Equal(t, 200, code)
	assert.JSONEq(t, "[]", string(raw))
}

func TestCreateApp_WithRedisCountsTraffic(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	cfg := testConfig()
	cfg.RedisURL = "redis://" + mr.Addr()
	app, _, rdb, err := CreateApp(cfg)
	require.NoError(t, err)
	require.NotNil(t, rdb)
	defer rdb.Close()

	do(t, app, "GET", "/api/pools", nil)
	do(t, app, "GET", "/api/pools/xyz", nil)

	code, raw := do(t, app, "GET", "/health/json", nil)
	assert.Equal(t, 200, code)
	var out struct {
		Status  string `json:"status"`
		Traffic struct {
			TotalRequests int `json:"totalRequests"`
		} `json:"traffic"`
	}
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "ok", out.Status)
	assert.Equal(t, 2, out.Traffic.TotalRequests)
}

func TestCreateApp_UnknownRoute(t *testing.T) {
	app, _, _, err := CreateApp(testConfig())
	require.NoError(t, err)

	code, _ := do(t, app, "GET", "/api/nothing", nil)
	assert.Equal(t, 404, code)
}

func TestCreateApp_BadRedisURL(t *testing.T) {
	cfg := testConfig()
	cfg.RedisURL = "::not a url::"
	_, _, _, err := CreateApp(cfg)
	assert.Error(t, err)
}
