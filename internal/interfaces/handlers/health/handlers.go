package health

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	healthsvc "mudarabah-backend/internal/application/health"
	"mudarabah-backend/internal/middleware"
	"mudarabah-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

const serviceName = "mudarabah-ledger-api"

// Handlers holds dependencies for health endpoints. Rdb may be nil when
// request stats are disabled.
type Handlers struct {
	Rdb            *redis.Client
	DB             healthsvc.DBPinger
	Ledger         healthsvc.Ledger
	HealthAdminKey string
}

// Reset clears health stats in Redis. Requires query key=HEALTH_ADMIN_KEY.
func (h *Handlers) Reset(c *fiber.Ctx) error {
	key := c.Query("key")
	if key == "" || key != h.HealthAdminKey {
		return response.Error(c, fiber.StatusForbidden, "Unauthorized", nil)
	}
	if h.Rdb == nil {
		return response.Message(c, "Stats disabled")
	}
	ctx := context.Background()
	if err := h.Rdb.Del(ctx, middleware.StatKeys...).Err(); err != nil {
		return response.FromError(c, err, "Failed to reset stats")
	}
	if err := h.Rdb.Set(ctx, middleware.KeyStartTime, strconv.FormatInt(time.Now().UnixMilli(), 10), 0).Err(); err != nil {
		return response.FromError(c, err, "Failed to reset stats")
	}
	return response.Message(c, "Stats reset successfully")
}

// JSON returns service status, runtime, traffic, dependencies and ledger counts.
func (h *Handlers) JSON(c *fiber.Ctx) error {
	result := healthsvc.CollectHealth(c.Context(), h.Rdb, h.DB, h.Ledger)
	out := map[string]interface{}{
		"service":      serviceName,
		"status":       result.Status,
		"runtime":      result.Runtime,
		"traffic":      result.Traffic,
		"dependencies": result.Dependencies,
	}
	if result.Ledger != nil {
		out["ledger"] = result.Ledger
	}
	return c.JSON(out)
}

// Errors returns the most recent 5xx entries the health marker logged.
func (h *Handlers) Errors(c *fiber.Ctx) error {
	if h.Rdb == nil {
		return c.JSON([]interface{}{})
	}
	entries, err := h.Rdb.LRange(context.Background(), middleware.KeyErrorLog, 0, 49).Result()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON([]interface{}{})
	}
	errors := make([]map[string]interface{}, 0, len(entries))
	for _, s := range entries {
		var m map[string]interface{}
		if _ = json.Unmarshal([]byte(s), &m); m != nil {
			errors = append(errors, m)
		}
	}
	return c.JSON(errors)
}
