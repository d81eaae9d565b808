package users

import (
	ledgersvc "mudarabah-backend/internal/application/ledger"
	poolsvc "mudarabah-backend/internal/application/pools"
	rollbacksvc "mudarabah-backend/internal/application/rollback"
	"mudarabah-backend/internal/pkg/response"
	"mudarabah-backend/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Ledger   *ledgersvc.Service
	Rollback *rollbacksvc.Service
	Pools    *poolsvc.Service
}

// GET /api/users/:userId/investments
func (h *Handlers) GetInvestments(c *fiber.Ctx) error {
	userID, ok := validation.ParseID(c.Params("userId"))
	if !ok {
		return response.Error(c, fiber.StatusBadRequest, "Invalid user ID", nil)
	}
	list, err := h.Ledger.GetInvestmentsByUser(c.Context(), userID)
	if err != nil {
		return response.FromError(c, err, "Failed to fetch investments")
	}
	return response.OK(c, list)
}

// POST /api/users/:userId/reset
func (h *Handlers) Reset(c *fiber.Ctx) error {
	userID, ok := validation.ParseID(c.Params("userId"))
	if !ok {
		return response.Error(c, fiber.StatusBadRequest, "Invalid user ID", nil)
	}
	if _, err := h.Rollback.ResetForUser(c.Context(), userID); err != nil {
		return response.FromError(c, err, "Failed to reset user data")
	}
	return response.Message(c, "User investments and pools reset successfully")
}

// GET /api/users/:userId/summary
func (h *Handlers) GetSummary(c *fiber.Ctx) error {
	userID, ok := validation.ParseID(c.Params("userId"))
	if !ok {
		return response.Error(c, fiber.StatusBadRequest, "Invalid user ID", nil)
	}
	summary, err := h.Pools.Portfolio(c.Context(), userID)
	if err != nil {
		return response.FromError(c, err, "Failed to build portfolio summary")
	}
	return response.OK(c, summary)
}
