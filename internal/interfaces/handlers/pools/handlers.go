package pools

import (
	"errors"

	poolsvc "mudarabah-backend/internal/application/pools"
	"mudarabah-backend/internal/domain"
	"mudarabah-backend/internal/pkg/response"
	"mudarabah-backend/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *poolsvc.Service
}

// GET /api/pools
func (h *Handlers) GetPools(c *fiber.Ctx) error {
	pools, err := h.Service.ListPools(c.Context())
	if err != nil {
		return response.FromError(c, err, "Failed to fetch investment pools")
	}
	return response.OK(c, pools)
}

// GET /api/pools/:id
func (h *Handlers) GetPool(c *fiber.Ctx) error {
	id, ok := validation.ParseID(c.Params("id"))
	if !ok {
		return response.Error(c, fiber.StatusBadRequest, "Invalid pool ID", nil)
	}
	pool, err := h.Service.GetPool(c.Context(), id)
	if errors.Is(err, domain.ErrPoolNotFound) {
		return response.Error(c, fiber.StatusNotFound, "Pool not found", nil)
	}
	if err != nil {
		return response.FromError(c, err, "Failed to fetch pool")
	}
	return response.OK(c, pool)
}

// GET /api/pools/:id/projection?amount=100000
func (h *Handlers) GetProjection(c *fiber.Ctx) error {
	id, ok := validation.ParseID(c.Params("id"))
	if !ok {
		return response.Error(c, fiber.StatusBadRequest, "Invalid pool ID", nil)
	}
	amount, ok := validation.ParseAmount(c.Query("amount"))
	if !ok {
		return response.Error(c, fiber.StatusBadRequest, "Invalid amount", []response.FieldError{
			{Path: []string{"amount"}, Message: "Expected a non-negative amount"},
		})
	}
	pp, err := h.Service.Project(c.Context(), id, amount)
	if errors.Is(err, domain.ErrPoolNotFound) {
		return response.Error(c, fiber.StatusNotFound, "Pool not found", nil)
	}
	if err != nil {
		return response.FromError(c, err, "Failed to project returns")
	}
	return response.OK(c, pp)
}

// GET /api/pools/:id/events
func (h *Handlers) GetEvents(c *fiber.Ctx) error {
	id, ok := validation.ParseID(c.Params("id"))
	if !ok {
		return response.Error(c, fiber.StatusBadRequest, "Invalid pool ID", nil)
	}
	events, err := h.Service.Events(c.Context(), id)
	if errors.Is(err, domain.ErrPoolNotFound) {
		return response.Error(c, fiber.StatusNotFound, "Pool not found", nil)
	}
	if err != nil {
		return response.FromError(c, err, "Failed to fetch pool events")
	}
	return response.OK(c, events)
}
