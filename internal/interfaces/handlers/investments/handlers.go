package investments

import (
	"encoding/json"

	ledgersvc "mudarabah-backend/internal/application/ledger"
	"mudarabah-backend/internal/pkg/response"
	"mudarabah-backend/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *ledgersvc.Service
}

// POST /api/investments with body {userId, poolId, amount}; amount may be a
// numeric string or a number. 201 with the investment.
func (h *Handlers) CreateInvestment(c *fiber.Ctx) error {
	in, fieldErrs := parseCreateInvestment(c.Body())
	if len(fieldErrs) > 0 {
		return response.Error(c, fiber.StatusBadRequest, "Invalid investment data", fieldErrs)
	}

	inv, err := h.Service.CreateInvestment(c.Context(), in)
	if err != nil {
		return response.FromError(c, err, "Failed to create investment")
	}
	return response.Created(c, inv)
}

func parseCreateInvestment(body []byte) (ledgersvc.CreateInvestmentInput, []response.FieldError) {
	var in ledgersvc.CreateInvestmentInput
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil || raw == nil {
		return in, []response.FieldError{{Path: []string{}, Message: "Expected object"}}
	}

	var errs []response.FieldError
	if v, ok := raw["userId"]; !ok {
		errs = append(errs, response.FieldError{Path: []string{"userId"}, Message: "Required"})
	} else if id, ok := validation.JSONID(v); !ok {
		errs = append(errs, response.FieldError{Path: []string{"userId"}, Message: "Expected a positive integer"})
	} else {
		in.UserID = id
	}

	if v, ok := raw["poolId"]; !ok {
		errs = append(errs, response.FieldError{Path: []string{"poolId"}, Message: "Required"})
	} else if id, ok := validation.JSONID(v); !ok {
		errs = append(errs, response.FieldError{Path: []string{"poolId"}, Message: "Expected a positive integer"})
	} else {
		in.PoolID = id
	}

	if v, ok := raw["amount"]; !ok {
		errs = append(errs, response.FieldError{Path: []string{"amount"}, Message: "Required"})
	} else if amount, ok := validation.JSONAmount(v); !ok {
		errs = append(errs, response.FieldError{Path: []string{"amount"}, Message: "Expected a numeric amount"})
	} else {
		in.Amount = amount
	}

	return in, errs
}
