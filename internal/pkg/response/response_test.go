package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"mudarabah-backend/internal/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func respond(t *testing.T, err error) (int, map[string]interface{}) {
	t.Helper()
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error { return FromError(c, err, "Failed to do thing") })

	resp, testErr := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, testErr)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestFromError_Capacity(t *testing.T) {
	code, body := respond(t, fmt.Errorf("invest: %w", &domain.CapacityError{Reason: domain.ReasonPoolFull, Message: "Not enough slots available in the pool"}))
	assert.Equal(t, 400, code)
	assert.Equal(t, "PoolFull", body["reason"])
	assert.Equal(t, "Not enough slots available in the pool", body["message"])
}

func TestFromError_Validation(t *testing.T) {
	code, body := respond(t, &domain.ValidationError{Field: "amount", Message: "Required"})
	assert.Equal(t, 400, code)
	errs, ok := body["errors"].([]interface{})
	require.True(t, ok)
	assert.Len(t, errs, 1)
}

func TestFromError_NotFound(t *testing.T) {
	code, body := respond(t, domain.PoolNotFound(3))
	assert.Equal(t, 404, code)
	assert.Equal(t, "Investment pool not found", body["message"])

	code, body = respond(t, domain.UserNotFound(3))
	assert.Equal(t, 404, code)
	assert.Equal(t, "User not found", body["message"])
}

func TestFromError_Unknown(t *testing.T) {
	code, body := respond(t, errors.New("disk on fire"))
	assert.Equal(t, 500, code)
	assert.Equal(t, "Failed to do thing", body["message"])
	_, hasReason := body["reason"]
	assert.False(t, hasReason)
}
