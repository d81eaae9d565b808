package response

import (
	"errors"

	"mudarabah-backend/internal/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// ErrorBody is the JSON shape of every non-2xx response.
type ErrorBody struct {
	Message string       `json:"message"`
	Reason  string       `json:"reason,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError names one field that failed request validation.
type FieldError struct {
	Path    []string `json:"path"`
	Message string   `json:"message"`
}

// OK sends 200 with data as the whole body. The web client reads pools and
// investments from the top-level value, so success bodies are not wrapped.
func OK(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(data)
}

// Created sends 201 with data as the whole body.
func Created(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

// Message sends 200 {message}.
func Message(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": message})
}

// Error sends the standard error body.
func Error(c *fiber.Ctx, statusCode int, message string, errs []FieldError) error {
	return c.Status(statusCode).JSON(ErrorBody{Message: message, Errors: errs})
}

// FromError maps a service error onto a status code and body. Anything not
// recognised is logged and reported as 500 with the fallback message.
func FromError(c *fiber.Ctx, err error, fallback string) error {
	var (
		ve *domain.ValidationError
		ce *domain.CapacityError
		nf *domain.NotFoundError
	)
	switch {
	case errors.As(err, &ce):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorBody{Message: ce.Message, Reason: string(ce.Reason)})
	case errors.As(err, &ve):
		var fields []FieldError
		if ve.Field != "" {
			fields = []FieldError{{Path: []string{ve.Field}, Message: ve.Message}}
		}
		return Error(c, fiber.StatusBadRequest, ve.Error(), fields)
	case errors.Is(err, domain.ErrPoolNotFound):
		return Error(c, fiber.StatusNotFound, domain.ErrPoolNotFound.Error(), nil)
	case errors.Is(err, domain.ErrUserNotFound):
		return Error(c, fiber.StatusNotFound, domain.ErrUserNotFound.Error(), nil)
	case errors.As(err, &nf):
		return Error(c, fiber.StatusNotFound, nf.Error(), nil)
	}

	log.Error().Err(err).Str("path", c.Path()).Msg(fallback)
	return Error(c, fiber.StatusInternalServerError, fallback, nil)
}
