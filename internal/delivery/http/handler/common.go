package handler

import (
	"errors"

	"staffing/internal/delivery/http/middleware"
	"staffing/internal/pkg/response"
	"staffing/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// actorFrom resolves the acting user for audit trail entries. Routes behind
// the auth middleware always carry the email local; the fallback keeps audit
// rows non-empty if a route is ever mounted without it.
func actorFrom(c fiber.Ctx) string {
	if email, ok := c.Locals(middleware.CtxEmailKey).(string); ok && email != "" {
		return email
	}
	return "anonymous"
}

func uuidParam(c fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, middleware.NewAppError(fiber.StatusBadRequest, "Invalid "+name, nil, err)
	}
	return id, nil
}

func mapUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	case errors.Is(err, usecase.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, response.MessageNotFound, nil, err)
	case errors.Is(err, usecase.ErrConflict):
		return middleware.NewAppError(fiber.StatusConflict, response.MessageConflict, nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
