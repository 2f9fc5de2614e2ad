package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/learnhub-app/learnhub-backend/internal/apperr"
)

// statusFromError maps the service error taxonomy to HTTP statuses.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, apperr.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, apperr.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, apperr.ErrAuthenticity):
		return fiber.StatusBadRequest
	case errors.Is(err, apperr.ErrEmailTaken):
		return fiber.StatusConflict
	case errors.Is(err, apperr.ErrInvalidCredentials):
		return fiber.StatusUnauthorized
	case errors.Is(err, apperr.ErrExternalService):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

// currentUserID pulls the authenticated user id set by the auth
// middleware. ok is false when the route is somehow reached unauthenticated.
func currentUserID(c *fiber.Ctx) (uint, bool) {
	userID, ok := c.Locals("userID").(uint)
	return userID, ok
}
