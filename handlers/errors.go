package handlers

import (
	"errors"

	"gaming-rewards-platform/services"

	"github.com/gofiber/fiber/v2"
)

// fail maps the engine's error kinds onto HTTP statuses. Anything unmapped is
// a server fault.
func fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrInvalidAmount),
		errors.Is(err, services.ErrInsufficientBalance):
		status = fiber.StatusBadRequest
	case errors.Is(err, services.ErrNotAuthorized):
		status = fiber.StatusForbidden
	case errors.Is(err, services.ErrPlayerNotFound),
		errors.Is(err, services.ErrGameNotFound),
		errors.Is(err, services.ErrItemNotFound),
		errors.Is(err, services.ErrTournamentNotFound),
		errors.Is(err, services.ErrOwnershipNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, services.ErrAlreadyRegistered),
		errors.Is(err, services.ErrInsufficientItems),
		errors.Is(err, services.ErrTournamentEnded):
		status = fiber.StatusConflict
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
