package handlers

import (
	"gaming-rewards-platform/middleware"
	"gaming-rewards-platform/services"

	"github.com/gofiber/fiber/v2"
)

func SetupLedgerRoutes(app *fiber.App, ledgerService *services.LedgerService) {
	auth := middleware.UserContextMiddleware()

	app.Post("/players/register", auth, func(c *fiber.Ctx) error {
		player, err := ledgerService.Register(c.Context(), middleware.CallerID(c))
		if err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(player)
	})

	app.Post("/players/deposit", auth, func(c *fiber.Ctx) error {
		var req struct {
			Amount int64 `json:"amount"`
		}
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON"})
		}
		balance, err := ledgerService.Deposit(c.Context(), middleware.CallerID(c), req.Amount)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(fiber.Map{"deposited": req.Amount, "balance": balance})
	})

	app.Post("/players/withdraw", auth, func(c *fiber.Ctx) error {
		var req struct {
			Amount int64 `json:"amount"`
		}
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON"})
		}
		balance, err := ledgerService.Withdraw(c.Context(), middleware.CallerID(c), req.Amount)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(fiber.Map{"withdrawn": req.Amount, "balance": balance})
	})

	app.Get("/players/me", auth, func(c *fiber.Ctx) error {
		player, err := ledgerService.GetPlayerProfile(middleware.CallerID(c))
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(player)
	})

	// Profiles are public reads; they stay up while the platform is paused.
	app.Get("/players/:id", func(c *fiber.Ctx) error {
		player, err := ledgerService.GetPlayerProfile(c.Params("id"))
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(player)
	})
}
