package handlers

import (
	"gaming-rewards-platform/middleware"
	"gaming-rewards-platform/services"

	"github.com/gofiber/fiber/v2"
)

func SetupAdminRoutes(app *fiber.App, adminService *services.AdminService, rewardService *services.RewardService) {
	// Platform stats are public and never pause-gated.
	app.Get("/platform/stats", func(c *fiber.Ctx) error {
		stats, err := adminService.GetPlatformStats()
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(stats)
	})

	// Ownership is enforced by the services against the platform state, not
	// by the route group.
	admin := app.Group("/admin", middleware.UserContextMiddleware())

	admin.Post("/pause", func(c *fiber.Ctx) error {
		if err := adminService.Pause(c.Context(), middleware.CallerID(c)); err != nil {
			return fail(c, err)
		}
		return c.JSON(fiber.Map{"message": "platform paused"})
	})

	admin.Post("/resume", func(c *fiber.Ctx) error {
		if err := adminService.Resume(c.Context(), middleware.CallerID(c)); err != nil {
			return fail(c, err)
		}
		return c.JSON(fiber.Map{"message": "platform resumed"})
	})

	admin.Post("/fees/withdraw", func(c *fiber.Ctx) error {
		var req struct {
			Amount int64 `json:"amount"`
		}
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON"})
		}
		remaining, err := adminService.WithdrawPlatformFees(c.Context(), middleware.CallerID(c), req.Amount)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(fiber.Map{"withdrawn": req.Amount, "accumulated_fees": remaining})
	})

	admin.Post("/rewards/distribute", func(c *fiber.Ctx) error {
		var req struct {
			AccountID string `json:"account_id"`
			Amount    int64  `json:"amount"`
			Reason    string `json:"reason"`
		}
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON"})
		}
		player, err := rewardService.DistributeReward(c.Context(), middleware.CallerID(c),
			req.AccountID, req.Amount, req.Reason)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(player)
	})

	admin.Get("/wallets", func(c *fiber.Ctx) error {
		mirrors, err := adminService.ListWalletMirrors()
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(mirrors)
	})
}
