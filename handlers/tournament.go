package handlers

import (
	"strconv"
	"time"

	"gaming-rewards-platform/middleware"
	"gaming-rewards-platform/services"

	"github.com/gofiber/fiber/v2"
)

func SetupTournamentRoutes(app *fiber.App, tournamentService *services.TournamentService) {
	auth := middleware.UserContextMiddleware()

	app.Post("/games/:id/tournaments", auth, func(c *fiber.Ctx) error {
		gameID, err := strconv.ParseUint(c.Params("id"), 10, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid game id"})
		}
		var req struct {
			Name            string `json:"name"`
			EntryFee        int64  `json:"entry_fee"`
			MaxParticipants int    `json:"max_participants"`
			DurationSecs    int64  `json:"duration_secs"`
		}
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON"})
		}
		tournament, err := tournamentService.CreateTournament(c.Context(), middleware.CallerID(c),
			gameID, req.Name, req.EntryFee, req.MaxParticipants,
			time.Duration(req.DurationSecs)*time.Second)
		if err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(tournament)
	})

	app.Post("/tournaments/:id/join", auth, func(c *fiber.Ctx) error {
		tournamentID, err := strconv.ParseUint(c.Params("id"), 10, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid tournament id"})
		}
		participation, err := tournamentService.JoinTournament(c.Context(), middleware.CallerID(c), tournamentID)
		if err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(participation)
	})

	app.Post("/tournaments/:id/score", auth, func(c *fiber.Ctx) error {
		tournamentID, err := strconv.ParseUint(c.Params("id"), 10, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid tournament id"})
		}
		var req struct {
			Score int64 `json:"score"`
		}
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON"})
		}
		participation, err := tournamentService.SubmitScore(c.Context(), middleware.CallerID(c), tournamentID, req.Score)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(participation)
	})

	// Public tournament reads.
	app.Get("/tournaments", func(c *fiber.Ctx) error {
		tournaments, err := tournamentService.ListTournaments()
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(tournaments)
	})

	app.Get("/tournaments/:id", func(c *fiber.Ctx) error {
		tournamentID, err := strconv.ParseUint(c.Params("id"), 10, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid tournament id"})
		}
		tournament, err := tournamentService.GetTournamentDetails(tournamentID)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(tournament)
	})

	app.Get("/tournaments/:id/participants/:player", func(c *fiber.Ctx) error {
		tournamentID, err := strconv.ParseUint(c.Params("id"), 10, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid tournament id"})
		}
		participation, err := tournamentService.GetTournamentParticipation(tournamentID, c.Params("player"))
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(participation)
	})

	app.Get("/tournaments/:id/leaderboard", func(c *fiber.Ctx) error {
		tournamentID, err := strconv.ParseUint(c.Params("id"), 10, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid tournament id"})
		}
		limit, _ := strconv.ParseInt(c.Query("limit", "25"), 10, 64)
		entries, err := tournamentService.GetLeaderboard(c.Context(), tournamentID, limit)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(entries)
	})
}
