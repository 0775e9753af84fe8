package handlers

import (
	"log"
	"path/filepath"
	"strconv"

	"gaming-rewards-platform/middleware"
	"gaming-rewards-platform/services"
	"gaming-rewards-platform/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func SetupCatalogRoutes(app *fiber.App, catalogService *services.CatalogService) {
	auth := middleware.UserContextMiddleware()

	app.Post("/games", auth, func(c *fiber.Ctx) error {
		name := c.FormValue("name")
		priceStr := c.FormValue("price")
		if name == "" || priceStr == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name and price are required"})
		}
		price, err := strconv.ParseInt(priceStr, 10, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "price must be an integer amount"})
		}

		// Optional artwork upload to R2.
		var logoURL string
		if logo, err := c.FormFile("main_logo"); err == nil && logo.Size > 0 && utils.R2Ready() {
			ext := filepath.Ext(logo.Filename)
			if ext == "" {
				ext = ".png"
			}
			key := "games/logos/" + uuid.NewString() + ext
			url, err := utils.UploadFileToR2(logo, key)
			if err != nil {
				log.Printf("Logo upload failed: %v", err)
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to upload logo"})
			}
			logoURL = url
		}

		game, err := catalogService.RegisterGame(c.Context(), middleware.CallerID(c), name, price, logoURL)
		if err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(game)
	})

	app.Post("/games/:id/purchase", auth, func(c *fiber.Ctx) error {
		gameID, err := strconv.ParseUint(c.Params("id"), 10, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid game id"})
		}
		ownership, err := catalogService.PurchaseGame(c.Context(), middleware.CallerID(c), gameID)
		if err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(ownership)
	})

	app.Post("/games/:id/items", auth, func(c *fiber.Ctx) error {
		gameID, err := strconv.ParseUint(c.Params("id"), 10, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid game id"})
		}
		var req struct {
			Name        string `json:"name"`
			Description string `json:"description"`
			Price       int64  `json:"price"`
			Rarity      int    `json:"rarity"`
			MaxSupply   int64  `json:"max_supply"`
		}
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON"})
		}
		item, err := catalogService.CreateItem(c.Context(), middleware.CallerID(c), gameID,
			req.Name, req.Description, req.Price, req.Rarity, req.MaxSupply)
		if err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(item)
	})

	app.Post("/items/:id/purchase", auth, func(c *fiber.Ctx) error {
		itemID, err := strconv.ParseUint(c.Params("id"), 10, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid item id"})
		}
		var req struct {
			Quantity int64 `json:"quantity"`
		}
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON"})
		}
		holding, err := catalogService.PurchaseItem(c.Context(), middleware.CallerID(c), itemID, req.Quantity)
		if err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(holding)
	})

	app.Get("/players/me/games/:id", auth, func(c *fiber.Ctx) error {
		gameID, err := strconv.ParseUint(c.Params("id"), 10, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid game id"})
		}
		ownership, err := catalogService.GetPlayerGameOwnership(middleware.CallerID(c), gameID)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(ownership)
	})

	app.Get("/players/me/items/:id", auth, func(c *fiber.Ctx) error {
		itemID, err := strconv.ParseUint(c.Params("id"), 10, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid item id"})
		}
		count, err := catalogService.GetPlayerItemCount(middleware.CallerID(c), itemID)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(fiber.Map{"item_id": itemID, "quantity": count})
	})

	// Public catalog reads.
	app.Get("/games", func(c *fiber.Ctx) error {
		games, err := catalogService.ListGames()
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(games)
	})

	app.Get("/games/:id", func(c *fiber.Ctx) error {
		gameID, err := strconv.ParseUint(c.Params("id"), 10, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid game id"})
		}
		game, err := catalogService.GetGameDetails(gameID)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(game)
	})

	app.Get("/games/:id/items", func(c *fiber.Ctx) error {
		gameID, err := strconv.ParseUint(c.Params("id"), 10, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid game id"})
		}
		items, err := catalogService.ListGameItems(gameID)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(items)
	})

	app.Get("/items/:id", func(c *fiber.Ctx) error {
		itemID, err := strconv.ParseUint(c.Params("id"), 10, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid item id"})
		}
		item, err := catalogService.GetItemDetails(itemID)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(item)
	})
}
