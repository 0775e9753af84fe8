package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gaming-rewards-platform/cache"
	"gaming-rewards-platform/config"
	"gaming-rewards-platform/handlers"
	"gaming-rewards-platform/middleware"
	"gaming-rewards-platform/models"
	"gaming-rewards-platform/services"
	"gaming-rewards-platform/utils"
	"gaming-rewards-platform/wallet"
	"gaming-rewards-platform/workers"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading environment variables directly")
	}

	cfg := config.Load()
	if cfg.ServiceToken == "" {
		log.Fatal("PLATFORM_SERVICE_TOKEN environment variable not set")
	}
	if cfg.TreasuryURL == "" {
		log.Fatal("TREASURY_SERVICE_URL environment variable not set")
	}
	if cfg.PlatformOwnerID == "" {
		log.Fatal("PLATFORM_OWNER_ID environment variable not set")
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal("failed to connect to database: ", err)
	}

	if err := db.AutoMigrate(
		&models.Player{},
		&models.Game{},
		&models.GameOwnership{},
		&models.Item{},
		&models.ItemHolding{},
		&models.Tournament{},
		&models.TournamentParticipation{},
		&models.PlatformState{},
		&models.WalletMirror{},
	); err != nil {
		log.Fatal("failed to migrate database: ", err)
	}

	if _, err := services.EnsurePlatformState(db, cfg.PlatformOwnerID); err != nil {
		log.Fatal("failed to ensure platform state: ", err)
	}

	// Game artwork storage is optional.
	if err := utils.InitR2(); err != nil {
		log.Printf("R2 not configured, game logos disabled: %v", err)
	}

	treasury := wallet.NewClient(cfg.TreasuryURL, cfg.ServiceToken)
	engine := services.NewEngine(db, treasury, services.SystemClock{})

	var leaderboard *cache.LeaderboardCache
	if rdb := config.InitRedis(cfg); rdb != nil {
		leaderboard = cache.NewLeaderboardCache(rdb)
	} else {
		log.Println("REDIS_ADDR not set, tournament leaderboards served from the database")
	}

	ledgerService := services.NewLedgerService(engine)
	catalogService := services.NewCatalogService(engine)
	tournamentService := services.NewTournamentService(engine, leaderboard)
	rewardService := services.NewRewardService(engine)
	adminService := services.NewAdminService(engine)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	walletSync := workers.NewWalletSyncClient(db, cfg.TreasuryURL, cfg.ServiceToken)
	go workers.PollWallets(ctx, walletSync, 30*time.Second)

	tournamentService.StartSweepScheduler()

	app := fiber.New(fiber.Config{
		BodyLimit: 16 * 1024 * 1024,
	})
	app.Use(middleware.GatewayAuthMiddleware(cfg.ServiceToken))

	handlers.SetupLedgerRoutes(app, ledgerService)
	handlers.SetupCatalogRoutes(app, catalogService)
	handlers.SetupTournamentRoutes(app, tournamentService)
	handlers.SetupAdminRoutes(app, adminService, rewardService)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("Gaming rewards platform running on :%s", cfg.Port)
	log.Println("Wallet balance polling running (every 30s)")
	log.Println("Tournament sweeper running (every 1m)")

	<-ctx.Done()
	log.Println("Shutting down server...")
	_ = app.Shutdown()
}
