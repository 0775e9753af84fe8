package config

import (
	"fmt"
	"os"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Config struct {
	Port            string
	DatabaseURL     string
	RedisAddr       string
	TreasuryURL     string
	ServiceToken    string
	PlatformOwnerID string
}

func Load() *Config {
	return &Config{
		Port:            getEnv("PORT", "5300"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		RedisAddr:       getEnv("REDIS_ADDR", ""),
		TreasuryURL:     os.Getenv("TREASURY_SERVICE_URL"),
		ServiceToken:    os.Getenv("PLATFORM_SERVICE_TOKEN"),
		PlatformOwnerID: os.Getenv("PLATFORM_OWNER_ID"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func InitDB(cfg *Config) (*gorm.DB, error) {
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable not set")
	}
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// InitRedis returns nil when no address is configured; the leaderboard cache
// is optional.
func InitRedis(cfg *Config) *redis.Client {
	if cfg.RedisAddr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
}
