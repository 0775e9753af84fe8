package cache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const leaderboardKeyPrefix = "tournament:leaderboard:"

// LeaderboardCache mirrors tournament scores into per-tournament sorted sets.
// It is a read accelerator only: the ledger rows stay the source of truth and
// every write here is best-effort.
type LeaderboardCache struct {
	client *redis.Client
}

func NewLeaderboardCache(client *redis.Client) *LeaderboardCache {
	return &LeaderboardCache{client: client}
}

// Entry is one leaderboard row, best score first.
type Entry struct {
	PlayerID string `json:"player_id"`
	Score    int64  `json:"score"`
}

func leaderboardKey(tournamentID uint64) string {
	return fmt.Sprintf("%s%d", leaderboardKeyPrefix, tournamentID)
}

// RecordScore overwrites the player's score in the tournament's sorted set,
// matching the engine's overwrite semantics for submissions.
func (c *LeaderboardCache) RecordScore(ctx context.Context, tournamentID uint64, playerID string, score int64) error {
	return c.client.ZAdd(ctx, leaderboardKey(tournamentID), redis.Z{
		Score:  float64(score),
		Member: playerID,
	}).Err()
}

// TopScores returns up to limit entries, highest score first.
func (c *LeaderboardCache) TopScores(ctx context.Context, tournamentID uint64, limit int64) ([]Entry, error) {
	zs, err := c.client.ZRevRangeWithScores(ctx, leaderboardKey(tournamentID), 0, limit-1).Result()
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(zs))
	for _, z := range zs {
		entries = append(entries, Entry{
			PlayerID: z.Member,
			Score:    int64(z.Score),
		})
	}
	return entries, nil
}

// PlayerRank returns the 1-based rank of a player, 0 when absent.
func (c *LeaderboardCache) PlayerRank(ctx context.Context, tournamentID uint64, playerID string) (int64, error) {
	rank, err := c.client.ZRevRank(ctx, leaderboardKey(tournamentID), playerID).Result()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return rank + 1, nil
}
