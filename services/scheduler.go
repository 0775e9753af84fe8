package services

import (
	"log"
	"time"

	"gaming-rewards-platform/models"

	"github.com/go-co-op/gocron/v2"
)

// StartSweepScheduler marks tournaments inactive once their window closes.
// The engine already rejects joins and submissions past end_time; the sweep
// just makes the flag observable to readers.
func (s *TournamentService) StartSweepScheduler() {
	sched, _ := gocron.NewScheduler()
	sched.Start()

	_, _ = sched.NewJob(
		gocron.DurationJob(1*time.Minute),
		gocron.NewTask(func() {
			now := s.Clock.Now()
			result := s.DB.Model(&models.Tournament{}).
				Where("is_active = ? AND end_time <= ?", true, now).
				Update("is_active", false)
			if result.Error != nil {
				log.Printf("[Sweeper] DB error: %v", result.Error)
				return
			}
			if result.RowsAffected > 0 {
				log.Printf("[Sweeper] Closed %d ended tournament(s)", result.RowsAffected)
			}
		}),
	)
}
