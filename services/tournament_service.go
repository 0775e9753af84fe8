package services

import (
	"context"
	"log"
	"time"

	"gaming-rewards-platform/cache"
	"gaming-rewards-platform/models"

	"gorm.io/gorm"
)

// TournamentService runs the tournament lifecycle: creation by the game's
// developer, fee-paying joins, and score submission. Entry fees never leave
// the ledger; they accumulate as the prize pool. Settlement (ranking, winner,
// payout) is an extension point no operation reaches yet.
type TournamentService struct {
	*Engine

	// Optional read accelerator for score queries; nil disables mirroring.
	Leaderboard *cache.LeaderboardCache
}

func NewTournamentService(e *Engine, leaderboard *cache.LeaderboardCache) *TournamentService {
	return &TournamentService{Engine: e, Leaderboard: leaderboard}
}

// CreateTournament opens a time-boxed event on a game, starting now and ending
// after duration.
func (s *TournamentService) CreateTournament(ctx context.Context, caller string, gameID uint64, name string, entryFee int64, maxParticipants int, duration time.Duration) (*models.Tournament, error) {
	var tournament models.Tournament
	err := s.runGated(func(tx *gorm.DB, state *models.PlatformState) error {
		var game models.Game
		if err := tx.First(&game, "id = ?", gameID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrGameNotFound
			}
			return err
		}
		if !game.IsActive {
			return ErrGameNotFound
		}
		if caller != game.Developer {
			return ErrNotAuthorized
		}
		if entryFee < 0 || maxParticipants <= 1 || duration <= 0 {
			return ErrInvalidAmount
		}
		now := s.Clock.Now()
		state.LastTournamentID++
		tournament = models.Tournament{
			ID:              state.LastTournamentID,
			GameID:          gameID,
			Name:            name,
			EntryFee:        entryFee,
			MaxParticipants: maxParticipants,
			StartTime:       now,
			EndTime:         now.Add(duration),
			IsActive:        true,
			CreatedAt:       now,
		}
		return tx.Create(&tournament).Error
	})
	if err != nil {
		return nil, err
	}
	return &tournament, nil
}

// JoinTournament debits the entry fee into the prize pool and records the
// membership. Joining is idempotent-failing: a second attempt by the same
// player returns ErrAlreadyRegistered with no state change.
func (s *TournamentService) JoinTournament(ctx context.Context, caller string, tournamentID uint64) (*models.TournamentParticipation, error) {
	var participation models.TournamentParticipation
	err := s.runGated(func(tx *gorm.DB, _ *models.PlatformState) error {
		var tournament models.Tournament
		if err := tx.First(&tournament, "id = ?", tournamentID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrTournamentNotFound
			}
			return err
		}
		player, err := loadPlayer(tx, caller)
		if err != nil {
			return err
		}
		if !player.IsActive {
			return ErrNotAuthorized
		}
		now := s.Clock.Now()
		if !tournament.IsActive || !now.Before(tournament.EndTime) ||
			tournament.CurrentParticipants >= tournament.MaxParticipants {
			return ErrTournamentEnded
		}
		if player.Balance < tournament.EntryFee {
			return ErrInsufficientBalance
		}
		err = tx.First(&models.TournamentParticipation{},
			"tournament_id = ? AND player_id = ?", tournamentID, caller).Error
		if err == nil {
			return ErrAlreadyRegistered
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		player.Balance -= tournament.EntryFee
		player.TotalSpent += tournament.EntryFee
		player.IsActive = true
		if err := tx.Save(player).Error; err != nil {
			return err
		}

		participation = models.TournamentParticipation{
			TournamentID: tournamentID,
			PlayerID:     caller,
			EntryTime:    now,
		}
		if err := tx.Create(&participation).Error; err != nil {
			return err
		}

		tournament.PrizePool += tournament.EntryFee
		tournament.CurrentParticipants++
		return tx.Save(&tournament).Error
	})
	if err != nil {
		return nil, err
	}
	return &participation, nil
}

// SubmitScore overwrites the participant's score while the tournament is open.
// Rank and PrizeClaimed are untouched; repeated submissions simply replace the
// previous value.
func (s *TournamentService) SubmitScore(ctx context.Context, caller string, tournamentID uint64, score int64) (*models.TournamentParticipation, error) {
	var participation models.TournamentParticipation
	err := s.runGated(func(tx *gorm.DB, _ *models.PlatformState) error {
		var tournament models.Tournament
		if err := tx.First(&tournament, "id = ?", tournamentID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrTournamentNotFound
			}
			return err
		}
		if !tournament.IsActive || !s.Clock.Now().Before(tournament.EndTime) {
			return ErrTournamentEnded
		}
		err := tx.First(&participation,
			"tournament_id = ? AND player_id = ?", tournamentID, caller).Error
		if err == gorm.ErrRecordNotFound {
			return ErrPlayerNotFound
		}
		if err != nil {
			return err
		}
		participation.Score = score
		return tx.Save(&participation).Error
	})
	if err != nil {
		return nil, err
	}

	// Mirror into redis after commit; the cache is advisory.
	if s.Leaderboard != nil {
		if err := s.Leaderboard.RecordScore(ctx, tournamentID, caller, score); err != nil {
			log.Printf("leaderboard mirror failed for tournament %d: %v", tournamentID, err)
		}
	}
	return &participation, nil
}

// --- Read-only queries (never pause-gated) ---

func (s *TournamentService) GetTournamentDetails(tournamentID uint64) (*models.Tournament, error) {
	var tournament models.Tournament
	if err := s.DB.First(&tournament, "id = ?", tournamentID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrTournamentNotFound
		}
		return nil, err
	}
	return &tournament, nil
}

func (s *TournamentService) ListTournaments() ([]models.Tournament, error) {
	var tournaments []models.Tournament
	err := s.DB.Order("id ASC").Find(&tournaments).Error
	return tournaments, err
}

func (s *TournamentService) GetTournamentParticipation(tournamentID uint64, accountID string) (*models.TournamentParticipation, error) {
	var participation models.TournamentParticipation
	err := s.DB.First(&participation,
		"tournament_id = ? AND player_id = ?", tournamentID, accountID).Error
	if err == gorm.ErrRecordNotFound {
		return nil, ErrPlayerNotFound
	}
	if err != nil {
		return nil, err
	}
	return &participation, nil
}

// GetLeaderboard serves the top scores from redis when available, falling back
// to the participation rows.
func (s *TournamentService) GetLeaderboard(ctx context.Context, tournamentID uint64, limit int64) ([]cache.Entry, error) {
	if limit <= 0 {
		limit = 25
	}
	if limit > 100 {
		limit = 100
	}
	if s.Leaderboard != nil {
		entries, err := s.Leaderboard.TopScores(ctx, tournamentID, limit)
		if err == nil && len(entries) > 0 {
			return entries, nil
		}
		if err != nil {
			log.Printf("leaderboard cache read failed for tournament %d: %v", tournamentID, err)
		}
	}

	var participations []models.TournamentParticipation
	if err := s.DB.Where("tournament_id = ?", tournamentID).
		Order("score DESC").
		Limit(int(limit)).
		Find(&participations).Error; err != nil {
		return nil, err
	}
	entries := make([]cache.Entry, 0, len(participations))
	for _, p := range participations {
		entries = append(entries, cache.Entry{PlayerID: p.PlayerID, Score: p.Score})
	}
	return entries, nil
}
