package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"gamestats-api/internal/model"
)

type StatsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) Create(ctx context.Context, stats *model.PlayerStats) error {
	if err := r.db.WithContext(ctx).Create(stats).Error; err != nil {
		return fmt.Errorf("create player stats failed: %w", err)
	}
	return nil
}

// ListLeaderboard joins accounts with their stats rows. Accounts without a
// stats row are left out.
func (r *StatsRepository) ListLeaderboard(ctx context.Context) ([]model.LeaderboardEntry, error) {
	entries := make([]model.LeaderboardEntry, 0)
	err := r.db.WithContext(ctx).
		Table("accounts AS u").
		Select("u.username AS player_name, s.games_played AS games_played, s.wins AS games_won, s.losses AS games_lost, s.score AS score").
		Joins("JOIN player_stats s ON u.id = s.player_id").
		Order("s.score DESC").
		Scan(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("list leaderboard failed: %w", err)
	}
	return entries, nil
}

func (r *StatsRepository) ApplyDelta(ctx context.Context, playerID uint, delta model.StatsDelta) error {
	result := r.db.WithContext(ctx).
		Model(&model.PlayerStats{}).
		Where("player_id = ?", playerID).
		Updates(map[string]interface{}{
			"games_played": gorm.Expr("games_played + ?", delta.GamesPlayed),
			"wins":         gorm.Expr("wins + ?", delta.Wins),
			"losses":       gorm.Expr("losses + ?", delta.Losses),
			"score":        gorm.Expr("score + ?", delta.Score),
		})
	if result.Error != nil {
		return fmt.Errorf("apply stats delta failed: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrStatsNotFound
	}
	return nil
}
