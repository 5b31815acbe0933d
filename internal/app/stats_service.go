package app

import (
	"context"
	"errors"
	"log/slog"

	"gamestats-api/internal/model"
)

var ErrInvalidMatchResult = errors.New("invalid match result")

type StatsService struct {
	stats  StatsStore
	cache  LeaderboardCache
	logger *slog.Logger
}

// NewStatsService accepts a nil cache; the leaderboard is then always read from the store.
func NewStatsService(stats StatsStore, cache LeaderboardCache, logger *slog.Logger) *StatsService {
	return &StatsService{
		stats:  stats,
		cache:  cache,
		logger: logger,
	}
}

func (s *StatsService) ListStats(ctx context.Context) ([]model.LeaderboardEntry, error) {
	if s.cache != nil {
		cached, hit, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Warn("read leaderboard cache failed", "error", err)
		} else if hit {
			return cached, nil
		}
	}

	entries, err := s.stats.ListLeaderboard(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, entries); err != nil {
			s.logger.Warn("write leaderboard cache failed", "error", err)
		}
	}
	return entries, nil
}

// RecordMatch folds one finished match into the player's counters.
func (s *StatsService) RecordMatch(ctx context.Context, result model.MatchResult) error {
	if result.PlayerID == 0 || !result.Outcome.Valid() {
		return ErrInvalidMatchResult
	}

	if err := s.stats.ApplyDelta(ctx, result.PlayerID, result.Delta()); err != nil {
		return err
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.logger.Warn("invalidate leaderboard cache failed", "error", err)
		}
	}
	return nil
}
