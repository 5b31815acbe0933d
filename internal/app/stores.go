package app

import (
	"context"

	"gamestats-api/internal/model"
)

// AccountStore returns nil, nil from GetByUsername when no account matches.
type AccountStore interface {
	Create(ctx context.Context, account *model.Account) error
	GetByUsername(ctx context.Context, username string) (*model.Account, error)
}

type StatsStore interface {
	Create(ctx context.Context, stats *model.PlayerStats) error
	ListLeaderboard(ctx context.Context) ([]model.LeaderboardEntry, error)
	ApplyDelta(ctx context.Context, playerID uint, delta model.StatsDelta) error
}

type FeedbackStore interface {
	Create(ctx context.Context, feedback *model.Feedback) error
}

type LeaderboardCache interface {
	Get(ctx context.Context) ([]model.LeaderboardEntry, bool, error)
	Set(ctx context.Context, entries []model.LeaderboardEntry) error
	Invalidate(ctx context.Context) error
}
