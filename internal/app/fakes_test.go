package app

import (
	"context"
	"errors"

	"gamestats-api/internal/model"
)

type fakeCache struct {
	entries       []model.LeaderboardEntry
	hit           bool
	getErr        error
	setErr        error
	sets          int
	invalidations int
}

func newFakeCache() *fakeCache {
	return &fakeCache{}
}

func (c *fakeCache) Get(context.Context) ([]model.LeaderboardEntry, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	return c.entries, c.hit, nil
}

func (c *fakeCache) Set(_ context.Context, entries []model.LeaderboardEntry) error {
	c.sets++
	if c.setErr != nil {
		return c.setErr
	}
	c.entries = entries
	c.hit = true
	return nil
}

func (c *fakeCache) Invalidate(context.Context) error {
	c.invalidations++
	c.entries = nil
	c.hit = false
	return nil
}

// countingStats counts leaderboard reads and can be told to fail them.
type countingStats struct {
	StatsStore
	reads   int
	listErr error
}

func (c *countingStats) ListLeaderboard(ctx context.Context) ([]model.LeaderboardEntry, error) {
	c.reads++
	if c.listErr != nil {
		return nil, c.listErr
	}
	return c.StatsStore.ListLeaderboard(ctx)
}

var errStoreDown = errors.New("store unavailable")
