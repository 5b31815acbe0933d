// Package memory keeps accounts, stats and feedback in process memory. It backs
// the "memory" store driver for local runs and the service tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"gamestats-api/internal/model"
)

type Store struct {
	mu       sync.RWMutex
	accounts map[uint]model.Account
	stats    map[uint]model.PlayerStats
	feedback map[uint]model.Feedback

	nextAccountID  uint
	nextFeedbackID uint
}

func New() *Store {
	return &Store{
		accounts: make(map[uint]model.Account),
		stats:    make(map[uint]model.PlayerStats),
		feedback: make(map[uint]model.Feedback),
	}
}

func (s *Store) Accounts() *AccountRepository {
	return &AccountRepository{store: s}
}

func (s *Store) Stats() *StatsRepository {
	return &StatsRepository{store: s}
}

func (s *Store) Feedback() *FeedbackRepository {
	return &FeedbackRepository{store: s}
}

type AccountRepository struct {
	store *Store
}

func (r *AccountRepository) Create(_ context.Context, account *model.Account) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.accounts {
		if existing.Username == account.Username {
			return model.ErrDuplicateUsername
		}
	}
	s.nextAccountID++
	account.ID = s.nextAccountID
	s.accounts[account.ID] = *account
	return nil
}

func (r *AccountRepository) GetByUsername(_ context.Context, username string) (*model.Account, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, account := range s.accounts {
		if account.Username == username {
			found := account
			return &found, nil
		}
	}
	return nil, nil
}

// Count is used by tests to assert that no duplicate row was written.
func (r *AccountRepository) Count() int {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return len(r.store.accounts)
}

type StatsRepository struct {
	store *Store
}

func (r *StatsRepository) Create(_ context.Context, stats *model.PlayerStats) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stats[stats.PlayerID] = *stats
	return nil
}

func (r *StatsRepository) ListLeaderboard(_ context.Context) ([]model.LeaderboardEntry, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]model.LeaderboardEntry, 0, len(s.stats))
	for playerID, stats := range s.stats {
		account, ok := s.accounts[playerID]
		if !ok {
			continue
		}
		entries = append(entries, model.LeaderboardEntry{
			PlayerName:  account.Username,
			GamesPlayed: stats.GamesPlayed,
			GamesWon:    stats.Wins,
			GamesLost:   stats.Losses,
			Score:       stats.Score,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	return entries, nil
}

func (r *StatsRepository) ApplyDelta(_ context.Context, playerID uint, delta model.StatsDelta) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	stats, ok := s.stats[playerID]
	if !ok {
		return model.ErrStatsNotFound
	}
	stats.GamesPlayed += delta.GamesPlayed
	stats.Wins += delta.Wins
	stats.Losses += delta.Losses
	stats.Score += delta.Score
	s.stats[playerID] = stats
	return nil
}

// Get returns a copy of the stats row for a player.
func (r *StatsRepository) Get(playerID uint) (model.PlayerStats, bool) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	stats, ok := r.store.stats[playerID]
	return stats, ok
}

type FeedbackRepository struct {
	store *Store
}

func (r *FeedbackRepository) Create(_ context.Context, feedback *model.Feedback) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextFeedbackID++
	feedback.ID = s.nextFeedbackID
	s.feedback[feedback.ID] = *feedback
	return nil
}

func (r *FeedbackRepository) Get(id uint) (model.Feedback, bool) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	feedback, ok := r.store.feedback[id]
	return feedback, ok
}

func (r *FeedbackRepository) Count() int {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return len(r.store.feedback)
}
