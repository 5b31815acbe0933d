package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"gamestats-api/internal/model"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrUsernameExists     = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

const DefaultBcryptCost = 10

// bcrypt only reads the first 72 bytes of a password.
const maxPasswordBytes = 72

// passwordBytes trims the password to what bcrypt consumes so that longer
// passwords hash and compare the same way on register and login.
func passwordBytes(password string) []byte {
	b := []byte(password)
	if len(b) > maxPasswordBytes {
		b = b[:maxPasswordBytes]
	}
	return b
}

type AuthService struct {
	accounts   AccountStore
	stats      StatsStore
	cache      LeaderboardCache
	bcryptCost int
	logger     *slog.Logger
}

func NewAuthService(accounts AccountStore, stats StatsStore, cache LeaderboardCache, bcryptCost int, logger *slog.Logger) *AuthService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = DefaultBcryptCost
	}
	return &AuthService{
		accounts:   accounts,
		stats:      stats,
		cache:      cache,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// Register creates the account and then its zeroed stats row. The two inserts
// are independent: a failed stats insert is logged and the account id is still
// returned.
func (s *AuthService) Register(ctx context.Context, username, password string) (uint, error) {
	if username == "" || password == "" {
		return 0, ErrInvalidInput
	}

	existing, err := s.accounts.GetByUsername(ctx, username)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return 0, ErrUsernameExists
	}

	hash, err := bcrypt.GenerateFromPassword(passwordBytes(password), s.bcryptCost)
	if err != nil {
		return 0, fmt.Errorf("hash password failed: %w", err)
	}

	account := &model.Account{
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		if errors.Is(err, model.ErrDuplicateUsername) {
			return 0, ErrUsernameExists
		}
		return 0, err
	}

	if err := s.stats.Create(ctx, model.NewPlayerStats(account.ID)); err != nil {
		s.logger.Error("initialize player stats failed",
			"player_id", account.ID,
			"error", err,
		)
		return account.ID, nil
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.logger.Warn("invalidate leaderboard cache failed", "error", err)
		}
	}
	return account.ID, nil
}

// Login does not tell a missing username apart from a wrong password.
func (s *AuthService) Login(ctx context.Context, username, password string) (*model.AccountView, error) {
	if username == "" || password == "" {
		return nil, ErrInvalidInput
	}

	account, err := s.accounts.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), passwordBytes(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	view := account.View()
	return &view, nil
}
