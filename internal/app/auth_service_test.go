package app

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"gamestats-api/internal/logger"
	"gamestats-api/internal/model"
	"gamestats-api/internal/repository/memory"
)

// failingStats rejects every stats insert.
type failingStats struct {
	*memory.StatsRepository
}

func (failingStats) Create(context.Context, *model.PlayerStats) error {
	return errors.New("player_stats table is gone")
}

// failingAccounts rejects every account insert.
type failingAccounts struct {
	*memory.AccountRepository
}

func (failingAccounts) Create(context.Context, *model.Account) error {
	return errors.New("accounts table is gone")
}

// racingAccounts hides existing rows from the lookup, as a concurrent register would.
type racingAccounts struct {
	*memory.AccountRepository
}

func (racingAccounts) GetByUsername(context.Context, string) (*model.Account, error) {
	return nil, nil
}

type AuthServiceSuite struct {
	suite.Suite
	store   *memory.Store
	cache   *fakeCache
	service *AuthService
	ctx     context.Context
}

func TestAuthServiceSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceSuite))
}

func (s *AuthServiceSuite) SetupTest() {
	s.store = memory.New()
	s.cache = newFakeCache()
	s.service = NewAuthService(s.store.Accounts(), s.store.Stats(), s.cache, bcrypt.MinCost, logger.Discard())
	s.ctx = context.Background()
}

// Register tests

func (s *AuthServiceSuite) TestRegisterReturnsPositiveID() {
	id, err := s.service.Register(s.ctx, "alice", "pw1")

	s.Require().NoError(err)
	s.Equal(uint(1), id)
}

func (s *AuthServiceSuite) TestRegisterHashesPassword() {
	_, err := s.service.Register(s.ctx, "alice", "pw1")
	s.Require().NoError(err)

	account, err := s.store.Accounts().GetByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.NotEqual("pw1", account.PasswordHash)
	s.NoError(bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte("pw1")))
}

func (s *AuthServiceSuite) TestRegisterInitializesZeroStats() {
	id, err := s.service.Register(s.ctx, "alice", "pw1")
	s.Require().NoError(err)

	stats, ok := s.store.Stats().Get(id)
	s.Require().True(ok)
	s.Equal(*model.NewPlayerStats(id), stats)
}

func (s *AuthServiceSuite) TestRegisterInvalidatesLeaderboardCache() {
	_, err := s.service.Register(s.ctx, "alice", "pw1")
	s.Require().NoError(err)

	s.Equal(1, s.cache.invalidations)
}

func (s *AuthServiceSuite) TestRegisterRequiresBothFields() {
	for _, tc := range []struct{ username, password string }{
		{"", "pw"},
		{"alice", ""},
		{"", ""},
	} {
		_, err := s.service.Register(s.ctx, tc.username, tc.password)
		s.ErrorIs(err, ErrInvalidInput)
	}
	s.Equal(0, s.store.Accounts().Count())
}

func (s *AuthServiceSuite) TestRegisterDuplicateUsername() {
	_, err := s.service.Register(s.ctx, "alice", "pw1")
	s.Require().NoError(err)

	_, err = s.service.Register(s.ctx, "alice", "pw2")

	s.ErrorIs(err, ErrUsernameExists)
	s.Equal(1, s.store.Accounts().Count())
}

func (s *AuthServiceSuite) TestRegisterUsernameIsCaseSensitive() {
	_, err := s.service.Register(s.ctx, "alice", "pw1")
	s.Require().NoError(err)

	_, err = s.service.Register(s.ctx, "Alice", "pw1")
	s.NoError(err)
}

func (s *AuthServiceSuite) TestRegisterDuplicateKeyOnInsertIsConflict() {
	_, err := s.service.Register(s.ctx, "alice", "pw1")
	s.Require().NoError(err)

	racing := NewAuthService(racingAccounts{s.store.Accounts()}, s.store.Stats(), nil, bcrypt.MinCost, logger.Discard())
	_, err = racing.Register(s.ctx, "alice", "pw2")

	s.ErrorIs(err, ErrUsernameExists)
}

func (s *AuthServiceSuite) TestRegisterSwallowsStatsFailure() {
	service := NewAuthService(s.store.Accounts(), failingStats{s.store.Stats()}, s.cache, bcrypt.MinCost, logger.Discard())

	id, err := service.Register(s.ctx, "alice", "pw1")

	s.Require().NoError(err)
	s.Equal(uint(1), id)
	_, ok := s.store.Stats().Get(id)
	s.False(ok)

	view, err := service.Login(s.ctx, "alice", "pw1")
	s.Require().NoError(err)
	s.Equal(id, view.ID)
}

func (s *AuthServiceSuite) TestRegisterSurfacesAccountFailure() {
	service := NewAuthService(failingAccounts{s.store.Accounts()}, s.store.Stats(), nil, bcrypt.MinCost, logger.Discard())

	_, err := service.Register(s.ctx, "alice", "pw1")

	s.Error(err)
	s.NotErrorIs(err, ErrUsernameExists)
	s.NotErrorIs(err, ErrInvalidInput)
}

func (s *AuthServiceSuite) TestOutOfRangeCostFallsBackToDefault() {
	service := NewAuthService(s.store.Accounts(), s.store.Stats(), nil, 99, logger.Discard())
	s.Equal(DefaultBcryptCost, service.bcryptCost)
}

func (s *AuthServiceSuite) TestRegisterAcceptsPasswordLongerThanBcryptLimit() {
	long := strings.Repeat("p", 73)

	id, err := s.service.Register(s.ctx, "alice", long)
	s.Require().NoError(err)

	view, err := s.service.Login(s.ctx, "alice", long)
	s.Require().NoError(err)
	s.Equal(id, view.ID)

	// Only the first 72 bytes take part in the hash.
	_, err = s.service.Login(s.ctx, "alice", long[:72])
	s.NoError(err)
	_, err = s.service.Login(s.ctx, "alice", long[:71])
	s.ErrorIs(err, ErrInvalidCredentials)
}

// Login tests

func (s *AuthServiceSuite) TestLoginReturnsAccountView() {
	id, err := s.service.Register(s.ctx, "alice", "pw1")
	s.Require().NoError(err)

	view, err := s.service.Login(s.ctx, "alice", "pw1")

	s.Require().NoError(err)
	s.Equal(model.AccountView{ID: id, Username: "alice"}, *view)
}

func (s *AuthServiceSuite) TestLoginWrongPasswordAndUnknownUserMatch() {
	_, err := s.service.Register(s.ctx, "alice", "pw1")
	s.Require().NoError(err)

	_, wrongPassword := s.service.Login(s.ctx, "alice", "wrong")
	_, unknownUser := s.service.Login(s.ctx, "mallory", "pw1")

	s.ErrorIs(wrongPassword, ErrInvalidCredentials)
	s.ErrorIs(unknownUser, ErrInvalidCredentials)
	s.Equal(wrongPassword.Error(), unknownUser.Error())
}

func (s *AuthServiceSuite) TestLoginRequiresBothFields() {
	_, err := s.service.Login(s.ctx, "alice", "")
	s.ErrorIs(err, ErrInvalidInput)
}
