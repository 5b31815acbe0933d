package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountViewOmitsPasswordHash(t *testing.T) {
	account := Account{ID: 3, Username: "alice", PasswordHash: "$2a$10$secret"}

	raw, err := json.Marshal(account.View())
	require.NoError(t, err)

	assert.JSONEq(t, `{"id":3,"username":"alice"}`, string(raw))
	assert.NotContains(t, string(raw), "secret")
}

func TestMatchResultDelta(t *testing.T) {
	tests := []struct {
		name   string
		result MatchResult
		want   StatsDelta
	}{
		{"win", MatchResult{PlayerID: 1, Outcome: OutcomeWin, Score: 30}, StatsDelta{GamesPlayed: 1, Wins: 1, Score: 30}},
		{"loss", MatchResult{PlayerID: 1, Outcome: OutcomeLoss, Score: -5}, StatsDelta{GamesPlayed: 1, Losses: 1, Score: -5}},
		{"draw", MatchResult{PlayerID: 1, Outcome: OutcomeDraw}, StatsDelta{GamesPlayed: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.result.Delta())
		})
	}
}

func TestMatchOutcomeValid(t *testing.T) {
	assert.True(t, OutcomeWin.Valid())
	assert.True(t, OutcomeDraw.Valid())
	assert.False(t, MatchOutcome("forfeit").Valid())
	assert.False(t, MatchOutcome("").Valid())
}
