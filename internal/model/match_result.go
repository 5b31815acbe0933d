package model

type MatchOutcome string

const (
	OutcomeWin  MatchOutcome = "win"
	OutcomeLoss MatchOutcome = "loss"
	OutcomeDraw MatchOutcome = "draw"
)

func (o MatchOutcome) Valid() bool {
	switch o {
	case OutcomeWin, OutcomeLoss, OutcomeDraw:
		return true
	}
	return false
}

// MatchResult is published by gameplay servers once a match finishes.
type MatchResult struct {
	PlayerID uint         `json:"playerId"`
	Outcome  MatchOutcome `json:"outcome"`
	Score    int          `json:"score"`
}

// StatsDelta is the increment applied to a player_stats row.
type StatsDelta struct {
	GamesPlayed int
	Wins        int
	Losses      int
	Score       int
}

func (r MatchResult) Delta() StatsDelta {
	delta := StatsDelta{GamesPlayed: 1, Score: r.Score}
	switch r.Outcome {
	case OutcomeWin:
		delta.Wins = 1
	case OutcomeLoss:
		delta.Losses = 1
	}
	return delta
}
