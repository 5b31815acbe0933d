package model

type PlayerStats struct {
	PlayerID    uint `gorm:"primaryKey;autoIncrement:false"`
	GamesPlayed int  `gorm:"not null"`
	Wins        int  `gorm:"not null"`
	Losses      int  `gorm:"not null"`
	Score       int  `gorm:"not null;index"`
}

func (PlayerStats) TableName() string {
	return "player_stats"
}

// NewPlayerStats returns the zeroed statistics row created alongside a new account.
func NewPlayerStats(playerID uint) *PlayerStats {
	return &PlayerStats{PlayerID: playerID}
}

type LeaderboardEntry struct {
	PlayerName  string `json:"playerName"`
	GamesPlayed int    `json:"gamesPlayed"`
	GamesWon    int    `json:"gamesWon"`
	GamesLost   int    `json:"gamesLost"`
	Score       int    `json:"score"`
}
