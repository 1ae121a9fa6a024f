package entity

import "time"

// Player is one side of a session: a named human or a bot playing Mark.
type Player struct {
	Name       string `json:"name"`
	Mark       Mark   `json:"mark"`
	Difficulty string `json:"difficulty,omitempty"`
}

func (that *Player) IsBot() bool {
	return that.Difficulty != ""
}

// PlayerStats holds the running totals of one named player.
type PlayerStats struct {
	Name       string    `json:"name"`
	Wins       int       `json:"wins"`
	Losses     int       `json:"losses"`
	Draws      int       `json:"draws"`
	TotalGames int       `json:"total_games"`
	WinStreak  int       `json:"win_streak"`
	BestStreak int       `json:"best_streak"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewPlayerStats(name string, now time.Time) *PlayerStats {
	return &PlayerStats{
		Name:      name,
		CreatedAt: now,
	}
}

func (that *PlayerStats) AddWin() {
	that.Wins++
	that.TotalGames++
	that.WinStreak++
	that.BestStreak = max(that.BestStreak, that.WinStreak)
}

func (that *PlayerStats) AddLoss() {
	that.Losses++
	that.TotalGames++
	that.WinStreak = 0
}

func (that *PlayerStats) AddDraw() {
	that.Draws++
	that.TotalGames++
	that.WinStreak = 0
}

// WinRate is the share of won games in percent.
func (that *PlayerStats) WinRate() float64 {
	if that.TotalGames == 0 {
		return 0
	}

	return float64(that.Wins) / float64(that.TotalGames) * 100
}
