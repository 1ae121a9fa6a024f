package entity

import "time"

const (
	ModePvP   = "PvP"
	ModePvAI  = "PvAI"
	ModeAIvAI = "AIvAI"
)

// GameRecord is the read-only summary of a finished game.
type GameRecord struct {
	ID        int64     `json:"id"`
	PlayerX   string    `json:"player_x"`
	PlayerO   string    `json:"player_o"`
	Winner    string    `json:"winner"`
	Moves     int       `json:"moves"`
	Mode      string    `json:"mode"`
	Timestamp time.Time `json:"timestamp"`
}

// NewGameRecord summarises a finished game. Winner is the winning player's
// name, or empty for a draw.
func NewGameRecord(game *Game, playerX, playerO, mode string, now time.Time) *GameRecord {
	record := &GameRecord{
		PlayerX:   playerX,
		PlayerO:   playerO,
		Moves:     game.MoveCount,
		Mode:      mode,
		Timestamp: now,
	}

	switch game.Winner {
	case PlayerX:
		record.Winner = playerX
	case PlayerO:
		record.Winner = playerO
	}

	return record
}

func (that *GameRecord) IsDraw() bool {
	return that.Winner == ""
}

// Loser returns the name of the losing player, empty for a draw.
func (that *GameRecord) Loser() string {
	switch that.Winner {
	case "":
		return ""
	case that.PlayerX:
		return that.PlayerO
	default:
		return that.PlayerX
	}
}
