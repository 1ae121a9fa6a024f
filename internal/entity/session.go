package entity

import (
	"errors"
	"fmt"
)

const (
	StatusOngoing  = "ongoing"
	StatusFinished = "finished"
)

var ErrUnknownMark = errors.New("unknown mark")

// Session is one game kept between turns. Either side may be a bot, but
// never both: bot-only games run as matches without a session.
type Session struct {
	ID      string  `json:"id"`
	Game    *Game   `json:"game"`
	PlayerX *Player `json:"player_x"`
	PlayerO *Player `json:"player_o"`
	Mode    string  `json:"mode"`
	Status  string  `json:"status"`
	Outcome string  `json:"outcome"`
}

// NewSession - the mode is PvAI when one of the players is a bot and PvP
// otherwise.
func NewSession(id string, playerX, playerO *Player) *Session {
	mode := ModePvP
	if playerX.IsBot() || playerO.IsBot() {
		mode = ModePvAI
	}

	return &Session{
		ID:      id,
		Game:    NewGame(),
		PlayerX: playerX,
		PlayerO: playerO,
		Mode:    mode,
		Status:  StatusOngoing,
		Outcome: InProgress.String(),
	}
}

// PlayerFor returns the session player owning mark.
func (that *Session) PlayerFor(mark Mark) (*Player, error) {
	switch mark {
	case PlayerX:
		return that.PlayerX, nil
	case PlayerO:
		return that.PlayerO, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMark, mark)
	}
}

// Current returns the player to move.
func (that *Session) Current() *Player {
	if that.Game.Turn == PlayerO {
		return that.PlayerO
	}

	return that.PlayerX
}

// Bot returns the bot side, nil in a PvP session.
func (that *Session) Bot() *Player {
	switch {
	case that.PlayerX.IsBot():
		return that.PlayerX
	case that.PlayerO.IsBot():
		return that.PlayerO
	default:
		return nil
	}
}

func (that *Session) IsBotTurn() bool {
	return !that.Game.GameOver && that.Current().IsBot()
}

func (that *Session) IsFinished() bool {
	return that.Status == StatusFinished
}

// Sync copies the game's terminal state into Status and Outcome.
func (that *Session) Sync() {
	that.Outcome = that.Game.Outcome().String()
	if that.Game.GameOver {
		that.Status = StatusFinished
		return
	}

	that.Status = StatusOngoing
}

// Names returns the player names in X, O order.
func (that *Session) Names() (string, string) {
	return that.PlayerX.Name, that.PlayerO.Name
}
