package apperror

import "errors"

var (
	ErrGameFinished      = errors.New("game is already finished")
	ErrNotYourTurn       = errors.New("it's not your turn")
	ErrInvalidMove       = errors.New("invalid move")
	ErrNothingToUndo     = errors.New("nothing to undo")
	ErrNoAvailableMoves  = errors.New("no available moves")
	ErrUnknownDifficulty = errors.New("unknown difficulty")
	ErrInvalidMark       = errors.New("invalid mark")
	ErrMoveTimeout       = errors.New("bot move timed out")
)
