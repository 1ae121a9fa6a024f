package entity

import (
	"strconv"
	"strings"
)

type Mark string

const (
	PlayerX Mark = "X"
	PlayerO Mark = "O"

	EmptyCell Mark = ""
)

// Opponent returns the other mark. EmptyCell has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}

func (that Mark) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

const (
	BoardSize = 9

	MinPosition = 1
	MaxPosition = 9

	CenterPosition = 5
)

var (
	CornerPositions = []int{1, 3, 7, 9}
	EdgePositions   = []int{2, 4, 6, 8}

	// WinCombos lists rows, then columns, then both diagonals.
	WinCombos = [][3]int{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
		{1, 4, 7},
		{2, 5, 8},
		{3, 6, 9},
		{1, 5, 9},
		{3, 5, 7},
	}
)

type Move struct {
	Position int  `json:"position"`
	Mark     Mark `json:"mark"`
}

type Outcome int

const (
	InProgress Outcome = iota
	XWins
	OWins
	Draw
)

func (that Outcome) String() string {
	switch that {
	case XWins:
		return "x_wins"
	case OWins:
		return "o_wins"
	case Draw:
		return "draw"
	default:
		return "in_progress"
	}
}

// Game is the 3x3 board state machine. Winner is EmptyCell both while the game
// is in progress and after a draw; GameOver tells the two apart.
type Game struct {
	Board     [BoardSize]Mark `json:"board"`
	Turn      Mark            `json:"player_turn"`
	History   []Move          `json:"history"`
	MoveCount int             `json:"move_count"`
	GameOver  bool            `json:"game_over"`
	Winner    Mark            `json:"winner"`
}

func NewGame() *Game {
	game := &Game{}
	game.Reset()

	return game
}

// Reset - puts the game back to an empty board with X to move.
func (that *Game) Reset() {
	that.Board = [BoardSize]Mark{}
	that.Turn = PlayerX
	that.History = nil
	that.MoveCount = 0
	that.GameOver = false
	that.Winner = EmptyCell
}

// Cell returns the mark at position, EmptyCell for positions outside the board.
func (that *Game) Cell(position int) Mark {
	if !onBoard(position) {
		return EmptyCell
	}

	return that.Board[position-1]
}

func (that *Game) IsValidMove(position int) bool {
	if !onBoard(position) {
		return false
	}

	if that.Board[position-1] != EmptyCell {
		return false
	}

	return !that.GameOver
}

// MakeMove - places the current player's mark. It returns false and leaves the
// game untouched when the move is not valid.
func (that *Game) MakeMove(position int) bool {
	if !that.IsValidMove(position) {
		return false
	}

	player := that.Turn

	that.Board[position-1] = player
	that.History = append(that.History, Move{Position: position, Mark: player})
	that.MoveCount++

	switch {
	case that.CheckWin(player):
		that.GameOver = true
		that.Winner = player
	case that.MoveCount == BoardSize:
		that.GameOver = true
		that.Winner = EmptyCell
	default:
		that.Turn = player.Opponent()
	}

	return true
}

// UndoMove - reverts the last move; the player who made it is to move again.
func (that *Game) UndoMove() bool {
	if len(that.History) == 0 {
		return false
	}

	last := that.History[len(that.History)-1]
	that.History = that.History[:len(that.History)-1]

	that.Board[last.Position-1] = EmptyCell
	that.MoveCount--
	that.Turn = last.Mark
	that.GameOver = false
	that.Winner = EmptyCell

	return true
}

func (that *Game) CheckWin(player Mark) bool {
	_, ok := that.WinningCombo(player)
	return ok
}

// WinningCombo returns the first completed line of player in WinCombos order.
func (that *Game) WinningCombo(player Mark) ([3]int, bool) {
	if !player.IsPlayer() {
		return [3]int{}, false
	}

	for _, combo := range WinCombos {
		if that.Board[combo[0]-1] == player &&
			that.Board[combo[1]-1] == player &&
			that.Board[combo[2]-1] == player {
			return combo, true
		}
	}

	return [3]int{}, false
}

func (that *Game) CheckDraw() bool {
	return that.MoveCount == BoardSize && !that.CheckWin(PlayerX) && !that.CheckWin(PlayerO)
}

// AvailableMoves returns the empty positions in ascending order.
func (that *Game) AvailableMoves() []int {
	moves := make([]int, 0, BoardSize)
	for i, cell := range that.Board {
		if cell == EmptyCell {
			moves = append(moves, i+1)
		}
	}

	return moves
}

func (that *Game) IsEmpty() bool {
	for _, cell := range that.Board {
		if cell != EmptyCell {
			return false
		}
	}

	return true
}

// Place puts mark on position and bumps MoveCount without touching turn,
// history or the terminal flags. Search code must pair it with Unplace.
func (that *Game) Place(position int, mark Mark) {
	that.Board[position-1] = mark
	that.MoveCount++
}

// Unplace reverts Place.
func (that *Game) Unplace(position int) {
	that.Board[position-1] = EmptyCell
	that.MoveCount--
}

func (that *Game) Outcome() Outcome {
	if !that.GameOver {
		return InProgress
	}

	switch that.Winner {
	case PlayerX:
		return XWins
	case PlayerO:
		return OWins
	default:
		return Draw
	}
}

func (that *Game) Clone() *Game {
	clone := *that
	if that.History != nil {
		clone.History = make([]Move, len(that.History))
		copy(clone.History, that.History)
	}

	return &clone
}

// String renders the board with empty cells showing their position number.
func (that *Game) String() string {
	rows := make([]string, 0, 3)
	for row := 0; row < 3; row++ {
		cells := make([]string, 0, 3)
		for col := 0; col < 3; col++ {
			position := row*3 + col + 1
			if mark := that.Board[position-1]; mark != EmptyCell {
				cells = append(cells, string(mark))
			} else {
				cells = append(cells, strconv.Itoa(position))
			}
		}
		rows = append(rows, strings.Join(cells, " | "))
	}

	return strings.Join(rows, "\n---------\n")
}

func onBoard(position int) bool {
	return position >= MinPosition && position <= MaxPosition
}
