package bot

import (
	"math/rand/v2"
	"slices"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Heuristic wins if it can, blocks if it must, then prefers the center, a
// corner and an edge in that order.
type Heuristic struct {
	symbol   entity.Mark
	opponent entity.Mark
	rng      *rand.Rand
}

func NewHeuristic(symbol entity.Mark, rng *rand.Rand) *Heuristic {
	return &Heuristic{
		symbol:   symbol,
		opponent: symbol.Opponent(),
		rng:      rng,
	}
}

func (that *Heuristic) Move(game *entity.Game) (int, error) {
	available, err := freeCells(game)
	if err != nil {
		return 0, err
	}

	if move, ok := completingMove(game, available, that.symbol); ok {
		return move, nil
	}

	if move, ok := completingMove(game, available, that.opponent); ok {
		return move, nil
	}

	if slices.Contains(available, entity.CenterPosition) {
		return entity.CenterPosition, nil
	}

	if move, ok := pickFrom(that.rng, entity.CornerPositions, available); ok {
		return move, nil
	}

	if move, ok := pickFrom(that.rng, entity.EdgePositions, available); ok {
		return move, nil
	}

	return pick(that.rng, available), nil
}

// completingMove returns the first position in available that would complete
// a line for mark.
func completingMove(game *entity.Game, available []int, mark entity.Mark) (int, bool) {
	for _, move := range available {
		if wins(game, move, mark) {
			return move, true
		}
	}

	return 0, false
}

func wins(game *entity.Game, position int, mark entity.Mark) bool {
	game.Place(position, mark)
	defer game.Unplace(position)

	return game.CheckWin(mark)
}
