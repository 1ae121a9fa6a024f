package bot

import (
	"math/rand/v2"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const winScore = 10

// Evaluation is the result of a root search. Nodes counts the positions the
// search visited below the root.
type Evaluation struct {
	Move  int
	Score int
	Nodes int
}

// searcher carries the per-call state of one root search.
type searcher struct {
	symbol   entity.Mark
	opponent entity.Mark
	nodes    int
}

func newSearcher(symbol entity.Mark) *searcher {
	return &searcher{
		symbol:   symbol,
		opponent: symbol.Opponent(),
	}
}

// terminal scores finished positions, preferring quick wins and slow losses.
func (that *searcher) terminal(game *entity.Game, depth int) (int, bool) {
	switch {
	case game.CheckWin(that.symbol):
		return winScore - depth, true
	case game.CheckWin(that.opponent):
		return depth - winScore, true
	case game.MoveCount == entity.BoardSize:
		return 0, true
	default:
		return 0, false
	}
}

// play keeps mark on position while eval runs.
func play(game *entity.Game, position int, mark entity.Mark, eval func() int) int {
	game.Place(position, mark)
	defer game.Unplace(position)

	return eval()
}

// openingMove is played on an empty board. All corners are equivalent there
// and the game value is a draw.
func openingMove(rng *rand.Rand) Evaluation {
	return Evaluation{Move: pick(rng, entity.CornerPositions)}
}
