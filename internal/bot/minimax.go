package bot

import (
	"math"
	"math/rand/v2"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Minimax searches the whole game tree and never loses.
type Minimax struct {
	symbol entity.Mark
	rng    *rand.Rand
}

func NewMinimax(symbol entity.Mark, rng *rand.Rand) *Minimax {
	return &Minimax{
		symbol: symbol,
		rng:    rng,
	}
}

func (that *Minimax) Move(game *entity.Game) (int, error) {
	eval, err := that.Evaluate(game)
	if err != nil {
		return 0, err
	}

	return eval.Move, nil
}

// Evaluate returns the first root move with the highest score.
func (that *Minimax) Evaluate(game *entity.Game) (Evaluation, error) {
	available, err := freeCells(game)
	if err != nil {
		return Evaluation{}, err
	}

	if game.IsEmpty() {
		return openingMove(that.rng), nil
	}

	search := newSearcher(that.symbol)
	best := Evaluation{Score: math.MinInt}

	for _, move := range available {
		score := play(game, move, that.symbol, func() int {
			return search.minimax(game, 0, false)
		})

		if score > best.Score {
			best.Score = score
			best.Move = move
		}
	}

	best.Nodes = search.nodes

	return best, nil
}

func (that *searcher) minimax(game *entity.Game, depth int, maximizing bool) int {
	that.nodes++

	if score, ok := that.terminal(game, depth); ok {
		return score
	}

	if maximizing {
		best := math.MinInt
		for _, move := range game.AvailableMoves() {
			score := play(game, move, that.symbol, func() int {
				return that.minimax(game, depth+1, false)
			})
			best = max(best, score)
		}

		return best
	}

	best := math.MaxInt
	for _, move := range game.AvailableMoves() {
		score := play(game, move, that.opponent, func() int {
			return that.minimax(game, depth+1, true)
		})
		best = min(best, score)
	}

	return best
}
