package bot

import (
	"math"
	"math/rand/v2"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// AlphaBeta is Minimax with alpha-beta pruning. It reaches the same root
// score while visiting fewer nodes.
type AlphaBeta struct {
	symbol entity.Mark
	rng    *rand.Rand
}

func NewAlphaBeta(symbol entity.Mark, rng *rand.Rand) *AlphaBeta {
	return &AlphaBeta{
		symbol: symbol,
		rng:    rng,
	}
}

func (that *AlphaBeta) Move(game *entity.Game) (int, error) {
	eval, err := that.Evaluate(game)
	if err != nil {
		return 0, err
	}

	return eval.Move, nil
}

func (that *AlphaBeta) Evaluate(game *entity.Game) (Evaluation, error) {
	available, err := freeCells(game)
	if err != nil {
		return Evaluation{}, err
	}

	if game.IsEmpty() {
		return openingMove(that.rng), nil
	}

	search := newSearcher(that.symbol)
	best := Evaluation{Score: math.MinInt}
	alpha, beta := math.MinInt, math.MaxInt

	for _, move := range available {
		score := play(game, move, that.symbol, func() int {
			return search.alphaBeta(game, 0, false, alpha, beta)
		})

		if score > best.Score {
			best.Score = score
			best.Move = move
		}

		alpha = max(alpha, best.Score)
	}

	best.Nodes = search.nodes

	return best, nil
}

// alphaBeta stops scanning siblings once alpha >= beta; the pruned siblings
// cannot change the value seen by the parent.
func (that *searcher) alphaBeta(game *entity.Game, depth int, maximizing bool, alpha, beta int) int {
	that.nodes++

	if score, ok := that.terminal(game, depth); ok {
		return score
	}

	if maximizing {
		best := math.MinInt
		for _, move := range game.AvailableMoves() {
			score := play(game, move, that.symbol, func() int {
				return that.alphaBeta(game, depth+1, false, alpha, beta)
			})

			best = max(best, score)
			alpha = max(alpha, best)
			if alpha >= beta {
				break
			}
		}

		return best
	}

	best := math.MaxInt
	for _, move := range game.AvailableMoves() {
		score := play(game, move, that.opponent, func() int {
			return that.alphaBeta(game, depth+1, true, alpha, beta)
		})

		best = min(best, score)
		beta = min(beta, best)
		if alpha >= beta {
			break
		}
	}

	return best
}
