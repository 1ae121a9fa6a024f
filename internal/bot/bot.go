// Package bot holds the automated players: a random mover, a rule based
// heuristic and two exhaustive searches (plain minimax and alpha-beta).
//
// Strategies read the caller's game and may mutate it during a search, but
// every Move call leaves the game exactly as it was passed in.
package bot

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type Difficulty string

const (
	Easy       Difficulty = "easy"
	Medium     Difficulty = "medium"
	Hard       Difficulty = "hard"
	Impossible Difficulty = "impossible"
)

var Difficulties = []Difficulty{Easy, Medium, Hard, Impossible}

// Strategy picks the next position for its own mark.
type Strategy interface {
	Move(game *entity.Game) (int, error)
}

func ParseDifficulty(value string) (Difficulty, error) {
	difficulty := Difficulty(strings.ToLower(strings.TrimSpace(value)))
	switch difficulty {
	case Easy, Medium, Hard, Impossible:
		return difficulty, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrUnknownDifficulty, value)
	}
}

// Name - display label of a difficulty.
func (that Difficulty) Name() string {
	switch that {
	case Easy:
		return "Easy AI"
	case Medium:
		return "Medium AI"
	case Hard:
		return "Hard AI"
	case Impossible:
		return "Impossible AI"
	default:
		return "Unknown AI"
	}
}

// New builds the strategy for difficulty playing symbol. A nil rng is
// replaced with a randomly seeded one.
func New(difficulty Difficulty, symbol entity.Mark, rng *rand.Rand) (Strategy, error) {
	if !symbol.IsPlayer() {
		return nil, fmt.Errorf("%w: %q", apperror.ErrInvalidMark, symbol)
	}

	if rng == nil {
		rng = NewRand(0)
	}

	switch difficulty {
	case Easy:
		return NewRandom(rng), nil
	case Medium:
		return NewHeuristic(symbol, rng), nil
	case Hard:
		return NewMinimax(symbol, rng), nil
	case Impossible:
		return NewAlphaBeta(symbol, rng), nil
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownDifficulty, difficulty)
	}
}

// freeCells returns the moves a strategy may choose from. A won game with
// empty cells left has none.
func freeCells(game *entity.Game) ([]int, error) {
	available := game.AvailableMoves()
	if len(available) == 0 {
		return nil, apperror.ErrNoAvailableMoves
	}

	if game.GameOver {
		return nil, apperror.ErrGameFinished
	}

	return available, nil
}

// NewRand returns a PCG backed source. Zero seeds it randomly.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) //nolint: gosec // game moves only
	}

	return rand.New(rand.NewPCG(seed, seed)) //nolint: gosec // game moves only
}

func pick(rng *rand.Rand, positions []int) int {
	return positions[rng.IntN(len(positions))]
}

// pickFrom picks a random position of candidates that is still available.
func pickFrom(rng *rand.Rand, candidates, available []int) (int, bool) {
	open := make([]int, 0, len(candidates))
	for _, position := range candidates {
		if slices.Contains(available, position) {
			open = append(open, position)
		}
	}

	if len(open) == 0 {
		return 0, false
	}

	return pick(rng, open), true
}
