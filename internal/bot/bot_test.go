package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const testSeed = 42

func gameAfter(t *testing.T, positions ...int) *entity.Game {
	t.Helper()

	game := entity.NewGame()
	for _, position := range positions {
		require.True(t, game.MakeMove(position), "move %d should be accepted", position)
	}

	return game
}

func TestParseDifficulty(t *testing.T) {
	t.Run("Known names", func(t *testing.T) {
		for _, name := range []string{"easy", "Medium", " HARD ", "impossible"} {
			difficulty, err := ParseDifficulty(name)

			require.NoError(t, err)
			assert.Contains(t, Difficulties, difficulty)
		}
	})

	t.Run("Unknown name", func(t *testing.T) {
		_, err := ParseDifficulty("grandmaster")

		require.ErrorIs(t, err, apperror.ErrUnknownDifficulty)
	})
}

func TestNew(t *testing.T) {
	t.Run("Builds a strategy per difficulty", func(t *testing.T) {
		expected := map[Difficulty]Strategy{
			Easy:       &Random{},
			Medium:     &Heuristic{},
			Hard:       &Minimax{},
			Impossible: &AlphaBeta{},
		}

		for difficulty, want := range expected {
			strategy, err := New(difficulty, entity.PlayerO, NewRand(testSeed))

			require.NoError(t, err)
			assert.IsType(t, want, strategy, "difficulty %s", difficulty)
		}
	})

	t.Run("Nil rng is replaced", func(t *testing.T) {
		strategy, err := New(Easy, entity.PlayerX, nil)
		require.NoError(t, err)

		move, err := strategy.Move(entity.NewGame())

		require.NoError(t, err)
		assert.True(t, move >= entity.MinPosition && move <= entity.MaxPosition)
	})

	t.Run("Rejects unknown difficulty", func(t *testing.T) {
		_, err := New("grandmaster", entity.PlayerX, nil)

		require.ErrorIs(t, err, apperror.ErrUnknownDifficulty)
	})

	t.Run("Rejects empty mark", func(t *testing.T) {
		_, err := New(Hard, entity.EmptyCell, nil)

		require.ErrorIs(t, err, apperror.ErrInvalidMark)
	})
}

func TestDifficulty_Name(t *testing.T) {
	assert.Equal(t, "Easy AI", Easy.Name())
	assert.Equal(t, "Impossible AI", Impossible.Name())
	assert.Equal(t, "Unknown AI", Difficulty("x").Name())
}

func TestStrategies_FullBoard(t *testing.T) {
	// Given: a drawn game with no free cells
	game := gameAfter(t, 1, 2, 3, 5, 4, 7, 8, 9, 6)

	for _, difficulty := range Difficulties {
		strategy, err := New(difficulty, entity.PlayerO, NewRand(testSeed))
		require.NoError(t, err)

		// When: a move is requested
		_, err = strategy.Move(game)

		// Then: the caller is told there is nothing to play
		require.ErrorIs(t, err, apperror.ErrNoAvailableMoves, "difficulty %s", difficulty)
	}
}

func TestStrategies_WonGame(t *testing.T) {
	// Given: X has won on the top row with six cells still empty
	game := gameAfter(t, 1, 4, 2, 5, 3)
	before := game.Clone()

	for _, difficulty := range Difficulties {
		strategy, err := New(difficulty, entity.PlayerO, NewRand(testSeed))
		require.NoError(t, err)

		// When: a move is requested
		_, err = strategy.Move(game)

		// Then: the caller is told the game is over and the game is untouched
		require.ErrorIs(t, err, apperror.ErrGameFinished, "difficulty %s", difficulty)
		assert.Equal(t, before, game)
	}
}
