package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

func TestRandom_Move(t *testing.T) {
	t.Run("Returns an available move", func(t *testing.T) {
		// Given: X has taken the center
		game := gameAfter(t, 5)
		before := game.Clone()
		strategy := NewRandom(NewRand(testSeed))

		for range 50 {
			// When: the random bot picks a move
			move, err := strategy.Move(game)

			// Then: it is one of the free cells
			require.NoError(t, err)
			assert.Contains(t, game.AvailableMoves(), move)
		}

		assert.Equal(t, before, game)
	})

	t.Run("Same seed gives the same moves", func(t *testing.T) {
		game := entity.NewGame()
		first := NewRandom(NewRand(testSeed))
		second := NewRandom(NewRand(testSeed))

		for range 20 {
			a, err := first.Move(game)
			require.NoError(t, err)
			b, err := second.Move(game)
			require.NoError(t, err)

			assert.Equal(t, a, b)
		}
	})

	t.Run("Single free cell", func(t *testing.T) {
		game := gameAfter(t, 1, 2, 3, 5, 4, 7, 8, 9)

		move, err := NewRandom(NewRand(testSeed)).Move(game)

		require.NoError(t, err)
		assert.Equal(t, 6, move)
	})
}
