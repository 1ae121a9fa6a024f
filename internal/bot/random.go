package bot

import (
	"math/rand/v2"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Random plays a uniformly random free cell.
type Random struct {
	rng *rand.Rand
}

func NewRandom(rng *rand.Rand) *Random {
	return &Random{rng: rng}
}

func (that *Random) Move(game *entity.Game) (int, error) {
	availableCells, err := freeCells(game)
	if err != nil {
		return 0, err
	}

	return pick(that.rng, availableCells), nil
}
