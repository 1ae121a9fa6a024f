package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGameRecord(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("Winner is the name of the winning side", func(t *testing.T) {
		// Given: a game O has won
		game := &Game{GameOver: true, Winner: PlayerO, MoveCount: 6}

		// When: the record is built
		record := NewGameRecord(game, "alice", "Hard AI", ModePvAI, now)

		// Then: the winner and loser are resolved by name
		assert.Equal(t, "Hard AI", record.Winner)
		assert.Equal(t, "alice", record.Loser())
		assert.Equal(t, 6, record.Moves)
		assert.Equal(t, ModePvAI, record.Mode)
		assert.Equal(t, now, record.Timestamp)
		assert.False(t, record.IsDraw())
	})

	t.Run("Draw has no winner", func(t *testing.T) {
		// Given: a drawn game
		game := &Game{GameOver: true, MoveCount: BoardSize}

		// When: the record is built
		record := NewGameRecord(game, "Hard AI", "Impossible AI", ModeAIvAI, now)

		// Then: it is a draw without a loser
		assert.True(t, record.IsDraw())
		assert.Empty(t, record.Loser())
	})
}

func TestPlayerStats(t *testing.T) {
	// Given: fresh stats
	stats := NewPlayerStats("alice", time.Now())

	// When: two wins, a loss, a win and a draw are added
	stats.AddWin()
	stats.AddWin()
	stats.AddLoss()
	stats.AddWin()
	stats.AddDraw()

	// Then: totals and streaks follow the results
	assert.Equal(t, 3, stats.Wins)
	assert.Equal(t, 1, stats.Losses)
	assert.Equal(t, 1, stats.Draws)
	assert.Equal(t, 5, stats.TotalGames)
	assert.Zero(t, stats.WinStreak)
	assert.Equal(t, 2, stats.BestStreak)
	assert.InDelta(t, 60.0, stats.WinRate(), 0.001)
}

func TestPlayerStats_WinRateWithoutGames(t *testing.T) {
	stats := NewPlayerStats("bob", time.Now())

	assert.Zero(t, stats.WinRate())
}

func TestSession(t *testing.T) {
	t.Run("Bot opens as X", func(t *testing.T) {
		// Given: a bot playing X against a human
		session := NewSession("1", &Player{Name: "Easy AI", Mark: PlayerX, Difficulty: "easy"}, &Player{Name: "alice", Mark: PlayerO})

		// When: the names are read
		x, o := session.Names()

		// Then: the session is PvAI with the bot to move
		assert.Equal(t, "Easy AI", x)
		assert.Equal(t, "alice", o)
		assert.Equal(t, ModePvAI, session.Mode)
		assert.True(t, session.IsBotTurn())
		assert.Equal(t, session.PlayerX, session.Bot())
		assert.Equal(t, session.PlayerX, session.Current())
	})

	t.Run("Two humans", func(t *testing.T) {
		// Given: two human players
		session := NewSession("1", &Player{Name: "alice", Mark: PlayerX}, &Player{Name: "bob", Mark: PlayerO})
		require.True(t, session.Game.MakeMove(5))

		// Then: the session is PvP, has no bot and bob is to move
		assert.Equal(t, ModePvP, session.Mode)
		assert.Nil(t, session.Bot())
		assert.False(t, session.IsBotTurn())
		assert.Equal(t, "bob", session.Current().Name)
	})

	t.Run("PlayerFor resolves marks", func(t *testing.T) {
		session := NewSession("1", &Player{Name: "alice", Mark: PlayerX}, &Player{Name: "Easy AI", Mark: PlayerO, Difficulty: "easy"})

		player, err := session.PlayerFor(PlayerO)
		require.NoError(t, err)
		assert.True(t, player.IsBot())

		_, err = session.PlayerFor(EmptyCell)
		require.ErrorIs(t, err, ErrUnknownMark)
	})

	t.Run("Sync follows the game", func(t *testing.T) {
		// Given: a session whose game X has won
		session := NewSession("1", &Player{Name: "alice", Mark: PlayerX}, &Player{Name: "Easy AI", Mark: PlayerO, Difficulty: "easy"})
		for _, position := range []int{1, 4, 2, 5, 3} {
			require.True(t, session.Game.MakeMove(position))
		}

		// When: the session is synced
		session.Sync()

		// Then: it is finished with X winning
		assert.True(t, session.IsFinished())
		assert.Equal(t, XWins.String(), session.Outcome)
		assert.False(t, session.IsBotTurn())
	})
}
