package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/testing/suite"
)

func TestRecordRepository_Append(t *testing.T) {
	ctx, st := suite.New(t)

	recordRepo := NewRecordRepository(st.Storage)

	// Given: two finished games
	first := &entity.GameRecord{PlayerX: "alice", PlayerO: "Hard AI", Moves: 9, Mode: entity.ModePvAI, Timestamp: time.Now().UTC()}
	second := &entity.GameRecord{PlayerX: "Hard AI", PlayerO: "Easy AI", Winner: "Hard AI", Moves: 7, Mode: entity.ModeAIvAI, Timestamp: time.Now().UTC()}

	// When: both are appended
	require.NoError(t, recordRepo.Append(ctx, first))
	require.NoError(t, recordRepo.Append(ctx, second))

	// Then: ids are assigned in order
	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)

	total, err := recordRepo.Total(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

func TestRecordRepository_List(t *testing.T) {
	t.Run("Newest first", func(t *testing.T) {
		ctx, st := suite.New(t)

		recordRepo := NewRecordRepository(st.Storage)

		// Given: three stored records
		for _, winner := range []string{"a", "b", "c"} {
			require.NoError(t, recordRepo.Append(ctx, &entity.GameRecord{Winner: winner, Mode: entity.ModeAIvAI}))
		}

		// When: the two latest are listed
		records, err := recordRepo.List(ctx, 2)

		// Then: they come newest first
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "c", records[0].Winner)
		assert.Equal(t, "b", records[1].Winner)
	})

	t.Run("Empty log", func(t *testing.T) {
		ctx, st := suite.New(t)

		recordRepo := NewRecordRepository(st.Storage)

		// When: all records are listed
		records, err := recordRepo.List(ctx, 0)

		// Then: the list is empty
		require.NoError(t, err)
		assert.Empty(t, records)
	})
}
