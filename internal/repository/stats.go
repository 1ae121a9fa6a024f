package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const leaderboardKey = "leaderboard"

var ErrStatsNotFound = errors.New("player stats not found")

type StatsRepository interface {
	CreateOrUpdate(ctx context.Context, stats *entity.PlayerStats) error
	GetByName(ctx context.Context, name string) (*entity.PlayerStats, error)
	Leaderboard(ctx context.Context, limit int64) ([]*entity.PlayerStats, error)
}

type dbStats struct {
	client *redis.Client
}

func NewStatsRepository(client *redis.Client) StatsRepository {
	return &dbStats{
		client: client,
	}
}

func statsKey(name string) string {
	return "stats:" + name
}

// CreateOrUpdate - stores the stats and ranks the player by wins.
func (that *dbStats) CreateOrUpdate(ctx context.Context, stats *entity.PlayerStats) error {
	statsJSON, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, statsKey(stats.Name), statsJSON, 0)
		pipe.ZAdd(ctx, leaderboardKey, redis.Z{Score: float64(stats.Wins), Member: stats.Name})
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to set stats: %w", err)
	}

	return nil
}

func (that *dbStats) GetByName(ctx context.Context, name string) (*entity.PlayerStats, error) {
	response, err := that.client.Get(ctx, statsKey(name)).Result()

	if errors.Is(err, redis.Nil) {
		return nil, ErrStatsNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get stats by name: %w", err)
	}

	var existingStats entity.PlayerStats
	if err = json.Unmarshal([]byte(response), &existingStats); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stats: %w", err)
	}

	return &existingStats, nil
}

// Leaderboard returns up to limit players ordered by wins, most first.
func (that *dbStats) Leaderboard(ctx context.Context, limit int64) ([]*entity.PlayerStats, error) {
	stop := limit - 1
	if limit <= 0 {
		stop = -1
	}

	names, err := that.client.ZRevRange(ctx, leaderboardKey, 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read leaderboard: %w", err)
	}

	if len(names) == 0 {
		return []*entity.PlayerStats{}, nil
	}

	keys := make([]string, 0, len(names))
	for _, name := range names {
		keys = append(keys, statsKey(name))
	}

	values, err := that.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read leaderboard stats: %w", err)
	}

	board := make([]*entity.PlayerStats, 0, len(values))
	for _, value := range values {
		raw, ok := value.(string)
		if !ok {
			continue
		}

		var stats entity.PlayerStats
		if err = json.Unmarshal([]byte(raw), &stats); err != nil {
			return nil, fmt.Errorf("failed to unmarshal stats: %w", err)
		}

		board = append(board, &stats)
	}

	return board, nil
}
