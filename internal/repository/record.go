package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	recordSeqKey  = "record:seq"
	recordListKey = "records"
)

// RecordRepository is an append-only log of finished games.
type RecordRepository interface {
	Append(ctx context.Context, record *entity.GameRecord) error
	List(ctx context.Context, limit int64) ([]*entity.GameRecord, error)
	Total(ctx context.Context) (int64, error)
}

type dbRecord struct {
	client *redis.Client
}

func NewRecordRepository(client *redis.Client) RecordRepository {
	return &dbRecord{
		client: client,
	}
}

// Append - assigns the next record id and pushes the record on the log.
func (that *dbRecord) Append(ctx context.Context, record *entity.GameRecord) error {
	id, err := that.client.Incr(ctx, recordSeqKey).Result()
	if err != nil {
		return fmt.Errorf("failed to generate record id: %w", err)
	}

	record.ID = id

	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("could not marshal record: %w", err)
	}

	if err = that.client.LPush(ctx, recordListKey, recordJSON).Err(); err != nil {
		return fmt.Errorf("failed to push record: %w", err)
	}

	return nil
}

// List returns up to limit records, newest first. A limit <= 0 returns all.
func (that *dbRecord) List(ctx context.Context, limit int64) ([]*entity.GameRecord, error) {
	stop := limit - 1
	if limit <= 0 {
		stop = -1
	}

	response, err := that.client.LRange(ctx, recordListKey, 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}

	records := make([]*entity.GameRecord, 0, len(response))
	for _, raw := range response {
		var record entity.GameRecord
		if err = json.Unmarshal([]byte(raw), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal record: %w", err)
		}

		records = append(records, &record)
	}

	return records, nil
}

func (that *dbRecord) Total(ctx context.Context) (int64, error) {
	total, err := that.client.LLen(ctx, recordListKey).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}

	return total, nil
}
