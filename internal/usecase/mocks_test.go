package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type mockSessionRepo struct {
	mock.Mock
}

func (that *mockSessionRepo) NextID(ctx context.Context) (string, error) {
	args := that.Called(ctx)
	return args.String(0), args.Error(1)
}

func (that *mockSessionRepo) CreateOrUpdate(ctx context.Context, session *entity.Session) error {
	return that.Called(ctx, session).Error(0)
}

func (that *mockSessionRepo) GetByID(ctx context.Context, id string) (*entity.Session, error) {
	args := that.Called(ctx, id)
	session, _ := args.Get(0).(*entity.Session)
	return session, args.Error(1)
}

func (that *mockSessionRepo) DeleteByID(ctx context.Context, id string) error {
	return that.Called(ctx, id).Error(0)
}

type mockRecordRepo struct {
	mock.Mock
}

func (that *mockRecordRepo) Append(ctx context.Context, record *entity.GameRecord) error {
	return that.Called(ctx, record).Error(0)
}

func (that *mockRecordRepo) List(ctx context.Context, limit int64) ([]*entity.GameRecord, error) {
	args := that.Called(ctx, limit)
	records, _ := args.Get(0).([]*entity.GameRecord)
	return records, args.Error(1)
}

type mockStatsRepo struct {
	mock.Mock
}

func (that *mockStatsRepo) CreateOrUpdate(ctx context.Context, stats *entity.PlayerStats) error {
	return that.Called(ctx, stats).Error(0)
}

func (that *mockStatsRepo) GetByName(ctx context.Context, name string) (*entity.PlayerStats, error) {
	args := that.Called(ctx, name)
	stats, _ := args.Get(0).(*entity.PlayerStats)
	return stats, args.Error(1)
}

func (that *mockStatsRepo) Leaderboard(ctx context.Context, limit int64) ([]*entity.PlayerStats, error) {
	args := that.Called(ctx, limit)
	board, _ := args.Get(0).([]*entity.PlayerStats)
	return board, args.Error(1)
}
