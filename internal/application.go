package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-engine/internal/bot"
	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/report"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	sessionRepo := repository.NewSessionRepository(redisStorage.Connection)
	recordRepo := repository.NewRecordRepository(redisStorage.Connection)
	statsRepo := repository.NewStatsRepository(redisStorage.Connection)

	gameManager := usecase.NewGameManager(logger, sessionRepo, recordRepo, statsRepo, usecase.Options{
		MoveTimeout: conf.Arena.MoveTimeout,
		Seed:        conf.Arena.Seed,
		RecordStats: conf.Stats.Enabled,
	})

	return RunArena(ctx, logger, gameManager, conf, os.Stdout)
}

// RunArena - plays the configured number of matches and prints the results.
// A cancelled ctx stops the arena after the current match.
func RunArena(ctx context.Context, logger *slog.Logger, gameManager *usecase.GameManager, conf *config.Config, out io.Writer) error {
	log := logger.With("component", "arena")

	difficultyX, err := bot.ParseDifficulty(conf.Arena.PlayerX)
	if err != nil {
		return fmt.Errorf("invalid arena player-x: %w", err)
	}

	difficultyO, err := bot.ParseDifficulty(conf.Arena.PlayerO)
	if err != nil {
		return fmt.Errorf("invalid arena player-o: %w", err)
	}

	nameX, nameO := participantNames(difficultyX, difficultyO)

	printer := report.NewPrinter(out)
	summary := report.NewSummary(nameX, nameO)

	log.Info("Starting arena", "x", nameX, "o", nameO, "games", conf.Arena.Games)

	for number := 1; number <= conf.Arena.Games; number++ {
		if ctx.Err() != nil {
			log.Info("Arena interrupted", "played", summary.Total())
			break
		}

		playerX, err := gameManager.NewParticipant(nameX, difficultyX, entity.PlayerX)
		if err != nil {
			return err
		}

		playerO, err := gameManager.NewParticipant(nameO, difficultyO, entity.PlayerO)
		if err != nil {
			return err
		}

		record, err := gameManager.PlayMatch(ctx, playerX, playerO)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				log.Info("Arena interrupted", "played", summary.Total())
				break
			}

			return fmt.Errorf("match %d failed: %w", number, err)
		}

		summary.Add(record)

		if err = printer.Record(number, record); err != nil {
			return fmt.Errorf("failed to print match: %w", err)
		}
	}

	if err = printer.Summary(summary); err != nil {
		return fmt.Errorf("failed to print summary: %w", err)
	}

	if !conf.Stats.Enabled {
		return nil
	}

	// the leaderboard is still printed after an interrupt
	board, err := gameManager.Leaderboard(context.WithoutCancel(ctx), conf.Stats.LeaderboardSize)
	if err != nil {
		return err
	}

	if err = printer.Leaderboard(board); err != nil {
		return fmt.Errorf("failed to print leaderboard: %w", err)
	}

	return nil
}

// participantNames labels both sides, numbering them when a difficulty
// plays itself so stats stay separate.
func participantNames(difficultyX, difficultyO bot.Difficulty) (string, string) {
	if difficultyX == difficultyO {
		return difficultyX.Name() + " #1", difficultyO.Name() + " #2"
	}

	return difficultyX.Name(), difficultyO.Name()
}
