package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/bot"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
)

type sessionRepo interface {
	NextID(ctx context.Context) (string, error)
	CreateOrUpdate(ctx context.Context, session *entity.Session) error
	GetByID(ctx context.Context, id string) (*entity.Session, error)
	DeleteByID(ctx context.Context, id string) error
}

type recordRepo interface {
	Append(ctx context.Context, record *entity.GameRecord) error
	List(ctx context.Context, limit int64) ([]*entity.GameRecord, error)
}

type statsRepo interface {
	CreateOrUpdate(ctx context.Context, stats *entity.PlayerStats) error
	GetByName(ctx context.Context, name string) (*entity.PlayerStats, error)
	Leaderboard(ctx context.Context, limit int64) ([]*entity.PlayerStats, error)
}

// Options tune the game manager.
type Options struct {
	// MoveTimeout bounds a single bot move, zero means no bound.
	MoveTimeout time.Duration
	// Seed makes bot moves reproducible, zero seeds randomly.
	Seed uint64
	// RecordStats stores finished games and player stats.
	RecordStats bool
}

// Participant is a named strategy taking part in an automated match.
type Participant struct {
	Name     string
	Strategy bot.Strategy
}

type GameManager struct {
	logger *slog.Logger

	sessionRepo sessionRepo
	recordRepo  recordRepo
	statsRepo   statsRepo

	options Options
	now     func() time.Time

	rngMutex sync.Mutex
	rng      *rand.Rand
}

func NewGameManager(logger *slog.Logger, sessionRepo sessionRepo, recordRepo recordRepo, statsRepo statsRepo, options Options) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		sessionRepo: sessionRepo,
		recordRepo:  recordRepo,
		statsRepo:   statsRepo,

		options: options,
		now:     time.Now,
		rng:     bot.NewRand(options.Seed),
	}
}

// StartGame - opens a session between a human and a bot. The bot moves first
// when it owns X.
func (that *GameManager) StartGame(ctx context.Context, playerName string, humanMark entity.Mark, difficulty bot.Difficulty) (*entity.Session, error) {
	if !humanMark.IsPlayer() {
		return nil, fmt.Errorf("%w: %q", apperror.ErrInvalidMark, humanMark)
	}

	if _, err := bot.ParseDifficulty(string(difficulty)); err != nil {
		return nil, fmt.Errorf("failed to start game: %w", err)
	}

	human := &entity.Player{Name: playerName, Mark: humanMark}
	botPlayer := &entity.Player{Name: difficulty.Name(), Mark: humanMark.Opponent(), Difficulty: string(difficulty)}

	playerX, playerO := human, botPlayer
	if humanMark == entity.PlayerO {
		playerX, playerO = botPlayer, human
	}

	session, err := that.openSession(ctx, playerX, playerO)
	if err != nil {
		return nil, err
	}

	that.logger.Info("game started", "session", session.ID, "player", playerName, "difficulty", difficulty)

	return session, nil
}

// StartPvP - opens a session between two humans taking turns on one board.
func (that *GameManager) StartPvP(ctx context.Context, nameX, nameO string) (*entity.Session, error) {
	session, err := that.openSession(ctx,
		&entity.Player{Name: nameX, Mark: entity.PlayerX},
		&entity.Player{Name: nameO, Mark: entity.PlayerO},
	)
	if err != nil {
		return nil, err
	}

	that.logger.Info("game started", "session", session.ID, "x", nameX, "o", nameO, "mode", session.Mode)

	return session, nil
}

func (that *GameManager) openSession(ctx context.Context, playerX, playerO *entity.Player) (*entity.Session, error) {
	sessionID, err := that.sessionRepo.NextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create session id: %w", err)
	}

	session := entity.NewSession(sessionID, playerX, playerO)

	if session.IsBotTurn() {
		if err = that.playBot(ctx, session); err != nil {
			return nil, fmt.Errorf("bot failed to make first turn: %w", err)
		}
	}

	if err = that.updateSession(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

// MakeTurn - plays the move of the human to move and, in a PvAI session
// that the move did not end, the bot's reply. Finished games are recorded.
func (that *GameManager) MakeTurn(ctx context.Context, sessionID string, position int) (*entity.Session, error) {
	session, err := that.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if session.IsFinished() {
		return session, apperror.ErrGameFinished
	}

	if session.IsBotTurn() {
		return session, apperror.ErrNotYourTurn
	}

	if !session.Game.MakeMove(position) {
		return session, fmt.Errorf("%w: position %d", apperror.ErrInvalidMove, position)
	}

	if session.IsBotTurn() {
		if err = that.playBot(ctx, session); err != nil {
			return nil, fmt.Errorf("bot failed to make turn: %w", err)
		}
	}

	session.Sync()

	if session.IsFinished() {
		playerX, playerO := session.Names()
		record := entity.NewGameRecord(session.Game, playerX, playerO, session.Mode, that.now())
		if err = that.recordGame(ctx, record); err != nil {
			return nil, err
		}
	}

	if err = that.updateSession(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

// Undo - in PvAI takes back the human's last move together with the bot
// reply that followed it. In PvP takes back the last two moves, or the only
// one, so each player undoes a full exchange.
func (that *GameManager) Undo(ctx context.Context, sessionID string) (*entity.Session, error) {
	session, err := that.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if session.IsFinished() {
		return session, apperror.ErrGameFinished
	}

	undone := 0
	if botPlayer := session.Bot(); botPlayer != nil {
		undone = undoToHuman(session.Game, botPlayer.Mark.Opponent())
	} else {
		for undone < pvpUndoMoves && session.Game.UndoMove() {
			undone++
		}
	}

	if undone == 0 {
		return session, apperror.ErrNothingToUndo
	}

	session.Sync()

	if err = that.updateSession(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

const pvpUndoMoves = 2

// undoToHuman rewinds game to just before the last move of human and returns
// the number of moves taken back.
func undoToHuman(game *entity.Game, human entity.Mark) int {
	lastHumanMove := -1
	for i := len(game.History) - 1; i >= 0; i-- {
		if game.History[i].Mark == human {
			lastHumanMove = i
			break
		}
	}

	if lastHumanMove < 0 {
		return 0
	}

	undone := 0
	for len(game.History) > lastHumanMove && game.UndoMove() {
		undone++
	}

	return undone
}

// AbandonGame - drops a session without recording it.
func (that *GameManager) AbandonGame(ctx context.Context, sessionID string) error {
	if err := that.sessionRepo.DeleteByID(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

// NewParticipant - builds a bot for an automated match.
func (that *GameManager) NewParticipant(name string, difficulty bot.Difficulty, mark entity.Mark) (Participant, error) {
	strategy, err := bot.New(difficulty, mark, that.nextRand())
	if err != nil {
		return Participant{}, fmt.Errorf("failed to create participant %s: %w", name, err)
	}

	return Participant{Name: name, Strategy: strategy}, nil
}

// PlayMatch - plays a full game between two strategies and records it.
func (that *GameManager) PlayMatch(ctx context.Context, playerX, playerO Participant) (*entity.GameRecord, error) {
	log := that.logger.With("method", "PlayMatch", "x", playerX.Name, "o", playerO.Name)

	game := entity.NewGame()
	participants := map[entity.Mark]Participant{
		entity.PlayerX: playerX,
		entity.PlayerO: playerO,
	}

	for !game.GameOver {
		current := participants[game.Turn]

		position, err := that.botMove(ctx, current.Strategy, game)
		if err != nil {
			return nil, fmt.Errorf("%s failed to move: %w", current.Name, err)
		}

		if !game.MakeMove(position) {
			return nil, fmt.Errorf("%w: %s chose position %d", apperror.ErrInvalidMove, current.Name, position)
		}

		log.Debug("move played", "mark", game.History[len(game.History)-1].Mark, "position", position)
	}

	record := entity.NewGameRecord(game, playerX.Name, playerO.Name, entity.ModeAIvAI, that.now())
	if err := that.recordGame(ctx, record); err != nil {
		return nil, err
	}

	log.Info("match finished", "outcome", game.Outcome().String(), "moves", game.MoveCount)

	return record, nil
}

func (that *GameManager) Leaderboard(ctx context.Context, limit int64) ([]*entity.PlayerStats, error) {
	board, err := that.statsRepo.Leaderboard(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	return board, nil
}

func (that *GameManager) PlayerStats(ctx context.Context, name string) (*entity.PlayerStats, error) {
	stats, err := that.statsRepo.GetByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get player stats: %w", err)
	}

	return stats, nil
}

func (that *GameManager) RecentGames(ctx context.Context, limit int64) ([]*entity.GameRecord, error) {
	records, err := that.recordRepo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}

	return records, nil
}

func (that *GameManager) playBot(ctx context.Context, session *entity.Session) error {
	botPlayer := session.Current()

	strategy, err := bot.New(bot.Difficulty(botPlayer.Difficulty), botPlayer.Mark, that.nextRand())
	if err != nil {
		return fmt.Errorf("failed to create bot: %w", err)
	}

	position, err := that.botMove(ctx, strategy, session.Game)
	if err != nil {
		return err
	}

	if !session.Game.MakeMove(position) {
		return fmt.Errorf("%w: bot chose position %d", apperror.ErrInvalidMove, position)
	}

	return nil
}

type moveResult struct {
	position int
	err      error
}

// botMove runs the search on a copy of game in its own goroutine so a slow
// search never holds the caller past ctx.
func (that *GameManager) botMove(ctx context.Context, strategy bot.Strategy, game *entity.Game) (int, error) {
	if that.options.MoveTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, that.options.MoveTimeout)
		defer cancel()
	}

	snapshot := game.Clone()
	resultCh := make(chan moveResult, 1)

	go func() {
		position, err := strategy.Move(snapshot)
		resultCh <- moveResult{position: position, err: err}
	}()

	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%w: %w", apperror.ErrMoveTimeout, ctx.Err())
	case result := <-resultCh:
		if result.err != nil {
			return 0, fmt.Errorf("failed to choose move: %w", result.err)
		}

		return result.position, nil
	}
}

// nextRand derives an independent source for one bot so concurrent calls
// never share a generator.
func (that *GameManager) nextRand() *rand.Rand {
	that.rngMutex.Lock()
	defer that.rngMutex.Unlock()

	return bot.NewRand(that.rng.Uint64() | 1)
}

func (that *GameManager) recordGame(ctx context.Context, record *entity.GameRecord) error {
	if !that.options.RecordStats {
		return nil
	}

	if err := that.recordRepo.Append(ctx, record); err != nil {
		return fmt.Errorf("failed to record game: %w", err)
	}

	if record.IsDraw() {
		for _, name := range []string{record.PlayerX, record.PlayerO} {
			if err := that.updateStats(ctx, name, (*entity.PlayerStats).AddDraw); err != nil {
				return err
			}
		}

		return nil
	}

	if err := that.updateStats(ctx, record.Winner, (*entity.PlayerStats).AddWin); err != nil {
		return err
	}

	return that.updateStats(ctx, record.Loser(), (*entity.PlayerStats).AddLoss)
}

func (that *GameManager) updateStats(ctx context.Context, name string, apply func(*entity.PlayerStats)) error {
	stats, err := that.statsRepo.GetByName(ctx, name)
	if errors.Is(err, repository.ErrStatsNotFound) {
		stats = entity.NewPlayerStats(name, that.now())
	} else if err != nil {
		return fmt.Errorf("failed to get stats of %s: %w", name, err)
	}

	apply(stats)

	if err = that.statsRepo.CreateOrUpdate(ctx, stats); err != nil {
		return fmt.Errorf("failed to update stats of %s: %w", name, err)
	}

	return nil
}

func (that *GameManager) getSession(ctx context.Context, id string) (*entity.Session, error) {
	session, err := that.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return session, nil
}

func (that *GameManager) updateSession(ctx context.Context, session *entity.Session) error {
	if err := that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}

	return nil
}
