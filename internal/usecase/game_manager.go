package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
)

type gameRepo interface {
	Save(ctx context.Context, record *entity.GameRecord) error
	ListRecent(ctx context.Context, limit int64) ([]*entity.GameRecord, error)
}

type lineReader interface {
	ReadLine(ctx context.Context) (string, error)
}

// GameManager sets up a session from the terminal, plays it, and records the outcome.
type GameManager struct {
	logger        *slog.Logger
	gameRepo      gameRepo
	recentResults int64

	in  lineReader
	out io.Writer
	now func() time.Time
}

// NewGameManager accepts a nil gameRepo when history is disabled. After each game the
// recentResults most recent finished games are listed; zero lists none.
func NewGameManager(logger *slog.Logger, gameRepo gameRepo, recentResults int64, in lineReader, out io.Writer) *GameManager {
	return &GameManager{
		logger:        logger,
		gameRepo:      gameRepo,
		recentResults: recentResults,
		in:            in,
		out:           out,
		now:           time.Now,
	}
}

func (that *GameManager) Play(ctx context.Context) (*entity.GameRecord, error) {
	firstName, err := that.askName(ctx, "Enter the name of the first player: ")
	if err != nil {
		return nil, fmt.Errorf("failed to read first player: %w", err)
	}

	secondName, err := that.askName(ctx, "Enter the name of the second player: ")
	if err != nil {
		return nil, fmt.Errorf("failed to read second player: %w", err)
	}

	fmt.Fprintf(that.out, "%s is player one so they will play first.\n", firstName)
	fmt.Fprintf(that.out, "%s is player two so they will play second.\n", secondName)

	game := entity.NewGame(uuid.NewString(), firstName, secondName)
	log := that.logger.With("component", "game_manager", "gameID", game.ID)
	log.Info("game started")

	controller := tictactoe.NewGameController(that.logger, game, that.in, that.out)

	result, err := controller.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("game %s interrupted: %w", game.ID, err)
	}

	record := entity.NewGameRecord(game, that.now())
	log.Info("game finished", "status", result.Status, "winner", record.WinnerName())

	that.saveRecord(ctx, log, record)
	that.showRecent(ctx, log)

	return record, nil
}

func (that *GameManager) askName(ctx context.Context, prompt string) (string, error) {
	fmt.Fprint(that.out, prompt)

	name, err := that.in.ReadLine(ctx)
	if err != nil {
		return "", err
	}

	return name, nil
}

func (that *GameManager) saveRecord(ctx context.Context, log *slog.Logger, record *entity.GameRecord) {
	if that.gameRepo == nil {
		return
	}

	if err := that.gameRepo.Save(ctx, record); err != nil {
		log.Error("failed to save game history", "error", err)
	}
}

func (that *GameManager) showRecent(ctx context.Context, log *slog.Logger) {
	if that.gameRepo == nil || that.recentResults <= 0 {
		return
	}

	records, err := that.gameRepo.ListRecent(ctx, that.recentResults)
	if err != nil {
		log.Error("failed to list game history", "error", err)
		return
	}

	if len(records) == 0 {
		return
	}

	fmt.Fprintln(that.out, "Recent games:")
	for _, record := range records {
		fmt.Fprintf(that.out, "  %s\n", describe(record))
	}
}

func describe(record *entity.GameRecord) string {
	names := [2]string{}
	for i, player := range record.Players {
		if player != nil {
			names[i] = player.Name
		}
	}

	outcome := "It's a tie!"
	if record.Result.Status == entity.StatusWin {
		winner := record.WinnerName()
		if winner == "" {
			winner = string(record.Result.Winner)
		}
		outcome = winner + " Wins!"
	}

	return fmt.Sprintf("%s %s vs %s: %s", record.FinishedAt.Format(time.DateTime), names[0], names[1], outcome)
}
