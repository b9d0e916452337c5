package tictactoe

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const (
	msgInvalid  = "Invalid !!"
	msgOccupied = "There is not empty space!"
	msgTie      = "It's a tie!"
)

type lineReader interface {
	ReadLine(ctx context.Context) (string, error)
}

// GameController runs one game session at the terminal.
type GameController struct {
	logger *slog.Logger
	game   *entity.Game
	in     lineReader
	out    io.Writer
}

func NewGameController(logger *slog.Logger, game *entity.Game, in lineReader, out io.Writer) *GameController {
	return &GameController{
		logger: logger.With("component", "game_controller", "gameID", game.ID),
		game:   game,
		in:     in,
		out:    out,
	}
}

func (that *GameController) Game() *entity.Game {
	return that.game
}

func (that *GameController) EvaluateGameState() entity.Result {
	return that.game.DetermineGameResult()
}

// RequestMove keeps prompting the current player until one legal move is applied.
// Non-numeric input is treated the same as an out-of-range number.
func (that *GameController) RequestMove(ctx context.Context) error {
	for {
		player := that.game.CurrentPlayer()
		fmt.Fprintf(that.out, "%s please enter ", player.Name)

		text, err := that.in.ReadLine(ctx)
		if err != nil {
			return fmt.Errorf("failed to read move: %w", err)
		}

		digit, err := strconv.Atoi(strings.TrimSpace(text))
		if err != nil {
			digit = 0
		}

		err = that.game.MakeTurn(digit)
		switch {
		case err == nil:
			row, column := entity.RowColumn(digit - 1)
			that.logger.Debug("move applied",
				"player", player.Name, "mark", player.Mark, "cell", digit, "row", row, "column", column)
			return nil
		case errors.Is(err, apperror.ErrOutOfRange):
			that.logger.Debug("rejected move", "input", text, "error", err)
			fmt.Fprintln(that.out, msgInvalid)
		case errors.Is(err, apperror.ErrCellOccupied):
			that.logger.Debug("rejected move", "input", text, "error", err)
			fmt.Fprintln(that.out, msgOccupied)
		default:
			return fmt.Errorf("failed to make turn: %w", err)
		}
	}
}

// Run plays until a win or tie and announces the result.
func (that *GameController) Run(ctx context.Context) (entity.Result, error) {
	result := that.EvaluateGameState()
	for !result.IsTerminal() {
		fmt.Fprint(that.out, RenderBoard(that.game.Board))

		if err := that.RequestMove(ctx); err != nil {
			return result, err
		}

		result = that.EvaluateGameState()
	}

	fmt.Fprint(that.out, RenderBoard(that.game.Board))
	that.announce(result)

	return result, nil
}

func (that *GameController) announce(result entity.Result) {
	if result.Status == entity.StatusTie {
		fmt.Fprintln(that.out, msgTie)
		return
	}

	winner := string(result.Winner)
	if player := that.game.PlayerByMark(result.Winner); player != nil {
		winner = player.Name
	}

	fmt.Fprintf(that.out, "%s Wins!\n", winner)
}
