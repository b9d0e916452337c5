package entity

import (
	"fmt"
	"strconv"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

type Mark string

const (
	PlayerX Mark = "X"
	PlayerO Mark = "O"

	EmptyCell Mark = ""
)

const (
	StatusOngoing  = "ongoing"
	StatusWin      = "win"
	StatusTie      = "tie"
	firstCellDigit = 1
	lastCellDigit  = 9
)

var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board is the 3x3 grid in row-major order.
type Board [9]Mark

// Label returns what the cell shows: its mark, or the digit that selects it.
func (that Board) Label(index int) string {
	if that[index] == EmptyCell {
		return strconv.Itoa(index + 1)
	}
	return string(that[index])
}

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}
	return true
}

// Result is computed from the board on demand and never stored.
type Result struct {
	Status string `json:"status"`
	Winner Mark   `json:"winner,omitempty"`
}

func InProgress() Result {
	return Result{Status: StatusOngoing}
}

func Win(mark Mark) Result {
	return Result{Status: StatusWin, Winner: mark}
}

func Tie() Result {
	return Result{Status: StatusTie}
}

func (that Result) IsTerminal() bool {
	return that.Status != StatusOngoing
}

// CellIndex maps a digit 1-9 to its board index: row (d-1)/3, column (d-1)%3.
func CellIndex(digit int) (int, error) {
	if digit < firstCellDigit || digit > lastCellDigit {
		return 0, fmt.Errorf("%w: %d", apperror.ErrOutOfRange, digit)
	}
	return digit - 1, nil
}

// RowColumn is the (row, column) pair behind a board index.
func RowColumn(index int) (int, int) {
	return index / 3, index % 3
}

type Game struct {
	ID      string     `json:"id"`
	Board   Board      `json:"board"`
	Turn    Mark       `json:"turn"`
	Players [2]*Player `json:"players"`
}

func NewGame(id, firstName, secondName string) *Game {
	return &Game{
		ID:   id,
		Turn: PlayerX,
		Players: [2]*Player{
			{Name: firstName, Mark: PlayerX},
			{Name: secondName, Mark: PlayerO},
		},
	}
}

func (that *Game) DetermineGameResult() Result {
	for _, combo := range WinCombos {
		a, b, c := that.Board[combo[0]], that.Board[combo[1]], that.Board[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return Win(a)
		}
	}

	if that.Board.IsFull() {
		return Tie()
	}

	return InProgress()
}

// MakeTurn claims the cell selected by digit for the player whose turn it is.
// On error the game is left untouched.
func (that *Game) MakeTurn(digit int) error {
	if that.DetermineGameResult().IsTerminal() {
		return apperror.ErrGameFinished
	}

	cell, err := CellIndex(digit)
	if err != nil {
		return err
	}

	if that.Board[cell] != EmptyCell {
		return fmt.Errorf("%w: %d", apperror.ErrCellOccupied, digit)
	}

	that.Board[cell] = that.Turn
	that.Turn = toggleMark(that.Turn)

	return nil
}

// PlayerByMark returns nil for EmptyCell or an unknown mark.
func (that *Game) PlayerByMark(mark Mark) *Player {
	for _, player := range that.Players {
		if player != nil && player.Mark == mark {
			return player
		}
	}
	return nil
}

func (that *Game) CurrentPlayer() *Player {
	return that.PlayerByMark(that.Turn)
}

func toggleMark(currentMark Mark) Mark {
	if currentMark == PlayerX {
		return PlayerO
	}
	return PlayerX
}
