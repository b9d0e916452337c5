package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellIndex(t *testing.T) {
	t.Run("Every digit maps to a distinct cell covering the grid", func(t *testing.T) {
		seen := map[[2]int]bool{}

		for digit := 1; digit <= 9; digit++ {
			// When: mapping the digit to a cell
			index, err := CellIndex(digit)
			require.NoError(t, err)

			// Then: row and column follow (d-1)/3 and (d-1)%3
			row, column := RowColumn(index)
			assert.Equal(t, (digit-1)/3, row)
			assert.Equal(t, (digit-1)%3, column)

			seen[[2]int{row, column}] = true
		}

		assert.Len(t, seen, 9)
	})

	t.Run("Digits outside 1-9 are rejected", func(t *testing.T) {
		for _, digit := range []int{0, 10, -1, 100} {
			_, err := CellIndex(digit)
			assert.ErrorIs(t, err, apperror.ErrOutOfRange, "digit %d", digit)
		}
	})
}

func TestGame_DetermineGameResult(t *testing.T) {
	t.Run("Returns Win for a full row", func(t *testing.T) {
		// Given: a board where X holds the top row
		game := &Game{Board: Board{
			PlayerX, PlayerX, PlayerX,
			PlayerO, PlayerO, EmptyCell,
			EmptyCell, EmptyCell, EmptyCell,
		}}

		// When: determining the game result
		result := game.DetermineGameResult()

		// Then: X wins
		assert.Equal(t, Win(PlayerX), result)
	})

	t.Run("Returns Win for a column", func(t *testing.T) {
		// Given: a board where O holds the middle column
		game := &Game{Board: Board{
			PlayerX, PlayerO, EmptyCell,
			PlayerX, PlayerO, EmptyCell,
			EmptyCell, PlayerO, PlayerX,
		}}

		// When: determining the game result
		result := game.DetermineGameResult()

		// Then: O wins
		assert.Equal(t, Win(PlayerO), result)
	})

	t.Run("Returns Win for the anti-diagonal", func(t *testing.T) {
		// Given: a board where O holds cells 3, 5 and 7
		game := &Game{Board: Board{
			PlayerX, PlayerX, PlayerO,
			EmptyCell, PlayerO, EmptyCell,
			PlayerO, EmptyCell, PlayerX,
		}}

		// When: determining the game result
		result := game.DetermineGameResult()

		// Then: O wins
		assert.Equal(t, Win(PlayerO), result)
	})

	t.Run("Returns Tie for a full board without a line", func(t *testing.T) {
		// Given: a board that ended in a tie
		game := &Game{Board: Board{
			PlayerX, PlayerO, PlayerX,
			PlayerO, PlayerX, PlayerO,
			PlayerO, PlayerX, PlayerO,
		}}

		// When: determining the game result
		result := game.DetermineGameResult()

		// Then: it should be a tie
		assert.Equal(t, Tie(), result)
	})

	t.Run("Win beats Tie on a full board", func(t *testing.T) {
		// Given: a full board that also completes the top row for X
		game := &Game{Board: Board{
			PlayerX, PlayerX, PlayerX,
			PlayerO, PlayerO, PlayerX,
			PlayerO, PlayerX, PlayerO,
		}}

		// When: determining the game result
		result := game.DetermineGameResult()

		// Then: X wins and it is not a tie
		assert.Equal(t, Win(PlayerX), result)
	})

	t.Run("Returns InProgress while cells remain and no line is complete", func(t *testing.T) {
		// Given: a game that is still ongoing
		game := &Game{Board: Board{
			PlayerX, PlayerO, EmptyCell,
			EmptyCell, PlayerX, EmptyCell,
			EmptyCell, EmptyCell, PlayerO,
		}}

		// When: determining the game result
		result := game.DetermineGameResult()

		// Then: the game continues
		assert.Equal(t, InProgress(), result)
		assert.False(t, result.IsTerminal())
	})
}

func TestGame_MakeTurn(t *testing.T) {
	t.Run("Successful Turn", func(t *testing.T) {
		// Given: a new game
		game := NewGame("123", "Ann", "Bob")

		// When: X picks cell 5
		err := game.MakeTurn(5)
		require.NoError(t, err)

		// Then: the center is X and it is O's turn
		expected := NewGame("123", "Ann", "Bob")
		expected.Board[4] = PlayerX
		expected.Turn = PlayerO

		require.Equal(t, expected, game)
	})

	t.Run("Turns strictly alternate starting with X", func(t *testing.T) {
		// Given: a new game
		game := NewGame("123", "Ann", "Bob")

		// When: valid moves are made one after another
		for i, digit := range []int{1, 2, 3, 5, 4, 6, 8, 7} {
			expectedMark := PlayerX
			if i%2 == 1 {
				expectedMark = PlayerO
			}

			// Then: each move is made by the expected mark
			require.Equal(t, expectedMark, game.Turn)
			require.NoError(t, game.MakeTurn(digit))
			assert.Equal(t, expectedMark, game.Board[digit-1])
		}
	})

	t.Run("Error on Cell Already Occupied", func(t *testing.T) {
		// Given: a game where cell 1 is taken by X
		game := NewGame("123", "Ann", "Bob")
		require.NoError(t, game.MakeTurn(1))
		before := *game

		// When: O tries the same cell
		err := game.MakeTurn(1)

		// Then: ErrCellOccupied is returned and nothing changed
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, before, *game)
	})

	t.Run("Error on Out of Range digits", func(t *testing.T) {
		for _, digit := range []int{0, 10, -1} {
			// Given: a new game
			game := NewGame("123", "Ann", "Bob")
			before := *game

			// When: a digit outside 1-9 is used
			err := game.MakeTurn(digit)

			// Then: ErrOutOfRange is returned and neither board nor turn change
			require.ErrorIs(t, err, apperror.ErrOutOfRange)
			assert.Equal(t, before, *game)
		}
	})

	t.Run("Move After Game Finished", func(t *testing.T) {
		// Given: a game where X has already won
		game := NewGame("123", "Ann", "Bob")
		game.Board = Board{PlayerX, PlayerX, PlayerX, EmptyCell, PlayerO, EmptyCell, EmptyCell, PlayerO, EmptyCell}
		game.Turn = PlayerO

		// When: O tries to move
		err := game.MakeTurn(4)

		// Then: ErrGameFinished is returned
		assert.ErrorIs(t, err, apperror.ErrGameFinished)
		assert.Equal(t, EmptyCell, game.Board[3])
	})
}

func TestGame_PlayerByMark(t *testing.T) {
	game := NewGame("123", "Ann", "Bob")

	assert.Equal(t, "Ann", game.PlayerByMark(PlayerX).Name)
	assert.Equal(t, "Bob", game.PlayerByMark(PlayerO).Name)
	assert.Nil(t, game.PlayerByMark(EmptyCell))
	assert.Equal(t, "Ann", game.CurrentPlayer().Name)
}

func TestBoard_Label(t *testing.T) {
	board := Board{PlayerX, EmptyCell, EmptyCell, EmptyCell, PlayerO}

	assert.Equal(t, "X", board.Label(0))
	assert.Equal(t, "2", board.Label(1))
	assert.Equal(t, "O", board.Label(4))
	assert.Equal(t, "9", board.Label(8))
}
