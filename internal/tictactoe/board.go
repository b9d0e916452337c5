package tictactoe

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const (
	rowPadding = "\t\t     |     |     \n"
	rowRule    = "\t\t_____|_____|_____\n"
)

// RenderBoard draws the grid. Empty cells show the digit that selects them.
func RenderBoard(board entity.Board) string {
	var sb strings.Builder

	for row := 0; row < 3; row++ {
		sb.WriteString(rowPadding)
		fmt.Fprintf(&sb, "\t\t  %s  |  %s  |  %s  \n",
			board.Label(row*3), board.Label(row*3+1), board.Label(row*3+2))

		if row < 2 {
			sb.WriteString(rowRule)
		} else {
			sb.WriteString(rowPadding)
		}
	}

	return sb.String()
}
