package entity

import "time"

// GameRecord is what gets kept about a finished game.
type GameRecord struct {
	ID         string     `json:"id"`
	Players    [2]*Player `json:"players"`
	Board      Board      `json:"board"`
	Result     Result     `json:"result"`
	FinishedAt time.Time  `json:"finished_at"`
}

func NewGameRecord(game *Game, finishedAt time.Time) *GameRecord {
	return &GameRecord{
		ID:         game.ID,
		Players:    game.Players,
		Board:      game.Board,
		Result:     game.DetermineGameResult(),
		FinishedAt: finishedAt,
	}
}

// WinnerName is empty for a tie or an unfinished game.
func (that *GameRecord) WinnerName() string {
	for _, player := range that.Players {
		if player != nil && that.Result.Status == StatusWin && player.Mark == that.Result.Winner {
			return player.Name
		}
	}
	return ""
}
