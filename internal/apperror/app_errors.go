package apperror

import "errors"

var (
	ErrOutOfRange   = errors.New("cell number is out of range")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrGameFinished = errors.New("game is already finished")
	ErrInputClosed  = errors.New("input closed")
)
