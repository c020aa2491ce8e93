package apperror

import "errors"

var (
	ErrEmptyPlayerName  = errors.New("player name is empty")
	ErrDuplicatePlayer  = errors.New("player already exists")
	ErrPlayerOutOfRange = errors.New("player index out of range")
	ErrRoundOutOfRange  = errors.New("round index out of range")
	ErrNotConfirmed     = errors.New("end of game is not confirmed")
	ErrCorruptGame      = errors.New("stored game is corrupt")
)
