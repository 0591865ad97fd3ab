package apperror

import "errors"

var (
	ErrGameFinished      = errors.New("game is already finished")
	ErrNotYourTurn       = errors.New("it's not your turn")
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrInvalidCell       = errors.New("invalid cell index")
	ErrInvalidBoard      = errors.New("board must have exactly 9 cells")
	ErrNoAvailableMoves  = errors.New("no available moves")
	ErrRoundInProgress   = errors.New("round is still in progress")
	ErrSessionNotStarted = errors.New("session is not started")
)
