package tictactoe

import (
	"fmt"
	"math/rand/v2"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Engine owns a board and picks the computer's moves on it.
//
// Engine is not safe for concurrent use; callers serialize access.
type Engine struct {
	board entity.Board
	rnd   *rand.Rand
}

// NewEngine - creates an engine with an empty board. A nil rnd is seeded from the runtime.
func NewEngine(rnd *rand.Rand) *Engine {
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) //nolint: gosec // game moves, not secrets
	}

	return &Engine{rnd: rnd}
}

// Reset - clears every cell.
func (that *Engine) Reset() {
	that.board = entity.Board{}
}

// Snapshot - returns a copy of the board; changing it does not affect the engine.
func (that *Engine) Snapshot() entity.Board {
	return that.board
}

// Restore - installs a saved board. Anything but exactly 9 cells resets the board instead.
func (that *Engine) Restore(cells []entity.Mark) {
	if len(cells) != entity.BoardSize {
		that.Reset()
		return
	}

	copy(that.board[:], cells)
}

// RestoreStrict - installs a saved board, or returns ErrInvalidBoard and keeps the current one.
func (that *Engine) RestoreStrict(cells []entity.Mark) error {
	if len(cells) != entity.BoardSize {
		return fmt.Errorf("%w: got %d", apperror.ErrInvalidBoard, len(cells))
	}

	for i, cell := range cells {
		if cell != entity.Empty && !cell.IsPlayer() {
			return fmt.Errorf("%w: unknown mark %d at cell %d", apperror.ErrInvalidBoard, cell, i)
		}
	}

	copy(that.board[:], cells)

	return nil
}

// Place - puts mark on an empty cell. It reports false and changes nothing
// if the cell is out of range, taken, or mark is not a player's.
func (that *Engine) Place(mark entity.Mark, cell int) bool {
	if !mark.IsPlayer() || !entity.InRange(cell) || that.board[cell] != entity.Empty {
		return false
	}

	that.board[cell] = mark

	return true
}

func (that *Engine) Evaluate() entity.Outcome {
	return that.board.Evaluate()
}

// ChooseComputerMove - picks an empty cell for the computer without placing it.
// It returns ErrNoAvailableMoves when the board is full.
func (that *Engine) ChooseComputerMove(difficulty entity.Difficulty) (int, error) {
	if that.board.IsFull() {
		return -1, apperror.ErrNoAvailableMoves
	}

	switch difficulty {
	case entity.Hard:
		if cell, ok := that.WinningMove(entity.Computer); ok {
			return cell, nil
		}

		if cell, ok := that.WinningMove(entity.Human); ok {
			return cell, nil
		}
	case entity.Medium:
		if cell, ok := that.WinningMove(entity.Computer); ok {
			return cell, nil
		}
	case entity.Easy:
	default:
	}

	available := that.board.EmptyCells()

	return available[that.rnd.IntN(len(available))], nil
}

// WinningMove - returns the lowest empty cell that wins immediately for mark.
func (that *Engine) WinningMove(mark entity.Mark) (int, bool) {
	var want entity.Outcome

	switch mark {
	case entity.Human:
		want = entity.HumanWins
	case entity.Computer:
		want = entity.ComputerWins
	default:
		return -1, false
	}

	for _, cell := range that.board.EmptyCells() {
		// board is a value, so the tentative mark never reaches the engine
		board := that.board
		board[cell] = mark

		if board.Evaluate() == want {
			return cell, true
		}
	}

	return -1, false
}
