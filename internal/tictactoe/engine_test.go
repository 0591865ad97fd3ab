package tictactoe

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	X = entity.Human
	O = entity.Computer
	E = entity.Empty
)

func newTestEngine(seed uint64, board entity.Board) *Engine {
	engine := NewEngine(rand.New(rand.NewPCG(seed, seed+1)))
	engine.Restore(board[:])

	return engine
}

func TestEngine_Reset(t *testing.T) {
	// Given: an engine with some moves on the board
	engine := newTestEngine(1, entity.Board{X, O, X, E, O, E, E, E, E})

	// When: resetting the engine
	engine.Reset()

	// Then: every cell should be empty and the game in progress
	assert.Equal(t, entity.Board{}, engine.Snapshot())
	assert.Equal(t, entity.None, engine.Evaluate())
}

func TestEngine_Snapshot(t *testing.T) {
	t.Run("Mutating the snapshot does not change the engine", func(t *testing.T) {
		// Given: an engine with a human mark in the center
		engine := NewEngine(nil)
		require.True(t, engine.Place(X, 4))

		// When: changing the returned snapshot
		snapshot := engine.Snapshot()
		snapshot[4] = O
		snapshot[0] = O

		// Then: the engine board should be untouched
		expected := entity.Board{}
		expected[4] = X
		assert.Equal(t, expected, engine.Snapshot())
	})
}

func TestEngine_Restore(t *testing.T) {
	t.Run("Installs a board of nine cells", func(t *testing.T) {
		// Given: a saved board
		saved := []entity.Mark{X, O, E, E, X, E, E, E, O}
		engine := NewEngine(nil)

		// When: restoring it
		engine.Restore(saved)

		// Then: the engine should hold the same cells
		assert.Equal(t, entity.Board{X, O, E, E, X, E, E, E, O}, engine.Snapshot())
	})

	t.Run("Restored board is not aliased to the input", func(t *testing.T) {
		// Given: a restored board
		saved := []entity.Mark{X, E, E, E, E, E, E, E, E}
		engine := NewEngine(nil)
		engine.Restore(saved)

		// When: the caller changes its slice
		saved[1] = O

		// Then: the engine should not see the change
		assert.Equal(t, E, engine.Snapshot()[1])
	})

	t.Run("A five cell board resets instead", func(t *testing.T) {
		// Given: an engine with moves on the board
		engine := newTestEngine(1, entity.Board{X, O, X, E, E, E, E, E, E})

		// When: restoring a malformed board
		engine.Restore([]entity.Mark{X, X, X, O, O})

		// Then: the board should be empty, not unchanged
		assert.Equal(t, entity.Board{}, engine.Snapshot())
	})

	t.Run("A nil board resets", func(t *testing.T) {
		// Given: an engine with a move on the board
		engine := newTestEngine(1, entity.Board{X, E, E, E, E, E, E, E, E})

		// When: restoring nothing
		engine.Restore(nil)

		// Then: the board should be empty
		assert.Equal(t, entity.Board{}, engine.Snapshot())
	})
}

func TestEngine_RestoreStrict(t *testing.T) {
	t.Run("Rejects a wrong length and keeps the board", func(t *testing.T) {
		// Given: an engine with a move on the board
		engine := newTestEngine(1, entity.Board{X, E, E, E, E, E, E, E, E})

		// When: strictly restoring a malformed board
		err := engine.RestoreStrict([]entity.Mark{O, O})

		// Then: ErrInvalidBoard is returned and nothing changes
		require.ErrorIs(t, err, apperror.ErrInvalidBoard)
		assert.Equal(t, entity.Board{X, E, E, E, E, E, E, E, E}, engine.Snapshot())
	})

	t.Run("Rejects unknown marks", func(t *testing.T) {
		// Given: an empty engine
		engine := NewEngine(nil)

		// When: restoring a board with a mark that is not a player
		err := engine.RestoreStrict([]entity.Mark{E, E, E, E, entity.Mark(5), E, E, E, E})

		// Then: ErrInvalidBoard is returned
		require.ErrorIs(t, err, apperror.ErrInvalidBoard)
		assert.Equal(t, entity.Board{}, engine.Snapshot())
	})

	t.Run("Installs a valid board", func(t *testing.T) {
		// Given: an empty engine
		engine := NewEngine(nil)

		// When: strictly restoring a valid board
		err := engine.RestoreStrict([]entity.Mark{O, E, E, E, X, E, E, E, E})

		// Then: the board is installed
		require.NoError(t, err)
		assert.Equal(t, entity.Board{O, E, E, E, X, E, E, E, E}, engine.Snapshot())
	})
}

func TestEngine_Place(t *testing.T) {
	t.Run("Places on an empty cell", func(t *testing.T) {
		// Given: an empty engine
		engine := NewEngine(nil)

		// When: the human plays the corner
		ok := engine.Place(X, 8)

		// Then: the move is accepted
		require.True(t, ok)
		assert.Equal(t, X, engine.Snapshot()[8])
	})

	t.Run("Rejects an occupied cell", func(t *testing.T) {
		// Given: a board where the computer holds the center
		board := entity.Board{E, E, E, E, O, E, E, E, E}
		engine := newTestEngine(1, board)

		// When: the human tries the same cell
		ok := engine.Place(X, 4)

		// Then: the move fails and nothing changes
		assert.False(t, ok)
		assert.Equal(t, board, engine.Snapshot())
	})

	t.Run("Rejects out of range cells", func(t *testing.T) {
		// Given: a board with one move
		board := entity.Board{X, E, E, E, E, E, E, E, E}
		engine := newTestEngine(1, board)

		// When/Then: any index outside 0..8 fails without a change
		for _, cell := range []int{-1, 9, 20} {
			assert.False(t, engine.Place(O, cell), "cell %d", cell)
		}
		assert.Equal(t, board, engine.Snapshot())
	})

	t.Run("Rejects the empty mark", func(t *testing.T) {
		// Given: a board with a human mark
		board := entity.Board{X, E, E, E, E, E, E, E, E}
		engine := newTestEngine(1, board)

		// When: trying to place Empty
		ok := engine.Place(E, 1)

		// Then: the move fails
		assert.False(t, ok)
		assert.Equal(t, board, engine.Snapshot())
	})
}

func TestEngine_Evaluate(t *testing.T) {
	t.Run("Full board without a line is a draw", func(t *testing.T) {
		// Given: a full board with no line
		engine := newTestEngine(1, entity.Board{X, O, X, X, O, O, O, X, X})

		// When/Then: the result is a draw
		assert.Equal(t, entity.Draw, engine.Evaluate())
	})

	t.Run("Evaluate has no side effects", func(t *testing.T) {
		// Given: a board in progress
		board := entity.Board{X, O, E, E, X, E, E, E, E}
		engine := newTestEngine(1, board)

		// When: evaluating twice
		first := engine.Evaluate()
		second := engine.Evaluate()

		// Then: the board and result are unchanged
		assert.Equal(t, first, second)
		assert.Equal(t, board, engine.Snapshot())
	})
}

func TestEngine_ChooseComputerMove(t *testing.T) {
	t.Run("Empty board on hard returns any cell", func(t *testing.T) {
		for seed := uint64(0); seed < 50; seed++ {
			// Given: an empty board
			engine := newTestEngine(seed, entity.Board{})

			// When: asking for a hard move
			cell, err := engine.ChooseComputerMove(entity.Hard)

			// Then: any index on the board is fine
			require.NoError(t, err)
			assert.True(t, entity.InRange(cell))
		}
	})

	t.Run("Hard prefers a win over a block", func(t *testing.T) {
		// Given: computer two in the top row, human two in the middle row
		engine := newTestEngine(1, entity.Board{
			O, O, E,
			X, X, E,
			E, E, E,
		})

		// When: asking for a hard move
		cell, err := engine.ChooseComputerMove(entity.Hard)

		// Then: the computer completes its row
		require.NoError(t, err)
		assert.Equal(t, 2, cell)
	})

	t.Run("Hard takes the lowest winning cell", func(t *testing.T) {
		// Given: computer at 1 and 2 can also win at 0, human threatens 5
		engine := newTestEngine(1, entity.Board{
			E, O, O,
			X, X, E,
			E, E, E,
		})

		// When: asking for a hard move
		cell, err := engine.ChooseComputerMove(entity.Hard)

		// Then: the win at 0 beats the block at 5
		require.NoError(t, err)
		assert.Equal(t, 0, cell)
	})

	t.Run("Hard blocks when it cannot win", func(t *testing.T) {
		// Given: human threatens the middle row and the computer has no two in a line
		engine := newTestEngine(1, entity.Board{
			E, O, E,
			X, X, E,
			E, E, O,
		})

		// When: asking for a hard move
		cell, err := engine.ChooseComputerMove(entity.Hard)

		// Then: the computer blocks at 5
		require.NoError(t, err)
		assert.Equal(t, 5, cell)
	})

	t.Run("Medium wins when it can", func(t *testing.T) {
		// Given: the computer can finish the left column
		engine := newTestEngine(1, entity.Board{
			O, X, X,
			O, E, E,
			E, E, E,
		})

		// When: asking for a medium move
		cell, err := engine.ChooseComputerMove(entity.Medium)

		// Then: the computer wins at 6
		require.NoError(t, err)
		assert.Equal(t, 6, cell)
	})

	t.Run("Medium does not block on purpose", func(t *testing.T) {
		// Given: only the human has a threat, at 5
		board := entity.Board{
			E, O, E,
			X, X, E,
			E, E, O,
		}

		blocked := 0
		for seed := uint64(0); seed < 100; seed++ {
			engine := newTestEngine(seed, board)

			// When: asking for a medium move
			cell, err := engine.ChooseComputerMove(entity.Medium)

			// Then: the choice is a random empty cell
			require.NoError(t, err)
			assert.Equal(t, E, board[cell])

			if cell == 5 {
				blocked++
			}
		}

		assert.Less(t, blocked, 100)
	})

	t.Run("Search leaves the board untouched", func(t *testing.T) {
		// Given: a board with threats for both sides
		board := entity.Board{
			O, O, E,
			X, X, E,
			E, E, E,
		}
		engine := newTestEngine(1, board)

		// When: asking for a hard move
		_, err := engine.ChooseComputerMove(entity.Hard)

		// Then: the board is exactly as before
		require.NoError(t, err)
		assert.Equal(t, board, engine.Snapshot())
	})

	t.Run("Never returns an occupied cell", func(t *testing.T) {
		difficulties := []entity.Difficulty{entity.Easy, entity.Medium, entity.Hard, entity.Difficulty(99)}

		for seed := uint64(0); seed < 50; seed++ {
			for _, difficulty := range difficulties {
				// Given: a board with a single empty cell
				engine := newTestEngine(seed, entity.Board{X, O, X, X, O, O, O, X, E})

				// When: asking for a move
				cell, err := engine.ChooseComputerMove(difficulty)

				// Then: the only empty cell is chosen
				require.NoError(t, err)
				assert.Equal(t, 8, cell)
			}
		}
	})

	t.Run("Easy picks every empty cell eventually", func(t *testing.T) {
		// Given: an engine with a fixed seed and a half-full board
		engine := newTestEngine(7, entity.Board{X, E, O, E, X, E, O, E, E})
		seen := map[int]bool{}

		// When: asking for many easy moves
		for range 500 {
			cell, err := engine.ChooseComputerMove(entity.Easy)
			require.NoError(t, err)
			seen[cell] = true
		}

		// Then: every empty cell has been picked and nothing else
		assert.Equal(t, map[int]bool{1: true, 3: true, 5: true, 7: true, 8: true}, seen)
	})

	t.Run("Full board returns ErrNoAvailableMoves", func(t *testing.T) {
		// Given: a full board
		engine := newTestEngine(1, entity.Board{X, O, X, X, O, O, O, X, X})

		// When: asking for a move
		cell, err := engine.ChooseComputerMove(entity.Hard)

		// Then: an explicit error is returned
		require.ErrorIs(t, err, apperror.ErrNoAvailableMoves)
		assert.Equal(t, -1, cell)
	})
}

func TestEngine_WinningMove(t *testing.T) {
	t.Run("No win when the line is blocked", func(t *testing.T) {
		// Given: human on 0 and 4
		engine := newTestEngine(1, entity.Board{X, E, E, E, X, E, E, E, O})

		// When: looking for a human win
		cell, ok := engine.WinningMove(X)

		// Then: nothing is found, because 8 is taken by the computer
		assert.False(t, ok)
		assert.Equal(t, -1, cell)
	})

	t.Run("Finds the lowest index among several wins", func(t *testing.T) {
		// Given: human can win at 2 (top row) or 6 (left column)
		engine := newTestEngine(1, entity.Board{X, X, E, X, O, O, E, E, E})

		// When: looking for a human win
		cell, ok := engine.WinningMove(X)

		// Then: the lower index is returned
		require.True(t, ok)
		assert.Equal(t, 2, cell)
	})

	t.Run("Empty has no winning move", func(t *testing.T) {
		engine := NewEngine(nil)

		_, ok := engine.WinningMove(E)

		assert.False(t, ok)
	})
}
