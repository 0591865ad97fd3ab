package entity

// Mark is the value held by a board cell.
type Mark int

const (
	Empty Mark = iota
	Human
	Computer
)

// BoardSize is the number of cells on a 3x3 board.
const BoardSize = 9

// WinCombos lists every winning line: rows first, then columns, then diagonals.
// Evaluate relies on this order as a tie-break for malformed boards.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Outcome is the state of a board as seen by the rules.
type Outcome int

const (
	None Outcome = iota
	Draw
	HumanWins
	ComputerWins
)

// Board is a row-major 3x3 grid, index = row*3 + col.
type Board [BoardSize]Mark

func (that Mark) String() string {
	switch that {
	case Human:
		return "X"
	case Computer:
		return "O"
	case Empty:
		return " "
	default:
		return "?"
	}
}

// IsPlayer reports whether the mark belongs to one of the two sides.
func (that Mark) IsPlayer() bool {
	return that == Human || that == Computer
}

func (that Outcome) String() string {
	switch that {
	case Draw:
		return "draw"
	case HumanWins:
		return "human wins"
	case ComputerWins:
		return "computer wins"
	default:
		return "in progress"
	}
}

// IsFinished reports whether no more moves can be made.
func (that Outcome) IsFinished() bool {
	return that != None
}

// InRange reports whether cell is a valid board index.
func InRange(cell int) bool {
	return cell >= 0 && cell < BoardSize
}

// Evaluate - returns the outcome of the board.
func (that Board) Evaluate() Outcome {
	for _, combo := range WinCombos {
		a, b, c := that[combo[0]], that[combo[1]], that[combo[2]]
		if a != Empty && a == b && b == c {
			if a == Human {
				return HumanWins
			}
			return ComputerWins
		}
	}

	// the game will continue until all the squares are full
	for _, cell := range that {
		if cell == Empty {
			return None
		}
	}

	return Draw
}

// EmptyCells - returns indices of empty cells in ascending order.
func (that Board) EmptyCells() []int {
	cells := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell == Empty {
			cells = append(cells, i)
		}
	}

	return cells
}

// IsFull reports whether every cell is taken.
func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == Empty {
			return false
		}
	}

	return true
}
