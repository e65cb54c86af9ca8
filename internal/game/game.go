package game

import "fmt"

// CellState represents the mark of a player (X, O) or an empty cell.
type CellState string

const (
	Empty   CellState = ""
	PlayerX CellState = "X"
	PlayerO CellState = "O"

	// Board boundaries
	BorderMin = 0
	BorderMax = 2
)

// Opponent returns the other player. Empty has no opponent.
func (c CellState) Opponent() CellState {
	switch c {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return Empty
	}
}

// IsPlayer reports whether c is one of the two player marks.
func (c CellState) IsPlayer() bool {
	return c == PlayerX || c == PlayerO
}

// Position is a zero-based (row, column) coordinate on the board.
type Position struct {
	Row    int
	Column int
}

// Valid reports whether both components are inside the board.
func (p Position) Valid() bool {
	return p.Row >= BorderMin && p.Row <= BorderMax && p.Column >= BorderMin && p.Column <= BorderMax
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Column)
}
