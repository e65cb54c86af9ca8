package game

import "fmt"

// Board is the 3x3 grid plus the mark expected to move next.
// The zero value is not ready for use; call NewBoard.
type Board struct {
	cells    [3][3]CellState
	nextTurn CellState
}

// NewBoard returns an empty board with X to move.
func NewBoard() *Board {
	return &Board{
		cells:    [3][3]CellState{},
		nextTurn: PlayerX,
	}
}

// StateAt returns the mark at p. p must be a valid position; anything else
// is a programming error and panics before the grid is read.
func (b *Board) StateAt(p Position) CellState {
	if !p.Valid() {
		panic(fmt.Sprintf("game: position %s is outside the board", p))
	}
	return b.cells[p.Row][p.Column]
}

// NextTurn returns the mark whose move is expected.
func (b *Board) NextTurn() CellState {
	return b.nextTurn
}

// AttemptMove places player's mark at p if it is player's turn and the cell
// is empty, then hands the turn to the opponent. It reports whether the move
// was applied; a rejected move leaves the board untouched. Out-of-range
// positions are rejected the same way.
func (b *Board) AttemptMove(p Position, player CellState) bool {
	if player != b.nextTurn {
		return false
	}
	if !p.Valid() {
		return false
	}
	if b.cells[p.Row][p.Column] != Empty {
		return false
	}

	b.cells[p.Row][p.Column] = player
	b.nextTurn = player.Opponent()
	return true
}

// Grid returns a copy of the cells, indexed [row][column].
func (b *Board) Grid() [3][3]CellState {
	return b.cells
}
