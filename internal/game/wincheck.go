package game

// Grid is the read-only view the win checks need. *Board satisfies it.
type Grid interface {
	StateAt(p Position) CellState
}

// Line is three positions that win the game when one player holds all of them.
type Line [3]Position

// Lines holds the 8 winning lines: rows, then columns, then the two diagonals.
var Lines = [8]Line{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},

	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},

	{{0, 0}, {1, 1}, {2, 2}},
	{{2, 0}, {1, 1}, {0, 2}},
}

// Winner returns the player holding a complete line, or Empty if nobody does.
// X is checked before O.
func Winner(g Grid) CellState {
	if hasLine(g, PlayerX) {
		return PlayerX
	}
	if hasLine(g, PlayerO) {
		return PlayerO
	}
	return Empty
}

// IsFull reports whether none of the 9 cells is empty.
func IsFull(g Grid) bool {
	for r := range [3]int{} {
		for c := range [3]int{} {
			if g.StateAt(Position{Row: r, Column: c}) == Empty {
				return false
			}
		}
	}
	return true
}

func hasLine(g Grid, player CellState) bool {
	for _, line := range Lines {
		if line.HeldBy(g, player) {
			return true
		}
	}
	return false
}

// HeldBy reports whether all three cells of the line hold player.
func (l Line) HeldBy(g Grid, player CellState) bool {
	for _, p := range l {
		if g.StateAt(p) != player {
			return false
		}
	}
	return true
}
