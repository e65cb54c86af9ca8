package game

// Outcome is the result derived from a board. It is computed, never stored.
type Outcome int

const (
	OutcomeUndecided Outcome = iota
	OutcomeXWins
	OutcomeOWins
	OutcomeDraw
)

func (o Outcome) String() string {
	switch o {
	case OutcomeXWins:
		return "x_wins"
	case OutcomeOWins:
		return "o_wins"
	case OutcomeDraw:
		return "draw"
	default:
		return "undecided"
	}
}

// Finished reports whether the outcome ends the game.
func (o Outcome) Finished() bool {
	return o != OutcomeUndecided
}

// Winner returns the winning mark, or Empty for a draw or an undecided game.
func (o Outcome) Winner() CellState {
	switch o {
	case OutcomeXWins:
		return PlayerX
	case OutcomeOWins:
		return PlayerO
	default:
		return Empty
	}
}

// Evaluate derives the outcome of g. A full board without a line is a draw;
// a full board that does hold a line reports the winner.
func Evaluate(g Grid) Outcome {
	switch Winner(g) {
	case PlayerX:
		return OutcomeXWins
	case PlayerO:
		return OutcomeOWins
	}
	if IsFull(g) {
		return OutcomeDraw
	}
	return OutcomeUndecided
}
