package game

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boardOf(cells [3][3]CellState) *Board {
	return &Board{cells: cells, nextTurn: PlayerX}
}

func TestWinner(t *testing.T) {
	tests := []struct {
		name  string
		board [3][3]CellState
		want  CellState
	}{
		{
			name:  "No winner - empty board",
			board: [3][3]CellState{},
			want:  Empty,
		},
		{
			name: "No winner - partial board",
			board: [3][3]CellState{
				{PlayerX, Empty, Empty},
				{Empty, PlayerO, Empty},
				{Empty, Empty, Empty},
			},
			want: Empty,
		},
		{
			name: "X wins - first row",
			board: [3][3]CellState{
				{PlayerX, PlayerX, PlayerX},
				{Empty, PlayerO, Empty},
				{Empty, Empty, PlayerO},
			},
			want: PlayerX,
		},
		{
			name: "O wins - second column",
			board: [3][3]CellState{
				{PlayerX, PlayerO, Empty},
				{PlayerX, PlayerO, Empty},
				{Empty, PlayerO, Empty},
			},
			want: PlayerO,
		},
		{
			name: "X wins - main diagonal",
			board: [3][3]CellState{
				{PlayerX, Empty, Empty},
				{Empty, PlayerX, Empty},
				{Empty, Empty, PlayerX},
			},
			want: PlayerX,
		},
		{
			name: "O wins - anti-diagonal",
			board: [3][3]CellState{
				{Empty, Empty, PlayerO},
				{Empty, PlayerO, Empty},
				{PlayerO, Empty, Empty},
			},
			want: PlayerO,
		},
		{
			name: "No winner - full board",
			board: [3][3]CellState{
				{PlayerX, PlayerO, PlayerX},
				{PlayerX, PlayerO, PlayerO},
				{PlayerO, PlayerX, PlayerX},
			},
			want: Empty,
		},
		{
			name: "Both complete - X reported first",
			board: [3][3]CellState{
				{PlayerO, PlayerO, PlayerO},
				{Empty, Empty, Empty},
				{PlayerX, PlayerX, PlayerX},
			},
			want: PlayerX,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Winner(boardOf(tt.board)))
		})
	}
}

func TestIsFull(t *testing.T) {
	tests := []struct {
		name  string
		board [3][3]CellState
		want  bool
	}{
		{
			name:  "Empty board is not full",
			board: [3][3]CellState{},
			want:  false,
		},
		{
			name: "Partial board is not full",
			board: [3][3]CellState{
				{PlayerX, Empty, Empty},
				{Empty, PlayerO, Empty},
				{Empty, Empty, Empty},
			},
			want: false,
		},
		{
			name: "One empty cell left",
			board: [3][3]CellState{
				{PlayerX, PlayerO, PlayerX},
				{PlayerX, PlayerO, PlayerO},
				{PlayerO, PlayerX, Empty},
			},
			want: false,
		},
		{
			name: "Full board is full",
			board: [3][3]CellState{
				{PlayerX, PlayerO, PlayerX},
				{PlayerX, PlayerO, PlayerO},
				{PlayerO, PlayerX, PlayerX},
			},
			want: true,
		},
		{
			name: "Full board with winner is full",
			board: [3][3]CellState{
				{PlayerX, PlayerX, PlayerX},
				{PlayerO, PlayerO, PlayerX},
				{PlayerO, PlayerX, PlayerO},
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsFull(boardOf(tt.board)))
		})
	}
}

// TestWinner_AllGrids walks every assignment of the 9 cells and compares
// Winner and IsFull against flat-index line arithmetic.
func TestWinner_AllGrids(t *testing.T) {
	flatLines := [8][3]int{
		{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
		{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
		{0, 4, 8}, {2, 4, 6},
	}
	marks := [3]CellState{Empty, PlayerX, PlayerO}

	total := 1
	for range 9 {
		total *= 3
	}

	for code := range total {
		var flat [9]CellState
		var cells [3][3]CellState
		n := code
		full := true
		for i := range 9 {
			flat[i] = marks[n%3]
			n /= 3
			cells[i/3][i%3] = flat[i]
			if flat[i] == Empty {
				full = false
			}
		}

		holds := func(mark CellState) bool {
			for _, l := range flatLines {
				if flat[l[0]] == mark && flat[l[1]] == mark && flat[l[2]] == mark {
					return true
				}
			}
			return false
		}
		want := Empty
		if holds(PlayerX) {
			want = PlayerX
		} else if holds(PlayerO) {
			want = PlayerO
		}

		b := boardOf(cells)
		if got := Winner(b); got != want {
			t.Fatalf("Winner(%v) = %q, want %q", cells, got, want)
		}
		if got := IsFull(b); got != full {
			t.Fatalf("IsFull(%v) = %v, want %v", cells, got, full)
		}
	}
}

func TestEvaluate(t *testing.T) {
	t.Run("Undecided on empty board", func(t *testing.T) {
		assert.Equal(t, OutcomeUndecided, Evaluate(NewBoard()))
	})

	t.Run("Draw on full board without a line", func(t *testing.T) {
		b := boardOf([3][3]CellState{
			{PlayerX, PlayerO, PlayerX},
			{PlayerX, PlayerO, PlayerO},
			{PlayerO, PlayerX, PlayerX},
		})
		outcome := Evaluate(b)
		assert.Equal(t, OutcomeDraw, outcome)
		assert.True(t, outcome.Finished())
		assert.Equal(t, Empty, outcome.Winner())
	})

	t.Run("Winner beats fullness", func(t *testing.T) {
		b := boardOf([3][3]CellState{
			{PlayerX, PlayerX, PlayerX},
			{PlayerO, PlayerO, PlayerX},
			{PlayerO, PlayerX, PlayerO},
		})
		outcome := Evaluate(b)
		assert.Equal(t, OutcomeXWins, outcome)
		assert.Equal(t, PlayerX, outcome.Winner())
	})

	t.Run("O wins", func(t *testing.T) {
		b := boardOf([3][3]CellState{
			{PlayerO, PlayerX, PlayerX},
			{Empty, PlayerO, Empty},
			{PlayerX, Empty, PlayerO},
		})
		assert.Equal(t, OutcomeOWins, Evaluate(b))
	})
}

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	assert.Equal(t, PlayerX, b.NextTurn())
	for r := range [3]int{} {
		for c := range [3]int{} {
			assert.Equal(t, Empty, b.StateAt(Position{Row: r, Column: c}))
		}
	}
}

func TestBoard_AttemptMove(t *testing.T) {
	t.Run("X plays top-left on an empty board", func(t *testing.T) {
		// Given: a fresh board
		b := NewBoard()

		// When: X plays (0,0)
		ok := b.AttemptMove(Position{Row: 0, Column: 0}, PlayerX)

		// Then: the cell is X and O is next
		require.True(t, ok)
		assert.Equal(t, PlayerX, b.StateAt(Position{Row: 0, Column: 0}))
		assert.Equal(t, PlayerO, b.NextTurn())
	})

	t.Run("Occupied cell is rejected", func(t *testing.T) {
		// Given: X on (1,1), O to move
		b := NewBoard()
		require.True(t, b.AttemptMove(Position{Row: 1, Column: 1}, PlayerX))
		before := *b

		// When: O tries the same cell
		ok := b.AttemptMove(Position{Row: 1, Column: 1}, PlayerO)

		// Then: nothing changes
		assert.False(t, ok)
		assert.Equal(t, before, *b)
	})

	t.Run("Wrong turn is rejected", func(t *testing.T) {
		// Given: a fresh board, X to move
		b := NewBoard()
		before := *b

		// When: O tries to move first
		ok := b.AttemptMove(Position{Row: 2, Column: 2}, PlayerO)

		// Then: nothing changes
		assert.False(t, ok)
		assert.Equal(t, before, *b)
	})

	t.Run("X cannot play the same cell twice in a row", func(t *testing.T) {
		b := NewBoard()
		require.True(t, b.AttemptMove(Position{Row: 0, Column: 0}, PlayerX))
		afterFirst := *b

		ok := b.AttemptMove(Position{Row: 0, Column: 0}, PlayerX)

		assert.False(t, ok)
		assert.Equal(t, afterFirst, *b)
	})

	t.Run("Empty is never a legal mover", func(t *testing.T) {
		b := NewBoard()
		before := *b

		assert.False(t, b.AttemptMove(Position{Row: 0, Column: 0}, Empty))
		assert.Equal(t, before, *b)
	})

	t.Run("Out-of-range positions fail closed", func(t *testing.T) {
		b := NewBoard()
		before := *b

		for _, p := range []Position{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {9, 9}} {
			assert.False(t, b.AttemptMove(p, PlayerX), "position %s", p)
		}
		assert.Equal(t, before, *b)
	})
}

func TestBoard_StateAtOutOfRangePanics(t *testing.T) {
	b := NewBoard()

	assert.Panics(t, func() { b.StateAt(Position{Row: 3, Column: 0}) })
	assert.Panics(t, func() { b.StateAt(Position{Row: 0, Column: -1}) })
}

// TestBoard_RandomGames plays random legal and illegal attempts and checks the
// board invariants after each one.
func TestBoard_RandomGames(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	for range 500 {
		b := NewBoard()
		expectedTurn := PlayerX
		placed := 0

		for placed < 9 {
			p := Position{Row: rng.IntN(3), Column: rng.IntN(3)}
			mover := PlayerX
			if rng.IntN(2) == 1 {
				mover = PlayerO
			}
			before := b.Grid()
			wasEmpty := before[p.Row][p.Column] == Empty

			ok := b.AttemptMove(p, mover)

			if mover != expectedTurn || !wasEmpty {
				require.False(t, ok)
				require.Equal(t, before, b.Grid())
				require.Equal(t, expectedTurn, b.NextTurn())
				continue
			}

			require.True(t, ok)
			placed++
			require.Equal(t, mover, b.StateAt(p))
			expectedTurn = expectedTurn.Opponent()
			require.Equal(t, expectedTurn, b.NextTurn())

			after := b.Grid()
			for r := range [3]int{} {
				for c := range [3]int{} {
					if before[r][c] != Empty {
						require.Equal(t, before[r][c], after[r][c], "occupied cell overwritten")
					}
				}
			}
		}

		assert.True(t, IsFull(b))
	}
}

func TestCellState_Opponent(t *testing.T) {
	assert.Equal(t, PlayerO, PlayerX.Opponent())
	assert.Equal(t, PlayerX, PlayerO.Opponent())
	assert.Equal(t, Empty, Empty.Opponent())
}

func TestPosition_Valid(t *testing.T) {
	assert.True(t, Position{Row: 0, Column: 0}.Valid())
	assert.True(t, Position{Row: 2, Column: 2}.Valid())
	assert.False(t, Position{Row: 3, Column: 2}.Valid())
	assert.False(t, Position{Row: 1, Column: -1}.Valid())
}
