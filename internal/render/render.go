package render

import (
	"ctchen222/console-tic-tac-toe/internal/game"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

const (
	colorX lipgloss.Color = "#f38ba8"
	colorO lipgloss.Color = "#89b4fa"

	rowSeparator   = "---+---+---"
	illegalMoveMsg = "That is not a legal move."
)

// Renderer writes the board and game results as plain text.
type Renderer struct {
	w      io.Writer
	styleX lipgloss.Style
	styleO lipgloss.Style
}

// NewRenderer returns a renderer writing to w. With color enabled, X and O are
// colored when w is a terminal; other writers always get plain text.
func NewRenderer(w io.Writer, color bool) *Renderer {
	lr := lipgloss.NewRenderer(w)
	r := &Renderer{
		w:      w,
		styleX: lr.NewStyle(),
		styleO: lr.NewStyle(),
	}
	if color {
		r.styleX = r.styleX.Foreground(colorX).Bold(true)
		r.styleO = r.styleO.Foreground(colorO).Bold(true)
	}
	return r
}

// Render draws the 3x3 grid.
func (r *Renderer) Render(b game.Grid) error {
	for row := range [3]int{} {
		if row > 0 {
			if _, err := fmt.Fprintln(r.w, rowSeparator); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(r.w, " %s | %s | %s \n",
			r.symbol(b.StateAt(game.Position{Row: row, Column: 0})),
			r.symbol(b.StateAt(game.Position{Row: row, Column: 1})),
			r.symbol(b.StateAt(game.Position{Row: row, Column: 2})),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// RenderOutcome writes the final result line. Undecided games write nothing.
func (r *Renderer) RenderOutcome(o game.Outcome) error {
	var text string
	switch o {
	case game.OutcomeXWins:
		text = r.symbol(game.PlayerX) + " Wins!"
	case game.OutcomeOWins:
		text = r.symbol(game.PlayerO) + " Wins!"
	case game.OutcomeDraw:
		text = "Draw!"
	default:
		return nil
	}
	_, err := fmt.Fprintln(r.w, text)
	return err
}

// RenderIllegalMove tells the player the last move was rejected.
func (r *Renderer) RenderIllegalMove() error {
	_, err := fmt.Fprintln(r.w, illegalMoveMsg)
	return err
}

func (r *Renderer) symbol(c game.CellState) string {
	switch c {
	case game.PlayerX:
		return r.styleX.Render("X")
	case game.PlayerO:
		return r.styleO.Render("O")
	default:
		return " "
	}
}
