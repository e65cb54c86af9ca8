package player

import (
	"bufio"
	"context"
	"ctchen222/console-tic-tac-toe/internal/game"
	"ctchen222/console-tic-tac-toe/internal/keypad"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// ErrInputClosed is returned once the console input has no more lines.
var ErrInputClosed = errors.New("input closed")

const (
	malformedInputMsg = "Please enter a number from 1 to 9."
	acknowledgeMsg    = "Press Enter to exit."
)

type line struct {
	text string
	err  error
}

// Console reads moves typed on a shared console. Both players may use the same
// Console; it prompts with whichever mark is to move.
type Console struct {
	out   io.Writer
	lines chan line
}

// NewConsole starts pumping lines from in. Prompts and input errors are
// written to out.
func NewConsole(in io.Reader, out io.Writer) *Console {
	c := &Console{
		out:   out,
		lines: make(chan line),
	}
	go c.readPump(in)
	return c
}

// readPump turns blocking reads into channel sends so callers can select on
// their context. It exits after the first read error.
func (c *Console) readPump(in io.Reader) {
	defer close(c.lines)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		c.lines <- line{text: scanner.Text()}
	}
	if err := scanner.Err(); err != nil {
		c.lines <- line{err: err}
	}
}

func (c *Console) readLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-c.lines:
		if !ok {
			return "", ErrInputClosed
		}
		if l.err != nil {
			return "", fmt.Errorf("failed to read input: %w", l.err)
		}
		return l.text, nil
	}
}

// NextPosition prompts for the mark to move and keeps reading until a line
// names a keypad cell. Whether the cell is free is left to the board.
func (c *Console) NextPosition(ctx context.Context, board BoardView) (game.Position, error) {
	for {
		if _, err := fmt.Fprintf(c.out, "%s to move (1-9): ", board.NextTurn()); err != nil {
			return game.Position{}, err
		}

		text, err := c.readLine(ctx)
		if err != nil {
			return game.Position{}, err
		}

		if p, ok := keypad.Lookup(text); ok {
			return p, nil
		}

		slog.DebugContext(ctx, "rejected console input", "input", text, "player.mark", string(board.NextTurn()))
		if _, err := fmt.Fprintln(c.out, malformedInputMsg); err != nil {
			return game.Position{}, err
		}
	}
}

// Acknowledge waits for the user to press Enter. Closed input counts as an
// acknowledgement.
func (c *Console) Acknowledge(ctx context.Context) error {
	if _, err := fmt.Fprintln(c.out, acknowledgeMsg); err != nil {
		return err
	}
	_, err := c.readLine(ctx)
	if errors.Is(err, ErrInputClosed) {
		return nil
	}
	return err
}
