package session

import (
	"context"
	"ctchen222/console-tic-tac-toe/internal/events"
	"ctchen222/console-tic-tac-toe/internal/game"
	"ctchen222/console-tic-tac-toe/internal/player"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("session")

var (
	// ErrMissingPlayer is returned by New when a mark has no player.
	ErrMissingPlayer = errors.New("both X and O need a player")
	// ErrMoveTimedOut is returned by Run when a player exceeds the move timeout.
	ErrMoveTimedOut = errors.New("move timed out")
)

// Renderer draws the game for the players.
type Renderer interface {
	Render(b game.Grid) error
	RenderOutcome(o game.Outcome) error
	RenderIllegalMove() error
}

// Status is the loop state.
type Status int

const (
	StatusInProgress Status = iota
	StatusWon
	StatusDrawn
)

func (s Status) String() string {
	switch s {
	case StatusWon:
		return "won"
	case StatusDrawn:
		return "drawn"
	default:
		return "in_progress"
	}
}

// State is the loop state plus the winner when Status is StatusWon.
type State struct {
	Status Status
	Winner game.CellState
}

// Terminal reports whether the game has ended.
func (s State) Terminal() bool {
	return s.Status != StatusInProgress
}

// Session runs one game on a board it owns for its whole life.
type Session struct {
	ID          string
	board       *game.Board
	players     map[game.CellState]*player.Player
	renderer    Renderer
	sink        events.Sink
	moveTimeout time.Duration
}

type Option func(*Session)

// WithMoveTimeout bounds each wait for a player's move. Zero disables it.
func WithMoveTimeout(d time.Duration) Option {
	return func(s *Session) { s.moveTimeout = d }
}

// WithSink sends session events to sink.
func WithSink(sink events.Sink) Option {
	return func(s *Session) { s.sink = sink }
}

// New creates a session on a fresh board. x must play PlayerX and o PlayerO.
func New(x, o *player.Player, renderer Renderer, opts ...Option) (*Session, error) {
	if x == nil || o == nil || x.Mark != game.PlayerX || o.Mark != game.PlayerO || x.Source == nil || o.Source == nil {
		return nil, ErrMissingPlayer
	}

	s := &Session{
		ID:    uuid.New().String(),
		board: game.NewBoard(),
		players: map[game.CellState]*player.Player{
			game.PlayerX: x,
			game.PlayerO: o,
		},
		renderer: renderer,
		sink:     events.Discard,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// State derives the loop state from the board. A full board with no line is
// drawn; otherwise any completed line wins.
func (s *Session) State() State {
	winner := game.Winner(s.board)
	if game.IsFull(s.board) && winner == game.Empty {
		return State{Status: StatusDrawn}
	}
	if winner != game.Empty {
		return State{Status: StatusWon, Winner: winner}
	}
	return State{Status: StatusInProgress}
}

// Run plays turns until the game is won or drawn, then renders the final
// board and the result once. An error from a player's source or the renderer
// aborts the game and is returned with OutcomeUndecided.
func (s *Session) Run(ctx context.Context) (game.Outcome, error) {
	ctx, span := tracer.Start(ctx, "session.Run", trace.WithAttributes(
		attribute.String("game.id", s.ID),
	))
	defer span.End()

	slog.InfoContext(ctx, "game started", "game.id", s.ID)

	for !s.State().Terminal() {
		if err := s.playTurn(ctx); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "game aborted")
			slog.ErrorContext(ctx, "game aborted", "game.id", s.ID, "error", err)
			return game.OutcomeUndecided, err
		}
	}

	outcome := game.Evaluate(s.board)
	span.SetAttributes(attribute.String("game.outcome", outcome.String()))

	if err := s.renderer.Render(s.board); err != nil {
		return outcome, fmt.Errorf("failed to render board: %w", err)
	}
	if err := s.renderer.RenderOutcome(outcome); err != nil {
		return outcome, fmt.Errorf("failed to render outcome: %w", err)
	}

	s.sink.Publish(ctx, events.Event{Type: events.TypeGameFinished, GameID: s.ID, Outcome: outcome})
	slog.InfoContext(ctx, "game finished", "game.id", s.ID, "game.outcome", outcome.String())
	return outcome, nil
}

// playTurn renders the board, asks the player to move and applies the answer.
// A rejected move is reported to the players and leaves the turn unchanged.
func (s *Session) playTurn(ctx context.Context) error {
	mark := s.board.NextTurn()
	p := s.players[mark]

	ctx, span := tracer.Start(ctx, "session.playTurn", trace.WithAttributes(
		attribute.String("game.id", s.ID),
		attribute.String("player.mark", string(mark)),
	))
	defer span.End()

	if err := s.renderer.Render(s.board); err != nil {
		return fmt.Errorf("failed to render board: %w", err)
	}

	pos, err := s.acquire(ctx, p)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "no move from player")
		return err
	}
	span.SetAttributes(attribute.String("move.position", pos.String()))

	ev := events.Event{GameID: s.ID, Mark: mark, Position: pos}
	if !s.board.AttemptMove(pos, mark) {
		ev.Type = events.TypeMoveRejected
		s.sink.Publish(ctx, ev)
		slog.InfoContext(ctx, "illegal move", "game.id", s.ID, "player.mark", string(mark), "move.position", pos.String())
		if err := s.renderer.RenderIllegalMove(); err != nil {
			return fmt.Errorf("failed to render feedback: %w", err)
		}
		return nil
	}

	ev.Type = events.TypeMoveAccepted
	s.sink.Publish(ctx, ev)
	slog.DebugContext(ctx, "move accepted", "game.id", s.ID, "player.mark", string(mark), "move.position", pos.String())
	return nil
}

func (s *Session) acquire(ctx context.Context, p *player.Player) (game.Position, error) {
	if s.moveTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.moveTimeout)
		defer cancel()
	}

	pos, err := p.Source.NextPosition(ctx, s.board)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && s.moveTimeout > 0 {
			return game.Position{}, fmt.Errorf("%s (%s): %w", p.Name, p.Mark, ErrMoveTimedOut)
		}
		return game.Position{}, fmt.Errorf("failed to get move from %s (%s): %w", p.Name, p.Mark, err)
	}
	return pos, nil
}
