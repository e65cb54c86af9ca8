package events

import (
	"context"
	"ctchen222/console-tic-tac-toe/internal/game"
	"log/slog"
)

// Event types emitted by a game session.
const (
	TypeMoveAccepted = "move_accepted"
	TypeMoveRejected = "move_rejected"
	TypeGameFinished = "game_finished"
)

// Event describes something that happened in a session.
type Event struct {
	Type     string         `json:"event"`
	GameID   string         `json:"game_id"`
	Mark     game.CellState `json:"mark,omitempty"`
	Position game.Position  `json:"position"`
	Outcome  game.Outcome   `json:"outcome"`
}

// Sink consumes session events. Publish must not block the game for long.
type Sink interface {
	Publish(ctx context.Context, e Event)
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(ctx context.Context, e Event)

func (f SinkFunc) Publish(ctx context.Context, e Event) {
	f(ctx, e)
}

// Discard drops every event.
var Discard Sink = SinkFunc(func(context.Context, Event) {})

type multiSink []Sink

// Multi returns a sink that publishes to each of sinks in order.
func Multi(sinks ...Sink) Sink {
	return multiSink(sinks)
}

func (m multiSink) Publish(ctx context.Context, e Event) {
	for _, s := range m {
		s.Publish(ctx, e)
	}
}

// LogSink logs every event at debug level.
type LogSink struct {
	logger *slog.Logger
}

// NewLogSink returns a sink writing to logger, or to the default logger when
// logger is nil.
func NewLogSink(logger *slog.Logger) *LogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSink{logger: logger}
}

func (s *LogSink) Publish(ctx context.Context, e Event) {
	attrs := []any{"game.id", e.GameID}
	switch e.Type {
	case TypeMoveAccepted, TypeMoveRejected:
		attrs = append(attrs, "player.mark", string(e.Mark), "move.position", e.Position.String())
	case TypeGameFinished:
		attrs = append(attrs, "game.outcome", e.Outcome.String())
	}
	s.logger.DebugContext(ctx, e.Type, attrs...)
}
