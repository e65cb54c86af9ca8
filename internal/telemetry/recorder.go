package telemetry

import (
	"context"
	"ctchen222/console-tic-tac-toe/internal/events"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// InstrumentationName is the scope used for tracers, meters and loggers.
const InstrumentationName = "ctchen222/console-tic-tac-toe"

// Recorder turns session events into metrics.
type Recorder struct {
	accepted metric.Int64Counter
	rejected metric.Int64Counter
	finished metric.Int64Counter
}

// NewRecorder creates the game counters on meter.
func NewRecorder(meter metric.Meter) (*Recorder, error) {
	accepted, err := meter.Int64Counter("tictactoe.moves.accepted",
		metric.WithDescription("Moves applied to the board."),
		metric.WithUnit("{move}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create accepted moves counter: %w", err)
	}
	rejected, err := meter.Int64Counter("tictactoe.moves.rejected",
		metric.WithDescription("Moves refused by the board."),
		metric.WithUnit("{move}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create rejected moves counter: %w", err)
	}
	finished, err := meter.Int64Counter("tictactoe.games.finished",
		metric.WithDescription("Games that reached a result."),
		metric.WithUnit("{game}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create finished games counter: %w", err)
	}

	return &Recorder{accepted: accepted, rejected: rejected, finished: finished}, nil
}

// Publish implements events.Sink.
func (r *Recorder) Publish(ctx context.Context, e events.Event) {
	switch e.Type {
	case events.TypeMoveAccepted:
		r.accepted.Add(ctx, 1, metric.WithAttributes(attribute.String("player.mark", string(e.Mark))))
	case events.TypeMoveRejected:
		r.rejected.Add(ctx, 1, metric.WithAttributes(attribute.String("player.mark", string(e.Mark))))
	case events.TypeGameFinished:
		r.finished.Add(ctx, 1, metric.WithAttributes(attribute.String("game.outcome", e.Outcome.String())))
	}
}
