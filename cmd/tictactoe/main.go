package main

import (
	"context"
	"ctchen222/console-tic-tac-toe/internal/config"
	"ctchen222/console-tic-tac-toe/internal/events"
	"ctchen222/console-tic-tac-toe/internal/game"
	"ctchen222/console-tic-tac-toe/internal/logger"
	"ctchen222/console-tic-tac-toe/internal/player"
	"ctchen222/console-tic-tac-toe/internal/render"
	"ctchen222/console-tic-tac-toe/internal/session"
	"ctchen222/console-tic-tac-toe/internal/telemetry"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"go.opentelemetry.io/otel"
)

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Initialize telemetry
	shutdown, err := telemetry.InitOtel(ctx, cfg.Telemetry, os.Stderr)
	if err != nil {
		return fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			log.Printf("Error shutting down telemetry: %v", err)
		}
	}()

	// Initialize logging
	logCloser, err := logger.Init(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logCloser.Close()

	return run(ctx, cfg, os.Stdin, os.Stdout)
}

// run plays one game on the console formed by in and out, then waits for the
// user to acknowledge the result.
func run(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer) error {
	recorder, err := telemetry.NewRecorder(otel.Meter(telemetry.InstrumentationName))
	if err != nil {
		return err
	}

	console := player.NewConsole(in, out)
	sess, err := session.New(
		player.NewPlayer("Player 1", game.PlayerX, console),
		player.NewPlayer("Player 2", game.PlayerO, console),
		render.NewRenderer(out, !cfg.Game.NoColor),
		session.WithMoveTimeout(cfg.Game.MoveTimeout),
		session.WithSink(events.Multi(events.NewLogSink(slog.Default()), recorder)),
	)
	if err != nil {
		return err
	}

	if _, err := sess.Run(ctx); err != nil {
		return err
	}

	return console.Acknowledge(ctx)
}
