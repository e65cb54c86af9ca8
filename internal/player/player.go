package player

//go:generate mockgen -source=player.go -destination=mocks/mock_player.go -package=mocks

import (
	"context"
	"ctchen222/console-tic-tac-toe/internal/game"
)

// BoardView is what a Source may inspect while choosing a move.
type BoardView interface {
	StateAt(p game.Position) game.CellState
	NextTurn() game.CellState
}

// Source supplies the next position for a player. Implementations block until
// a candidate is available or ctx is done.
type Source interface {
	NextPosition(ctx context.Context, board BoardView) (game.Position, error)
}

// Player is one side of a game.
type Player struct {
	Name   string
	Mark   game.CellState
	Source Source
}

// NewPlayer creates a player that plays mark and reads its moves from src.
func NewPlayer(name string, mark game.CellState, src Source) *Player {
	return &Player{
		Name:   name,
		Mark:   mark,
		Source: src,
	}
}
