package i

import (
	"context"

	"github.com/beka-birhanu/vinom-maze/game"
)

// MazeSessionManager owns the live maze session and serializes access to it.
type MazeSessionManager interface {
	// Snapshot returns the current state of the session.
	Snapshot() game.Snapshot

	// Render returns the ASCII drawing of the session.
	Render() string

	// Move attempts to move the player in the named direction.
	Move(ctx context.Context, direction string) (game.Snapshot, error)

	// Restart replaces the session's maze with a new one.
	Restart() game.Snapshot

	// Leaderboard returns up to n best finished mazes.
	Leaderboard(ctx context.Context, n int64) ([]Score, error)
}
