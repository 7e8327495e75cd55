package i

import "context"

// Score is a finished maze on the leaderboard.
type Score struct {
	SessionID string `json:"session_id"`
	Moves     int    `json:"moves"`
}

// ScoreBoard keeps the best finished mazes ordered by fewest moves.
type ScoreBoard interface {
	// Record stores a finished maze identified by member.
	Record(ctx context.Context, member string, moves int) error

	// Top returns up to n scores, fewest moves first.
	Top(ctx context.Context, n int64) ([]Score, error)
}
