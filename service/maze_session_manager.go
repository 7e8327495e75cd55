package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/beka-birhanu/vinom-maze/game"
	"github.com/beka-birhanu/vinom-maze/game/maze"
	"github.com/beka-birhanu/vinom-maze/service/i"
)

const (
	defaultRecordTimeout   = time.Second
	defaultLeaderboardSize = 10
)

var (
	ErrUnknownDirection   = errors.New("unknown direction")
	ErrScoreBoardDisabled = errors.New("leaderboard is disabled")
	ErrMissingFactory     = errors.New("maze factory is required")
	ErrMissingLogger      = errors.New("logger is required")
)

var _ i.MazeSessionManager = &MazeSessionManager{}

// MazeSessionManager holds the single live maze session.
// The session itself is single-threaded; every access goes through the manager's lock.
type MazeSessionManager struct {
	session       game.Controller
	scoreBoard    i.ScoreBoard
	logger        i.Logger
	recordTimeout time.Duration
	sync.RWMutex
}

// Config holds the dependencies of a MazeSessionManager.
type Config struct {
	Factory       func() (game.Controller, error) // Builds the live session
	ScoreBoard    i.ScoreBoard                    // Optional; nil disables the leaderboard
	Logger        i.Logger                        // Receives session lifecycle events
	RecordTimeout time.Duration                   // Deadline for recording a win; defaults to one second
}

// NewMazeSessionManager builds the live session and returns a manager for it.
func NewMazeSessionManager(c *Config) (*MazeSessionManager, error) {
	if c.Factory == nil {
		return nil, ErrMissingFactory
	}
	if c.Logger == nil {
		return nil, ErrMissingLogger
	}

	session, err := c.Factory()
	if err != nil {
		return nil, fmt.Errorf("creating maze session: %w", err)
	}

	m := &MazeSessionManager{
		session:       session,
		scoreBoard:    c.ScoreBoard,
		logger:        c.Logger,
		recordTimeout: c.RecordTimeout,
	}
	if m.recordTimeout <= 0 {
		m.recordTimeout = defaultRecordTimeout
	}

	snap := session.Snapshot()
	m.logger.Info(fmt.Sprintf("generated %dx%d maze %s", snap.Rows, snap.Cols, snap.ID))
	return m, nil
}

// Snapshot returns the current state of the session.
func (m *MazeSessionManager) Snapshot() game.Snapshot {
	m.RLock()
	defer m.RUnlock()
	return m.session.Snapshot()
}

// Render returns the ASCII drawing of the session.
func (m *MazeSessionManager) Render() string {
	m.RLock()
	defer m.RUnlock()
	return m.session.String()
}

// Move attempts a single step. Blocked moves and moves after winning are not errors;
// only a direction outside up, down, left and right is rejected.
// The move that reaches the exit is recorded on the scoreboard.
func (m *MazeSessionManager) Move(ctx context.Context, direction string) (game.Snapshot, error) {
	dir, ok := maze.ParseDirection(direction)
	if !ok {
		return game.Snapshot{}, fmt.Errorf("%w: %q", ErrUnknownDirection, direction)
	}

	m.Lock()
	alreadyWon := m.session.Status() == game.Won
	m.session.AttemptMove(dir)
	snap := m.session.Snapshot()
	m.Unlock()

	if !alreadyWon && snap.Status == game.Won {
		m.logger.Info(fmt.Sprintf("maze %s solved in %d moves", snap.ID, snap.Moves))
		m.recordWin(ctx, snap)
	}

	return snap, nil
}

// recordWin stores a finished maze. Failures are logged; the move already happened.
func (m *MazeSessionManager) recordWin(ctx context.Context, snap game.Snapshot) {
	if m.scoreBoard == nil {
		return
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, m.recordTimeout)
	defer cancel()

	if err := m.scoreBoard.Record(timeoutCtx, snap.ID.String(), snap.Moves); err != nil {
		m.logger.Error(fmt.Sprintf("recording win for maze %s: %s", snap.ID, err))
		return
	}
	m.logger.Info(fmt.Sprintf("recorded win for maze %s", snap.ID))
}

// Restart regenerates the maze and puts the player back at the entry.
func (m *MazeSessionManager) Restart() game.Snapshot {
	m.Lock()
	m.session.Reset()
	snap := m.session.Snapshot()
	m.Unlock()

	m.logger.Info(fmt.Sprintf("regenerated maze %s", snap.ID))
	return snap
}

// Leaderboard returns up to n best finished mazes; n <= 0 uses the default size.
func (m *MazeSessionManager) Leaderboard(ctx context.Context, n int64) ([]i.Score, error) {
	if m.scoreBoard == nil {
		return nil, ErrScoreBoardDisabled
	}
	if n <= 0 {
		n = defaultLeaderboardSize
	}

	scores, err := m.scoreBoard.Top(ctx, n)
	if err != nil {
		m.logger.Error(fmt.Sprintf("reading leaderboard: %s", err))
		return nil, err
	}
	return scores, nil
}
