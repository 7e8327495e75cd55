package service

import (
	"bytes"
	"context"
	"errors"
	"math/rand"
	"sync"
	"testing"

	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/beka-birhanu/vinom-maze/game"
	"github.com/beka-birhanu/vinom-maze/game/maze"
	"github.com/beka-birhanu/vinom-maze/game/play"
	logger "github.com/beka-birhanu/vinom-maze/infrastruture/log"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeScoreBoard struct {
	recorded []i.Score
	top      []i.Score
	err      error
	sync.Mutex
}

func (f *fakeScoreBoard) Record(ctx context.Context, member string, moves int) error {
	f.Lock()
	defer f.Unlock()
	if f.err != nil {
		return f.err
	}
	f.recorded = append(f.recorded, i.Score{SessionID: member, Moves: moves})
	return nil
}

func (f *fakeScoreBoard) Top(ctx context.Context, n int64) ([]i.Score, error) {
	if f.err != nil {
		return nil, f.err
	}
	if int64(len(f.top)) > n {
		return f.top[:n], nil
	}
	return f.top, nil
}

func newManager(t *testing.T, sb i.ScoreBoard) (*MazeSessionManager, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	l, err := logger.New("TEST", config.ColorBlue, &buf)
	require.NoError(t, err)

	c := &Config{
		Factory: func() (game.Controller, error) {
			return play.New(play.Config{Rows: 11, Cols: 11, Rand: rand.New(rand.NewSource(11))})
		},
		Logger: l,
	}
	if sb != nil {
		c.ScoreBoard = sb
	}

	m, err := NewMazeSessionManager(c)
	require.NoError(t, err)
	return m, &buf
}

// solve walks the snapshot's open cells breadth-first and returns the directions to the exit.
func solve(t *testing.T, snap game.Snapshot) []string {
	t.Helper()
	isOpen := func(p maze.CellPosition) bool {
		return p.Row >= 0 && p.Row < snap.Rows && p.Col >= 0 && p.Col < snap.Cols && snap.Cells[p.Row][p.Col] == ' '
	}

	type step struct {
		from maze.CellPosition
		dir  maze.Direction
	}
	prev := map[maze.CellPosition]step{snap.Player: {}}
	queue := []maze.CellPosition{snap.Player}
	for len(queue) > 0 {
		cell := queue[0]
		queue = queue[1:]
		for _, dir := range []maze.Direction{maze.Up, maze.Down, maze.Left, maze.Right} {
			nbr, _ := cell.Step(dir)
			if _, seen := prev[nbr]; seen || !isOpen(nbr) {
				continue
			}
			prev[nbr] = step{from: cell, dir: dir}
			queue = append(queue, nbr)
		}
	}
	require.Contains(t, prev, snap.Exit)

	var dirs []string
	for cell := snap.Exit; cell != snap.Player; cell = prev[cell].from {
		dirs = append([]string{string(prev[cell].dir)}, dirs...)
	}
	return dirs
}

func TestNewMazeSessionManager(t *testing.T) {
	t.Run("requires a factory", func(t *testing.T) {
		_, err := NewMazeSessionManager(&Config{})
		assert.ErrorIs(t, err, ErrMissingFactory)
	})

	t.Run("propagates factory errors", func(t *testing.T) {
		l, _ := logger.New("TEST", config.ColorBlue, &bytes.Buffer{})
		_, err := NewMazeSessionManager(&Config{
			Factory: func() (game.Controller, error) { return play.New(play.Config{Rows: -1, Cols: 4}) },
			Logger:  l,
		})
		assert.ErrorIs(t, err, maze.ErrInvalidDimensions)
	})

	t.Run("logs the generated maze", func(t *testing.T) {
		m, buf := newManager(t, nil)
		assert.Contains(t, buf.String(), m.Snapshot().ID.String())
	})
}

func TestMove(t *testing.T) {
	t.Run("rejects unknown directions", func(t *testing.T) {
		m, _ := newManager(t, nil)
		_, err := m.Move(context.Background(), "north")
		assert.ErrorIs(t, err, ErrUnknownDirection)
	})

	t.Run("blocked moves are not errors", func(t *testing.T) {
		m, _ := newManager(t, nil)
		snap, err := m.Move(context.Background(), "up")
		require.NoError(t, err)
		assert.Equal(t, maze.CellPosition{}, snap.Player)
		assert.Equal(t, game.Playing, snap.Status)
	})

	t.Run("records exactly one win", func(t *testing.T) {
		sb := &fakeScoreBoard{}
		m, _ := newManager(t, sb)

		var snap game.Snapshot
		var err error
		for _, dir := range solve(t, m.Snapshot()) {
			snap, err = m.Move(context.Background(), dir)
			require.NoError(t, err)
		}
		assert.Equal(t, game.Won, snap.Status)

		for _, dir := range []string{"up", "left", "down", "right"} {
			_, err = m.Move(context.Background(), dir)
			require.NoError(t, err)
		}

		require.Len(t, sb.recorded, 1)
		assert.Equal(t, i.Score{SessionID: snap.ID.String(), Moves: snap.Moves}, sb.recorded[0])
	})

	t.Run("scoreboard failures do not fail the move", func(t *testing.T) {
		sb := &fakeScoreBoard{err: errors.New("redis down")}
		m, buf := newManager(t, sb)

		var snap game.Snapshot
		for _, dir := range solve(t, m.Snapshot()) {
			var err error
			snap, err = m.Move(context.Background(), dir)
			require.NoError(t, err)
		}
		assert.Equal(t, game.Won, snap.Status)
		assert.Contains(t, buf.String(), "redis down")
	})
}

func TestRestart(t *testing.T) {
	m, _ := newManager(t, nil)
	for _, dir := range solve(t, m.Snapshot()) {
		_, _ = m.Move(context.Background(), dir)
	}
	before := m.Snapshot()
	require.Equal(t, game.Won, before.Status)

	after := m.Restart()
	assert.NotEqual(t, before.ID, after.ID)
	assert.Equal(t, after.Entry, after.Player)
	assert.Equal(t, game.Playing, after.Status)
	assert.Zero(t, after.Moves)
	assert.Equal(t, after, m.Snapshot())
}

func TestLeaderboard(t *testing.T) {
	t.Run("disabled without a scoreboard", func(t *testing.T) {
		m, _ := newManager(t, nil)
		_, err := m.Leaderboard(context.Background(), 5)
		assert.ErrorIs(t, err, ErrScoreBoardDisabled)
	})

	t.Run("returns the top scores", func(t *testing.T) {
		sb := &fakeScoreBoard{top: []i.Score{{SessionID: "a", Moves: 3}, {SessionID: "b", Moves: 9}}}
		m, _ := newManager(t, sb)

		scores, err := m.Leaderboard(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, []i.Score{{SessionID: "a", Moves: 3}}, scores)

		scores, err = m.Leaderboard(context.Background(), 0)
		require.NoError(t, err)
		assert.Len(t, scores, 2)
	})
}

func TestConcurrentAccess(t *testing.T) {
	m, _ := newManager(t, nil)

	wg := sync.WaitGroup{}
	for n := 0; n < 8; n++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for k := 0; k < 50; k++ {
				switch (n + k) % 4 {
				case 0:
					_, _ = m.Move(context.Background(), "right")
				case 1:
					_ = m.Snapshot()
				case 2:
					_ = m.Render()
				case 3:
					if k%10 == 0 {
						_ = m.Restart()
					}
				}
			}
		}(n)
	}
	wg.Wait()

	snap := m.Snapshot()
	assert.Len(t, snap.Cells, snap.Rows)
}
