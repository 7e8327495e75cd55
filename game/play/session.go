// Package play tracks a single player walking a generated maze from its entry to its exit.
package play

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/beka-birhanu/vinom-maze/game"
	"github.com/beka-birhanu/vinom-maze/game/maze"
	"github.com/google/uuid"
)

var (
	_ game.Controller = &Session{}
	_ game.Grid       = &maze.Grid{}
)

const (
	playerGlyph = 'P'
	exitGlyph   = 'E'
)

// Config holds the parameters for creating a new Session.
type Config struct {
	Rows int        // Number of grid rows
	Cols int        // Number of grid columns
	Rand *rand.Rand // Random source for generation; nil seeds from the clock
}

// Session is one live maze: its grid, the player on it and whether the exit was reached.
// A Session is not safe for concurrent use.
type Session struct {
	id        uuid.UUID
	rows      int
	cols      int
	generator *maze.Generator
	grid      *maze.Grid
	entry     maze.CellPosition
	exit      maze.CellPosition
	player    maze.CellPosition
	status    game.Status
	moves     int
}

// New creates a session with a freshly generated maze and the player at the entry (0,0).
// The exit is the opposite corner.
func New(c Config) (*Session, error) {
	if c.Rows <= 0 || c.Cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", maze.ErrInvalidDimensions, c.Rows, c.Cols)
	}

	s := &Session{
		rows:      c.Rows,
		cols:      c.Cols,
		generator: maze.NewGenerator(c.Rand),
		entry:     maze.CellPosition{Row: 0, Col: 0},
		exit:      maze.CellPosition{Row: c.Rows - 1, Col: c.Cols - 1},
	}
	if err := s.regenerate(); err != nil {
		return nil, err
	}
	return s, nil
}

// regenerate builds a complete new maze before touching any session state,
// so no reader ever sees a partially generated grid.
func (s *Session) regenerate() error {
	grid, err := maze.New(s.rows, s.cols)
	if err != nil {
		return err
	}

	if _, err := s.generator.Generate(grid, s.entry); err != nil {
		return err
	}

	if err := s.generator.Link(grid, s.exit); err != nil {
		return err
	}

	s.id = uuid.New()
	s.grid = grid
	s.player = s.entry
	s.status = game.Playing
	s.moves = 0
	return nil
}

// AttemptMove moves the player one cell in dir when that cell is an in-bound path.
// Blocked moves leave the position unchanged. Once the session is won every move is ignored.
func (s *Session) AttemptMove(dir maze.Direction) {
	if s.status == game.Won {
		return
	}

	target, ok := s.player.Step(dir)
	if ok && s.grid.InBound(target.Row, target.Col) {
		if open, _ := s.grid.IsPath(target); open {
			s.player = target
			s.moves++
		}
	}

	if s.player == s.exit {
		s.status = game.Won
	}
}

// Reset discards the current maze and starts over with a new one.
// The dimensions were validated by New, and for any valid grid the exit can always be
// linked to the path network, so regeneration does not fail. Reset panics if it ever does.
func (s *Session) Reset() {
	if err := s.regenerate(); err != nil {
		panic(fmt.Sprintf("regenerating maze: %s", err))
	}
}

// ID returns the identifier of the current maze; it changes on every Reset.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Status returns whether the player is still playing or has won.
func (s *Session) Status() game.Status {
	return s.status
}

// Position returns the player's cell.
func (s *Session) Position() maze.CellPosition {
	return s.player
}

// Entry returns the starting cell.
func (s *Session) Entry() maze.CellPosition {
	return s.entry
}

// Exit returns the goal cell.
func (s *Session) Exit() maze.CellPosition {
	return s.exit
}

// Moves returns the number of accepted moves since the last reset.
func (s *Session) Moves() int {
	return s.moves
}

// Grid returns a read-only view of the current maze.
func (s *Session) Grid() game.Grid {
	return s.grid
}

// Snapshot copies the state the presentation layer needs to draw a frame.
func (s *Session) Snapshot() game.Snapshot {
	cells := make([]string, s.rows)
	for row := range cells {
		cells[row] = s.grid.Row(row)
	}

	return game.Snapshot{
		ID:     s.id,
		Rows:   s.rows,
		Cols:   s.cols,
		Cells:  cells,
		Player: s.player,
		Entry:  s.entry,
		Exit:   s.exit,
		Status: s.status,
		Moves:  s.moves,
	}
}

// String renders the maze with the exit as 'E' and the player as 'P'.
func (s *Session) String() string {
	var output strings.Builder
	for row := 0; row < s.rows; row++ {
		line := []byte(s.grid.Row(row))
		if row == s.exit.Row {
			line[s.exit.Col] = exitGlyph
		}
		if row == s.player.Row {
			line[s.player.Col] = playerGlyph
		}
		output.Write(line)
		output.WriteByte('\n')
	}
	return output.String()
}
