package game

import (
	"fmt"

	"github.com/beka-birhanu/vinom-maze/game/maze"
	"github.com/google/uuid"
)

// Status is the state of the traversal state machine.
type Status int

const (
	Playing Status = iota // The player has not reached the exit yet.
	Won                   // The player reached the exit; sticky until reset.
)

func (s Status) String() string {
	switch s {
	case Playing:
		return "playing"
	case Won:
		return "won"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// MarshalText encodes the status by name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Snapshot is a copy of everything the presentation layer polls once per frame.
type Snapshot struct {
	ID     uuid.UUID         `json:"id"`     // Changes on every regeneration
	Rows   int               `json:"rows"`   // Grid rows
	Cols   int               `json:"cols"`   // Grid columns
	Cells  []string          `json:"cells"`  // One string per row, '#' wall and ' ' path
	Player maze.CellPosition `json:"player"` // Current player position
	Entry  maze.CellPosition `json:"entry"`  // Where the player starts
	Exit   maze.CellPosition `json:"exit"`   // Where the player wins
	Status Status            `json:"status"` // playing or won
	Moves  int               `json:"moves"`  // Accepted moves since the last reset
}
