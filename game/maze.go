package game

import "github.com/beka-birhanu/vinom-maze/game/maze"

// Grid defines the read-only view of a generated maze.
type Grid interface {
	Rows() int
	Cols() int
	InBound(row, col int) bool
	IsPath(pos maze.CellPosition) (bool, error)
	Row(row int) string
	String() string
}

// Controller defines the operations a caller may invoke on a maze session.
type Controller interface {
	AttemptMove(dir maze.Direction)
	Reset()
	Status() Status
	Position() maze.CellPosition
	Snapshot() Snapshot
	String() string
}
