package maze

import (
	"fmt"
	"strings"
)

// Direction names one of the four axis-aligned moves.
type Direction string

const (
	Up    Direction = "up"
	Down  Direction = "down"
	Left  Direction = "left"
	Right Direction = "right"
)

var (
	// Directions maps every valid direction to its unit offset.
	Directions = map[Direction]CellPosition{
		Up:    {Row: -1, Col: 0},
		Down:  {Row: 1, Col: 0},
		Left:  {Row: 0, Col: -1},
		Right: {Row: 0, Col: 1},
	}

	// unitSteps lists the offsets in a fixed order so iteration never depends on map order.
	unitSteps = []CellPosition{{Row: -1}, {Row: 1}, {Col: -1}, {Col: 1}}
)

// ParseDirection converts user input such as "Up" or " left " into a Direction.
func ParseDirection(s string) (Direction, bool) {
	d := Direction(strings.ToLower(strings.TrimSpace(s)))
	_, ok := Directions[d]
	return d, ok
}

// CellPosition represents the position of a cell in the maze grid.
type CellPosition struct {
	Row int `json:"row"` // Row index of the cell
	Col int `json:"col"` // Column index of the cell
}

// GetRow returns the row index of the cell.
func (cp CellPosition) GetRow() int {
	return cp.Row
}

// GetCol returns the column index of the cell.
func (cp CellPosition) GetCol() int {
	return cp.Col
}

// Add returns the position offset by delta.
func (cp CellPosition) Add(delta CellPosition) CellPosition {
	return CellPosition{Row: cp.Row + delta.Row, Col: cp.Col + delta.Col}
}

// Step returns the neighbouring position in direction d.
// ok is false for an unknown direction, in which case cp is returned unchanged.
func (cp CellPosition) Step(d Direction) (next CellPosition, ok bool) {
	delta, ok := Directions[d]
	if !ok {
		return cp, false
	}
	return cp.Add(delta), true
}

func (cp CellPosition) String() string {
	return fmt.Sprintf("(%d,%d)", cp.Row, cp.Col)
}

// midpoint returns the cell halfway between two lattice cells two steps apart.
func midpoint(a, b CellPosition) CellPosition {
	return CellPosition{Row: a.Row + (b.Row-a.Row)/2, Col: a.Col + (b.Col-a.Col)/2}
}
