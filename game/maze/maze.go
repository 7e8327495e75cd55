/*
Package maze provides the grid model and generator for "thick wall" mazes.

A Grid is a rectangle of cells, each either a wall or a path, stored in a flat slice.
Every grid starts as solid wall; a Generator carves a spanning tree of paths into it
with randomized depth-first backtracking over a step-2 lattice, so lattice cells are
separated by wall cells that are removed only where two lattice cells are connected.

Utility functions cover bounds checks, direction parsing and ASCII visualization.
*/
package maze

import (
	"errors"
	"fmt"
	"strings"
)

const (
	wallGlyph = '#'
	pathGlyph = ' '
)

var (
	ErrInvalidDimensions = errors.New("invalid maze dimensions")
	ErrOutOfBounds       = errors.New("cell is out of the maze")
)

// Grid is a rows x cols mapping from cell to wall or path.
type Grid struct {
	rows  int    // Number of rows
	cols  int    // Number of columns
	cells []bool // Path flags indexed by row*cols+col; false means wall
}

// New returns a grid of the given dimensions with every cell set to wall.
func New(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}

	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]bool, rows*cols),
	}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	return g.cols
}

// InBound reports whether (row, col) lies inside the grid.
func (g *Grid) InBound(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

func (g *Grid) index(pos CellPosition) (int, error) {
	if !g.InBound(pos.Row, pos.Col) {
		return 0, fmt.Errorf("%w: %s in %dx%d", ErrOutOfBounds, pos, g.rows, g.cols)
	}
	return pos.Row*g.cols + pos.Col, nil
}

// IsPath reports whether pos is a path cell.
func (g *Grid) IsPath(pos CellPosition) (bool, error) {
	i, err := g.index(pos)
	if err != nil {
		return false, err
	}
	return g.cells[i], nil
}

// SetPath marks pos as a path cell. Marking a path again is a no-op.
func (g *Grid) SetPath(pos CellPosition) error {
	_, err := g.index(pos)
	if err != nil {
		return err
	}
	g.setPath(pos)
	return nil
}

// setPath marks an in-bound pos as a path cell.
func (g *Grid) setPath(pos CellPosition) {
	g.cells[pos.Row*g.cols+pos.Col] = true
}

// open is IsPath for callers that already treat out-of-bound cells as walls.
func (g *Grid) open(pos CellPosition) bool {
	ok, err := g.IsPath(pos)
	return err == nil && ok
}

// Row renders a single row, '#' for walls and ' ' for paths.
func (g *Grid) Row(row int) string {
	if row < 0 || row >= g.rows {
		return ""
	}

	line := make([]byte, g.cols)
	for col := range line {
		line[col] = wallGlyph
		if g.cells[row*g.cols+col] {
			line[col] = pathGlyph
		}
	}
	return string(line)
}

// String provides a textual representation of the grid, one line per row.
func (g *Grid) String() string {
	var output strings.Builder
	output.Grow(g.rows * (g.cols + 1))

	for row := 0; row < g.rows; row++ {
		output.WriteString(g.Row(row))
		output.WriteByte('\n')
	}

	return output.String()
}
