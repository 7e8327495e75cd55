package maze

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

var (
	ErrNoPathNetwork = errors.New("no path network to link to")

	// latticeSteps are the four axis-aligned jumps between lattice cells.
	latticeSteps = []CellPosition{{Row: -2}, {Row: 2}, {Col: -2}, {Col: 2}}
)

// Stats summarises a generation run.
// On a completed run Visited == Removed+1 since the carved lattice is a tree.
type Stats struct {
	Visited int // Lattice cells visited
	Removed int // Walls removed between lattice cells
}

// Generator carves perfect mazes with randomized depth-first backtracking.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a Generator drawing from rng.
// A nil rng is replaced by one seeded from the clock.
func NewGenerator(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rng: rng}
}

// Generate turns the walls of g into a spanning tree of paths reachable from start.
// Only cells on start's step-2 lattice and the walls between them are carved;
// everything else stays a wall.
func (gen *Generator) Generate(g *Grid, start CellPosition) (Stats, error) {
	if !g.InBound(start.Row, start.Col) {
		return Stats{}, fmt.Errorf("%w: start %s", ErrOutOfBounds, start)
	}

	stack := []CellPosition{start}
	visited := map[CellPosition]struct{}{start: {}}
	stats := Stats{Visited: 1}

	for len(stack) > 0 {
		cell := stack[len(stack)-1]
		g.setPath(cell)

		candidates := gen.unvisitedNeighbors(g, cell, visited)
		if len(candidates) == 0 {
			pop(&stack)
			continue
		}

		next := candidates[gen.rng.Intn(len(candidates))]
		g.setPath(midpoint(cell, next))
		stack = append(stack, next)
		visited[next] = struct{}{}

		stats.Visited++
		stats.Removed++
	}

	return stats, nil
}

// unvisitedNeighbors lists the in-bound lattice neighbours of cell not yet visited.
func (gen *Generator) unvisitedNeighbors(g *Grid, cell CellPosition, visited map[CellPosition]struct{}) []CellPosition {
	candidates := make([]CellPosition, 0, len(latticeSteps))
	for _, step := range latticeSteps {
		nbr := cell.Add(step)
		if !g.InBound(nbr.Row, nbr.Col) {
			continue
		}
		if _, seen := visited[nbr]; seen {
			continue
		}
		candidates = append(candidates, nbr)
	}
	return candidates
}

// Link joins target to the path network when generation left it as a wall, which
// happens when a dimension is even and target sits off the lattice. It carves a
// dead-end corridor from target, heading left and then up, and stops at the first
// cell that touches an existing path, so the network stays a tree.
func (gen *Generator) Link(g *Grid, target CellPosition) error {
	open, err := g.IsPath(target)
	if err != nil {
		return err
	}
	if open {
		return nil
	}

	prev, cell := target, target
	for {
		g.setPath(cell)
		if touchesPath(g, cell, prev) {
			return nil
		}

		next := cell
		if cell.Col > 0 {
			next.Col--
		} else {
			next.Row--
		}
		if !g.InBound(next.Row, next.Col) {
			return fmt.Errorf("%w: from %s", ErrNoPathNetwork, target)
		}
		prev, cell = cell, next
	}
}

// touchesPath reports whether any orthogonal neighbour of cell other than except is a path.
func touchesPath(g *Grid, cell, except CellPosition) bool {
	for _, step := range unitSteps {
		nbr := cell.Add(step)
		if nbr != except && g.open(nbr) {
			return true
		}
	}
	return false
}

// pop removes and returns the last element of a stack of CellPositions.
func pop(s *[]CellPosition) CellPosition {
	lastIndex := len(*s) - 1
	popped := (*s)[lastIndex]
	*s = (*s)[:lastIndex]
	return popped
}
