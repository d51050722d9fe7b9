// Package lee implements breadth-first search (the Lee algorithm) over a
// maze grid, returning the shortest move-count path with deterministic
// tie-breaking.
package lee

import (
	"fmt"

	"github.com/katalvlaran/leemaze/grid"
)

// node is one discovered cell in the search tree.
// parent is an index into the walker's arena; -1 for the root. A node is
// created exactly once, at first visit, and never mutated afterwards.
type node struct {
	cell   grid.Cell
	dist   int
	move   grid.Move // incoming move; MoveNone for the root
	parent int32
}

// walker encapsulates the mutable state of one search invocation.
type walker struct {
	grid    *grid.Grid
	opts    Options
	visited *grid.Visited
	arena   []node  // append-only node storage
	queue   []int32 // FIFO frontier of arena indices
	head    int
}

// ShortestPath runs breadth-first search on g from source to destination,
// applying any number of functional Options.
// On success the returned Result carries the minimum-move Path and the
// parallel Moves sequence; among several shortest paths the one selected by
// the fixed grid.Directions order and FIFO expansion is returned.
// Returns ErrInvalidInput for a nil/empty grid or walled/out-of-bounds
// endpoints (before any expansion), ErrNoPath when the destination is
// unreachable, or the context error if a supplied context expires.
func ShortestPath(g *grid.Grid, source, destination grid.Cell, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := validate(g, source, destination); err != nil {
		return nil, err
	}

	n := g.Width() * g.Height()
	w := &walker{
		grid:    g,
		opts:    o,
		visited: grid.NewVisited(g.Width(), g.Height()),
		arena:   make([]node, 0, n),
		queue:   make([]int32, 0, n),
	}
	// Seed the frontier with the source (no incoming move, no parent).
	w.enqueue(source, 0, grid.MoveNone, -1)

	return w.loop(destination)
}

// validate rejects malformed input per the engine contract: an empty grid or
// an endpoint that is out of bounds or a wall.
func validate(g *grid.Grid, source, destination grid.Cell) error {
	if g == nil || g.Width() == 0 || g.Height() == 0 {
		return fmt.Errorf("%w: empty grid", ErrInvalidInput)
	}
	endpoints := [...]struct {
		name string
		c    grid.Cell
	}{
		{"source", source},
		{"destination", destination},
	}
	for _, ep := range endpoints {
		if !g.InBounds(ep.c) {
			return fmt.Errorf("%w: %s (%d,%d) out of bounds", ErrInvalidInput, ep.name, ep.c.X, ep.c.Y)
		}
		if g.KindAt(ep.c) == grid.Wall {
			return fmt.Errorf("%w: %s (%d,%d) is a wall", ErrInvalidInput, ep.name, ep.c.X, ep.c.Y)
		}
	}

	return nil
}

// enqueue marks c visited, appends its node to the arena, and pushes the
// node's index onto the frontier. Marking happens here, at enqueue time, so
// a cell can never be queued twice via different parents.
func (w *walker) enqueue(c grid.Cell, dist int, m grid.Move, parent int32) {
	w.visited.Mark(c)
	idx := int32(len(w.arena))
	w.arena = append(w.arena, node{cell: c, dist: dist, move: m, parent: parent})
	w.queue = append(w.queue, idx)
}

// loop processes the frontier until the destination is dequeued, the
// frontier empties, or the context expires.
func (w *walker) loop(destination grid.Cell) (*Result, error) {
	for w.head < len(w.queue) {
		// cancellation check (once per dequeue)
		select {
		case <-w.opts.Ctx.Done():
			return nil, w.opts.Ctx.Err()
		default:
		}

		idx := w.dequeue()
		n := w.arena[idx]
		w.opts.OnVisit(n.cell, n.move)

		if n.cell == destination {
			return w.reconstruct(idx), nil
		}
		w.expand(idx)
	}

	return nil, ErrNoPath
}

// dequeue pops the front arena index off the frontier.
func (w *walker) dequeue() int32 {
	idx := w.queue[w.head]
	w.head++

	return idx
}

// expand tries the four moves in grid.Directions order and enqueues every
// enterable neighbor with the current node as parent.
func (w *walker) expand(idx int32) {
	n := w.arena[idx]
	for _, m := range grid.Directions {
		next := m.Apply(n.cell)
		if w.grid.Enterable(next, w.visited) {
			w.enqueue(next, n.dist+1, m, idx)
		}
	}
}
