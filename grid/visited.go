package grid

// Visited is a boolean overlay with the same shape as a Grid, tracking which
// cells a search has already enqueued. One Visited belongs to exactly one
// search invocation; a fresh one is constructed per search.
// Cells are stored row-major (y*width + x), matching the grid index space.
type Visited struct {
	width int
	cells []bool
}

// NewVisited returns an all-false overlay for a w×h grid.
func NewVisited(w, h int) *Visited {
	return &Visited{width: w, cells: make([]bool, w*h)}
}

// Mark records c as visited. Idempotent. The caller must ensure c is in
// bounds; the search engine only marks cells that passed Enterable.
func (v *Visited) Mark(c Cell) {
	v.cells[c.Y*v.width+c.X] = true
}

// Has reports whether c has been marked.
func (v *Visited) Has(c Cell) bool {
	return v.cells[c.Y*v.width+c.X]
}

// Count returns the number of marked cells.
func (v *Visited) Count() int {
	n := 0
	for _, b := range v.cells {
		if b {
			n++
		}
	}

	return n
}
