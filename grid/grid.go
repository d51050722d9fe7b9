package grid

import (
	"fmt"
	"strings"
)

// Grid is an immutable rectangular maze with exactly one Start and one End
// cell. cells[y][x] holds the symbol at column x, row y.
type Grid struct {
	width, height int
	cells         [][]Kind
	start, end    Cell
}

// New constructs a Grid from a non-empty, rectangular 2D slice of kinds.
// It deep-copies the input to ensure immutability and locates the unique
// Start and End cells.
// Returns ErrEmptyGrid, ErrNonRectangular, ErrBadSymbol, ErrNoStart,
// ErrNoEnd, ErrDuplicateStart or ErrDuplicateEnd on malformed input.
// Complexity: O(W×H) time and memory.
func New(rows [][]Kind) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	g := &Grid{
		width:  w,
		height: h,
		cells:  make([][]Kind, h),
		start:  Cell{-1, -1},
		end:    Cell{-1, -1},
	}
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
		g.cells[y] = make([]Kind, w)
		copy(g.cells[y], row)
		for x, k := range row {
			switch k {
			case Start:
				if g.start.X >= 0 {
					return nil, fmt.Errorf("%w: at (%d,%d) and (%d,%d)", ErrDuplicateStart, g.start.X, g.start.Y, x, y)
				}
				g.start = Cell{X: x, Y: y}
			case End:
				if g.end.X >= 0 {
					return nil, fmt.Errorf("%w: at (%d,%d) and (%d,%d)", ErrDuplicateEnd, g.end.X, g.end.Y, x, y)
				}
				g.end = Cell{X: x, Y: y}
			case Free, Wall:
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadSymbol, byte(k), x, y)
			}
		}
	}
	if g.start.X < 0 {
		return nil, ErrNoStart
	}
	if g.end.X < 0 {
		return nil, ErrNoEnd
	}

	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Start returns the unique Start cell.
func (g *Grid) Start() Cell { return g.start }

// End returns the unique End cell.
func (g *Grid) End() Cell { return g.end }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// KindAt returns the symbol at c. The caller must ensure c is in bounds.
func (g *Grid) KindAt(c Cell) Kind {
	return g.cells[c.Y][c.X]
}

// Enterable reports whether a search may step into c: the cell lies within
// bounds, is not a Wall, and has not been marked in v.
// Complexity: O(1).
func (g *Grid) Enterable(c Cell, v *Visited) bool {
	return g.InBounds(c) && g.cells[c.Y][c.X] != Wall && !v.Has(c)
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	cp := &Grid{
		width:  g.width,
		height: g.height,
		cells:  make([][]Kind, g.height),
		start:  g.start,
		end:    g.end,
	}
	for y, row := range g.cells {
		cp.cells[y] = make([]Kind, g.width)
		copy(cp.cells[y], row)
	}

	return cp
}

// String renders the maze as newline-separated rows of symbols.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.width + 1) * g.height)
	for y, row := range g.cells {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, k := range row {
			b.WriteByte(byte(k))
		}
	}

	return b.String()
}
