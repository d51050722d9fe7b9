// Package grid defines the cell, kind, and move types shared by the maze
// model and the search engine.
package grid

// Kind is the symbol stored in one maze cell.
type Kind byte

const (
	// Start marks the unique source cell.
	Start Kind = 'S'
	// End marks the unique destination cell.
	End Kind = 'E'
	// Free marks an enterable cell.
	Free Kind = '.'
	// Wall marks a blocked cell.
	Wall Kind = '#'
)

// Cell is a pair of coordinates in the grid's index space.
// X is the column, Y is the row.
type Cell struct {
	X, Y int
}

// Move is a unit displacement between two adjacent cells.
// MoveNone is reserved for the root of a search (no incoming move).
type Move uint8

const (
	MoveNone Move = iota
	MoveRight
	MoveDown
	MoveLeft
	MoveUp
)

// Directions lists the four unit moves in expansion order.
// The order Right, Down, Left, Up is the tie-break rule among equal-distance
// neighbors: it decides which of several shortest paths a search returns.
var Directions = [4]Move{MoveRight, MoveDown, MoveLeft, MoveUp}

// Offset returns the (dx, dy) displacement of m. MoveNone yields (0, 0).
func (m Move) Offset() (dx, dy int) {
	switch m {
	case MoveRight:
		return 1, 0
	case MoveDown:
		return 0, 1
	case MoveLeft:
		return -1, 0
	case MoveUp:
		return 0, -1
	}
	return 0, 0
}

// Apply returns the cell reached by executing m from c.
func (m Move) Apply(c Cell) Cell {
	dx, dy := m.Offset()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Undo returns the cell m was executed from to reach c.
func (m Move) Undo(c Cell) Cell {
	dx, dy := m.Offset()
	return Cell{X: c.X - dx, Y: c.Y - dy}
}

// String returns the move name used in trace output: "Right", "Down",
// "Left", "Up", or "None".
func (m Move) String() string {
	switch m {
	case MoveRight:
		return "Right"
	case MoveDown:
		return "Down"
	case MoveLeft:
		return "Left"
	case MoveUp:
		return "Up"
	}
	return "None"
}
