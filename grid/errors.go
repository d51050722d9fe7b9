package grid

import "errors"

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: maze must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrBadSymbol indicates a cell value outside the S/E/./# alphabet.
	ErrBadSymbol = errors.New("grid: unknown cell symbol")
	// ErrNoStart indicates the maze contains no Start cell.
	ErrNoStart = errors.New("grid: start cell not found")
	// ErrNoEnd indicates the maze contains no End cell.
	ErrNoEnd = errors.New("grid: end cell not found")
	// ErrDuplicateStart indicates more than one Start cell.
	ErrDuplicateStart = errors.New("grid: more than one start cell")
	// ErrDuplicateEnd indicates more than one End cell.
	ErrDuplicateEnd = errors.New("grid: more than one end cell")
)
