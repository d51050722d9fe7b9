// Package grid models a rectangular 2-D maze as an immutable matrix of cell
// kinds, plus the per-search visited overlay the search engine mutates.
//
// What:
//
//   - Kind: the four cell symbols — Start ('S'), End ('E'), Free ('.'), Wall ('#').
//   - Cell: integer (x, y) coordinates; x is column, y is row.
//   - Move: one of the four unit displacements, plus MoveNone for a search root.
//     Directions fixes the expansion order Right, Down, Left, Up.
//   - Grid: deep-copied, rectangular, with exactly one Start and one End cell.
//   - Visited: a same-shaped boolean overlay owned by a single search.
//
// Why:
//
//   - The Grid answers the single question the search engine asks on every
//     expansion step: may this cell be entered (in bounds, not a wall, not yet
//     visited)?
//   - Parsing the original whitespace-separated maze text and locating the
//     unique Start/End cells happens here, at load time, so the engine never
//     has to re-discover endpoints.
//
// Determinism:
//
//	Directions is a semantic invariant, not a convenience: among several
//	shortest paths, the one returned by the engine is selected by this fixed
//	Right > Down > Left > Up neighbor order. Do not reorder it.
//
// Errors:
//
//   - ErrEmptyGrid: no rows or no columns.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrBadSymbol: a cell outside the S/E/./# alphabet.
//   - ErrNoStart, ErrNoEnd: missing endpoint symbol.
//   - ErrDuplicateStart, ErrDuplicateEnd: more than one endpoint symbol.
//
// Complexity: construction and parsing are O(W×H); every query is O(1).
package grid
