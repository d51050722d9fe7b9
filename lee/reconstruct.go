package lee

import "github.com/katalvlaran/leemaze/grid"

// reconstruct walks parent indices from the terminal node back to the root,
// then reverses both sequences so they run source → destination.
// A terminal equal to the root (source == destination) yields a single-cell
// path and an empty move list.
// Complexity: O(path length).
func (w *walker) reconstruct(terminal int32) *Result {
	end := w.arena[terminal]
	path := make([]grid.Cell, 0, end.dist+1)
	moves := make([]grid.Move, 0, end.dist)

	for at := terminal; at >= 0; {
		n := w.arena[at]
		path = append(path, n.cell)
		if n.parent >= 0 {
			moves = append(moves, n.move)
		}
		at = n.parent
	}

	// reverse in place to get source → destination order
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	for i, j := 0, len(moves)-1; i < j; i, j = i+1, j-1 {
		moves[i], moves[j] = moves[j], moves[i]
	}

	return &Result{Path: path, Moves: moves}
}
