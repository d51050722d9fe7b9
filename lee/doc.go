// Package lee computes the shortest path between the two marked cells of a
// maze grid using breadth-first search (the Lee algorithm).
//
// What:
//
//   - ShortestPath runs an unweighted BFS from a source cell to a destination
//     cell over a grid.Grid, returning the ordered cell Path and the parallel
//     Moves sequence used to reach each cell after the first.
//   - An optional OnVisit hook fires once per dequeued cell, in dequeue
//     order, carrying the cell and its incoming move. It is the engine's sole
//     instrumentation point and cannot affect the search state.
//   - Discovered cells live in an append-only node arena; parent links are
//     indices into that arena, established once at first visit, so the search
//     tree holds no pointers and no cycles can form.
//
// Why:
//
//   - BFS over an unweighted grid guarantees a minimum-move path in O(W×H).
//   - The fixed grid.Directions expansion order plus FIFO dequeue makes the
//     result fully deterministic: among several shortest paths, the
//     first-discovered one wins, byte for byte, on every run.
//
// Concurrency:
//
//	A search is single-threaded and synchronous. It owns its visited overlay
//	and frontier exclusively; nothing is shared across invocations, so any
//	number of searches may run concurrently on the same Grid. The OnVisit
//	hook executes on the caller's goroutine; if it blocks, the caller of
//	ShortestPath waits, but the result is unchanged.
//
// Complexity (W×H cells):
//
//   - Time:   O(W×H) — each cell is enqueued and expanded at most once.
//   - Memory: O(W×H) for the visited overlay, frontier, and node arena.
//
// Errors:
//
//   - ErrInvalidInput: nil or empty grid, or an endpoint that is out of
//     bounds or a wall. Reported before any expansion; the hook never fires.
//   - ErrNoPath: no chain of free cells connects source to destination.
//     An ordinary outcome, not a fault — the search still terminates cleanly.
//   - ctx.Err(): the context supplied via WithContext expired mid-search.
//
// Usage:
//
//	g, err := grid.Parse("S.. ##. ..E")
//	if err != nil { ... }
//	res, err := lee.ShortestPath(g, g.Start(), g.End(),
//	    lee.WithOnVisit(func(c grid.Cell, in grid.Move) {
//	        fmt.Printf("reached (%d,%d) via %s\n", c.X, c.Y, in)
//	    }),
//	)
package lee
