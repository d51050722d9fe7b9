// Package leemaze finds the shortest route through a 2-D maze with the Lee
// algorithm — breadth-first search over the grid graph — and can show the
// search as it happens.
//
// 🚀 What is leemaze?
//
//	A small, focused library plus a terminal visualizer:
//		• grid/ — the maze model: symbols S/E/./#, bounds, moves, visited overlay,
//		  parsing of whitespace-separated maze text
//		• lee/  — the search engine: deterministic BFS with a per-dequeue
//		  OnVisit hook and parent-index path reconstruction
//		• cmd/leemaze — animated terminal UI (tcell) and ANSI console tracer
//
// ✨ Why choose leemaze?
//
//   - Deterministic – fixed Right > Down > Left > Up tie-break: identical
//     inputs always return the identical shortest path
//   - Observable – a single synchronous hook exposes every expansion step
//     without touching the algorithm's state
//   - Pure Go core – the library packages have no dependencies; only the
//     visualizer binary pulls in a terminal toolkit
//
// Quick ASCII example:
//
//	S..        g, _ := grid.Parse("S.. ##. ..E")
//	##.   ⇒    res, _ := lee.ShortestPath(g, g.Start(), g.End())
//	..E        res.Moves == [Right Right Down Down]
package leemaze
