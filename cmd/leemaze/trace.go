package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/katalvlaran/leemaze/grid"
	"github.com/katalvlaran/leemaze/lee"
)

// tracer accumulates dequeued cells and reprints the maze once per BFS
// distance level, so the console shows the search wave ring by ring rather
// than flickering on every cell.
type tracer struct {
	g        *grid.Grid
	out      io.Writer
	color    bool
	dist     map[grid.Cell]int
	lastDist int
	visited  []grid.Cell
}

func newTracer(g *grid.Grid, out io.Writer, color bool) *tracer {
	return &tracer{g: g, out: out, color: color, dist: make(map[grid.Cell]int), lastDist: -1}
}

func runTrace(g *grid.Grid, color bool) (*lee.Result, time.Duration, error) {
	tr := newTracer(g, os.Stdout, color)
	started := time.Now()
	res, err := lee.ShortestPath(g, g.Start(), g.End(), lee.WithOnVisit(tr.onVisit))
	return res, time.Since(started), err
}

// onVisit recovers the cell's distance from its predecessor (the cell the
// incoming move was executed from), which the tracer has always seen
// earlier because dequeue order is level order.
func (t *tracer) onVisit(c grid.Cell, in grid.Move) {
	d := 0
	if in != grid.MoveNone {
		d = t.dist[in.Undo(c)] + 1
	}
	t.dist[c] = d
	t.visited = append(t.visited, c)

	if d != t.lastDist {
		fmt.Fprint(t.out, "\033[H\033[2J") // clear the console
		printMaze(t.out, t.g, t.visited, t.color)
		t.lastDist = d
	}
}

// printMaze renders the maze with the given cells highlighted: green ANSI
// background when color is enabled, '@' markers otherwise. The End symbol
// is never replaced by '@' so it stays recognizable.
func printMaze(w io.Writer, g *grid.Grid, cells []grid.Cell, color bool) {
	mark := make(map[grid.Cell]bool, len(cells))
	for _, c := range cells {
		mark[c] = true
	}

	var b strings.Builder
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c := grid.Cell{X: x, Y: y}
			sym := byte(g.KindAt(c))
			switch {
			case mark[c] && color:
				b.WriteString("\033[0;102m")
				b.WriteByte(sym)
				b.WriteString("\033[0m")
			case mark[c] && sym != byte(grid.End):
				b.WriteByte('@')
			default:
				b.WriteByte(sym)
			}
		}
		b.WriteByte('\n')
	}
	fmt.Fprint(w, b.String())
}
