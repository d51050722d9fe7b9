package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/leemaze/grid"
	"github.com/katalvlaran/leemaze/lee"
)

// TestPrintMaze_NoColor checks the '@' marker rendering, including that the
// End symbol is never overwritten.
func TestPrintMaze_NoColor(t *testing.T) {
	g, err := grid.Parse("S.. ##. ..E")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	path := []grid.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 2}}

	var buf bytes.Buffer
	printMaze(&buf, g, path, false)
	want := "@@@\n##@\n..E\n"
	if buf.String() != want {
		t.Errorf("printMaze = %q; want %q", buf.String(), want)
	}
}

// TestPrintMaze_Color checks that highlighted cells are wrapped in the green
// background escape and the rest are untouched.
func TestPrintMaze_Color(t *testing.T) {
	g, err := grid.Parse("S#E")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	var buf bytes.Buffer
	printMaze(&buf, g, []grid.Cell{{X: 0, Y: 0}}, true)
	want := "\033[0;102mS\033[0m#E\n"
	if buf.String() != want {
		t.Errorf("printMaze = %q; want %q", buf.String(), want)
	}
}

// TestTracer_LevelReplays runs a real search through the tracer and counts
// frame replays: one per BFS distance level reached.
func TestTracer_LevelReplays(t *testing.T) {
	g, err := grid.Parse("S... ...E")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	var buf bytes.Buffer
	tr := newTracer(g, &buf, false)
	res, err := lee.ShortestPath(g, g.Start(), g.End(), lee.WithOnVisit(tr.onVisit))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// destination (3,1) sits at distance 4; levels 0..4 each redraw once
	frames := strings.Count(buf.String(), "\033[H\033[2J")
	if frames != res.Dist()+1 {
		t.Errorf("replayed %d frames; want %d (one per distance level)", frames, res.Dist()+1)
	}
	// every dequeued cell must carry a recovered distance
	if len(tr.dist) != len(tr.visited) {
		t.Errorf("distance map has %d entries for %d visits", len(tr.dist), len(tr.visited))
	}
}
