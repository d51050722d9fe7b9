// Command leemaze solves a maze file with the Lee algorithm and shows the
// search as it happens: a terminal UI animates each dequeued cell (default),
// or -trace replays the visited region in the console per distance level.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/katalvlaran/leemaze/grid"
	"github.com/katalvlaran/leemaze/lee"
)

func main() {
	traceMode := flag.Bool("trace", false, "replay the search in the console instead of the terminal UI")
	noColor := flag.Bool("no-color", false, "console output without ANSI colors")
	delay := flag.Duration("delay", 15*time.Millisecond, "pause after each dequeued cell in UI mode")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <maze-file>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatalf("read maze: %v", err)
	}
	g, err := grid.Parse(string(data))
	if err != nil {
		log.Fatalf("parse maze: %v", err)
	}
	fmt.Printf("Dimensions of the maze are: %d×%d\n", g.Width(), g.Height())
	fmt.Printf("Start point: (%d,%d), end point: (%d,%d)\n",
		g.Start().X, g.Start().Y, g.End().X, g.End().Y)

	var res *lee.Result
	var elapsed time.Duration
	if *traceMode {
		res, elapsed, err = runTrace(g, !*noColor)
	} else {
		res, elapsed, err = runView(g, *delay)
	}

	switch {
	case errors.Is(err, lee.ErrNoPath):
		fmt.Printf("Shortest path could not be found in %.1f s\n", elapsed.Seconds())
		os.Exit(1)
	case errors.Is(err, context.Canceled):
		// user quit the UI mid-search
		return
	case err != nil:
		log.Fatalf("search: %v", err)
	}

	fmt.Printf("Shortest path length is: %d in %.1f s\n", len(res.Path), elapsed.Seconds())
	printMoveTable(res)
	if *traceMode {
		printMaze(os.Stdout, g, res.Path, !*noColor)
	}
}

// printMoveTable lists each cell after the source with the move that
// reached it.
func printMoveTable(res *lee.Result) {
	fmt.Printf("%-7s%-11s%s\n", "N", "(x, y)", "Move executed to reach this point")
	for i, m := range res.Moves {
		c := res.Path[i+1]
		fmt.Printf("%-7s%-11s%s\n",
			fmt.Sprintf("#%d:", i+1),
			fmt.Sprintf("(%d, %d)", c.X, c.Y),
			m)
	}
}
