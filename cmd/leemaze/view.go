package main

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/leemaze/grid"
	"github.com/katalvlaran/leemaze/lee"
)

// Cell colors follow the original renderer: dark red start, green end,
// near-black walls, light gray free cells, blue search wave, red final path.
var (
	styleStart = tcell.StyleDefault.Background(tcell.NewRGBColor(128, 0, 0))
	styleEnd   = tcell.StyleDefault.Background(tcell.NewRGBColor(0, 255, 0))
	styleWall  = tcell.StyleDefault.Background(tcell.NewRGBColor(20, 20, 20))
	styleFree  = tcell.StyleDefault.Background(tcell.NewRGBColor(200, 200, 200))
	styleWave  = styleFree.Foreground(tcell.NewRGBColor(50, 50, 200))
	stylePath  = styleFree.Foreground(tcell.NewRGBColor(200, 0, 0))
	styleText  = tcell.StyleDefault
)

// arrow maps an incoming move to the rune drawn in its cell, standing in
// for the original's oriented triangles.
func arrow(m grid.Move) rune {
	switch m {
	case grid.MoveRight:
		return '▶'
	case grid.MoveDown:
		return '▼'
	case grid.MoveLeft:
		return '◀'
	case grid.MoveUp:
		return '▲'
	}
	return '■'
}

// view owns the tcell screen and the maze placement on it.
type view struct {
	screen      tcell.Screen
	g           *grid.Grid
	offX, offY  int // centering border
	delay       time.Duration
	drawnStatic bool
}

// runView animates the search on a tcell screen: the static maze is drawn
// once, each dequeued cell paints an arrow, and the final path is overlaid
// in red. Esc, q or Ctrl+C quits at any point by cancelling the search
// context; any other key starts the search.
func runView(g *grid.Grid, delay time.Duration) (*lee.Result, time.Duration, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, 0, err
	}
	if err := screen.Init(); err != nil {
		return nil, 0, err
	}
	defer screen.Fini()

	v := &view{screen: screen, g: g, delay: delay}
	v.layout()
	v.drawStatic()
	v.writeText(0, v.offY+g.Height()+1, "press any key to search, Esc/q quits")
	screen.Show()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Dedicated input goroutine; quit keys cancel the search context.
	start := make(chan struct{}, 1)
	go func() {
		for {
			switch ev := screen.PollEvent().(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					cancel()
					return
				}
				select {
				case start <- struct{}{}:
				default:
				}
			case *tcell.EventResize:
				screen.Sync()
			case nil:
				return
			}
		}
	}()

	select {
	case <-ctx.Done():
		return nil, 0, ctx.Err()
	case <-start:
	}

	started := time.Now()
	res, err := lee.ShortestPath(g, g.Start(), g.End(),
		lee.WithContext(ctx),
		lee.WithOnVisit(v.onVisit),
	)
	elapsed := time.Since(started)
	if err != nil {
		return nil, elapsed, err
	}

	// Final path overlay: each cell after the source carries the move that
	// reached it.
	for i, m := range res.Moves {
		c := res.Path[i+1]
		v.setCell(c, arrow(m), stylePath)
	}
	v.writeText(0, v.offY+g.Height()+1, "done - press Esc/q to exit         ")
	screen.Show()

	<-ctx.Done()
	return res, elapsed, nil
}

// onVisit paints the newest dequeued cell only; the static maze below it
// was drawn once up front.
func (v *view) onVisit(c grid.Cell, in grid.Move) {
	if in == grid.MoveNone {
		return // the source keeps its own color
	}
	v.setCell(c, arrow(in), styleWave)
	v.screen.Show()
	if v.delay > 0 {
		time.Sleep(v.delay)
	}
}

// layout centers the maze on the screen, clamping to the top-left corner
// when the screen is smaller than the maze.
func (v *view) layout() {
	sw, sh := v.screen.Size()
	v.offX = (sw - v.g.Width()) / 2
	v.offY = (sh - v.g.Height()) / 2
	if v.offX < 0 {
		v.offX = 0
	}
	if v.offY < 0 {
		v.offY = 0
	}
}

// drawStatic paints every maze cell once.
func (v *view) drawStatic() {
	if v.drawnStatic {
		return
	}
	for y := 0; y < v.g.Height(); y++ {
		for x := 0; x < v.g.Width(); x++ {
			c := grid.Cell{X: x, Y: y}
			var style tcell.Style
			switch v.g.KindAt(c) {
			case grid.Start:
				style = styleStart
			case grid.End:
				style = styleEnd
			case grid.Wall:
				style = styleWall
			default:
				style = styleFree
			}
			v.setCell(c, ' ', style)
		}
	}
	v.drawnStatic = true
}

func (v *view) setCell(c grid.Cell, r rune, style tcell.Style) {
	v.screen.SetContent(v.offX+c.X, v.offY+c.Y, r, nil, style)
}

func (v *view) writeText(x, y int, s string) {
	for i, r := range s {
		v.screen.SetContent(x+i, y, r, nil, styleText)
	}
}
