package lee_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/leemaze/grid"
	"github.com/katalvlaran/leemaze/lee"
)

// openGrid builds an n×n wall-free maze with S and E in opposite corners.
func openGrid(b *testing.B, n int) *grid.Grid {
	rows := make([]string, n)
	for y := 0; y < n; y++ {
		rows[y] = strings.Repeat(".", n)
	}
	rows[0] = "S" + rows[0][1:]
	rows[n-1] = rows[n-1][:n-1] + "E"
	g, err := grid.Parse(strings.Join(rows, "\n"))
	if err != nil {
		b.Fatalf("setup Parse failed: %v", err)
	}
	return g
}

// BenchmarkShortestPath_Open measures the worst case for frontier size:
// a 100×100 maze with no walls (every cell is expanded).
func BenchmarkShortestPath_Open(b *testing.B) {
	const n = 100
	g := openGrid(b, n)

	b.ReportAllocs()
	b.SetBytes(int64(n * n))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = lee.ShortestPath(g, g.Start(), g.End())
	}
}

// BenchmarkShortestPath_RandomWalls measures a 200×200 maze with 30%
// walls, the typical sparse-obstacle case. The seeded layout keeps runs
// comparable; the destination may be unreachable, which costs the same.
func BenchmarkShortestPath_RandomWalls(b *testing.B) {
	const n = 200
	rnd := rand.New(rand.NewSource(42))
	rows := make([][]grid.Kind, n)
	for y := range rows {
		rows[y] = make([]grid.Kind, n)
		for x := range rows[y] {
			if rnd.Float64() < 0.3 {
				rows[y][x] = grid.Wall
			} else {
				rows[y][x] = grid.Free
			}
		}
	}
	rows[0][0] = grid.Start
	rows[n-1][n-1] = grid.End
	g, err := grid.New(rows)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(n * n))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = lee.ShortestPath(g, g.Start(), g.End())
	}
}

// BenchmarkShortestPath_HookOverhead compares a bare search with one whose
// OnVisit hook does per-cell work.
func BenchmarkShortestPath_HookOverhead(b *testing.B) {
	const n = 50
	g := openGrid(b, n)

	b.Run("NoHook", func(b *testing.B) {
		b.ReportAllocs()
		b.SetBytes(int64(n * n))
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = lee.ShortestPath(g, g.Start(), g.End())
		}
	})

	b.Run("HeavyVisitHook", func(b *testing.B) {
		heavy := func(_ grid.Cell, _ grid.Move) {
			sum := 0
			for i := 0; i < 100; i++ {
				sum += i
			}
			_ = sum
		}

		b.ReportAllocs()
		b.SetBytes(int64(n * n))
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = lee.ShortestPath(g, g.Start(), g.End(), lee.WithOnVisit(heavy))
		}
	})
}
