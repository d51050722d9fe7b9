// Package lee provides tunable options and error definitions for the
// breadth-first maze search.
package lee

import (
	"context"
	"errors"

	"github.com/katalvlaran/leemaze/grid"
)

// Sentinel errors for search execution.
var (
	// ErrInvalidInput is returned when the grid is nil or empty, or when the
	// source or destination cell is out of bounds or a wall. It is reported
	// before any cell is expanded.
	ErrInvalidInput = errors.New("lee: invalid input")

	// ErrNoPath is returned when no chain of free cells connects source to
	// destination. This is an ordinary outcome, not a fault.
	ErrNoPath = errors.New("lee: no path between source and destination")
)

// VisitFunc observes one dequeued cell together with the move that reached
// it. The incoming move is grid.MoveNone for the source cell only.
type VisitFunc func(c grid.Cell, incoming grid.Move)

// Option configures a search via functional arguments.
type Option func(*Options)

// Options holds the parameters and callbacks of one search invocation.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per dequeue.
	Ctx context.Context

	// OnVisit is called once per dequeued cell, in dequeue order, before the
	// cell is expanded. It must not mutate search state; a no-op is used
	// when absent.
	OnVisit VisitFunc
}

// DefaultOptions returns Options with a background context and a no-op
// visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(grid.Cell, grid.Move) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback fired once per dequeued cell.
func WithOnVisit(fn VisitFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds a successful search outcome:
//   - Path: cells from source to destination inclusive, in order.
//   - Moves: the move executed to reach each cell after the first;
//     always exactly one element shorter than Path.
type Result struct {
	Path  []grid.Cell
	Moves []grid.Move
}

// Dist returns the hop count of the path (len(Moves)).
func (r *Result) Dist() int {
	return len(r.Moves)
}
