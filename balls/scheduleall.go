package balls

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/solidifylabs/balls/heuristic"
	"github.com/solidifylabs/balls/ir"
	"github.com/solidifylabs/balls/schedule"
)

// A Result is one Function's scheduling outcome, in the same index as the
// Function in the slice passed to ScheduleAll.
type Result struct {
	Function ir.Function
	Graph    *ir.Graph
	Steps    []schedule.Step
	Snapshot schedule.Snapshot
}

// Options configures ScheduleAll.
type Options struct {
	// Estimator is the A* heuristic used for every function. Defaults to
	// heuristic.Dijkstra{} (admissible, optimal, slowest) if nil.
	Estimator heuristic.Estimator

	// MaxStackDepth bounds every search. Defaults to schedule.MaxStackDepth
	// if zero.
	MaxStackDepth int

	// Concurrency bounds how many functions are scheduled at once. Defaults
	// to runtime.GOMAXPROCS(0) if zero or negative.
	Concurrency int
}

// ScheduleAll schedules every fn in fns against the shared syms, one
// goroutine per function, bounded by opts.Concurrency via errgroup.SetLimit.
//
// On the first function that fails to schedule, ctx is cancelled for every
// other in-flight search — Search itself polls ctx periodically, so a search
// already underway unwinds instead of running to exhaustion — and
// ScheduleAll returns a nil slice and that error once every goroutine has
// unwound; no partial results are returned. On success the returned slice
// holds one Result per fn, in the order of fns.
func ScheduleAll(ctx context.Context, fns []ir.Function, syms ir.SymbolTable, opts Options) ([]*Result, error) {
	est := opts.Estimator
	if est == nil {
		est = heuristic.Dijkstra{}
	}
	maxDepth := opts.MaxStackDepth
	if maxDepth == 0 {
		maxDepth = schedule.MaxStackDepth
	}
	conc := opts.Concurrency
	if conc <= 0 {
		conc = runtime.GOMAXPROCS(0)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(conc)

	results := make([]*Result, len(fns))

	for i, fn := range fns {
		i, fn := i, fn
		g.Go(func() error {
			graph, _ := ir.Build(fn, syms)
			m := schedule.NewMachine(graph)

			var tr schedule.Tracker
			tr.Start()
			steps, err := schedule.Search(ctx, m, maxDepth, est, &tr)
			tr.Stop()
			if err != nil {
				return fmt.Errorf("function %q: %w", fn.Name, err)
			}

			results[i] = &Result{Function: fn, Graph: graph, Steps: steps, Snapshot: tr.Snapshot()}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]*Result, 0, len(fns))
	for _, r := range results {
		if r != nil {
			out = append(out, r)
		}
	}
	return out, nil
}
