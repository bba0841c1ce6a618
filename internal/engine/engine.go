/*
Copyright (c) 2024 Diagrid Inc.
Licensed under the MIT License.
*/

package engine

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/dapr/kit/concurrency"
	"github.com/go-logr/logr"
	"k8s.io/utils/clock"

	"github.com/strideworks/stridescan/api"
	"github.com/strideworks/stridescan/internal/partitioner"
	"github.com/strideworks/stridescan/internal/worker"
)

// Options are the options for creating a new engine instance.
type Options struct {
	// Log is the logger for the engine to use.
	Log logr.Logger

	// Bound is the exclusive upper limit of the scanned range. Must be
	// greater than 0.
	Bound uint64

	// Workers is the number of partitions the range is split into, one
	// worker per partition. Must be greater than 0. May exceed Bound, in
	// which case the surplus partitions are empty.
	Workers uint32

	// Predicate is the function evaluated for every value in [0, Bound).
	Predicate api.Predicate

	// Clock is the clock used to measure the scan duration. Defaults to the
	// real clock.
	Clock clock.Clock
}

// Engine is the scan coordinator. Each run it partitions the domain, launches
// one worker per partition, blocks on the join barrier until every worker has
// terminated, then reduces the per-worker accumulators into the total. The
// join barrier is the only synchronization point: workers share no mutable
// state, so reading their accumulators after the join is race free.
//
// The engine performs no domain work itself. Workers and accumulators are
// built fresh per run, so repeated runs with the same options yield identical
// results.
type Engine struct {
	opts  Options
	log   logr.Logger
	clock clock.Clock

	running atomic.Bool
}

// New creates a new engine instance.
func New(opts Options) (*Engine, error) {
	if opts.Bound == 0 {
		return nil, errors.New("bound must be greater than 0")
	}

	if opts.Workers == 0 {
		return nil, errors.New("workers must be greater than 0")
	}

	if opts.Predicate == nil {
		return nil, errors.New("predicate is required")
	}

	cl := opts.Clock
	if cl == nil {
		cl = clock.RealClock{}
	}

	return &Engine{
		opts:  opts,
		log:   opts.Log.WithName("engine"),
		clock: cl,
	}, nil
}

// Scan is a blocking function that executes one full scan and returns the
// reduced result. Any worker failing to build or start aborts the whole run
// with no partial result.
func (e *Engine) Scan(ctx context.Context) (*api.Result, error) {
	if !e.running.CompareAndSwap(false, true) {
		return nil, errors.New("engine is already running")
	}
	defer e.running.Store(false)

	e.log.V(1).Info("starting scan", "bound", e.opts.Bound, "workers", e.opts.Workers)

	start := e.clock.Now()

	workers := make([]*worker.Worker, e.opts.Workers)
	runners := make([]concurrency.Runner, e.opts.Workers)
	for id := range workers {
		part, err := partitioner.New(partitioner.Options{
			//nolint:gosec
			ID:    uint32(id),
			Total: e.opts.Workers,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create partitioner: %w", err)
		}

		w, err := worker.New(worker.Options{
			Log:         e.log,
			Partitioner: part,
			Bound:       e.opts.Bound,
			Predicate:   e.opts.Predicate,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create worker %d: %w", id, err)
		}

		workers[id] = w
		runners[id] = w.Run
	}

	// Join barrier. Every worker has terminated once Run returns, so the
	// accumulators below are final.
	if err := concurrency.NewRunnerManager(runners...).Run(ctx); err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}

	res := &api.Result{
		Counts: make([]uint64, len(workers)),
	}
	for id, w := range workers {
		res.Counts[id] = w.Count()
		res.Total += w.Count()
	}
	res.Elapsed = e.clock.Since(start)

	e.log.V(1).Info("scan complete", "total", res.Total, "elapsed", res.Elapsed)

	return res, nil
}
