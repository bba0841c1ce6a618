/*
Copyright (c) 2024 Diagrid Inc.
Licensed under the MIT License.
*/

package worker

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/go-logr/logr"

	"github.com/strideworks/stridescan/api"
	"github.com/strideworks/stridescan/internal/partitioner"
)

// Options are the options for creating a new worker.
type Options struct {
	// Log is the logger for the worker to use.
	Log logr.Logger

	// Partitioner is the partition of the domain this worker owns.
	Partitioner partitioner.Interface

	// Bound is the exclusive upper limit of the scanned range.
	Bound uint64

	// Predicate is the function evaluated for every value of the partition.
	Predicate api.Predicate
}

// Worker scans a single partition of the domain and counts the values
// matching the predicate in a private accumulator. The accumulator has
// exactly one writer, the worker itself, and must only be read after Run has
// returned. That join-before-read handoff is the only synchronization the
// accumulator needs; there are no locks or atomics on it.
type Worker struct {
	log   logr.Logger
	part  partitioner.Interface
	bound uint64
	pred  api.Predicate

	count   uint64
	started atomic.Bool
}

// New creates a new worker for the given partition.
func New(opts Options) (*Worker, error) {
	if opts.Partitioner == nil {
		return nil, errors.New("partitioner is required")
	}

	if opts.Predicate == nil {
		return nil, errors.New("predicate is required")
	}

	return &Worker{
		log:   opts.Log.WithName("worker"),
		part:  opts.Partitioner,
		bound: opts.Bound,
		pred:  opts.Predicate,
	}, nil
}

// Run executes the worker's partition to completion. The worker is pure
// CPU-bound work with nothing to cancel mid-scan, so the context is accepted
// for the runner signature but not polled; a run always finishes its
// partition. A worker is single use.
func (w *Worker) Run(_ context.Context) error {
	if !w.started.CompareAndSwap(false, true) {
		return errors.New("worker already started")
	}

	w.part.Each(w.bound, func(value uint64) {
		if w.pred(value) {
			w.count++
		}
	})

	w.log.V(2).Info("partition complete", "count", w.count)

	return nil
}

// Count returns the worker's accumulator. Only valid after Run has returned.
func (w *Worker) Count() uint64 {
	return w.count
}
