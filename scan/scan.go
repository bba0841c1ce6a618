/*
Copyright (c) 2024 Diagrid Inc.
Licensed under the MIT License.
*/

package scan

import (
	"context"
	"errors"
	"runtime"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"

	"github.com/strideworks/stridescan/api"
	"github.com/strideworks/stridescan/internal/engine"
	"github.com/strideworks/stridescan/internal/prime"
)

// Options are the options for creating a new scanner instance.
type Options struct {
	// Log is the logger to use for logging.
	Log logr.Logger

	// Bound is the exclusive upper limit of the scanned range. Must be
	// greater than 0.
	Bound uint64

	// Workers is the number of partitions the range is split into, one
	// worker per partition. When nil, defaults to the number of logical
	// CPUs available to the process.
	Workers *uint32

	// Predicate is the function evaluated for every value in [0, Bound).
	// When nil, defaults to trial-division primality.
	Predicate api.Predicate
}

// scanner is the implementation of the scanner interface.
type scanner struct {
	engine *engine.Engine
}

// New creates a new scanner instance.
func New(opts Options) (api.Interface, error) {
	if opts.Bound == 0 {
		return nil, errors.New("bound must be greater than 0")
	}

	log := opts.Log
	if log.GetSink() == nil {
		sink, err := zap.NewProduction()
		if err != nil {
			return nil, err
		}
		log = zapr.NewLogger(sink)
		log = log.WithName("stridescan")
	}

	workers := uint32(1)
	if opts.Workers != nil {
		workers = *opts.Workers
	} else if cpus := runtime.GOMAXPROCS(0); cpus > 0 {
		//nolint:gosec
		workers = uint32(cpus)
	}
	if workers == 0 {
		return nil, errors.New("workers must be greater than 0")
	}

	predicate := opts.Predicate
	if predicate == nil {
		predicate = prime.Is
	}

	engine, err := engine.New(engine.Options{
		Log:       log,
		Bound:     opts.Bound,
		Workers:   workers,
		Predicate: predicate,
	})
	if err != nil {
		return nil, err
	}

	return &scanner{
		engine: engine,
	}, nil
}

// Run forwards the call to the embedded engine.
func (s *scanner) Run(ctx context.Context) (*api.Result, error) {
	return s.engine.Scan(ctx)
}
