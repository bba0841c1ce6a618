/*
Copyright (c) 2024 Diagrid Inc.
Licensed under the MIT License.
*/

package api

import (
	"context"
	"time"
)

// Predicate is the function evaluated for every value in the scanned range.
// It must be pure: same input, same answer, no side effects. Workers call it
// concurrently on disjoint values.
type Predicate func(value uint64) bool

// Result is the outcome of a completed scan.
type Result struct {
	// Total is the number of values in [0, bound) matching the predicate.
	Total uint64

	// Counts holds one accumulator per partition, indexed by partition ID.
	// Counts[k] is the number of matches in partition k. The sum of Counts
	// equals Total.
	Counts []uint64

	// Elapsed is the wall-clock duration of the scan, measured from just
	// before the first worker is launched to just after the reduction.
	Elapsed time.Duration
}

// Interface is a parallel range scanner. It partitions [0, bound) across a
// fixed number of workers, evaluates the predicate on every value exactly
// once, and reduces the per-partition counts after all workers have
// terminated.
type Interface interface {
	// Run is a blocking function that executes the scan to completion and
	// returns the reduced result. It will return an error if the scanner is
	// already running. A scanner may be run multiple times; runs are
	// independent and yield identical results for identical options.
	Run(ctx context.Context) (*Result, error)
}
