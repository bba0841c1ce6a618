/*
Copyright (c) 2024 Diagrid Inc.
Licensed under the MIT License.
*/

package partitioner

import (
	"errors"
	"fmt"
)

// Interface is one partition of the integer domain: the values congruent to
// the partition ID modulo the total number of partitions. Partitions with the
// same total are disjoint and together cover the domain exactly once.
type Interface interface {
	// Managed returns whether a value belongs to the partition.
	Managed(value uint64) bool

	// Each calls fn for every value of the partition below bound, in
	// ascending order. A bound at or below the partition ID means zero
	// calls.
	Each(bound uint64, fn func(value uint64))
}

// Options are the options for the partitioner.
type Options struct {
	// ID is the partition ID.
	ID uint32

	// Total is the total number of partitions.
	Total uint32
}

// New returns a new partitioner given the partition id and total partitions
// in the scan.
func New(opts Options) (Interface, error) {
	if opts.Total == 0 {
		return nil, errors.New("total partitions must be greater than 0")
	}

	if opts.ID >= opts.Total {
		return nil, fmt.Errorf("partition id %d is greater/equal to total %d", opts.ID, opts.Total)
	}

	if opts.Total == 1 {
		return new(zero), nil
	}

	return &modulo{id: opts.ID, total: opts.Total}, nil
}
