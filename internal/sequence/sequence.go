/*
Copyright (c) 2024 Diagrid Inc.
Licensed under the MIT License.
*/

// Package sequence implements copy-based reversal and shuffling of integer
// sequences.
package sequence

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	mathrand "math/rand"
)

// Reverse returns a new slice holding the elements of input in reverse
// order. The input is not modified.
func Reverse(input []int) []int {
	out := make([]int, len(input))
	for i, v := range input {
		out[len(input)-1-i] = v
	}
	return out
}

// Shuffle returns a new slice holding the elements of input in a uniformly
// random order, using a Fisher-Yates walk over a copy. The generator is
// seeded from the OS entropy source. The input is not modified.
func Shuffle(input []int) ([]int, error) {
	var seed [8]byte
	if _, err := rand.Read(seed[:]); err != nil {
		return nil, fmt.Errorf("failed to seed shuffle: %w", err)
	}

	out := make([]int, len(input))
	copy(out, input)

	//nolint:gosec
	rng := mathrand.New(mathrand.NewSource(int64(binary.LittleEndian.Uint64(seed[:]))))
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})

	return out, nil
}
