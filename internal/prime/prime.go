/*
Copyright (c) 2024 Diagrid Inc.
Licensed under the MIT License.
*/

// Package prime implements the primality predicate used by the default scan.
package prime

// Is returns whether value is prime, by trial division. Divisors are tested
// from 2 up to value/2 inclusive, stopping at the first hit. The divisor
// bound is intentionally value/2 rather than sqrt(value) to preserve the
// reference cost profile of the scan.
func Is(value uint64) bool {
	if value < 2 {
		return false
	}

	for div := uint64(2); div <= value/2; div++ {
		if value%div == 0 {
			return false
		}
	}

	return true
}
