/*
Copyright (c) 2024 Diagrid Inc.
Licensed under the MIT License.
*/

package prime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Is(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value uint64
		exp   bool
	}{
		{value: 0, exp: false},
		{value: 1, exp: false},
		{value: 2, exp: true},
		{value: 3, exp: true},
		{value: 4, exp: false},
		{value: 5, exp: true},
		{value: 7, exp: true},
		{value: 9, exp: false},
		{value: 17, exp: true},
		{value: 18, exp: false},
		{value: 25, exp: false},
		{value: 97, exp: true},
		{value: 7919, exp: true},
		{value: 7917, exp: false},
	}

	for _, test := range tests {
		assert.Equal(t, test.exp, Is(test.value), "value: %d", test.value)
	}
}

func Test_IsCountBelow100(t *testing.T) {
	t.Parallel()

	// 25 primes below 100.
	var count int
	for value := uint64(0); value < 100; value++ {
		if Is(value) {
			count++
		}
	}
	assert.Equal(t, 25, count)
}
