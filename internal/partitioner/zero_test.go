/*
Copyright (c) 2024 Diagrid Inc.
Licensed under the MIT License.
*/

package partitioner

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_zero(t *testing.T) {
	t.Parallel()

	t.Run("always return true", func(t *testing.T) {
		t.Parallel()
		z := new(zero)
		for i := 0; i < 100; i++ {
			//nolint:gosec
			assert.True(t, z.Managed(rand.Uint64()))
		}
	})

	t.Run("each yields every value below bound", func(t *testing.T) {
		t.Parallel()
		z := new(zero)
		var got []uint64
		z.Each(5, func(value uint64) {
			got = append(got, value)
		})
		assert.Equal(t, []uint64{0, 1, 2, 3, 4}, got)
	})
}
