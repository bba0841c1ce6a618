/*
Copyright (c) 2024 Diagrid Inc.
Licensed under the MIT License.
*/

package partitioner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_New(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		id     uint32
		total  uint32
		exp    Interface
		expErr bool
	}{
		"if total is zero expect error": {
			id:     1,
			total:  0,
			exp:    nil,
			expErr: true,
		},
		"if id is equal to total expect error": {
			id:     2,
			total:  2,
			exp:    nil,
			expErr: true,
		},
		"if id is greater than total expect error": {
			id:     3,
			total:  2,
			exp:    nil,
			expErr: true,
		},
		"if total is 1 expect zero partitioner": {
			id:     0,
			total:  1,
			exp:    new(zero),
			expErr: false,
		},
		"if total is 2 expect modulo partitioner": {
			id:     1,
			total:  2,
			exp:    &modulo{id: 1, total: 2},
			expErr: false,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			test := test
			t.Parallel()
			parter, err := New(Options{
				ID:    test.id,
				Total: test.total,
			})
			assert.Equal(t, test.exp, parter)
			assert.Equal(t, test.expErr, err != nil, "%v", err)
		})
	}
}

// The union of all partitions of a total must cover [0, bound) exactly once:
// no gaps, no overlap. This is what makes the post-join reduction correct.
func Test_completeness(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		bound uint64
		total uint32
	}{
		"single partition":            {bound: 10, total: 1},
		"three partitions":            {bound: 10, total: 3},
		"total divides bound":         {bound: 12, total: 4},
		"more partitions than values": {bound: 3, total: 8},
		"empty domain":                {bound: 0, total: 4},
		"many partitions":             {bound: 100, total: 7},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			test := test
			t.Parallel()

			seen := make(map[uint64]int)
			for id := uint32(0); id < test.total; id++ {
				parter, err := New(Options{ID: id, Total: test.total})
				require.NoError(t, err)
				parter.Each(test.bound, func(value uint64) {
					seen[value]++
				})
			}

			assert.Len(t, seen, int(test.bound))
			for value := uint64(0); value < test.bound; value++ {
				assert.Equal(t, 1, seen[value], "value: %d", value)
			}
		})
	}
}
