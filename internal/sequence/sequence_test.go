/*
Copyright (c) 2024 Diagrid Inc.
Licensed under the MIT License.
*/

package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Reverse(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input []int
		exp   []int
	}{
		"empty":          {input: []int{}, exp: []int{}},
		"single":         {input: []int{7}, exp: []int{7}},
		"even length":    {input: []int{1, 2, 3, 4}, exp: []int{4, 3, 2, 1}},
		"odd length":     {input: []int{70, 71, 72, 73, 74}, exp: []int{74, 73, 72, 71, 70}},
		"duplicates":     {input: []int{5, 5, 1}, exp: []int{1, 5, 5}},
		"original range": {input: []int{70, 71, 72, 73, 74, 75, 76, 77, 78, 79}, exp: []int{79, 78, 77, 76, 75, 74, 73, 72, 71, 70}},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			test := test
			t.Parallel()
			assert.Equal(t, test.exp, Reverse(test.input))
		})
	}
}

func Test_ReverseInvolution(t *testing.T) {
	t.Parallel()

	input := []int{3, 1, 4, 1, 5, 9, 2, 6}
	assert.Equal(t, input, Reverse(Reverse(input)))
}

func Test_ReverseDoesNotMutate(t *testing.T) {
	t.Parallel()

	input := []int{1, 2, 3}
	Reverse(input)
	assert.Equal(t, []int{1, 2, 3}, input)
}

func Test_Shuffle(t *testing.T) {
	t.Parallel()

	t.Run("preserves elements", func(t *testing.T) {
		t.Parallel()

		input := []int{70, 71, 72, 73, 74, 75, 76, 77, 78, 79}
		out, err := Shuffle(input)
		require.NoError(t, err)
		assert.ElementsMatch(t, input, out)
		assert.Len(t, out, len(input))
	})

	t.Run("does not mutate input", func(t *testing.T) {
		t.Parallel()

		input := []int{1, 2, 3, 4, 5}
		_, err := Shuffle(input)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3, 4, 5}, input)
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		out, err := Shuffle(nil)
		require.NoError(t, err)
		assert.Empty(t, out)
	})
}
