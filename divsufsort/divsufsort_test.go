/*
Copyright 2011-2017 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License")
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package divsufsort

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// referenceSA computes the suffix array of s by plain sort.Slice comparison,
// independent of the algorithm under test.
func referenceSA(s []byte) []int {
	n := len(s)
	sa := make([]int, n)

	for i := range sa {
		sa[i] = i
	}

	sort.Slice(sa, func(i, j int) bool {
		a, b := sa[i], sa[j]

		for a < n && b < n {
			if s[a] != s[b] {
				return s[a] < s[b]
			}

			a++
			b++
		}

		return a == n && b < n
	})

	return sa
}

func randomBytes(n int, alphabet int) []byte {
	b := make([]byte, n)

	for i := range b {
		b[i] = byte(rand.Intn(alphabet))
	}

	return b
}

func TestBuildSAInPlace(t *testing.T) {
	tests := map[string]struct {
		input []byte
	}{
		"empty":               {input: []byte{}},
		"single character":    {input: []byte("a")},
		"banana":              {input: []byte("banana")},
		"mississippi":         {input: []byte("mississippi")},
		"all same characters": {input: []byte("aaaaa")},
		"abracadabra":         {input: []byte("abracadabra")},
		"strictly decreasing": {input: []byte{5, 4, 3, 2, 1, 0}},
		"two symbols":         {input: []byte("abababababab")},
		"all byte values":     {input: allByteValues()},
		"long random ascii":   {input: randomBytes(10000, 94)},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			n := len(tc.input)
			sa := make([]int, n)

			err := New().BuildSAInPlace(tc.input, sa)
			require.NoError(t, err)
			assert.Equal(t, referenceSA(tc.input), sa)
		})
	}
}

func TestBuildSAInPlaceIsPermutation(t *testing.T) {
	input := randomBytes(2000, 4)
	sa := make([]int, len(input))
	require.NoError(t, New().BuildSAInPlace(input, sa))

	seen := make([]bool, len(input))

	for _, p := range sa {
		require.GreaterOrEqual(t, p, 0)
		require.Less(t, p, len(input))
		require.False(t, seen[p], "duplicate suffix index %d", p)
		seen[p] = true
	}
}

func TestBuildSA(t *testing.T) {
	tests := map[string]struct {
		input    []byte
		expected []int
	}{
		"empty":       {input: []byte{}, expected: []int{0}},
		"single char": {input: []byte("a"), expected: []int{1, 0}},
		"banana":      {input: []byte("banana"), expected: append([]int{6}, referenceSA([]byte("banana"))...)},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			sa, err := BuildSA(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, sa)
		})
	}
}

func TestBuildSAInPlaceRejectsShortScratch(t *testing.T) {
	err := New().BuildSAInPlace([]byte("banana"), make([]int, 3))
	assert.Error(t, err)
}

func TestComputeBWTMatchesForwardPermutation(t *testing.T) {
	input := []byte("mississippi")
	n := len(input)
	sa := make([]int, n+1)

	pIdx, err := New().ComputeBWT(input, sa)
	require.NoError(t, err)
	require.GreaterOrEqual(t, pIdx, 0)
	require.Less(t, pIdx, n)

	// The BWT's L column at row i is input[SA[i]-1] (wrapping at the
	// primary index, which stands in for input[n-1]).
	plainSA := make([]int, n)
	require.NoError(t, New().BuildSAInPlace(input, plainSA))

	for i := 0; i < n; i++ {
		var want byte

		if plainSA[i] == 0 {
			want = input[n-1]
		} else {
			want = input[plainSA[i]-1]
		}

		assert.Equal(t, want, byte(sa[i]), "row %d", i)
	}
}

func allByteValues() []byte {
	b := make([]byte, 256)

	for i := range b {
		b[i] = byte(i)
	}

	return b
}
