/*
Copyright 2003-2008 Yuta Mori. Go port copyright 2011-2017 Frederic Langlet.
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

package search

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/y-256/libdivsufsort/divsufsort"
)

func buildSA(t *testing.T, s []byte) []int {
	t.Helper()
	sa := make([]int, len(s))
	require.NoError(t, divsufsort.New().BuildSAInPlace(s, sa))
	return sa
}

func naiveOccurrences(t, p []byte) []int {
	var occ []int

	for i := 0; i+len(p) <= len(t); i++ {
		if string(t[i:i+len(p)]) == string(p) {
			occ = append(occ, i)
		}
	}

	return occ
}

func TestSearchFindsAllOccurrences(t *testing.T) {
	tests := map[string]struct {
		text    string
		pattern string
	}{
		"banana/ana":            {"banana", "ana"},
		"banana/a":              {"banana", "a"},
		"banana/na":             {"banana", "na"},
		"banana/full":           {"banana", "banana"},
		"banana/not found":      {"banana", "xyz"},
		"mississippi/issi":      {"mississippi", "issi"},
		"mississippi/ssi":       {"mississippi", "ssi"},
		"mississippi/i":         {"mississippi", "i"},
		"abracadabra/abra":      {"abracadabra", "abra"},
		"abracadabra/a":         {"abracadabra", "a"},
		"repeated/aaaa":         {"aaaaaaaaaa", "aaaa"},
		"pattern longer than T": {"abc", "abcdef"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			text := []byte(tc.text)
			pattern := []byte(tc.pattern)
			sa := buildSA(t, text)

			count, idx := Search(text, pattern, sa)

			want := naiveOccurrences(text, pattern)

			if len(want) == 0 {
				assert.Equal(t, 0, count)
				return
			}

			require.Equal(t, len(want), count)

			got := make([]int, count)

			for i := 0; i < count; i++ {
				got[i] = sa[idx+i]
			}

			sort.Ints(got)
			assert.Equal(t, want, got)
		})
	}
}

func TestSearchOnEmptyText(t *testing.T) {
	count, idx := Search([]byte{}, []byte("a"), []int{})
	assert.Equal(t, 0, count)
	assert.Equal(t, -1, idx)
}

func TestSearchEmptyPattern(t *testing.T) {
	text := []byte("abc")
	sa := buildSA(t, text)

	count, idx := Search(text, []byte{}, sa)
	require.Equal(t, len(sa), count)
	assert.Equal(t, 0, idx)

	got := append([]int{}, sa[idx:idx+count]...)
	sort.Ints(got)
	assert.Equal(t, []int{0, 1, 2}, got)
}

func TestSimpleSearchFindsByte(t *testing.T) {
	text := []byte("mississippi")
	sa := buildSA(t, text)

	for _, c := range []byte("mississippixyz") {
		count, idx := SimpleSearch(text, sa, c)
		want := naiveOccurrences(text, []byte{c})

		require.Equal(t, len(want), count, "char %q", c)

		if count == 0 {
			continue
		}

		got := make([]int, count)

		for i := 0; i < count; i++ {
			got[i] = sa[idx+i]
		}

		sort.Ints(got)
		assert.Equal(t, want, got, "char %q", c)
	}
}

func TestSearchLowByteValuesAlphabet(t *testing.T) {
	text := []byte(strings.Repeat("\x00\x01\x02", 20))
	sa := buildSA(t, text)

	count, idx := Search(text, []byte{0x01, 0x02}, sa)
	require.Greater(t, count, 0)

	for i := 0; i < count; i++ {
		p := sa[idx+i]
		require.Equal(t, byte(0x01), text[p])
		require.Equal(t, byte(0x02), text[p+1])
	}
}
