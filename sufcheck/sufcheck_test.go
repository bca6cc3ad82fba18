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

package sufcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	root "github.com/y-256/libdivsufsort"
	"github.com/y-256/libdivsufsort/divsufsort"
)

func buildSA(t *testing.T, s []byte) []int {
	t.Helper()
	sa := make([]int, len(s))
	require.NoError(t, divsufsort.New().BuildSAInPlace(s, sa))
	return sa
}

func TestVerifyAcceptsValidSuffixArrays(t *testing.T) {
	tests := map[string][]byte{
		"empty":        {},
		"single":       []byte("a"),
		"banana":       []byte("banana"),
		"mississippi":  []byte("mississippi"),
		"abracadabra":  []byte("abracadabra"),
		"same chars":   []byte("aaaaa"),
		"two symbols":  []byte("abababab"),
		"all byte val": allByteValues(),
	}

	for name, s := range tests {
		t.Run(name, func(t *testing.T) {
			sa := buildSA(t, s)
			assert.NoError(t, Verify(s, sa, false, nil))
		})
	}
}

func TestVerifyRejectsOutOfRangeEntry(t *testing.T) {
	s := []byte("banana")
	sa := buildSA(t, s)
	sa[0] = len(s) // out of [0, n)

	err := Verify(s, sa, false, nil)
	assert.ErrorIs(t, err, root.ErrCheckFailed)
}

func TestVerifyRejectsMisorderedEntries(t *testing.T) {
	s := []byte("banana")
	sa := buildSA(t, s)
	sa[0], sa[len(sa)-1] = sa[len(sa)-1], sa[0]

	err := Verify(s, sa, false, nil)
	assert.ErrorIs(t, err, root.ErrCheckFailed)
}

func TestVerifyRejectsSwappedTiedEntries(t *testing.T) {
	// Swap two adjacent entries that share the same first byte: this
	// survives the range check and the first-byte-ordering check, so only
	// the LF round trip (pass 4) can catch it.
	s := []byte("aabaa")
	sa := buildSA(t, s)

	swapped := false

	for i := 1; i < len(sa); i++ {
		if s[sa[i-1]] == s[sa[i]] {
			sa[i-1], sa[i] = sa[i], sa[i-1]
			swapped = true
			break
		}
	}

	require.True(t, swapped, "fixture must contain a tied-first-byte pair")

	err := Verify(s, sa, false, nil)
	assert.ErrorIs(t, err, root.ErrCheckFailed)
}

func TestVerifyRejectsShortScratch(t *testing.T) {
	s := []byte("banana")
	err := Verify(s, make([]int, 2), false, nil)
	assert.ErrorIs(t, err, root.ErrInvalidArguments)
}

type recordingListener struct {
	events []*root.Event
}

func (r *recordingListener) ProcessEvent(evt *root.Event) {
	r.events = append(r.events, evt)
}

func TestVerifyEmitsSufcheckEventsOnSuccess(t *testing.T) {
	s := []byte("banana")
	sa := buildSA(t, s)

	l := &recordingListener{}
	require.NoError(t, Verify(s, sa, false, l))

	require.Len(t, l.events, 2)
	assert.Equal(t, root.EVT_SUFCHECK_START, l.events[0].Type())
	assert.Equal(t, root.EVT_SUFCHECK_END, l.events[1].Type())
}

func TestVerifyEmitsOnlyStartEventOnFailure(t *testing.T) {
	s := []byte("banana")
	sa := buildSA(t, s)
	sa[0] = len(s)

	l := &recordingListener{}
	require.Error(t, Verify(s, sa, false, l))

	require.Len(t, l.events, 1)
	assert.Equal(t, root.EVT_SUFCHECK_START, l.events[0].Type())
}

func allByteValues() []byte {
	b := make([]byte, 256)

	for i := range b {
		b[i] = byte(i)
	}

	return b
}
