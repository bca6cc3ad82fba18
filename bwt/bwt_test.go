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

package bwt

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForwardInverseRoundTrip(t *testing.T) {
	tests := map[string][]byte{
		"empty":         {},
		"single":        []byte("a"),
		"banana":        []byte("banana"),
		"mississippi":   []byte("mississippi"),
		"abracadabra":   []byte("abracadabra"),
		"same chars":    []byte("aaaaaaaaaa"),
		"two symbols":   []byte("abababababab"),
		"all byte vals": allByteValues(),
		"long random":   randomBytes(5000),
	}

	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			l, idx, err := Forward(src, nil)
			require.NoError(t, err)

			got, err := Inverse(l, idx, nil)
			require.NoError(t, err)

			if diff := cmp.Diff(src, got); diff != "" {
				t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestInverseRejectsInvalidIndex(t *testing.T) {
	_, err := Inverse([]byte("banana"), -1, nil)
	assert.Error(t, err)

	_, err = Inverse([]byte("banana"), 0, nil)
	assert.Error(t, err)

	_, err = Inverse([]byte("banana"), 100, nil)
	assert.Error(t, err)
}

func allByteValues() []byte {
	b := make([]byte, 256)

	for i := range b {
		b[i] = byte(i)
	}

	return b
}

func randomBytes(n int) []byte {
	b := make([]byte, n)

	for i := range b {
		b[i] = byte(rand.Intn(4))
	}

	return b
}
