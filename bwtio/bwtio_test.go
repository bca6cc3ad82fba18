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

package bwtio

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	tests := map[string]struct {
		data      []byte
		blockSize int
	}{
		"empty, one block":          {data: []byte{}, blockSize: 16},
		"smaller than block":        {data: []byte("banana"), blockSize: 1024},
		"exact multiple of block":   {data: bytes.Repeat([]byte("ab"), 8), blockSize: 4},
		"several chunks, remainder": {data: randomBytes(10000), blockSize: 777},
		"single byte block":         {data: []byte("mississippi"), blockSize: 1},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			var encoded bytes.Buffer

			n, err := Encode(&encoded, bytes.NewReader(tc.data), tc.blockSize, nil)
			require.NoError(t, err)
			assert.Equal(t, int64(len(tc.data)), n)

			var decoded bytes.Buffer

			m, err := Decode(&decoded, &encoded, nil)
			require.NoError(t, err)
			assert.Equal(t, int64(len(tc.data)), m)
			assert.Equal(t, string(tc.data), decoded.String())
		})
	}
}

func TestEncodeRejectsNonPositiveBlockSize(t *testing.T) {
	var out bytes.Buffer
	_, err := Encode(&out, bytes.NewReader([]byte("x")), 0, nil)
	assert.Error(t, err)
}

func randomBytes(n int) []byte {
	b := make([]byte, n)

	for i := range b {
		b[i] = byte(rand.Intn(256))
	}

	return b
}
