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

// Package bwtio streams a chunked Burrows-Wheeler transform to and from an
// io.Writer/io.Reader, framed the way the bwt/unbwt reference tools do: a
// blocksize header followed by one (primary index, L-column bytes) record
// per chunk of the source, the final chunk possibly shorter.
package bwtio

import (
	"encoding/binary"
	"fmt"
	"io"

	root "github.com/y-256/libdivsufsort"
	"github.com/y-256/libdivsufsort/bwt"
)

// Encode reads src in blockSize chunks, BW-transforms each one independently
// and writes the framed stream to w: a little-endian int32 blockSize,
// followed by (idx int32, L []byte) per chunk.
func Encode(w io.Writer, src io.Reader, blockSize int, l root.Listener) (int64, error) {
	if blockSize <= 0 {
		return 0, fmt.Errorf("%w: blockSize must be positive, got %d", root.ErrInvalidArguments, blockSize)
	}

	if err := binary.Write(w, binary.LittleEndian, int32(blockSize)); err != nil {
		return 0, err
	}

	buf := make([]byte, blockSize)
	var total int64

	for {
		m, readErr := io.ReadFull(src, buf)

		if m > 0 {
			chunk := buf[:m]

			l2, idx, err := bwt.Forward(chunk, l)
			if err != nil {
				return total, err
			}

			if err := binary.Write(w, binary.LittleEndian, int32(idx)); err != nil {
				return total, err
			}

			if _, err := w.Write(l2); err != nil {
				return total, err
			}

			total += int64(m)
		}

		if readErr == io.EOF || readErr == io.ErrUnexpectedEOF {
			return total, nil
		}

		if readErr != nil {
			return total, readErr
		}
	}
}

// Decode reads a stream framed by Encode, inverse-transforming each chunk
// and writing the reconstructed bytes to w.
func Decode(w io.Writer, r io.Reader, l root.Listener) (int64, error) {
	var blockSize int32

	if err := binary.Read(r, binary.LittleEndian, &blockSize); err != nil {
		return 0, err
	}

	if blockSize <= 0 {
		return 0, fmt.Errorf("%w: blockSize must be positive, got %d", root.ErrInvalidArguments, blockSize)
	}

	buf := make([]byte, blockSize)
	var total int64

	for {
		var idx32 int32

		err := binary.Read(r, binary.LittleEndian, &idx32)
		if err == io.EOF {
			return total, nil
		}

		if err != nil {
			return total, err
		}

		m, readErr := io.ReadFull(r, buf)
		if m == 0 {
			if readErr != nil {
				return total, readErr
			}

			return total, nil
		}

		chunk := buf[:m]

		t, err := bwt.Inverse(chunk, int(idx32), l)
		if err != nil {
			return total, err
		}

		if _, err := w.Write(t); err != nil {
			return total, err
		}

		total += int64(m)

		if readErr != nil && readErr != io.ErrUnexpectedEOF {
			return total, readErr
		}
	}
}
