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

// Package bwt computes the Burrows-Wheeler transform of a byte string and
// its inverse. Forward is a thin wrapper over the suffix array engine;
// Inverse reconstructs T from (L, idx) via explicit LF-mapping, entirely
// single-threaded and allocation-light, independent of the suffix array
// that produced L.
package bwt

import (
	"time"

	root "github.com/y-256/libdivsufsort"
	"github.com/y-256/libdivsufsort/divsufsort"
)

const alphabetSize = 256

// Forward computes the Burrows-Wheeler transform of src: L, the last column
// of the sorted rotation matrix of src followed by a virtual terminator,
// with the terminator's own entry left out, and idx, the row at which the
// original string appears (the "primary index", in [1,n] for n > 0). L[0]
// is always src[n-1]. This is the layout Inverse consumes. len(src) <= 1 is
// returned unchanged with idx = len(src), matching bw_transform's
// degenerate-case convention.
func Forward(src []byte, l root.Listener) ([]byte, int, error) {
	n := len(src)

	if n <= 1 {
		dst := make([]byte, n)
		copy(dst, src)
		return dst, n, nil
	}

	sa := make([]int, n+1)
	s := divsufsort.NewWithListener(l)

	idx, err := s.ComputeBWT(src, sa)
	if err != nil {
		return nil, 0, err
	}

	dst := make([]byte, n)
	dst[0] = src[n-1]

	for i := 0; i < idx; i++ {
		dst[i+1] = byte(sa[i])
	}

	for i := idx + 1; i < n; i++ {
		dst[i] = byte(sa[i])
	}

	return dst, idx + 1, nil
}

// Inverse reconstructs T from its Burrows-Wheeler transform L and primary
// index idx, implementing inverse_bw_transform(T, U, A, n, idx): a
// cumulative character count table C, a next-free-slot table B built by a
// single pass over L, and an auxiliary table D collapsing C's distinct
// values back to the byte they start, used to walk the LF mapping without
// ever materializing a suffix array.
func Inverse(l []byte, idx int, listener root.Listener) ([]byte, error) {
	n := len(l)

	if idx < 0 || idx > n || (n > 0 && idx == 0) {
		return nil, root.ErrInvalidArguments
	}

	if n <= 1 {
		dst := make([]byte, n)
		copy(dst, l)
		return dst, nil
	}

	if listener != nil {
		listener.ProcessEvent(root.NewEvent(root.EVT_UNBWT_START, int64(n), time.Time{}))
	}

	var c [alphabetSize]int

	for i := 0; i < n; i++ {
		c[l[i]]++
	}

	sum := 0

	for i := 0; i < alphabetSize; i++ {
		t := c[i]
		c[i] = sum
		sum += t
	}

	b := make([]int, n+1)
	b[0] = idx

	for i := 0; i < idx; i++ {
		c[l[i]]++
		b[c[l[i]]] = i
	}

	for i := idx; i < n; i++ {
		c[l[i]]++
		b[c[l[i]]] = i + 1
	}

	var d [alphabetSize]int
	k := 0

	for i, t := 0, 0; i < alphabetSize; i++ {
		if t != c[i] {
			d[k] = i
			t = c[i]
			c[k] = t
			k++
		}
	}

	dst := make([]byte, n)
	t := 0

	for i := 0; i < n; i++ {
		t = b[t]
		dst[i] = byte(d[binarySearch(c[:k], t)])
	}

	if listener != nil {
		listener.ProcessEvent(root.NewEvent(root.EVT_UNBWT_END, int64(n), time.Time{}))
	}

	return dst, nil
}

// binarySearch returns the index of the first entry of a (sorted ascending)
// not less than val, mirroring libdivsufsort's _binarysearch: a run of
// equal-valued entries always resolves to its leftmost occurrence.
func binarySearch(a []int, val int) int {
	m := 0

	for length, half := len(a), len(a)>>1; length > 0; length, half = half, half>>1 {
		if a[m+half] < val {
			m += half + 1
			half -= boolToInt(length&1 == 0)
		}
	}

	return m
}

func boolToInt(b bool) int {
	if b {
		return 1
	}

	return 0
}

