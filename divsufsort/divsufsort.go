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
	"time"

	root "github.com/y-256/libdivsufsort"
)

// SuffixSorter drives the two-stage induced sort: bucket counting, B*
// extraction, substring-sort of the B* range, tandem-repeat rank
// refinement of the resulting ISA, and two directed induction scans that
// place B and then A suffixes. A SuffixSorter may be reused across many
// calls; each call resets its scratch state.
type SuffixSorter struct {
	sa         []int
	buffer     []int
	bucketA    [256]int
	bucketB    [65536]int
	ssStack    *stack
	trStack    *stack
	mergeStack *stack
	listener   root.Listener
}

// New returns a SuffixSorter with no attached Listener.
func New() *SuffixSorter {
	return NewWithListener(nil)
}

// NewWithListener returns a SuffixSorter that emits lifecycle Events to l.
// l may be nil.
func NewWithListener(l root.Listener) *SuffixSorter {
	this := new(SuffixSorter)
	this.sa = make([]int, 0)
	this.buffer = make([]int, 0)
	this.ssStack = newStack(ssMisortStackSize)
	this.trStack = newStack(trStackSize)
	this.mergeStack = newStack(ssSmergeStackSize)
	this.listener = l
	return this
}

func (this *SuffixSorter) notify(evtType int, size int64) {
	if this.listener == nil {
		return
	}

	this.listener.ProcessEvent(root.NewEvent(evtType, size, time.Time{}))
}

func (this *SuffixSorter) reset() {
	this.ssStack.index = 0
	this.trStack.index = 0
	this.mergeStack.index = 0

	for i := range this.bucketA {
		this.bucketA[i] = 0
	}

	for i := range this.bucketB {
		this.bucketB[i] = 0
	}
}

// BuildSA implements build_sa(T, n) -> SA[0..n]: the n+1 suffix array of
// the string T conceptually extended with a virtual terminator smaller
// than every byte. The terminator always sorts first, so SA[0] = n and
// SA[1..n] holds the plain suffix array of T (identical to what
// BuildSAInPlace produces, since a real suffix running off the end of T
// already behaves as if followed by that same terminator).
func BuildSA(src []byte) ([]int, error) {
	return BuildSAWithListener(src, nil)
}

// BuildSAWithListener is BuildSA with an optional lifecycle Listener.
func BuildSAWithListener(src []byte, l root.Listener) ([]int, error) {
	n := len(src)
	sa := make([]int, n+1)
	s := NewWithListener(l)

	if err := s.BuildSAInPlace(src, sa[1:]); err != nil {
		return nil, err
	}

	sa[0] = n
	return sa, nil
}

// BuildSAInPlace implements build_sa_in_place(T, SA, n) -> status: sa must
// have length >= len(src); it is overwritten with the suffix array of src.
// Any trailing capacity beyond len(src) is left untouched.
func (this *SuffixSorter) BuildSAInPlace(src []byte, sa []int) error {
	if src == nil || sa == nil || len(sa) < len(src) {
		return root.ErrInvalidArguments
	}

	n := len(src)
	this.notify(root.EVT_BSTAR_START, int64(n))

	if n == 0 {
		return nil
	}

	if n == 1 {
		sa[0] = 0
		return nil
	}

	if len(this.buffer) < n+1 {
		this.buffer = make([]int, n+1)
	}

	for i := 0; i < n; i++ {
		this.buffer[i] = int(src[i])
	}

	this.sa = sa
	this.reset()
	m := this.sortTypeBstar(this.bucketA[:], this.bucketB[:], n)
	this.notify(root.EVT_BSTAR_END, int64(n))
	this.notify(root.EVT_INDUCE_START, int64(n))
	this.constructSuffixArray(this.bucketA[:], this.bucketB[:], n, m)
	this.notify(root.EVT_INDUCE_END, int64(n))
	return nil
}

func (this *SuffixSorter) constructSuffixArray(bucket_A, bucket_B []int, n, m int) {
	if m > 0 {
		for c1 := 254; c1 >= 0; c1-- {
			idx := c1 << 8
			i := bucket_B[idx+c1+1]
			k := 0
			c2 := -1

			// Scan the suffix array from right to left.
			for j := bucket_A[c1+1] - 1; j >= i; j-- {
				s := this.sa[j]
				this.sa[j] = ^s

				if s <= 0 {
					continue
				}

				s--
				c0 := this.buffer[s]

				if s > 0 && this.buffer[s-1] > c0 {
					s = ^s
				}

				if c0 != c2 {
					if c2 >= 0 {
						bucket_B[idx+c2] = k
					}

					c2 = c0
					k = bucket_B[idx+c2]
				}

				this.sa[k] = s
				k--
			}
		}
	}

	c2 := this.buffer[n-1]
	k := bucket_A[c2]

	if this.buffer[n-2] < c2 {
		this.sa[k] = ^(n - 1)
	} else {
		this.sa[k] = n - 1
	}

	k++

	// Scan the suffix array from left to right.
	for i := 0; i < n; i++ {
		s := this.sa[i]

		if s <= 0 {
			this.sa[i] = ^s
			continue
		}

		s--
		c0 := this.buffer[s]

		if s == 0 || this.buffer[s-1] < c0 {
			s = ^s
		}

		if c0 != c2 {
			bucket_A[c2] = k
			c2 = c0
			k = bucket_A[c2]
		}

		this.sa[k] = s
		k++
	}
}

// ComputeBWT implements the forward half of bwt(T, n) -> (L, idx): sa is
// caller-provided scratch of length >= len(src)+1 (one more than
// BuildSAInPlace needs), and on return sa[0:len(src)] holds T[s-1] for each
// suffix s in sorted order -- i.e. the BWT's L column -- where the row of
// suffix 0 holds T[n-1]. For len(src) >= 2 the return value is that row's
// rank (the primary index); a 1-byte src returns 1 and an empty src 0.
func (this *SuffixSorter) ComputeBWT(src []byte, sa []int) (int, error) {
	if src == nil || sa == nil || len(sa) < len(src)+1 {
		return 0, root.ErrInvalidArguments
	}

	n := len(src)
	this.notify(root.EVT_BWT_START, int64(n))

	if n == 0 {
		return 0, nil
	}

	if n == 1 {
		sa[0] = int(src[0])
		return 1, nil
	}

	if len(this.buffer) < n+1 {
		this.buffer = make([]int, n+1)
	}

	for i := 0; i < n; i++ {
		this.buffer[i] = int(src[i])
	}

	this.sa = sa
	this.reset()
	m := this.sortTypeBstar(this.bucketA[:], this.bucketB[:], n)
	pIdx := this.constructBWT(this.bucketA[:], this.bucketB[:], n, m)
	sa[pIdx] = int(src[n-1])
	this.notify(root.EVT_BWT_END, int64(n))
	return pIdx, nil
}

func (this *SuffixSorter) constructBWT(bucket_A, bucket_B []int, n, m int) int {
	pIdx := -1

	if m > 0 {
		for c1 := 254; c1 >= 0; c1-- {
			idx := c1 << 8
			i := bucket_B[idx+c1+1]
			k := 0
			c2 := -1

			// Scan the suffix array from right to left.
			for j := bucket_A[c1+1] - 1; j >= i; j-- {
				s := this.sa[j]

				if s <= 0 {
					if s != 0 {
						this.sa[j] = ^s
					}

					continue
				}

				s--
				c0 := this.buffer[s]
				this.sa[j] = ^c0

				if s > 0 && this.buffer[s-1] > c0 {
					s = ^s
				}

				if c0 != c2 {
					if c2 >= 0 {
						bucket_B[idx+c2] = k
					}

					c2 = c0
					k = bucket_B[idx+c2]
				}

				this.sa[k] = s
				k--
			}
		}
	}

	c2 := this.buffer[n-1]
	k := bucket_A[c2]

	if this.buffer[n-2] < c2 {
		this.sa[k] = ^this.buffer[n-2]
	} else {
		this.sa[k] = n - 1
	}

	k++

	// Scan the suffix array from left to right.
	for i := 0; i < n; i++ {
		s := this.sa[i]

		if s <= 0 {
			if s != 0 {
				this.sa[i] = ^s
			} else {
				pIdx = i
			}

			continue
		}

		s--
		c0 := this.buffer[s]
		this.sa[i] = c0

		if s > 0 && this.buffer[s-1] < c0 {
			s = ^this.buffer[s-1]
		}

		if c0 != c2 {
			bucket_A[c2] = k
			c2 = c0
			k = bucket_A[c2]
		}

		this.sa[k] = s
		k++
	}

	return pIdx
}

// sortTypeBstar counts A/B/B* occurrences, lays out B* positions at the
// tail of sa, radix-places them by their first two characters, calls
// ssSort on each non-trivial (c0,c1) sub-bucket, collapses the result into
// an inverse-suffix-array rank view, hands it to trSort, and scatters the
// now-totally-ordered B* suffixes back into their buckets. Returns m, the
// count of B* suffixes.
func (this *SuffixSorter) sortTypeBstar(bucket_A, bucket_B []int, n int) int {
	m := n
	c0 := this.buffer[n-1]
	arr := this.sa

	for i := n - 1; i >= 0; {
		c1 := c0

		for c0 >= c1 {
			c1 = c0
			bucket_A[c1]++
			i--

			if i < 0 {
				break
			}

			c0 = this.buffer[i]
		}

		if i < 0 {
			break
		}

		bucket_B[(c0<<8)+c1]++
		m--
		arr[m] = i
		i--
		c1 = c0

		for i >= 0 {
			c0 = this.buffer[i]

			if c0 > c1 {
				break
			}

			bucket_B[(c1<<8)+c0]++
			c1 = c0
			i--
		}
	}

	m = n - m
	c0 = 0

	// Calculate the index of start/end point of each bucket.
	for i, j := 0, 0; c0 < 256; c0++ {
		t := i + bucket_A[c0]
		bucket_A[c0] = i + j // start point
		idx := c0 << 8
		i = t + bucket_B[idx+c0]

		for c1 := c0 + 1; c1 < 256; c1++ {
			j += bucket_B[idx+c1]
			bucket_B[idx+c1] = j // end point
			i += bucket_B[(c1<<8)+c0]
		}
	}

	if m > 0 {
		// Sort the type B* suffixes by their first two characters.
		pab := n - m

		for i := m - 2; i >= 0; i-- {
			t := arr[pab+i]
			idx := (this.buffer[t] << 8) + this.buffer[t+1]
			bucket_B[idx]--
			arr[bucket_B[idx]] = i
		}

		t := arr[pab+m-1]
		c0 = (this.buffer[t] << 8) + this.buffer[t+1]
		bucket_B[c0]--
		arr[bucket_B[c0]] = m - 1

		// Sort the type B* substrings using ssSort.
		bufSize := n - m - m
		c0 = 254

		for j := m; j > 0; c0-- {
			idx := c0 << 8

			for c1 := 255; c1 > c0; c1-- {
				i := bucket_B[idx+c1]

				if j-i > 1 {
					this.ssSort(pab, i, j, m, bufSize, 2, n, arr[i] == m-1)
				}

				j = i
			}
		}

		// Compute ranks of type B* substrings.
		for i := m - 1; i >= 0; i-- {
			if arr[i] >= 0 {
				j := i

				for {
					arr[m+arr[i]] = i
					i--

					if i < 0 || arr[i] < 0 {
						break
					}
				}

				arr[i+1] = i - j

				if i <= 0 {
					break
				}
			}

			j := i

			for {
				arr[i] = ^arr[i]
				arr[m+arr[i]] = j
				i--

				if arr[i] >= 0 {
					break
				}
			}

			arr[m+arr[i]] = j
		}

		// Construct the inverse suffix array of type B* suffixes using trSort.
		this.trSort(m, 1)

		// Set the sorted order of type B* suffixes.
		c0 = this.buffer[n-1]
		var c1 int

		for i, j := n-1, m; i >= 0; {
			i--
			c1 = c0

			for i >= 0 {
				c0 = this.buffer[i]

				if c0 < c1 {
					break
				}

				c1 = c0
				i--
			}

			if i >= 0 {
				tt := i
				i--
				c1 = c0

				for i >= 0 {
					c0 = this.buffer[i]

					if c0 > c1 {
						break
					}

					c1 = c0
					i--
				}

				j--

				if tt == 0 || tt-i > 1 {
					arr[arr[m+j]] = tt
				} else {
					arr[arr[m+j]] = ^tt
				}
			}
		}

		// Calculate the index of start/end point of each bucket.
		bucket_B[len(bucket_B)-1] = n // end
		k := m - 1

		for c0 = 254; c0 >= 0; c0-- {
			i := bucket_A[c0+1] - 1
			c2 := c0 << 8

			for c1 := 255; c1 > c0; c1-- {
				tt := i - bucket_B[(c1<<8)+c0]
				bucket_B[(c1<<8)+c0] = i // end point
				i = tt

				// Move all type B* suffixes to the correct position.
				for j := bucket_B[c2+c1]; j <= k; {
					arr[i] = arr[k]
					i--
					k--
				}
			}

			bucket_B[c2+c0+1] = i - bucket_B[c2+c0] + 1 //start point
			bucket_B[c2+c0] = i                         // end point
		}
	}

	return m
}
