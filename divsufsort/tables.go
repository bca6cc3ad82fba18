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

// Package divsufsort implements the suffix-sorting engine: a two-stage
// induced suffix sort (type A/B/B*), a block-wise multikey-introsort
// substring sorter for B* suffixes, and a budgeted tandem-repeat rank
// refinement sorter with a Larsson-Sadakane doubling-depth fallback.
package divsufsort

const (
	ssInsertionSortThreshold = 8
	ssBlockSize              = 1024
	ssMisortStackSize        = 16
	ssSmergeStackSize        = 32
	trStackSize              = 64
	trInsertionSortThreshold = 8
	maskFFFF0000             = -65536    // make 32 bit systems happy
	maskFF000000             = -16777216 // make 32 bit systems happy
	mask0000FF00             = 65280     // make 32 bit systems happy
)

// sqqTable is libdivsufsort's fixed-point sqrt seed table, indexed by the
// top byte of x once its bit-length has been found via logTable.
var sqqTable = []int{
	0, 16, 22, 27, 32, 35, 39, 42, 45, 48, 50, 53, 55, 57, 59, 61, 64, 65, 67, 69,
	71, 73, 75, 76, 78, 80, 81, 83, 84, 86, 87, 89, 90, 91, 93, 94, 96, 97, 98, 99,
	101, 102, 103, 104, 106, 107, 108, 109, 110, 112, 113, 114, 115, 116, 117, 118,
	119, 120, 121, 122, 123, 124, 125, 126, 128, 128, 129, 130, 131, 132, 133, 134,
	135, 136, 137, 138, 139, 140, 141, 142, 143, 144, 144, 145, 146, 147, 148, 149,
	150, 150, 151, 152, 153, 154, 155, 155, 156, 157, 158, 159, 160, 160, 161, 162,
	163, 163, 164, 165, 166, 167, 167, 168, 169, 170, 170, 171, 172, 173, 173, 174,
	175, 176, 176, 177, 178, 178, 179, 180, 181, 181, 182, 183, 183, 184, 185, 185,
	186, 187, 187, 188, 189, 189, 190, 191, 192, 192, 193, 193, 194, 195, 195, 196,
	197, 197, 198, 199, 199, 200, 201, 201, 202, 203, 203, 204, 204, 205, 206, 206,
	207, 208, 208, 209, 209, 210, 211, 211, 212, 212, 213, 214, 214, 215, 215, 216,
	217, 217, 218, 218, 219, 219, 220, 221, 221, 222, 222, 223, 224, 224, 225, 225,
	226, 226, 227, 227, 228, 229, 229, 230, 230, 231, 231, 232, 232, 233, 234, 234,
	235, 235, 236, 236, 237, 237, 238, 238, 239, 240, 240, 241, 241, 242, 242, 243,
	243, 244, 244, 245, 245, 246, 246, 247, 247, 248, 248, 249, 249, 250, 250, 251,
	251, 252, 252, 253, 253, 254, 254, 255,
}

// logTable is a 256-entry floor(log2(n)) table, the `lg` helper of the
// design: it seeds introsort depth limits for both sorters uniformly
// (the 16-bit vs 32-bit path distinction from the original source has no
// living counterpart here; this table is used unconditionally).
var logTable = []int{
	-1, 0, 1, 1, 2, 2, 2, 2, 3, 3, 3, 3, 3, 3, 3, 3, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4,
	4, 4, 4, 4, 4, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6,
	6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6,
	6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 7, 7, 7, 7, 7, 7, 7,
	7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7,
	7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7,
	7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7,
	7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7,
	7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7,
}

func ssIsqrt(x int) int {
	if x >= ssBlockSize*ssBlockSize {
		return ssBlockSize
	}

	var e int

	if x&maskFFFF0000 != 0 {
		if x&maskFF000000 != 0 {
			e = 24 + logTable[(x>>24)&0xFF]
		} else {
			e = 16 + logTable[(x>>16)&0xFF]
		}
	} else {
		if x&mask0000FF00 != 0 {
			e = 8 + logTable[(x>>8)&0xFF]
		} else {
			e = logTable[x&0xFF]
		}
	}

	if e < 8 {
		return sqqTable[x] >> 4
	}

	var y int

	if e >= 16 {
		y = sqqTable[x>>uint((e-6)-(e&1))] << uint((e>>1)-7)

		if e >= 24 {
			y = (y + 1 + x/y) >> 1
		}

		y = (y + 1 + x/y) >> 1
	} else {
		y = (sqqTable[x>>uint((e-6)-(e&1))] >> uint(7-(e>>1))) + 1
	}

	if x < y*y {
		return y - 1
	}

	return y
}

func ssIlg(n int) int {
	return trIlg(n)
}

func trIlg(n int) int {
	if n&maskFFFF0000 != 0 {
		if n&maskFF000000 != 0 {
			return 24 + logTable[(n>>24)&0xFF]
		}

		return 16 + logTable[(n>>16)&0xFF]
	}

	if n&mask0000FF00 != 0 {
		return 8 + logTable[(n>>8)&0xFF]
	}

	return logTable[n&0xFF]
}

func getIndex(a int) int {
	if a >= 0 {
		return a
	}

	return ^a
}
