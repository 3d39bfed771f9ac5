// megahit: a compacted contig-graph engine for de novo genome assembly.
// Copyright (c) 2021 the megahit authors.

// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.

// This program is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Affero General Public License for more details.

// You should have received a copy of the GNU Affero General Public
// License along with this program. If not, see
// <https://github.com/zjyzjjzmt/megahit/blob/master/LICENSE.txt>.

package contig

import (
	"log"
	"math/bits"
)

// BitEdges is a 4-bit adjacency mask with one bit per extending base.
// Bit b is set when the neighbor reached by extending with base code b
// exists.
type BitEdges uint8

// Add sets the bit for the given base.
func (e *BitEdges) Add(base byte) {
	*e |= 1 << base
}

// Remove clears the bit for the given base.
func (e *BitEdges) Remove(base byte) {
	*e &^= 1 << base
}

// Has tells whether the bit for the given base is set.
func (e BitEdges) Has(base byte) bool {
	return e&(1<<base) != 0
}

// Size returns the number of set bits.
func (e BitEdges) Size() int {
	return bits.OnesCount8(uint8(e))
}

// UniqueBase returns the base of the single set bit.
func (e BitEdges) UniqueBase() byte {
	if e.Size() != 1 {
		log.Panicf("edge mask %04b does not hold exactly one edge", e)
	}
	return byte(bits.TrailingZeros8(uint8(e)))
}

// ComplementReverse maps the bit for base b to the bit for base 3-b,
// the mask transform applied when viewing a vertex from its reverse
// complement strand.
func (e BitEdges) ComplementReverse() BitEdges {
	return BitEdges(bits.Reverse8(uint8(e)) >> 4)
}
