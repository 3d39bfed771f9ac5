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

package kmer

import (
	"log"

	"github.com/zjyzjjzmt/megahit/seq"
)

// MaxSize is the largest k-mer size that fits in a Kmer.
const MaxSize = 64

// A Kmer is a fixed-width k-mer of up to MaxSize bases, packed 2 bits
// per base. Base i of the k-mer occupies bits 2*(i%32) of word i/32.
// Kmer values are comparable and can be used directly as map keys.
type Kmer struct {
	lo, hi uint64
	size   uint32
}

// Make returns an all-A k-mer of the given size.
func Make(size uint32) Kmer {
	if size == 0 || size > MaxSize {
		log.Panicf("invalid k-mer size %v", size)
	}
	return Kmer{size: size}
}

// FromSequence packs a sequence of base codes into a Kmer.
func FromSequence(s seq.Sequence) Kmer {
	k := Make(uint32(len(s)))
	for i, base := range s {
		k = k.set(uint32(i), base)
	}
	return k
}

// Size returns the number of bases in the k-mer.
func (k Kmer) Size() uint32 {
	return k.size
}

// Get returns the base code at the given position.
func (k Kmer) Get(i uint32) byte {
	if i >= k.size {
		log.Panicf("k-mer index %v out of range for size %v", i, k.size)
	}
	if i < 32 {
		return byte(k.lo>>(2*i)) & 3
	}
	return byte(k.hi>>(2*(i-32))) & 3
}

func (k Kmer) set(i uint32, base byte) Kmer {
	if i < 32 {
		shift := 2 * i
		k.lo = (k.lo &^ (3 << shift)) | uint64(base&3)<<shift
	} else {
		shift := 2 * (i - 32)
		k.hi = (k.hi &^ (3 << shift)) | uint64(base&3)<<shift
	}
	return k
}

// ShiftAppend drops the first base and appends x at the end,
// yielding the k-mer of the sequence shifted one base forward.
func (k Kmer) ShiftAppend(x byte) Kmer {
	k.lo = k.lo>>2 | (k.hi&3)<<62
	k.hi >>= 2
	return k.set(k.size-1, x)
}

// ShiftPreappend drops the last base and prepends x at the front,
// yielding the k-mer of the sequence shifted one base backward.
func (k Kmer) ShiftPreappend(x byte) Kmer {
	k.hi = k.hi<<2 | k.lo>>62
	k.lo = k.lo << 2
	k = k.set(0, x)
	return k.mask()
}

func (k Kmer) mask() Kmer {
	if k.size <= 32 {
		if k.size < 32 {
			k.lo &= 1<<(2*k.size) - 1
		}
		k.hi = 0
	} else if k.size < 64 {
		k.hi &= 1<<(2*(k.size-32)) - 1
	}
	return k
}

// ReverseComplement returns the reverse complement of the k-mer.
func (k Kmer) ReverseComplement() Kmer {
	result := Kmer{size: k.size}
	for i := uint32(0); i < k.size; i++ {
		result = result.set(k.size-1-i, 3-k.Get(i))
	}
	return result
}

// Less compares two k-mers of the same size lexicographically.
func (k Kmer) Less(o Kmer) bool {
	for i := uint32(0); i < k.size; i++ {
		a, b := k.Get(i), o.Get(i)
		if a != b {
			return a < b
		}
	}
	return false
}

// Canonical returns the lexicographically smaller of the k-mer and
// its reverse complement, the "unique format" under which both
// strands of a k-mer index to the same entry.
func (k Kmer) Canonical() Kmer {
	if rc := k.ReverseComplement(); rc.Less(k) {
		return rc
	}
	return k
}

// IsPalindrome tells whether the k-mer equals its own reverse
// complement.
func (k Kmer) IsPalindrome() bool {
	return k == k.ReverseComplement()
}

// Sequence unpacks the k-mer into a sequence of base codes.
func (k Kmer) Sequence() seq.Sequence {
	result := make(seq.Sequence, k.size)
	for i := uint32(0); i < k.size; i++ {
		result[i] = k.Get(i)
	}
	return result
}

// String returns the A/C/G/T representation of the k-mer.
func (k Kmer) String() string {
	return k.Sequence().String()
}
