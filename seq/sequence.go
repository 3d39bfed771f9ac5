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

package seq

import (
	"log"
)

// A Sequence is a nucleotide sequence stored as 2-bit base codes,
// one byte per base: A=0, C=1, G=2, T=3. The complement of a base
// code b is 3-b.
type Sequence []byte

const baseChars = "ACGT"

var charToCode = ['t' + 1]byte{
	'A': 0, 'C': 1, 'G': 2, 'T': 3,
	'a': 0, 'c': 1, 'g': 2, 't': 3,
}

var validChar = ['t' + 1]bool{
	'A': true, 'C': true, 'G': true, 'T': true,
	'a': true, 'c': true, 'g': true, 't': true,
}

// FromString converts a string of A/C/G/T characters into a Sequence.
func FromString(s string) Sequence {
	result := make(Sequence, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if int(c) >= len(validChar) || !validChar[c] {
			log.Panicf("invalid base %q in sequence %v", c, s)
		}
		result[i] = charToCode[c]
	}
	return result
}

// String returns the A/C/G/T representation of the sequence.
func (s Sequence) String() string {
	result := make([]byte, len(s))
	for i, b := range s {
		result[i] = baseChars[b]
	}
	return string(result)
}

// Complement returns the complement of a base code.
func Complement(base byte) byte {
	return 3 - base
}

// ReverseComplement returns a new Sequence holding the reverse
// complement of s.
func (s Sequence) ReverseComplement() Sequence {
	result := make(Sequence, len(s))
	for i, b := range s {
		result[len(s)-1-i] = 3 - b
	}
	return result
}

// Equal tells whether two sequences hold the same bases.
func (s Sequence) Equal(t Sequence) bool {
	if len(s) != len(t) {
		return false
	}
	for i, b := range s {
		if t[i] != b {
			return false
		}
	}
	return true
}

// IsPalindrome tells whether the sequence equals its own reverse
// complement. Only even-length sequences can be palindromic.
func (s Sequence) IsPalindrome() bool {
	if len(s)&1 == 1 {
		return false
	}
	for i, j := 0, len(s)-1; i <= j; i, j = i+1, j-1 {
		if s[i] != 3-s[j] {
			return false
		}
	}
	return true
}

// Copy returns a fresh copy of the sequence.
func (s Sequence) Copy() Sequence {
	result := make(Sequence, len(s))
	copy(result, s)
	return result
}
