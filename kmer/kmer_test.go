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
	"math/rand"
	"testing"

	"github.com/zjyzjjzmt/megahit/seq"
)

func makeRandomSequence(length int) seq.Sequence {
	result := make(seq.Sequence, length)
	for i := range result {
		result[i] = byte(rand.Intn(4))
	}
	return result
}

func TestFromSequence(t *testing.T) {
	for _, size := range []int{1, 4, 31, 32, 33, 40, 63, 64} {
		s := makeRandomSequence(size)
		k := FromSequence(s)
		if k.Size() != uint32(size) {
			t.Error("FromSequence size failed")
		}
		for i := 0; i < size; i++ {
			if k.Get(uint32(i)) != s[i] {
				t.Error("FromSequence Get failed")
			}
		}
		if !k.Sequence().Equal(s) {
			t.Error("Sequence round trip failed")
		}
	}
}

func TestString(t *testing.T) {
	if FromSequence(seq.FromString("ACGTACGT")).String() != "ACGTACGT" {
		t.Error("String failed")
	}
}

func TestShiftAppend(t *testing.T) {
	for _, size := range []int{2, 16, 32, 33, 47, 64} {
		s := makeRandomSequence(size)
		x := byte(rand.Intn(4))
		shifted := FromSequence(s).ShiftAppend(x)
		want := FromSequence(append(s[1:].Copy(), x))
		if shifted != want {
			t.Error("ShiftAppend failed")
		}
	}
}

func TestShiftPreappend(t *testing.T) {
	for _, size := range []int{2, 16, 32, 33, 47, 64} {
		s := makeRandomSequence(size)
		x := byte(rand.Intn(4))
		shifted := FromSequence(s).ShiftPreappend(x)
		want := FromSequence(append(seq.Sequence{x}, s[:size-1]...))
		if shifted != want {
			t.Error("ShiftPreappend failed")
		}
	}
}

func TestReverseComplement(t *testing.T) {
	if FromSequence(seq.FromString("AACG")).ReverseComplement() != FromSequence(seq.FromString("CGTT")) {
		t.Error("ReverseComplement AACG failed")
	}
	for _, size := range []int{1, 21, 32, 33, 50, 64} {
		s := makeRandomSequence(size)
		k := FromSequence(s)
		if k.ReverseComplement().ReverseComplement() != k {
			t.Error("ReverseComplement involution failed")
		}
		if !k.ReverseComplement().Sequence().Equal(s.ReverseComplement()) {
			t.Error("ReverseComplement sequence failed")
		}
	}
}

func TestLess(t *testing.T) {
	a := FromSequence(seq.FromString("AACG"))
	b := FromSequence(seq.FromString("AACT"))
	if !a.Less(b) || b.Less(a) || a.Less(a) {
		t.Error("Less ordering failed")
	}
	long1 := FromSequence(seq.FromString("AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAC"))
	long2 := FromSequence(seq.FromString("AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAG"))
	if !long1.Less(long2) || long2.Less(long1) {
		t.Error("Less long kmer failed")
	}
}

func TestCanonical(t *testing.T) {
	for _, size := range []int{4, 15, 33, 64} {
		s := makeRandomSequence(size)
		k := FromSequence(s)
		if k.Canonical() != k.ReverseComplement().Canonical() {
			t.Error("Canonical strand symmetry failed")
		}
		c := k.Canonical()
		if c != k && c != k.ReverseComplement() {
			t.Error("Canonical representative failed")
		}
		if c.ReverseComplement().Less(c) {
			t.Error("Canonical minimality failed")
		}
	}
}

func TestIsPalindrome(t *testing.T) {
	if !FromSequence(seq.FromString("ACGT")).IsPalindrome() {
		t.Error("IsPalindrome ACGT failed")
	}
	if FromSequence(seq.FromString("AACG")).IsPalindrome() {
		t.Error("IsPalindrome AACG failed")
	}
	if FromSequence(seq.FromString("ACG")).IsPalindrome() {
		t.Error("IsPalindrome odd size failed")
	}
}
