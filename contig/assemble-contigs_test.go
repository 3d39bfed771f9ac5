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
	"testing"

	"github.com/zjyzjjzmt/megahit/seq"
)

func sequenceOrReverse(s seq.Sequence, want string) bool {
	w := seq.FromString(want)
	return s.Equal(w) || s.Equal(w.ReverseComplement())
}

func TestAssembleChain(t *testing.T) {
	g := makeGraph(3, []string{"AACT", "CTGA", "GACC"}, []uint64{2, 3, 4})
	contigs, infos, n := g.Assemble()
	if n != 1 || len(contigs) != 1 || len(infos) != 1 {
		t.Error("Assemble count failed")
	}
	if !sequenceOrReverse(contigs[0], "AACTGACC") {
		t.Error("Assemble chain contig failed")
	}
	if infos[0].KmerCount != 9 {
		t.Error("Assemble kmer count failed")
	}
}

func TestMergeSimplePaths(t *testing.T) {
	g := makeGraph(3, []string{"AACT", "CTGA", "GACC"}, []uint64{2, 3, 4})
	g.MergeSimplePaths()
	if g.NumVertices() != 1 || !hasContig(g, "AACTGACC") {
		t.Error("MergeSimplePaths failed")
	}
	a := findAdaptor(g, "AACTGACC")
	if a.KmerCount() != 9 {
		t.Error("MergeSimplePaths kmer count failed")
	}
	g.MergeSimplePaths()
	if g.NumVertices() != 1 || !hasContig(g, "AACTGACC") {
		t.Error("MergeSimplePaths idempotence failed")
	}
}

// A single-k-mer palindromic vertex never takes part in a chain: the
// two strands of the chain would disagree about the merged sequence.
func TestMergeStopsAtPalindrome(t *testing.T) {
	g := makeGraph(4, []string{"AAAC", "AACG", "ACGT"}, []uint64{1, 1, 1})
	g.MergeSimplePaths()
	if g.NumVertices() != 2 {
		t.Error("palindrome merge vertex count failed")
	}
	if !hasContig(g, "AAACG") || !hasContig(g, "ACGT") {
		t.Error("palindrome merge contigs failed")
	}
}

func TestAssembleBranchesStaySplit(t *testing.T) {
	g := makeGraph(4, []string{"ATCCGATGAA", "GAAGTCTTACA", "GAAT"}, []uint64{7, 8, 1})
	contigs, _, n := g.Assemble()
	if n != 3 {
		t.Error("Assemble branch count failed")
	}
	for i := 1; i < len(contigs); i++ {
		if len(contigs[i]) > len(contigs[i-1]) {
			t.Error("Assemble sort order failed")
		}
	}
}
