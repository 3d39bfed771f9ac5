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

func TestGetSimilarity(t *testing.T) {
	a := seq.FromString("TGGATCAA")
	b := seq.FromString("TGGTTCAA")
	if getSimilarity(a, a) != 1 {
		t.Error("getSimilarity identical failed")
	}
	if getSimilarity(a, b) != 0.875 {
		t.Error("getSimilarity substitution failed")
	}
	if getSimilarity(nil, nil) != 1 {
		t.Error("getSimilarity empty failed")
	}
	if s := getSimilarity(seq.FromString("AAAA"), seq.FromString("TTTT")); s != 0 {
		t.Error("getSimilarity disjoint failed")
	}
	if s := getSimilarity(seq.FromString("AAAA"), seq.FromString("AAA")); s != 0.75 {
		t.Error("getSimilarity deletion failed")
	}
}

// Two near-identical branches between the same flanks, where the
// higher-coverage variant must survive.
func makeBubbleGraph() *Graph {
	return makeGraph(4,
		[]string{"CATGG", "TGGATCAA", "TGGTTCAA", "CAAGC"},
		[]uint64{20, 50, 10, 20})
}

func TestRemoveBubble(t *testing.T) {
	g := makeBubbleGraph()
	g.Config.SimilarityThreshold = 0.8
	if g.RemoveBubble() != 1 {
		t.Error("RemoveBubble count failed")
	}
	if g.NumVertices() != 1 || !hasContig(g, "CATGGATCAAGC") {
		t.Error("RemoveBubble survivor failed")
	}
	a := findAdaptor(g, "CATGGATCAAGC")
	if a.KmerCount() != 90 {
		t.Error("RemoveBubble kmer count failed")
	}
}

func TestRemoveBubbleThreshold(t *testing.T) {
	g := makeBubbleGraph()
	g.Config.SimilarityThreshold = 0.95
	if g.RemoveBubble() != 0 {
		t.Error("RemoveBubble dissimilar count failed")
	}
	if g.NumVertices() != 4 {
		t.Error("RemoveBubble dissimilar graph failed")
	}
}

func TestRemoveBubbleNoBranch(t *testing.T) {
	g := makeGraph(3, []string{"AACT", "CTGA"}, []uint64{2, 3})
	if g.RemoveBubble() != 0 || g.NumVertices() != 2 {
		t.Error("RemoveBubble chain failed")
	}
}
