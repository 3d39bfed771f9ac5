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

import "testing"

func TestGetComponents(t *testing.T) {
	g := makeGraph(4,
		[]string{"ATCCGATGAA", "GAAGTCTTACA", "TTGGCAGTCC"},
		[]uint64{70, 80, 7})
	components, strs := g.GetComponents()
	if len(components) != 2 || len(strs) != 2 {
		t.Error("GetComponents count failed")
	}
	total := 0
	for _, component := range components {
		total += len(component)
	}
	if total != 3 {
		t.Error("GetComponents coverage failed")
	}
	for _, s := range strs {
		if s == "" {
			t.Error("GetComponents summary failed")
		}
	}
}

func TestIsValid(t *testing.T) {
	g := makeBubbleGraph()
	components, _ := g.GetComponents()
	if len(components) != 1 || !g.IsValid(components[0]) {
		t.Error("IsValid bubble component failed")
	}
	h := makeGraph(4, []string{"ATCCGATGAA", "GAAGTCTTACA", "GAAT"}, []uint64{70, 80, 1})
	hc, _ := h.GetComponents()
	if len(hc) != 1 || h.IsValid(hc[0]) {
		t.Error("IsValid two sinks failed")
	}
	cyclic := makeGraph(3, []string{"ACGAC"}, []uint64{3})
	cc, _ := cyclic.GetComponents()
	if len(cc) != 1 || cyclic.IsValid(cc[0]) {
		t.Error("IsValid cycle failed")
	}
}

func TestTopSort(t *testing.T) {
	g := makeBubbleGraph()
	components, _ := g.GetComponents()
	order := g.TopSort(components[0])
	if len(order) != 4 {
		t.Error("TopSort length failed")
	}
	position := make(map[uint32]int, len(order))
	for i, a := range order {
		position[a.ID()] = i
	}
	for _, a := range order {
		for _, next := range g.GetNeighbors(a) {
			if position[a.ID()] >= position[next.ID()] {
				t.Error("TopSort order failed")
			}
		}
	}
}

func TestGetDepth(t *testing.T) {
	g := makeGraph(4, []string{"ATCCGATGAA", "GAAGTCTTACA", "GAAT"}, []uint64{70, 80, 1})
	maximum := 0
	a := findAdaptor(g, "ATCCGATGAA")
	g.getDepth(a, a.ContigSize(), &maximum, 100)
	if maximum != 18 {
		t.Error("getDepth failed")
	}
}

func TestFindLongestPath(t *testing.T) {
	g := makeBubbleGraph()
	components, _ := g.GetComponents()
	var path Path
	g.FindLongestPath(components[0], &path)
	if path.Size() != 3 {
		t.Error("FindLongestPath size failed")
	}
	merged, info := path.Merge(g.KmerSize())
	if !sequenceOrReverse(merged, "CATGGATCAAGC") {
		t.Error("FindLongestPath contig failed")
	}
	if info.KmerCount != 90 {
		t.Error("FindLongestPath kmer count failed")
	}
}
