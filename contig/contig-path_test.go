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

func TestPathMerge(t *testing.T) {
	var path Path
	path.Append(Adapt(makeVertex("AACT", 2, 3)))
	path.Append(Adapt(makeVertex("CTGA", 3, 3)))
	merged, info := path.Merge(3)
	if merged.String() != "AACTGA" {
		t.Error("Merge contig failed")
	}
	if info.KmerCount != 5 {
		t.Error("Merge kmer count failed")
	}
}

func TestPathMergeSingle(t *testing.T) {
	var path Path
	path.Append(Adapt(makeVertex("AACT", 2, 3)).ReverseComplement())
	merged, info := path.Merge(3)
	if merged.String() != "AGTT" {
		t.Error("single Merge failed")
	}
	if info.KmerCount != 2 {
		t.Error("single Merge kmer count failed")
	}
}

func TestPathReverseComplement(t *testing.T) {
	var path Path
	path.Append(Adapt(makeVertex("AACT", 2, 3)))
	path.Append(Adapt(makeVertex("CTGA", 3, 3)))
	path.ReverseComplement()
	if path.Size() != 2 {
		t.Error("ReverseComplement size failed")
	}
	if path.Front().Contig().String() != "TCAG" || path.Back().Contig().String() != "AGTT" {
		t.Error("ReverseComplement order failed")
	}
	merged, _ := path.Merge(3)
	if merged.String() != "TCAGTT" {
		t.Error("ReverseComplement Merge failed")
	}
}

func TestPathFrontBack(t *testing.T) {
	var path Path
	a := Adapt(makeVertex("AACT", 2, 3))
	path.Append(a)
	if path.Front().Vertex() != a.Vertex() || path.Back().Vertex() != a.Vertex() {
		t.Error("Front/Back failed")
	}
	path.Clear()
	if path.Size() != 0 {
		t.Error("Clear failed")
	}
}
