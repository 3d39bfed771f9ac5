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

func makeVertex(contig string, kmerCount uint64, kmerSize uint32) *Vertex {
	return &Vertex{
		contig:    seq.FromString(contig),
		kmerCount: kmerCount,
		kmerSize:  kmerSize,
	}
}

func TestVertexCoverage(t *testing.T) {
	v := makeVertex("AACGTA", 8, 3)
	if v.NumKmers() != 4 {
		t.Error("NumKmers failed")
	}
	if v.Coverage() != 2 {
		t.Error("Coverage failed")
	}
}

func TestAdaptorReverseComplement(t *testing.T) {
	a := Adapt(makeVertex("AACG", 2, 3))
	r := a.ReverseComplement()
	if !r.IsReverse() || r.ReverseComplement().IsReverse() {
		t.Error("ReverseComplement flag failed")
	}
	if r.Contig().String() != "CGTT" {
		t.Error("ReverseComplement contig failed")
	}
	if a.GetBase(0) != 0 || r.GetBase(0) != 1 || r.GetBase(3) != 3 {
		t.Error("GetBase failed")
	}
}

func TestAdaptorEdgeViews(t *testing.T) {
	a := Adapt(makeVertex("AACG", 2, 3))
	r := a.ReverseComplement()
	a.AddOutEdge(2)
	if !a.OutEdges().Has(2) || a.OutEdges().Size() != 1 {
		t.Error("AddOutEdge forward failed")
	}
	if !r.InEdges().Has(1) || r.InEdges().Size() != 1 {
		t.Error("reverse in view failed")
	}
	if r.OutEdges().Size() != 0 {
		t.Error("reverse out view failed")
	}
	r.AddOutEdge(0)
	if !a.InEdges().Has(3) {
		t.Error("forward in view failed")
	}
	r.RemoveOutEdge(0)
	if a.InEdges().Size() != 0 {
		t.Error("RemoveOutEdge failed")
	}
}

func TestAdaptorBoundaryKmers(t *testing.T) {
	a := Adapt(makeVertex("AACG", 2, 3))
	if a.BeginKmer(3).String() != "AAC" || a.EndKmer(3).String() != "ACG" {
		t.Error("forward boundary kmers failed")
	}
	r := a.ReverseComplement()
	if r.BeginKmer(3).String() != "CGT" || r.EndKmer(3).String() != "GTT" {
		t.Error("reverse boundary kmers failed")
	}
}

func TestNullAdaptorPanics(t *testing.T) {
	var a VertexAdaptor
	if !a.IsNull() {
		t.Error("IsNull failed")
	}
	defer func() {
		if recover() == nil {
			t.Error("null adaptor use did not panic")
		}
	}()
	a.Contig()
}
