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

	"github.com/zjyzjjzmt/megahit/seq"
)

// A Path is an ordered walk of vertex adaptors. Adjacent vertices on
// a path overlap by k-1 bases. Paths are transient: they are built
// and consumed inside a single simplification pass and never survive
// a refresh.
type Path struct {
	vertices []VertexAdaptor
}

// Append extends the path with one more adaptor.
func (p *Path) Append(a VertexAdaptor) {
	p.vertices = append(p.vertices, a)
}

// Size returns the number of vertices on the path.
func (p *Path) Size() int {
	return len(p.vertices)
}

// Front returns the first adaptor of the path.
func (p *Path) Front() VertexAdaptor {
	return p.vertices[0]
}

// Back returns the last adaptor of the path.
func (p *Path) Back() VertexAdaptor {
	return p.vertices[len(p.vertices)-1]
}

// Vertices returns the adaptors of the path in walk order.
func (p *Path) Vertices() []VertexAdaptor {
	return p.vertices
}

// ReverseComplement reverses the walk in place, flipping the strand
// of every adaptor.
func (p *Path) ReverseComplement() {
	for i, j := 0, len(p.vertices)-1; i < j; i, j = i+1, j-1 {
		p.vertices[i], p.vertices[j] = p.vertices[j], p.vertices[i]
	}
	for i := range p.vertices {
		p.vertices[i] = p.vertices[i].ReverseComplement()
	}
}

// Clear empties the path for reuse.
func (p *Path) Clear() {
	p.vertices = p.vertices[:0]
}

// Merge concatenates the path into a single contig, collapsing the
// k-1 base overlaps between adjacent vertices, and accumulates the
// metadata of all merged vertices. The resulting info carries the
// boundary masks of the path's two ends.
func (p *Path) Merge(kmerSize uint32) (seq.Sequence, ContigInfo) {
	if len(p.vertices) == 0 {
		log.Panic("cannot merge an empty path")
	}
	length := p.vertices[0].ContigSize()
	for _, a := range p.vertices[1:] {
		length += a.ContigSize() - int(kmerSize) + 1
	}
	result := make(seq.Sequence, 0, length)
	result = append(result, p.vertices[0].Contig()...)
	info := ContigInfo{
		KmerCount: p.vertices[0].KmerCount(),
		InEdges:   p.Front().InEdges(),
		OutEdges:  p.Back().OutEdges(),
	}
	for _, a := range p.vertices[1:] {
		result = append(result, a.Contig()[kmerSize-1:]...)
		info.KmerCount += a.KmerCount()
	}
	return result, info
}
