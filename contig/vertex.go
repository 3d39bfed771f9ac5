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

	"github.com/zjyzjjzmt/megahit/kmer"
	"github.com/zjyzjjzmt/megahit/seq"
)

const (
	vertexFlagUsed = 1 << iota
	vertexFlagDeleted
	// vertexFlagDead is set on records removed during vertex
	// compaction; adaptors still referencing them fail fast.
	vertexFlagDead
)

// A Vertex is one contig and, implicitly, its reverse complement.
// The edge masks always describe the forward orientation of the
// stored sequence; the reverse-complement view is derived by
// VertexAdaptor, never materialized.
type Vertex struct {
	contig            seq.Sequence
	kmerCount         uint64
	kmerSize          uint32
	id                uint32
	inEdges, outEdges BitEdges
	status            uint32
}

// ID returns the vertex's position in the vertex store.
func (v *Vertex) ID() uint32 {
	return v.id
}

// Contig returns the stored forward-orientation sequence.
func (v *Vertex) Contig() seq.Sequence {
	return v.contig
}

// ContigSize returns the length of the stored sequence.
func (v *Vertex) ContigSize() int {
	return len(v.contig)
}

// KmerCount returns the total number of k-mer observations
// supporting the contig.
func (v *Vertex) KmerCount() uint64 {
	return v.kmerCount
}

// NumKmers returns the number of k-mer positions in the contig.
func (v *Vertex) NumKmers() int {
	return len(v.contig) - int(v.kmerSize) + 1
}

// Coverage returns the average per-k-mer coverage depth of the contig.
func (v *Vertex) Coverage() float64 {
	return float64(v.kmerCount) / float64(v.NumKmers())
}

func (v *Vertex) isUsed() bool {
	return v.status&vertexFlagUsed != 0
}

func (v *Vertex) setUsed() {
	v.status |= vertexFlagUsed
}

func (v *Vertex) isDeleted() bool {
	return v.status&vertexFlagDeleted != 0
}

func (v *Vertex) setDeleted() {
	v.status |= vertexFlagDeleted
}

func (v *Vertex) isDead() bool {
	return v.status&vertexFlagDead != 0
}

func (v *Vertex) clearStatus() {
	v.status &^= vertexFlagUsed
}

// A VertexAdaptor is a non-owning handle onto a vertex paired with a
// strand flag, giving a uniform view over the vertex and its reverse
// complement. The zero value is the null adaptor, the sentinel for
// "no such neighbor".
type VertexAdaptor struct {
	vertex  *Vertex
	reverse bool
}

// Adapt returns the forward-strand adaptor for a vertex.
func Adapt(v *Vertex) VertexAdaptor {
	return VertexAdaptor{vertex: v}
}

// IsNull tells whether the adaptor references no vertex.
func (a VertexAdaptor) IsNull() bool {
	return a.vertex == nil
}

func (a VertexAdaptor) deref() *Vertex {
	v := a.vertex
	if v == nil {
		log.Panic("null vertex adaptor dereferenced")
	}
	if v.isDead() {
		log.Panic("stale vertex adaptor used after vertex compaction")
	}
	return v
}

// ReverseComplement returns the adaptor for the opposite strand of
// the same vertex. No sequence bytes move.
func (a VertexAdaptor) ReverseComplement() VertexAdaptor {
	a.reverse = !a.reverse
	return a
}

// IsReverse tells whether the adaptor views the reverse-complement
// strand.
func (a VertexAdaptor) IsReverse() bool {
	return a.reverse
}

// ID returns the identity of the underlying vertex. Two adaptors
// address the same vertex iff their IDs match, independent of strand.
func (a VertexAdaptor) ID() uint32 {
	return a.deref().id
}

// Vertex returns the underlying vertex record.
func (a VertexAdaptor) Vertex() *Vertex {
	return a.deref()
}

// ContigSize returns the length of the viewed sequence.
func (a VertexAdaptor) ContigSize() int {
	return len(a.deref().contig)
}

// KmerCount returns the k-mer observation count of the vertex.
func (a VertexAdaptor) KmerCount() uint64 {
	return a.deref().kmerCount
}

// Coverage returns the average per-k-mer coverage of the vertex.
func (a VertexAdaptor) Coverage() float64 {
	return a.deref().Coverage()
}

// Contig returns the viewed sequence: the stored one on the forward
// strand, its reverse complement otherwise.
func (a VertexAdaptor) Contig() seq.Sequence {
	v := a.deref()
	if a.reverse {
		return v.contig.ReverseComplement()
	}
	return v.contig
}

// GetBase returns the base code at the given position of the viewed
// sequence without materializing the reverse complement.
func (a VertexAdaptor) GetBase(i int) byte {
	v := a.deref()
	if a.reverse {
		return 3 - v.contig[len(v.contig)-1-i]
	}
	return v.contig[i]
}

// OutEdges returns the outgoing adjacency mask of the viewed strand.
func (a VertexAdaptor) OutEdges() BitEdges {
	v := a.deref()
	if a.reverse {
		return v.inEdges.ComplementReverse()
	}
	return v.outEdges
}

// InEdges returns the incoming adjacency mask of the viewed strand.
func (a VertexAdaptor) InEdges() BitEdges {
	v := a.deref()
	if a.reverse {
		return v.outEdges.ComplementReverse()
	}
	return v.inEdges
}

// AddOutEdge sets the outgoing bit for the given base on the viewed
// strand, routing through the complement-reverse transform when the
// adaptor views the reverse complement.
func (a VertexAdaptor) AddOutEdge(base byte) {
	v := a.deref()
	if a.reverse {
		v.inEdges.Add(3 - base)
	} else {
		v.outEdges.Add(base)
	}
}

// RemoveOutEdge clears the outgoing bit for the given base on the
// viewed strand.
func (a VertexAdaptor) RemoveOutEdge(base byte) {
	v := a.deref()
	if a.reverse {
		v.inEdges.Remove(3 - base)
	} else {
		v.outEdges.Remove(base)
	}
}

// BeginKmer returns the first size bases of the viewed sequence as a
// k-mer.
func (a VertexAdaptor) BeginKmer(size uint32) kmer.Kmer {
	v := a.deref()
	if a.reverse {
		return kmer.FromSequence(v.contig[len(v.contig)-int(size):]).ReverseComplement()
	}
	return kmer.FromSequence(v.contig[:size])
}

// EndKmer returns the last size bases of the viewed sequence as a
// k-mer.
func (a VertexAdaptor) EndKmer(size uint32) kmer.Kmer {
	v := a.deref()
	if a.reverse {
		return kmer.FromSequence(v.contig[:size]).ReverseComplement()
	}
	return kmer.FromSequence(v.contig[len(v.contig)-int(size):])
}
