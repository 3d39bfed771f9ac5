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

// Package contig implements the compacted de Bruijn graph used for
// contig simplification: each vertex is a contig standing for itself
// and its reverse complement, and each edge records that two contigs
// are adjacent in the underlying de Bruijn graph. The graph supports
// merging of unambiguous chains, tip trimming, coverage pruning,
// bubble removal, branch splitting, and component-wise longest-path
// extraction.
//
// A Graph instance is single-threaded: callers must serialize all
// access. Adaptors handed out by navigation are valid only until the
// next structural pass; using an adaptor to a compacted-away vertex
// panics.
package contig

import (
	"log"

	"github.com/exascience/pargo/parallel"

	"github.com/zjyzjjzmt/megahit/kmer"
	"github.com/zjyzjjzmt/megahit/seq"
)

// Config holds the policy knobs of the simplification passes.
type Config struct {
	// SimilarityThreshold is the minimum sequence similarity for two
	// parallel paths to be collapsed as a bubble.
	SimilarityThreshold float64
	// BubbleSteps is the deterministic step budget for one bubble
	// path search.
	BubbleSteps int
	// LocalWindow is the region length, in bases, over which local
	// coverage is estimated.
	LocalWindow int
	// SplitLength is the maximum length of a shared junction vertex
	// considered for branch splitting. Zero means twice the k-mer
	// size.
	SplitLength int
}

// DefaultConfig returns the default simplification policy.
func DefaultConfig() Config {
	return Config{
		SimilarityThreshold: 0.98,
		BubbleSteps:         500,
		LocalWindow:         100,
		SplitLength:         0,
	}
}

// Graph is the compacted contig graph. It owns the vertex store and
// the canonical boundary-k-mer index; the index and the edge masks
// are derived caches over the store and must be refreshed after any
// structural mutation.
type Graph struct {
	vertices     []*Vertex
	beginKmerMap map[kmer.Kmer]uint32
	numEdges     uint64
	kmerSize     uint32

	// Config may be adjusted between passes.
	Config Config
}

// New returns an empty graph for the given k-mer size.
func New(kmerSize uint32) *Graph {
	return &Graph{
		kmerSize: kmerSize,
		Config:   DefaultConfig(),
	}
}

// KmerSize returns the k-mer size of the graph.
func (g *Graph) KmerSize() uint32 {
	return g.kmerSize
}

// SetKmerSize sets the k-mer size. Only meaningful before Initialize.
func (g *Graph) SetKmerSize(kmerSize uint32) {
	g.kmerSize = kmerSize
}

// NumVertices returns the number of vertices in the store, including
// ones marked deleted but not yet compacted away.
func (g *Graph) NumVertices() int {
	return len(g.vertices)
}

// NumEdges returns the number of edges in the graph.
func (g *Graph) NumEdges() uint64 {
	return g.numEdges
}

// Vertices returns the raw vertex store for direct iteration.
func (g *Graph) Vertices() []*Vertex {
	return g.vertices
}

// Clear releases the entire graph state.
func (g *Graph) Clear() {
	g.vertices = nil
	g.beginKmerMap = nil
	g.numEdges = 0
}

// Swap exchanges the full state of two graphs.
func (g *Graph) Swap(other *Graph) {
	*g, *other = *other, *g
}

// Initialize populates the vertex store from the given contigs and
// their metadata, builds the boundary-k-mer index, and recomputes all
// edge masks. Contigs shorter than the k-mer size cannot take part in
// adjacency and are dropped. Mismatched input lengths or an unset
// k-mer size are configuration errors and panic before any traversal.
func (g *Graph) Initialize(contigs []seq.Sequence, infos []ContigInfo) {
	if len(contigs) != len(infos) {
		log.Panicf("contig/metadata count mismatch: %v contigs, %v records", len(contigs), len(infos))
	}
	if g.kmerSize == 0 {
		log.Panic("k-mer size not set")
	}
	for _, v := range g.vertices {
		v.status |= vertexFlagDead
	}
	g.vertices = make([]*Vertex, 0, len(contigs))
	for i, c := range contigs {
		if len(c) < int(g.kmerSize) {
			continue
		}
		g.vertices = append(g.vertices, &Vertex{
			contig:    c,
			kmerCount: infos[i].KmerCount,
			kmerSize:  g.kmerSize,
			id:        uint32(len(g.vertices)),
			inEdges:   infos[i].InEdges,
			outEdges:  infos[i].OutEdges,
		})
	}
	g.buildBeginKmerMap()
	g.RefreshEdges()
}

// buildBeginKmerMap indexes the canonical begin k-mer of both strands
// of every vertex. The first vertex claiming a canonical k-mer keeps
// the entry.
func (g *Graph) buildBeginKmerMap() {
	g.beginKmerMap = make(map[kmer.Kmer]uint32, 2*len(g.vertices))
	for _, v := range g.vertices {
		a := Adapt(v)
		for strand := 0; strand < 2; strand++ {
			key := a.BeginKmer(g.kmerSize).Canonical()
			if _, ok := g.beginKmerMap[key]; !ok {
				g.beginKmerMap[key] = v.id
			}
			a = a.ReverseComplement()
		}
	}
}

// RefreshVertices removes vertices marked deleted and compacts the
// identities of the survivors. Removed records are marked dead so
// that outstanding adaptors onto them fail fast instead of silently
// addressing a reused slot. The k-mer index and edge masks are stale
// afterwards; callers go through Refresh.
func (g *Graph) RefreshVertices() {
	live := g.vertices[:0]
	for _, v := range g.vertices {
		if v.isDeleted() {
			v.status |= vertexFlagDead
			continue
		}
		v.id = uint32(len(live))
		live = append(live, v)
	}
	tail := g.vertices[len(live):]
	for i := range tail {
		tail[i] = nil
	}
	g.vertices = live
}

// RefreshEdges recomputes the edge masks of every vertex against the
// current index: for each vertex end and each of the 4 possible
// extending bases, the edge bit is set iff the extended boundary
// k-mer resolves to a live vertex. The per-vertex recomputation only
// reads shared state and is run in parallel.
func (g *Graph) RefreshEdges() {
	parallel.Range(0, len(g.vertices), 0, func(low, high int) {
		for i := low; i < high; i++ {
			v := g.vertices[i]
			v.outEdges = 0
			v.inEdges = 0
			a := Adapt(v)
			for strand := 0; strand < 2; strand++ {
				for x := byte(0); x < 4; x++ {
					if !g.GetNeighbor(a, x).IsNull() {
						a.AddOutEdge(x)
					}
				}
				a = a.ReverseComplement()
			}
		}
	})
	total := parallel.RangeReduceInt(0, len(g.vertices), 0,
		func(low, high int) int {
			degree := 0
			for i := low; i < high; i++ {
				degree += g.vertices[i].outEdges.Size() + g.vertices[i].inEdges.Size()
			}
			return degree
		},
		func(x, y int) int {
			return x + y
		})
	g.numEdges = uint64(total) / 2
}

// Refresh compacts the vertex store, rebuilds the k-mer index, and
// recomputes all edge masks: the safe default after any structural
// pass.
func (g *Graph) Refresh() {
	g.RefreshVertices()
	g.buildBeginKmerMap()
	g.RefreshEdges()
}

// ClearStatus resets the traversal status bits of every vertex.
func (g *Graph) ClearStatus() {
	parallel.Range(0, len(g.vertices), 0, func(low, high int) {
		for i := low; i < high; i++ {
			g.vertices[i].clearStatus()
		}
	})
}

// AddEdge records the adjacency from one adaptor to another, then
// performs the identical update on the reverse-complement pair so
// that the edge is visible, in complementary form, from both
// endpoints.
func (g *Graph) AddEdge(from, to VertexAdaptor) {
	from.AddOutEdge(to.GetBase(int(g.kmerSize) - 1))
	from, to = to.ReverseComplement(), from.ReverseComplement()
	from.AddOutEdge(to.GetBase(int(g.kmerSize) - 1))
	g.numEdges++
}

// RemoveEdge removes the outgoing edge of the adaptor for base x,
// together with its reverse-complement twin.
func (g *Graph) RemoveEdge(current VertexAdaptor, x byte) {
	current.RemoveOutEdge(x)
	next := g.GetNeighbor(current, x)
	if next.IsNull() {
		log.Panicf("removing edge %v from vertex %v without a resolvable neighbor", x, current.ID())
	}
	next = next.ReverseComplement()
	next.RemoveOutEdge(3 - current.GetBase(0))
	g.numEdges--
}

// GetNeighbor resolves the neighbor reached from the adaptor by
// extending with base x: the trailing k-1 bases of the current
// contig followed by x must be the begin k-mer of the neighbor. The
// null adaptor is returned when no live vertex matches.
func (g *Graph) GetNeighbor(current VertexAdaptor, x byte) VertexAdaptor {
	next := current.EndKmer(g.kmerSize).ShiftAppend(x)
	return g.findVertexAdaptorByBeginKmer(next)
}

// GetNeighbors returns the neighbors for all set out-edge bits of the
// adaptor.
func (g *Graph) GetNeighbors(current VertexAdaptor) []VertexAdaptor {
	var neighbors []VertexAdaptor
	edges := current.OutEdges()
	for x := byte(0); x < 4; x++ {
		if edges.Has(x) {
			if next := g.GetNeighbor(current, x); !next.IsNull() {
				neighbors = append(neighbors, next)
			}
		}
	}
	return neighbors
}

// findVertexAdaptorByBeginKmer looks up the vertex whose begin k-mer,
// on either strand, equals the query.
func (g *Graph) findVertexAdaptorByBeginKmer(beginKmer kmer.Kmer) VertexAdaptor {
	id, ok := g.beginKmerMap[beginKmer.Canonical()]
	if !ok {
		return VertexAdaptor{}
	}
	v := g.vertices[id]
	if v.isDeleted() {
		return VertexAdaptor{}
	}
	current := Adapt(v)
	if current.BeginKmer(g.kmerSize) == beginKmer {
		return current
	}
	current = current.ReverseComplement()
	if current.BeginKmer(g.kmerSize) == beginKmer {
		return current
	}
	return VertexAdaptor{}
}
