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

func (g *Graph) splitLength() int {
	if g.Config.SplitLength > 0 {
		return g.Config.SplitLength
	}
	return 2 * int(g.kmerSize)
}

// branchChain walks forward from an adaptor while the walk is
// unambiguous, bounded by a total base budget.
func (g *Graph) branchChain(a VertexAdaptor, budget int) []VertexAdaptor {
	var chain []VertexAdaptor
	seen := make(map[uint32]bool)
	length := 0
	for {
		if seen[a.ID()] {
			return chain
		}
		seen[a.ID()] = true
		chain = append(chain, a)
		length += a.ContigSize()
		if length > budget || a.OutEdges().Size() != 1 {
			return chain
		}
		next := g.GetNeighbor(a, a.OutEdges().UniqueBase())
		if next.IsNull() {
			return chain
		}
		a = next
	}
}

// convergencePoint finds the first vertex, if any, that every
// outgoing branch of the adaptor reaches within a bounded local
// walk.
func (g *Graph) convergencePoint(current VertexAdaptor) (VertexAdaptor, bool) {
	neighbors := g.GetNeighbors(current)
	if len(neighbors) < 2 {
		return VertexAdaptor{}, false
	}
	budget := 2 * g.splitLength()
	first := g.branchChain(neighbors[0], budget)
	common := make(map[uint32]bool, len(first))
	for _, a := range first {
		common[a.ID()] = true
	}
	for _, n := range neighbors[1:] {
		reachable := make(map[uint32]bool)
		for _, a := range g.branchChain(n, budget) {
			reachable[a.ID()] = true
		}
		for id := range common {
			if !reachable[id] {
				delete(common, id)
			}
		}
		if len(common) == 0 {
			return VertexAdaptor{}, false
		}
	}
	for _, a := range first {
		if common[a.ID()] {
			return a, true
		}
	}
	return VertexAdaptor{}, false
}

// IsConverged tells whether every outgoing branch from the adaptor
// rejoins at a common vertex within a bounded local walk. Branches
// that do not converge represent real ambiguity and are left alone
// by SplitBranches.
func (g *Graph) IsConverged(current VertexAdaptor) bool {
	if current.OutEdges().Size() <= 1 {
		return true
	}
	_, ok := g.convergencePoint(current)
	return ok
}

// SplitBranches resolves locally converged junctions: where all
// branches of a fork rejoin at a short shared vertex whose
// predecessors are otherwise unambiguous, the shared material is
// duplicated into each predecessor so every branch continues as a
// clean simple path. Returns the number of junctions split.
func (g *Graph) SplitBranches() int64 {
	type junction struct {
		shared VertexAdaptor
		preds  []VertexAdaptor
	}
	var junctions []junction
	claimed := make(map[uint32]bool)
	for _, v := range g.vertices {
		if v.isDeleted() {
			continue
		}
		a := Adapt(v)
	strands:
		for strand := 0; strand < 2; strand++ {
			current := a
			a = a.ReverseComplement()
			if current.OutEdges().Size() < 2 {
				continue
			}
			shared, ok := g.convergencePoint(current)
			if !ok || claimed[shared.ID()] {
				continue
			}
			if shared.ContigSize() >= g.splitLength() {
				continue
			}
			if shared.ContigSize() == int(g.kmerSize) && shared.Contig().IsPalindrome() {
				continue
			}
			var preds []VertexAdaptor
			for _, q := range g.GetNeighbors(shared.ReverseComplement()) {
				preds = append(preds, q.ReverseComplement())
			}
			if len(preds) < 2 {
				continue
			}
			ids := map[uint32]bool{shared.ID(): true}
			for _, p := range preds {
				if claimed[p.ID()] || ids[p.ID()] || p.OutEdges().Size() != 1 {
					continue strands
				}
				if g.GetNeighbor(p, p.OutEdges().UniqueBase()).ID() != shared.ID() {
					continue strands
				}
				ids[p.ID()] = true
			}
			claimed[shared.ID()] = true
			for _, p := range preds {
				claimed[p.ID()] = true
			}
			junctions = append(junctions, junction{shared, preds})
		}
	}
	for _, j := range junctions {
		for _, p := range j.preds {
			var path Path
			path.Append(p)
			path.Append(j.shared)
			merged, info := path.Merge(g.kmerSize)
			info.KmerCount = p.KmerCount() + j.shared.KmerCount()/uint64(len(j.preds))
			g.vertices = append(g.vertices, &Vertex{
				contig:    merged,
				kmerCount: info.KmerCount,
				kmerSize:  g.kmerSize,
				id:        uint32(len(g.vertices)),
			})
			p.Vertex().setDeleted()
		}
		j.shared.Vertex().setDeleted()
	}
	if len(junctions) > 0 {
		g.Refresh()
		g.MergeSimplePaths()
	}
	return int64(len(junctions))
}
