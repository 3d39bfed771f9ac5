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
	"sort"

	"github.com/zjyzjjzmt/megahit/seq"
)

// getSimilarity scores two sequences by edit distance: 1 minus the
// distance over the longer length, so identical sequences score 1
// and unrelated ones approach 0.
func getSimilarity(x, y seq.Sequence) float64 {
	longer := max(len(x), len(y))
	if longer == 0 {
		return 1
	}
	prev := make([]int, len(y)+1)
	row := make([]int, len(y)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(x); i++ {
		row[0] = i
		for j := 1; j <= len(y); j++ {
			cost := 1
			if x[i-1] == y[j-1] {
				cost = 0
			}
			row[j] = min(prev[j-1]+cost, min(prev[j]+1, row[j-1]+1))
		}
		prev, row = row, prev
	}
	return 1 - float64(prev[len(y)])/float64(longer)
}

// mergeWalk concatenates a branch walk into one sequence.
func mergeWalk(walk []VertexAdaptor, kmerSize uint32) seq.Sequence {
	var path Path
	for _, a := range walk {
		path.Append(a)
	}
	merged, _ := path.Merge(kmerSize)
	return merged
}

// findSimilarPath searches outward from start for a walk that
// reconverges onto the major branch, scoring every candidate against
// the major prefix it rejoins. The search is an explicit worklist
// bounded by a deterministic step budget; it degrades to "nothing
// found" when the budget runs out. Returns the best similarity and
// the matching walk, exclusive of the reconvergence vertex.
func (g *Graph) findSimilarPath(start VertexAdaptor, major []VertexAdaptor, majorIndex map[uint32]int, origin uint32) (float64, []VertexAdaptor) {
	maxLength := int(g.kmerSize)
	for _, a := range major {
		maxLength += a.ContigSize()
	}
	best := -1.0
	var bestWalk []VertexAdaptor
	type searchState struct {
		walk   []VertexAdaptor
		length int
	}
	stack := []searchState{{[]VertexAdaptor{start}, start.ContigSize()}}
	steps := g.Config.BubbleSteps
	for len(stack) > 0 && steps > 0 {
		steps--
		state := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		end := state.walk[len(state.walk)-1]
		for _, next := range g.GetNeighbors(end) {
			if i, ok := majorIndex[next.ID()]; ok {
				if i == 0 {
					continue
				}
				ref := mergeWalk(major[:i], g.kmerSize)
				alt := mergeWalk(state.walk, g.kmerSize)
				if similarity := getSimilarity(ref, alt); similarity > best {
					best = similarity
					bestWalk = state.walk
				}
				continue
			}
			if next.ID() == origin {
				continue
			}
			length := state.length + next.ContigSize() - int(g.kmerSize) + 1
			if length > maxLength {
				continue
			}
			onWalk := false
			for _, a := range state.walk {
				if a.ID() == next.ID() {
					onWalk = true
					break
				}
			}
			if onWalk {
				continue
			}
			walk := make([]VertexAdaptor, len(state.walk)+1)
			copy(walk, state.walk)
			walk[len(state.walk)] = next
			stack = append(stack, searchState{walk, length})
		}
	}
	return best, bestWalk
}

// removeBubbleAt looks for bubbles hanging off a branching adaptor:
// the highest-coverage branch serves as the kept path, and any
// alternative branch that rejoins it with near-identical sequence is
// deleted. Returns the number of bubbles collapsed at this vertex.
func (g *Graph) removeBubbleAt(current VertexAdaptor) int64 {
	neighbors := g.GetNeighbors(current)
	if len(neighbors) < 2 {
		return 0
	}
	sort.SliceStable(neighbors, func(i, j int) bool {
		return neighbors[i].Coverage() > neighbors[j].Coverage()
	})
	major := g.branchChain(neighbors[0], g.Config.BubbleSteps)
	if len(major) < 2 {
		return 0
	}
	majorIndex := make(map[uint32]int, len(major))
	for i, a := range major {
		majorIndex[a.ID()] = i
	}
	var collapsed int64
	for _, next := range neighbors[1:] {
		if _, ok := majorIndex[next.ID()]; ok || next.ID() == current.ID() {
			continue
		}
		similarity, alt := g.findSimilarPath(next, major, majorIndex, current.ID())
		if similarity < g.Config.SimilarityThreshold {
			continue
		}
		for _, a := range alt {
			a.Vertex().setDeleted()
		}
		collapsed++
	}
	return collapsed
}

// RemoveBubble collapses pairs of parallel near-identical paths
// between the same start and end vertices, keeping the
// higher-coverage variant. Search effort per branching vertex is
// capped by the configured step budget. Returns the number of
// bubbles removed.
func (g *Graph) RemoveBubble() int64 {
	var removed int64
	for _, v := range g.vertices {
		if v.isDeleted() {
			continue
		}
		a := Adapt(v)
		for strand := 0; strand < 2; strand++ {
			if a.OutEdges().Size() >= 2 {
				removed += g.removeBubbleAt(a)
			}
			a = a.ReverseComplement()
		}
	}
	if removed > 0 {
		g.Refresh()
		g.MergeSimplePaths()
	}
	return removed
}
