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
	"gonum.org/v1/gonum/stat"
)

// isTip tells whether a vertex dangles off the graph at one of its
// ends: no edges at all, or a single edge on one side only.
func isTip(a VertexAdaptor) bool {
	in := a.InEdges().Size()
	out := a.OutEdges().Size()
	return (in == 0 || out == 0) && in+out <= 1
}

// Trim deletes tip vertices shorter than minLength and returns the
// number removed. A deletion round is followed by a refresh and a
// chain merge, since removing a tip can turn its anchor into an
// unambiguous chain link.
func (g *Graph) Trim(minLength int) int64 {
	var removed int64
	for _, v := range g.vertices {
		if v.isDeleted() || v.ContigSize() >= minLength {
			continue
		}
		if isTip(Adapt(v)) {
			v.setDeleted()
			removed++
		}
	}
	if removed > 0 {
		g.Refresh()
		g.MergeSimplePaths()
	}
	return removed
}

// Trim2 is Trim restricted to tips whose coverage is also below
// minCover.
func (g *Graph) Trim2(minLength int, minCover float64) int64 {
	var removed int64
	for _, v := range g.vertices {
		if v.isDeleted() || v.ContigSize() >= minLength || v.Coverage() >= minCover {
			continue
		}
		if isTip(Adapt(v)) {
			v.setDeleted()
			removed++
		}
	}
	if removed > 0 {
		g.Refresh()
		g.MergeSimplePaths()
	}
	return removed
}

// RemoveDeadEnd iteratively deletes short terminal branches up to
// minLength, doubling the length cutoff towards minLength and then
// repeating at minLength until a fixed point, since removing one tip
// can expose another. Terminal chains whose bounded longest extension
// stays below minLength are removed as a unit.
func (g *Graph) RemoveDeadEnd(minLength int) int64 {
	var removed int64
	for l := 1; l != minLength; {
		l = min(2*l, minLength)
		removed += g.Trim(l)
	}
	for {
		n := g.Trim(minLength)
		n += g.trimShallowBranches(minLength)
		if n == 0 {
			return removed
		}
		removed += n
	}
}

// trimShallowBranches deletes source vertices whose longest forward
// extension, bounded by minLength, never reaches minLength bases.
func (g *Graph) trimShallowBranches(minLength int) int64 {
	var removed int64
	for _, v := range g.vertices {
		if v.isDeleted() {
			continue
		}
		a := Adapt(v)
		for strand := 0; strand < 2; strand++ {
			if a.InEdges().Size() == 0 && a.OutEdges().Size() > 0 {
				maximum := 0
				g.getDepth(a, a.ContigSize(), &maximum, minLength)
				if maximum < minLength {
					v.setDeleted()
					removed++
					break
				}
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

// RemoveLowCoverage deletes vertices shorter than minLength whose
// coverage falls below the absolute cutoff minCover, then re-trims
// and re-merges. Reports whether the graph changed.
func (g *Graph) RemoveLowCoverage(minCover float64, minLength int) bool {
	changed := false
	for _, v := range g.vertices {
		if v.isDeleted() || v.ContigSize() >= minLength {
			continue
		}
		if v.Coverage() < minCover {
			v.setDeleted()
			changed = true
		}
	}
	if changed {
		g.Refresh()
		g.Trim(minLength)
		g.MergeSimplePaths()
	}
	return changed
}

// RemoveLocalLowCoverage deletes short vertices whose coverage falls
// below ratio times the ambient coverage of their local
// neighborhood, with minCover as an absolute floor. Reports whether
// the graph changed.
func (g *Graph) RemoveLocalLowCoverage(minCover float64, minLength int, ratio float64) bool {
	changed := false
	for _, v := range g.vertices {
		if v.isDeleted() || v.ContigSize() >= minLength {
			continue
		}
		threshold := minCover
		if local := g.LocalCoverage(Adapt(v), g.Config.LocalWindow); ratio*local > threshold {
			threshold = ratio * local
		}
		if v.Coverage() < threshold {
			v.setDeleted()
			changed = true
		}
	}
	if changed {
		g.Refresh()
		g.Trim(minLength)
		g.MergeSimplePaths()
	}
	return changed
}

// RemoveComponentLowCoverage deletes short vertices whose coverage
// falls below ratio times the average coverage of their connected
// component. Components larger than maxComponentSize are left alone
// to keep the pass tractable. Reports whether the graph changed.
func (g *Graph) RemoveComponentLowCoverage(minCover float64, minLength int, ratio float64, maxComponentSize int) bool {
	components, _ := g.GetComponents()
	changed := false
	for _, component := range components {
		if len(component) > maxComponentSize {
			continue
		}
		coverages := make([]float64, len(component))
		weights := make([]float64, len(component))
		for i, a := range component {
			coverages[i] = a.Coverage()
			weights[i] = float64(a.Vertex().NumKmers())
		}
		average := stat.Mean(coverages, weights)
		threshold := minCover
		if ratio*average > threshold {
			threshold = ratio * average
		}
		for _, a := range component {
			v := a.Vertex()
			if !v.isDeleted() && v.ContigSize() < minLength && v.Coverage() < threshold {
				v.setDeleted()
				changed = true
			}
		}
	}
	if changed {
		g.Refresh()
		g.Trim(minLength)
		g.MergeSimplePaths()
	}
	return changed
}

// LocalCoverageSingle estimates the ambient coverage around a vertex
// by a breadth-limited traversal outward from both of its ends, up
// to regionLength bases in each direction, accumulating
// coverage-weighted k-mer counts. Besides the estimate it returns
// the accumulated count mass and the number of k-mer positions seen.
func (g *Graph) LocalCoverageSingle(current VertexAdaptor, regionLength int) (cover float64, numCount float64, numKmer int) {
	var coverages, weights []float64
	seen := map[uint32]bool{current.ID(): true}
	type frontier struct {
		a     VertexAdaptor
		depth int
	}
	for strand := 0; strand < 2; strand++ {
		queue := []frontier{{current, 0}}
		for len(queue) > 0 {
			f := queue[0]
			queue = queue[1:]
			if f.depth >= regionLength {
				continue
			}
			for _, next := range g.GetNeighbors(f.a) {
				if seen[next.ID()] {
					continue
				}
				seen[next.ID()] = true
				take := min(next.Vertex().NumKmers(), regionLength-f.depth)
				coverages = append(coverages, next.Coverage())
				weights = append(weights, float64(take))
				numCount += next.Coverage() * float64(take)
				numKmer += take
				queue = append(queue, frontier{next, f.depth + next.Vertex().NumKmers()})
			}
		}
		current = current.ReverseComplement()
	}
	if numKmer == 0 {
		return 0, 0, 0
	}
	return stat.Mean(coverages, weights), numCount, numKmer
}

// LocalCoverage returns the ambient coverage estimate around a
// vertex.
func (g *Graph) LocalCoverage(current VertexAdaptor, regionLength int) float64 {
	cover, _, _ := g.LocalCoverageSingle(current, regionLength)
	return cover
}

// IterateCoverage repeatedly applies low-coverage pruning, raising
// the cutoff by factor whenever the graph stabilizes, until maxCover
// is reached. Returns the cutoff that was last used: the smallest
// threshold that removed the noise without erasing true low-coverage
// regions.
func (g *Graph) IterateCoverage(minLength int, minCover, maxCover, factor float64) float64 {
	if minCover > maxCover {
		minCover = maxCover
	}
	for {
		if g.RemoveLowCoverage(minCover, minLength) {
			continue
		}
		if minCover >= maxCover {
			return minCover
		}
		minCover = min(minCover*factor, maxCover)
	}
}
