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

	psort "github.com/exascience/pargo/sort"

	"github.com/zjyzjjzmt/megahit/seq"
)

// nextVertexAdaptor resolves the unique successor of an internal
// chain link: the adaptor must have exactly one outgoing edge, the
// successor exactly one incoming edge, and the successor must not be
// a single-k-mer palindrome, whose direction would be ambiguous.
func (g *Graph) nextVertexAdaptor(current VertexAdaptor) (VertexAdaptor, bool) {
	if current.OutEdges().Size() != 1 {
		return VertexAdaptor{}, false
	}
	next := g.GetNeighbor(current, current.OutEdges().UniqueBase())
	if next.IsNull() {
		return VertexAdaptor{}, false
	}
	if next.InEdges().Size() != 1 {
		return VertexAdaptor{}, false
	}
	if next.ContigSize() == int(g.kmerSize) && next.Contig().IsPalindrome() {
		return VertexAdaptor{}, false
	}
	return next, true
}

// isLoop tells whether extending the path with next closes a cycle
// back onto its own start.
func (g *Graph) isLoop(path *Path, next VertexAdaptor) bool {
	return path.Front().ID() == next.ID()
}

// isPalindromeLoop tells whether extending the path with next closes
// onto the reverse complement of its own end.
func (g *Graph) isPalindromeLoop(path *Path, next VertexAdaptor) bool {
	return path.Back().ID() == next.ID()
}

// extendPath grows the path forward while its end remains an
// unambiguous chain link, claiming each vertex as it goes.
func (g *Graph) extendPath(path *Path) {
	for {
		next, ok := g.nextVertexAdaptor(path.Back())
		if !ok || g.isLoop(path, next) || g.isPalindromeLoop(path, next) || next.Vertex().isUsed() {
			return
		}
		next.Vertex().setUsed()
		path.Append(next)
	}
}

// Assemble materializes the current vertex set into flat output
// contigs plus parallel metadata records, merging every maximal
// unambiguous chain into a single contig on the way out. The output
// is sorted by descending contig length. Returns the number of
// output contigs.
func (g *Graph) Assemble() ([]seq.Sequence, []ContigInfo, int64) {
	g.ClearStatus()
	var contigs []seq.Sequence
	var infos []ContigInfo
	var path Path
	for _, v := range g.vertices {
		if v.isDeleted() || v.isUsed() {
			continue
		}
		v.setUsed()
		path.Clear()
		path.Append(Adapt(v))
		g.extendPath(&path)
		path.ReverseComplement()
		g.extendPath(&path)
		c, info := path.Merge(g.kmerSize)
		contigs = append(contigs, c)
		infos = append(infos, info)
	}
	psort.StableSort(contigSorter{contigs, infos})
	return contigs, infos, int64(len(contigs))
}

// MergeSimplePaths rewrites the graph so that every maximal
// unambiguous chain becomes one vertex. All previously issued
// adaptors are invalidated.
func (g *Graph) MergeSimplePaths() {
	contigs, infos, _ := g.Assemble()
	g.Initialize(contigs, infos)
}

// contigSorter sorts output contigs and their metadata records
// together by descending contig length, as a parallel stable sort.
type contigSorter struct {
	contigs []seq.Sequence
	infos   []ContigInfo
}

func (s contigSorter) SequentialSort(i, j int) {
	sort.Stable(contigSorter{s.contigs[i:j], s.infos[i:j]})
}

func (s contigSorter) NewTemp() psort.StableSorter {
	return contigSorter{
		make([]seq.Sequence, len(s.contigs)),
		make([]ContigInfo, len(s.infos)),
	}
}

func (s contigSorter) Len() int {
	return len(s.contigs)
}

func (s contigSorter) Less(i, j int) bool {
	return len(s.contigs[i]) > len(s.contigs[j])
}

func (s contigSorter) Swap(i, j int) {
	s.contigs[i], s.contigs[j] = s.contigs[j], s.contigs[i]
	s.infos[i], s.infos[j] = s.infos[j], s.infos[i]
}

func (s contigSorter) Assign(source psort.StableSorter) func(i, j, len int) {
	dst, src := s, source.(contigSorter)
	return func(i, j, len int) {
		copy(dst.contigs[i:i+len], src.contigs[j:j+len])
		copy(dst.infos[i:i+len], src.infos[j:j+len])
	}
}
