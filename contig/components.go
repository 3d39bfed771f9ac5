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
	"fmt"
	"strings"

	"github.com/willf/bitset"
)

// GetComponents partitions all live vertices into connected
// components over strand-normalized undirected reachability. Every
// member adaptor is oriented consistently with the direction of
// discovery. Each component is also rendered as a topology summary
// string for inspection.
func (g *Graph) GetComponents() ([][]VertexAdaptor, []string) {
	visited := bitset.New(uint(len(g.vertices)))
	var components [][]VertexAdaptor
	var strs []string
	for _, v := range g.vertices {
		if v.isDeleted() || visited.Test(uint(v.id)) {
			continue
		}
		visited.Set(uint(v.id))
		component := []VertexAdaptor{Adapt(v)}
		for i := 0; i < len(component); i++ {
			current := component[i]
			for _, next := range g.GetNeighbors(current) {
				if !visited.Test(uint(next.ID())) {
					visited.Set(uint(next.ID()))
					component = append(component, next)
				}
			}
			for _, prev := range g.GetNeighbors(current.ReverseComplement()) {
				if !visited.Test(uint(prev.ID())) {
					visited.Set(uint(prev.ID()))
					component = append(component, prev.ReverseComplement())
				}
			}
		}
		components = append(components, component)
		strs = append(strs, g.componentString(component))
	}
	return components, strs
}

func (g *Graph) componentString(component []VertexAdaptor) string {
	var b strings.Builder
	for _, a := range component {
		fmt.Fprintf(&b, "%d[%d, %.2f]", a.ID(), a.ContigSize(), a.Coverage())
		for i, next := range g.GetNeighbors(a) {
			if i == 0 {
				b.WriteString(" ->")
			}
			fmt.Fprintf(&b, " %d", next.ID())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// getBeginVertexAdaptor returns the unique in-degree-0 member of a
// component, or the null adaptor if there is none or more than one.
func (g *Graph) getBeginVertexAdaptor(component []VertexAdaptor) VertexAdaptor {
	var begin VertexAdaptor
	for _, a := range component {
		if a.InEdges() == 0 {
			if !begin.IsNull() {
				return VertexAdaptor{}
			}
			begin = a
		}
	}
	return begin
}

// getEndVertexAdaptor returns the unique out-degree-0 member of a
// component, or the null adaptor if there is none or more than one.
func (g *Graph) getEndVertexAdaptor(component []VertexAdaptor) VertexAdaptor {
	var end VertexAdaptor
	for _, a := range component {
		if a.OutEdges() == 0 {
			if !end.IsNull() {
				return VertexAdaptor{}
			}
			end = a
		}
	}
	return end
}

const (
	statusUnvisited = iota
	statusProcessing
	statusDone
)

// cycleDetect runs a three-color depth-first search from the given
// adaptor, reporting whether a back edge to an in-progress vertex
// exists. The recursion is an explicit stack.
func (g *Graph) cycleDetect(current VertexAdaptor, status map[uint32]int) bool {
	if status[current.ID()] != statusUnvisited {
		return false
	}
	type frame struct {
		a         VertexAdaptor
		neighbors []VertexAdaptor
		next      int
	}
	status[current.ID()] = statusProcessing
	stack := []frame{{current, g.GetNeighbors(current), 0}}
	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		if f.next == len(f.neighbors) {
			status[f.a.ID()] = statusDone
			stack = stack[:len(stack)-1]
			continue
		}
		n := f.neighbors[f.next]
		f.next++
		switch status[n.ID()] {
		case statusProcessing:
			return true
		case statusUnvisited:
			status[n.ID()] = statusProcessing
			stack = append(stack, frame{n, g.GetNeighbors(n), 0})
		}
	}
	return false
}

// IsValid reports whether a component is usable for linear path
// extraction: acyclic, with exactly one source and one sink.
func (g *Graph) IsValid(component []VertexAdaptor) bool {
	if g.getBeginVertexAdaptor(component).IsNull() {
		return false
	}
	if g.getEndVertexAdaptor(component).IsNull() {
		return false
	}
	status := make(map[uint32]int, len(component))
	for _, a := range component {
		if g.cycleDetect(a, status) {
			return false
		}
	}
	return true
}

// topSortDFS appends the depth-first post-order below current to
// order, as an explicit stack iteration.
func (g *Graph) topSortDFS(order *[]VertexAdaptor, current VertexAdaptor, status map[uint32]int) {
	if status[current.ID()] != statusUnvisited {
		return
	}
	type frame struct {
		a         VertexAdaptor
		neighbors []VertexAdaptor
		next      int
	}
	status[current.ID()] = statusProcessing
	stack := []frame{{current, g.GetNeighbors(current), 0}}
	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		if f.next == len(f.neighbors) {
			status[f.a.ID()] = statusDone
			*order = append(*order, f.a)
			stack = stack[:len(stack)-1]
			continue
		}
		n := f.neighbors[f.next]
		f.next++
		if status[n.ID()] == statusUnvisited {
			status[n.ID()] = statusProcessing
			stack = append(stack, frame{n, g.GetNeighbors(n), 0})
		}
	}
}

// TopSort returns a topological ordering of an acyclic component.
func (g *Graph) TopSort(component []VertexAdaptor) []VertexAdaptor {
	status := make(map[uint32]int, len(component))
	var order []VertexAdaptor
	for _, a := range component {
		g.topSortDFS(&order, a, status)
	}
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}
	return order
}

// getDepth searches for the longest extension, in bases, reachable
// from the adaptor, updating maximum as it goes. The search stops
// descending once minLength is reached and is capped by the bubble
// step budget so pathological graphs stay bounded.
func (g *Graph) getDepth(current VertexAdaptor, length int, maximum *int, minLength int) {
	type frame struct {
		a      VertexAdaptor
		length int
	}
	stack := []frame{{current, length}}
	steps := g.Config.BubbleSteps
	for len(stack) > 0 && steps > 0 {
		steps--
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.length > *maximum {
			*maximum = f.length
		}
		if f.length >= minLength {
			continue
		}
		for _, next := range g.GetNeighbors(f.a) {
			stack = append(stack, frame{next, f.length + next.ContigSize() - int(g.kmerSize) + 1})
		}
	}
}

// FindLongestPath computes the maximum coverage-weighted path from
// the component's source to its sink by dynamic programming over the
// topological order, writing the result into path. The component
// must have passed IsValid.
func (g *Graph) FindLongestPath(component []VertexAdaptor, path *Path) {
	order := g.TopSort(component)
	score := make(map[uint32]float64, len(order))
	prev := make(map[uint32]VertexAdaptor, len(order))
	for _, a := range order {
		score[a.ID()] = float64(a.KmerCount())
	}
	for _, a := range order {
		for _, next := range g.GetNeighbors(a) {
			if candidate := score[a.ID()] + float64(next.KmerCount()); candidate > score[next.ID()] {
				score[next.ID()] = candidate
				prev[next.ID()] = a
			}
		}
	}
	best := order[0]
	for _, a := range order[1:] {
		if score[a.ID()] > score[best.ID()] {
			best = a
		}
	}
	var chain []VertexAdaptor
	for current := best; ; {
		chain = append(chain, current)
		p, ok := prev[current.ID()]
		if !ok {
			break
		}
		current = p
	}
	path.Clear()
	for i := len(chain) - 1; i >= 0; i-- {
		path.Append(chain[i])
	}
}
