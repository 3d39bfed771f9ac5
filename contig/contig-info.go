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

// ContigInfo is the per-contig metadata record accompanying a
// sequence: the total number of k-mer observations supporting the
// contig, and the adjacency masks at its two ends as last recorded.
// The masks describe the forward orientation of the sequence.
type ContigInfo struct {
	KmerCount uint64
	InEdges   BitEdges
	OutEdges  BitEdges
}
