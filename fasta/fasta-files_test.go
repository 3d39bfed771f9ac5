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

package fasta

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zjyzjjzmt/megahit/contig"
	"github.com/zjyzjjzmt/megahit/seq"
)

func TestWriteParseContigs(t *testing.T) {
	contigs := []seq.Sequence{
		seq.FromString("AACTGACC"),
		seq.FromString(strings.Repeat("ACGT", 50)),
	}
	infos := []contig.ContigInfo{{KmerCount: 6}, {KmerCount: 197}}
	filename := filepath.Join(t.TempDir(), "contigs.fa")
	WriteContigs(filename, contigs, infos)
	parsed, parsedInfos := ParseContigs(filename)
	if len(parsed) != 2 || len(parsedInfos) != 2 {
		t.Error("round trip count failed")
	}
	for i := range parsed {
		if !parsed[i].Equal(contigs[i]) {
			t.Error("round trip contig failed")
		}
		if parsedInfos[i].KmerCount != infos[i].KmerCount {
			t.Error("round trip kmer count failed")
		}
	}
}

func TestParseContigsForeignHeaders(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "contigs.fa")
	input := ">chr1 some description\nacgt\nACGT\n\n>chr2\nTT\n"
	if err := os.WriteFile(filename, []byte(input), 0666); err != nil {
		t.Fatal(err)
	}
	contigs, infos := ParseContigs(filename)
	if len(contigs) != 2 {
		t.Error("foreign header count failed")
	}
	if contigs[0].String() != "ACGTACGT" || contigs[1].String() != "TT" {
		t.Error("foreign header contigs failed")
	}
	if infos[0].KmerCount != 0 || infos[1].KmerCount != 0 {
		t.Error("foreign header kmer count failed")
	}
}
