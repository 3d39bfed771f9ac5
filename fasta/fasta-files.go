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

// Package fasta reads and writes contigs and their metadata as FASTA
// files. Headers written by this package carry the accumulated k-mer
// count of each contig; headers from other tools yield a zero count.
package fasta

import (
	"bufio"
	"bytes"
	"fmt"
	"log"
	"strings"
	"unicode"

	"github.com/zjyzjjzmt/megahit/contig"
	"github.com/zjyzjjzmt/megahit/internal"
	"github.com/zjyzjjzmt/megahit/seq"
)

const lineWidth = 80

// kmerCountFromHeader extracts the count_N token of a header line, if
// present.
func kmerCountFromHeader(b []byte) uint64 {
	for _, field := range strings.Fields(string(b[1:])) {
		if rest, ok := strings.CutPrefix(field, "count_"); ok {
			return internal.ParseUint(rest, 10, 64)
		}
	}
	return 0
}

// ParseContigs sequentially parses a FASTA file into contigs and
// their metadata records.
func ParseContigs(filename string) ([]seq.Sequence, []contig.ContigInfo) {
	f := internal.FileOpen(filename)
	defer internal.Close(f)

	var contigs []seq.Sequence
	var infos []contig.ContigInfo
	var current []byte
	open := false

	flush := func() {
		if open {
			contigs = append(contigs, seq.FromString(string(current)))
			current = current[:0]
			open = false
		}
	}

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		b := scanner.Bytes()
		if len(b) == 0 {
			continue
		}
		if b[0] == '>' {
			flush()
			infos = append(infos, contig.ContigInfo{KmerCount: kmerCountFromHeader(b)})
			open = true
			continue
		}
		if !open {
			log.Panicf("invalid fasta file %v - missing first header", filename)
		}
		for _, c := range b {
			current = append(current, byte(unicode.ToUpper(rune(c))))
		}
	}
	if err := scanner.Err(); err != nil {
		log.Panic(err)
	}
	flush()
	if len(contigs) != len(infos) {
		log.Panicf("invalid fasta file %v - header without sequence", filename)
	}
	return contigs, infos
}

// WriteContigs stores contigs plus their metadata into a FASTA file,
// wrapping sequence lines at a fixed width.
func WriteContigs(filename string, contigs []seq.Sequence, infos []contig.ContigInfo) {
	if len(contigs) != len(infos) {
		log.Panicf("contig/metadata count mismatch: %v contigs, %v records", len(contigs), len(infos))
	}
	f := internal.FileCreate(filename)
	defer internal.Close(f)

	w := bufio.NewWriter(f)
	var line bytes.Buffer
	for i, c := range contigs {
		fmt.Fprintf(w, ">contig_%d length_%d count_%d\n", i, len(c), infos[i].KmerCount)
		line.Reset()
		line.WriteString(c.String())
		for line.Len() > lineWidth {
			w.Write(line.Next(lineWidth))
			w.WriteByte('\n')
		}
		w.Write(line.Bytes())
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		log.Panic(err)
	}
}
