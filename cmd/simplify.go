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

package cmd

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/zjyzjjzmt/megahit/contig"
	"github.com/zjyzjjzmt/megahit/fasta"
	"github.com/zjyzjjzmt/megahit/seq"
)

// SimplifyHelp is the help string for this command.
const SimplifyHelp = "\nsimplify parameters:\n" +
	"megahit simplify fasta-input-file fasta-output-file\n" +
	"--kmer-size nr\n" +
	"[--min-length nr]\n" +
	"[--min-cover nr]\n" +
	"[--max-cover nr]\n" +
	"[--cover-factor nr]\n" +
	"[--similarity nr]\n" +
	"[--no-bubble]\n" +
	"[--split-branches]\n" +
	"[--nr-of-threads nr]\n" +
	"[--timed]\n" +
	"[--profile file]\n" +
	"[--log-path path]\n"

// Simplify implements the megahit simplify command.
func Simplify() error {
	var (
		kmerSize, minLength, nrOfThreads            int
		minCover, maxCover, coverFactor, similarity float64
		noBubble, splitBranches, timed              bool
		profile, logPath                            string
	)

	var flags flag.FlagSet

	defaults := contig.DefaultConfig()

	flags.IntVar(&kmerSize, "kmer-size", 0, "k-mer size the contigs were assembled with")
	flags.IntVar(&minLength, "min-length", 200, "length cutoff for dead ends and low-coverage contigs")
	flags.Float64Var(&minCover, "min-cover", 2, "initial coverage cutoff")
	flags.Float64Var(&maxCover, "max-cover", 0, "final coverage cutoff, 0 to skip coverage pruning")
	flags.Float64Var(&coverFactor, "cover-factor", 1.5, "escalation factor for the coverage cutoff")
	flags.Float64Var(&similarity, "similarity", defaults.SimilarityThreshold, "sequence similarity above which bubble branches collapse")
	flags.BoolVar(&noBubble, "no-bubble", false, "skip bubble removal")
	flags.BoolVar(&splitBranches, "split-branches", false, "duplicate short converged junction vertices into their branches")
	flags.IntVar(&nrOfThreads, "nr-of-threads", 0, "number of worker threads")
	flags.BoolVar(&timed, "timed", false, "measure the runtime")
	flags.StringVar(&profile, "profile", "", "write a runtime profile to the specified file(s)")
	flags.StringVar(&logPath, "log-path", "", "write log files to the specified directory")

	parseFlags(flags, 4, SimplifyHelp)

	input := getFilename(os.Args[2], SimplifyHelp)
	output := getFilename(os.Args[3], SimplifyHelp)

	setLogOutput(logPath)

	// sanity checks

	var sanityChecksFailed bool

	if !checkExist("", input) {
		sanityChecksFailed = true
	}
	if !checkCreate("", output) {
		sanityChecksFailed = true
	}
	if kmerSize <= 0 || kmerSize > 64 {
		sanityChecksFailed = true
		log.Println("Error: Invalid kmer-size: ", kmerSize)
	}
	if minLength <= 0 {
		sanityChecksFailed = true
		log.Println("Error: Invalid min-length: ", minLength)
	}
	if coverFactor <= 1 {
		sanityChecksFailed = true
		log.Println("Error: Invalid cover-factor: ", coverFactor)
	}
	if nrOfThreads < 0 {
		sanityChecksFailed = true
		log.Println("Error: Invalid nr-of-threads: ", nrOfThreads)
	}

	if sanityChecksFailed {
		fmt.Fprint(os.Stderr, SimplifyHelp)
		os.Exit(1)
	}

	// building output command line

	var command bytes.Buffer
	fmt.Fprint(&command, os.Args[0], " simplify ", input, " ", output,
		" --kmer-size ", kmerSize,
		" --min-length ", minLength,
		" --min-cover ", minCover,
		" --max-cover ", maxCover,
		" --cover-factor ", coverFactor,
		" --similarity ", similarity,
	)
	if noBubble {
		fmt.Fprint(&command, " --no-bubble")
	}
	if splitBranches {
		fmt.Fprint(&command, " --split-branches")
	}
	if nrOfThreads > 0 {
		runtime.GOMAXPROCS(nrOfThreads)
		fmt.Fprint(&command, " --nr-of-threads ", nrOfThreads)
	}
	if timed {
		fmt.Fprint(&command, " --timed")
	}
	if profile != "" {
		fmt.Fprint(&command, " --profile ", profile)
	}
	if logPath != "" {
		fmt.Fprint(&command, " --log-path ", logPath)
	}

	log.Println("Executing command:\n", command.String())

	var contigs []seq.Sequence
	var infos []contig.ContigInfo

	timedRun(timed, profile, "Loading contigs.", 1, func() {
		contigs, infos = fasta.ParseContigs(input)
	})

	g := contig.New(uint32(kmerSize))
	g.Config.SimilarityThreshold = similarity

	timedRun(timed, profile, "Building the contig graph.", 2, func() {
		g.Initialize(contigs, infos)
		g.MergeSimplePaths()
	})
	log.Println("Contig graph:", g.NumVertices(), "vertices,", g.NumEdges(), "edges.")

	timedRun(timed, profile, "Removing dead ends.", 3, func() {
		removed := g.RemoveDeadEnd(minLength)
		log.Println("Removed", removed, "dead ends.")
	})

	if maxCover > 0 {
		timedRun(timed, profile, "Pruning low-coverage contigs.", 4, func() {
			cutoff := g.IterateCoverage(minLength, minCover, maxCover, coverFactor)
			log.Println("Final coverage cutoff:", cutoff)
		})
	}

	if !noBubble {
		timedRun(timed, profile, "Removing bubbles.", 5, func() {
			removed := g.RemoveBubble()
			log.Println("Removed", removed, "bubbles.")
		})
	}

	if splitBranches {
		timedRun(timed, profile, "Splitting converged branches.", 6, func() {
			split := g.SplitBranches()
			log.Println("Split", split, "junctions.")
		})
	}

	timedRun(timed, profile, "Writing contigs.", 7, func() {
		outContigs, outInfos, n := g.Assemble()
		fasta.WriteContigs(output, outContigs, outInfos)
		log.Println("Wrote", n, "contigs.")
	})

	return nil
}
