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

// megahit simplifies compacted contig graphs produced by de novo
// genome assemblers: it merges unambiguous chains, trims dead ends,
// prunes low-coverage contigs, and collapses bubbles.
//
// Please see https://github.com/zjyzjjzmt/megahit for a documentation
// of the tool.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/zjyzjjzmt/megahit/cmd"
)

func printHelp() {
	fmt.Fprintln(os.Stderr, "Available commands: simplify")
	fmt.Fprint(os.Stderr, "\n", cmd.SimplifyHelp)
}

func main() {
	fmt.Fprintln(os.Stderr, cmd.ProgramMessage)
	if len(os.Args) < 2 {
		log.Println("Incorrect number of parameters.")
		fmt.Fprint(os.Stderr, cmd.HelpMessage, "\n")
		printHelp()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "simplify":
		err = cmd.Simplify()
	case "help", "-help", "--help", "-h", "--h":
		printHelp()
	default:
		log.Println("Unknown command: ", os.Args[1])
		printHelp()
		os.Exit(1)
	}
	if err != nil {
		log.Fatal(err)
	}
}
