/*
Omapview loads keys into an ordered map and shows the resulting red-black
tree, either turned sideways on the console or as a Graphviz DOT graph.
Afterwards the tree invariants are checked.

Usage:

	omapview [flags] [key ...]

Keys are taken from the command line or, with -file, from a file holding one
key per line. The value of every key is its position in the input. Maps may be
saved to and loaded from snapshot files.

Flag defaults may be set in the environment or in a file .env, using
variables OMAPVIEW_KIND, OMAPVIEW_TRACE and OMAPVIEW_WIDTH.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package main

import (
	"fmt"
	"os"
)

func main() {
	conf, err := LoadConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := Run(conf, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "omapview: %v\n", err)
		os.Exit(1)
	}
}
