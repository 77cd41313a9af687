/*
Package textfile provides API helpers to load UTF-8 text files line by line.

Lines are delivered without their terminators ("\n" or "\r\n"). Files are
read through a buffered reader; very long lines are supported.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'arcade.textfile'
func tracer() tracing.Trace {
	return tracing.Select("arcade.textfile")
}
