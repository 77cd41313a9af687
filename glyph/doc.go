/*
Package glyph caches rasterized font glyphs and lays out text with them.

Glyphs are kept in an ordered map keyed by the single-character string they
represent. Text handed to Layout is split into grapheme clusters
(UAX #29), and every cluster with a cached glyph is positioned on a common
baseline derived from the glyph for "H".

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package glyph

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'arcade.glyph'
func tracer() tracing.Trace {
	return tracing.Select("arcade.glyph")
}
