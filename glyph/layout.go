package glyph

import (
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

// Quad is a positioned glyph, ready to be drawn as two triangles.
type Quad struct {
	Cluster   string
	TextureID uint32
	X, Y      float32 // top left corner
	W, H      float32
	Color     RGB
}

// Vertices returns the two triangles of q as (x, y, u, v) tuples.
func (q Quad) Vertices() [6][4]float32 {
	x0, y0, x1, y1 := q.X, q.Y, q.X+q.W, q.Y+q.H
	return [6][4]float32{
		{x0, y1, 0, 1},
		{x1, y0, 1, 0},
		{x0, y0, 0, 0},
		{x0, y1, 0, 1},
		{x1, y1, 1, 1},
		{x1, y0, 1, 0},
	}
}

// Layout positions text, starting at (x, y) with glyph sizes multiplied by
// scale. Glyphs are aligned on the top bearing of "H". Grapheme clusters
// without a cached glyph are skipped.
func (c *Cache) Layout(text string, x, y, scale float32) []Quad {
	quads, _ := c.layout(text, x, y, scale)
	return quads
}

// Advance returns the horizontal distance Layout moves for text.
func (c *Cache) Advance(text string, scale float32) float32 {
	_, end := c.layout(text, 0, 0, scale)
	return end
}

func (c *Cache) layout(text string, x, y, scale float32) ([]Quad, float32) {
	ref, ok := c.Lookup("H")
	if !ok {
		tracer().Errorf("glyph: reference glyph 'H' not loaded")
	}
	text = validText(text)
	if text == "" {
		return nil, x
	}
	gstr := grapheme.StringFromString(text)
	quads := make([]Quad, 0, gstr.Len())
	for i := 0; i < gstr.Len(); i++ {
		cluster := gstr.Nth(i)
		g, ok := c.Lookup(cluster)
		if !ok {
			tracer().Debugf("glyph: no glyph for %q", cluster)
			continue
		}
		quads = append(quads, Quad{
			Cluster:   cluster,
			TextureID: g.TextureID,
			X:         x + float32(g.Bearing[0])*scale,
			Y:         y + float32(ref.Bearing[1]-g.Bearing[1])*scale,
			W:         float32(g.Size[0]) * scale,
			H:         float32(g.Size[1]) * scale,
			Color:     White,
		})
		x += float32(g.Advance>>6) * scale
	}
	return quads, x
}

// Cells returns the number of console cells text occupies.
func (c *Cache) Cells(text string) int {
	text = validText(text)
	if text == "" {
		return 0
	}
	return uax11.StringWidth(grapheme.StringFromString(text), c.conf.Context)
}

// validText replaces invalid UTF-8 by U+FFFD. The grapheme segmenter
// requires at least one valid rune, so callers must not hand it "".
func validText(text string) string {
	if utf8.ValidString(text) {
		return text
	}
	tracer().Errorf("glyph: invalid UTF-8 in %q", text)
	return strings.ToValidUTF8(text, "\uFFFD")
}
