package glyph

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// RGB is a text color with components in [0,1].
type RGB [3]float32

// White is the default text color.
var White = RGB{1, 1, 1}

// Run is a piece of text drawn in a single color.
type Run struct {
	Text  string
	Color RGB
}

// ParseMarkup reads a fragment of HTML and returns its text as colored runs.
// Colors are set with <font color="#rrggbb">; all other elements just
// contribute their inner text. Text outside any font element is white.
func ParseMarkup(input io.Reader) ([]Run, error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return nil, err
	}
	var runs []Run
	for _, n := range nodes {
		runs = collectRuns(n, White, runs)
	}
	return runs, nil
}

func collectRuns(n *html.Node, c RGB, runs []Run) []Run {
	if n.Type == html.ElementNode {
		tracer().Debugf("glyph markup: collect text of <%s>", n.Data)
		if n.Data == "font" {
			c = fontColor(n, c)
		}
	} else if n.Type == html.TextNode && n.Data != "" {
		if l := len(runs); l > 0 && runs[l-1].Color == c {
			runs[l-1].Text += n.Data
		} else {
			runs = append(runs, Run{Text: n.Data, Color: c})
		}
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		runs = collectRuns(ch, c, runs)
	}
	return runs
}

func fontColor(n *html.Node, dflt RGB) RGB {
	for _, a := range n.Attr {
		if a.Key != "color" {
			continue
		}
		c, err := parseHexColor(a.Val)
		if err != nil {
			tracer().Errorf("glyph markup: %v", err)
			return dflt
		}
		return c
	}
	return dflt
}

func parseHexColor(s string) (RGB, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return RGB{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid color %q", s)
	}
	return RGB{
		float32(v>>16&0xff) / 255,
		float32(v>>8&0xff) / 255,
		float32(v&0xff) / 255,
	}, nil
}

// LayoutMarkup positions the text of an HTML fragment like Layout does,
// setting the color of every quad from the markup.
func (c *Cache) LayoutMarkup(markup string, x, y, scale float32) ([]Quad, error) {
	runs, err := ParseMarkup(strings.NewReader(markup))
	if err != nil {
		return nil, err
	}
	var quads []Quad
	for _, run := range runs {
		var q []Quad
		q, x = c.layout(run.Text, x, y, scale)
		for i := range q {
			q[i].Color = run.Color
		}
		quads = append(quads, q...)
	}
	return quads, nil
}
