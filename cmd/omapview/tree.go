package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/arcade/omap"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

const indent = "    "

// treePrinter prints a map as a tree turned sideways, root at the left.
type treePrinter struct {
	out     io.Writer
	width   int
	context *uax11.Context
	red     *color.Color
	black   *color.Color
}

func newTreePrinter(conf Config, out io.Writer) *treePrinter {
	grapheme.SetupGraphemeClasses()
	width := conf.Width
	if width == 0 {
		width = terminalWidth()
	}
	return &treePrinter{
		out:     out,
		width:   width,
		context: uax11.ContextFromEnvironment(),
		red:     color.New(color.FgRed, color.Bold),
		black:   color.New(color.FgBlue),
	}
}

// Print writes one line per entry, indented by depth. Red nodes are marked
// with "(R)" and printed in red. Lines are cut to the console width.
func (tp *treePrinter) Print(m *omap.Map[int]) error {
	if m.IsEmpty() {
		_, err := fmt.Fprintln(tp.out, "(empty)")
		return err
	}
	var err error
	m.Shape(func(n omap.NodeInfo[int]) bool {
		label := fmt.Sprintf("%s = %d", n.Key, n.Value)
		c := tp.black
		if n.Red {
			label += " (R)"
			c = tp.red
		}
		pad := strings.Repeat(indent, n.Depth)
		label = truncate(label, tp.width-len(pad), tp.context)
		_, err = fmt.Fprintf(tp.out, "%s%s\n", pad, c.Sprint(label))
		return err == nil
	})
	return err
}

// truncate cuts s to at most width console cells, ending it with "…" if
// anything has been cut off.
func truncate(s string, width int, context *uax11.Context) string {
	if s == "" {
		return s
	}
	s = strings.ToValidUTF8(s, "\uFFFD")
	gstr := grapheme.StringFromString(s)
	if uax11.StringWidth(gstr, context) <= width {
		return s
	}
	if width < 1 {
		return ""
	}
	var b strings.Builder
	cells := 0
	for i := 0; i < gstr.Len(); i++ {
		cluster := gstr.Nth(i)
		w := uax11.StringWidth(grapheme.StringFromString(cluster), context)
		if cells+w > width-1 {
			break
		}
		b.WriteString(cluster)
		cells += w
	}
	b.WriteString("…")
	return b.String()
}

// terminalWidth checks whether stdout is a terminal, and if so reads the
// terminal's width.
func terminalWidth() int {
	if term.IsTerminal(1) {
		if w, _, err := term.GetSize(1); err == nil && w > 10 {
			return w
		}
	}
	return 80
}
