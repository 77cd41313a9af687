package omap

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestWriteDot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arcade.omap")
	defer teardown()

	m := New[int]()
	for i, s := range []string{"b", "a", "c", "d"} {
		if err := m.Put(StringKey(s), i); err != nil {
			t.Fatal(err)
		}
	}
	var sb strings.Builder
	if err := m.WriteDot(&sb); err != nil {
		t.Fatal(err)
	}
	dot := sb.String()
	t.Logf("\n%s", dot)
	if !strings.HasPrefix(dot, "strict digraph {") || !strings.HasSuffix(dot, "}\n") {
		t.Fatalf("not a DOT graph")
	}
	for _, label := range []string{`label="a"`, `label="b"`, `label="c"`, `label="d"`} {
		if !strings.Contains(dot, label) {
			t.Errorf("missing node %s", label)
		}
	}
	if strings.Count(dot, "shape=point") != m.Len()+1 {
		t.Errorf("expected %d sentinel leaves", m.Len()+1)
	}
	if !strings.Contains(dot, "#cc2222") {
		t.Errorf("expected a red node for 4 entries")
	}
}

func TestWriteDotEmpty(t *testing.T) {
	var sb strings.Builder
	if err := New[int]().WriteDot(&sb); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(sb.String(), "->") {
		t.Fatalf("empty map must not have edges")
	}
}
