package textfile

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "keys.txt")
	if err := os.WriteFile(name, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return name
}

func TestForEachLine(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)

	name := writeTemp(t, "one\r\ntwo\n\nthree")
	var lines []string
	err := ForEachLine(name, func(line string) error {
		lines = append(lines, line)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(lines, []string{"one", "two", "", "three"}) {
		t.Fatalf("lines = %q", lines)
	}
}

func TestForEachLineStops(t *testing.T) {
	name := writeTemp(t, "a\nb\nc\n")
	var lines []string
	err := ForEachLine(name, func(line string) error {
		lines = append(lines, line)
		if line == "b" {
			return ErrStop
		}
		return nil
	})
	if err != nil {
		t.Fatalf("ErrStop must not be reported, got %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", lines)
	}
	boom := errors.New("boom")
	err = ForEachLine(name, func(string) error { return boom })
	if !errors.Is(err, boom) {
		t.Fatalf("expected callback error, got %v", err)
	}
}

func TestLongLines(t *testing.T) {
	long := strings.Repeat("x", 100000)
	var got []string
	if err := ScanLines(strings.NewReader(long+"\nshort"), func(l string) error {
		got = append(got, l)
		return nil
	}); err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || len(got[0]) != 100000 || got[1] != "short" {
		t.Fatalf("unexpected lines: %d", len(got))
	}
}

func TestLinesAndReadAll(t *testing.T) {
	name := writeTemp(t, "v1\nv2\n")
	lines, err := Lines(name)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(lines.Slice(), []string{"v1", "v2"}) {
		t.Fatalf("lines = %q", lines.Slice())
	}
	all, err := ReadAll(name)
	if err != nil || all != "v1\nv2\n" {
		t.Fatalf("ReadAll = %q, %v", all, err)
	}
}

func TestMissingFile(t *testing.T) {
	if _, err := ReadAll(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatalf("expected error for missing file")
	}
	if err := ForEachLine(t.TempDir(), func(string) error { return nil }); err == nil {
		t.Fatalf("expected error for directory")
	}
}
