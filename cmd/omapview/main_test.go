package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/npillmayer/arcade/omap"
	"github.com/npillmayer/uax/uax11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("OMAPVIEW_KIND", "int")
	conf, err := LoadConfig([]string{"-width", "40", "3", "1", "2"})
	require.NoError(t, err)
	assert.Equal(t, omap.KindInt, conf.Kind)
	assert.Equal(t, 40, conf.Width)
	assert.Equal(t, []string{"3", "1", "2"}, conf.Keys)

	_, err = LoadConfig([]string{"-kind", "complex"})
	assert.Error(t, err)
	_, err = LoadConfig([]string{"-load", "x.snap", "a"})
	assert.Error(t, err)
	_, err = LoadConfig([]string{"-nosuchflag"})
	assert.Error(t, err)
}

func TestConsoleTree(t *testing.T) {
	var out bytes.Buffer
	conf := Config{Kind: omap.KindString, Keys: []string{"b", "a", "c"}, Width: 80, Trace: "error"}
	require.NoError(t, Run(conf, &out))
	want := strings.Join([]string{
		"    c = 2 (R)",
		"b = 0",
		"    a = 1 (R)",
		"3 entries, height 2, black height 2: ok",
		"",
	}, "\n")
	assert.Equal(t, want, out.String())
}

func TestDotOutput(t *testing.T) {
	var out bytes.Buffer
	conf := Config{Kind: omap.KindInt, Keys: []string{"10", "20", "30"}, Dot: true, Trace: "error"}
	require.NoError(t, Run(conf, &out))
	assert.True(t, strings.HasPrefix(out.String(), "strict digraph {"))
	assert.Contains(t, out.String(), `label="20"`)
	assert.NotContains(t, out.String(), "entries")
}

func TestKeysFromFileAndSnapshots(t *testing.T) {
	dir := t.TempDir()
	keyfile := filepath.Join(dir, "keys.txt")
	require.NoError(t, os.WriteFile(keyfile, []byte("2.5\n\n-1\n0.75\n2.5000001\n"), 0o600))
	snap := filepath.Join(dir, "keys.snap")

	var out bytes.Buffer
	conf := Config{Kind: omap.KindFloat, File: keyfile, Save: snap, Width: 80, Trace: "error"}
	require.NoError(t, Run(conf, &out))
	// 2.5000001 is within epsilon of 2.5 and overwrites it
	assert.Contains(t, out.String(), "2.5 = 4")
	assert.Contains(t, out.String(), "3 entries")

	var reloaded bytes.Buffer
	require.NoError(t, Run(Config{Load: snap, Width: 80, Trace: "error"}, &reloaded))
	assert.Equal(t, out.String(), reloaded.String())
}

func TestInvalidKeys(t *testing.T) {
	var out bytes.Buffer
	err := Run(Config{Kind: omap.KindInt, Keys: []string{"1", "x"}, Trace: "error"}, &out)
	assert.Error(t, err)
	err = Run(Config{Kind: omap.KindString, Keys: []string{"a\x00"}, Trace: "error"}, &out)
	assert.ErrorIs(t, err, omap.ErrInvalidKey)
	err = Run(Config{File: filepath.Join(t.TempDir(), "none"), Trace: "error"}, &out)
	assert.Error(t, err)
}

func TestEmptyTree(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Run(Config{Kind: omap.KindString, Width: 80, Trace: "error"}, &out))
	assert.Equal(t, "(empty)\n0 entries, height 0, black height 1: ok\n", out.String())
}

func TestTruncate(t *testing.T) {
	ctx := uax11.LatinContext
	newTreePrinter(Config{Width: 80}, &bytes.Buffer{}) // sets up grapheme classes
	assert.Equal(t, "short", truncate("short", 10, ctx))
	assert.Equal(t, "abcd…", truncate("abcdefgh", 5, ctx))
	assert.Equal(t, "", truncate("abc", 0, ctx))
	assert.Equal(t, "日…", truncate("日本語", 4, ctx))
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, loadEnv(filepath.Join(dir, "missing.env")))

	good := filepath.Join(dir, "good.env")
	require.NoError(t, os.WriteFile(good, []byte("OMAPVIEW_TEST_WIDTH=33\n"), 0o600))
	t.Setenv("OMAPVIEW_TEST_WIDTH", "")
	os.Unsetenv("OMAPVIEW_TEST_WIDTH")
	require.NoError(t, loadEnv(good))
	assert.Equal(t, "33", os.Getenv("OMAPVIEW_TEST_WIDTH"))

	// a directory exists but cannot be read as .env file
	assert.Error(t, loadEnv(dir))
}
