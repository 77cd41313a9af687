package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/npillmayer/arcade/omap"
)

// Config holds the settings of a single omapview run.
type Config struct {
	Kind  omap.Kind
	File  string   // file with one key per line
	Keys  []string // keys from the command line
	Dot   bool     // output DOT instead of a console tree
	Save  string   // snapshot file to write
	Load  string   // snapshot file to read instead of keys
	Trace string   // trace level: debug, info or error
	Width int      // console width; 0 means detect
}

// LoadConfig reads an optional .env file and parses the command line args.
// Variables from the environment provide flag defaults.
func LoadConfig(args []string) (Config, error) {
	conf := Config{}
	if err := loadEnv(".env"); err != nil {
		return conf, err
	}
	fs := flag.NewFlagSet("omapview", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	kind := fs.String("kind", envOr("OMAPVIEW_KIND", "string"), "key kind: string, int or float")
	fs.StringVar(&conf.File, "file", "", "read keys from `file`, one per line")
	fs.BoolVar(&conf.Dot, "dot", false, "output Graphviz DOT")
	fs.StringVar(&conf.Save, "save", "", "save the map as snapshot to `file`")
	fs.StringVar(&conf.Load, "load", "", "load the map from snapshot `file`")
	fs.StringVar(&conf.Trace, "trace", envOr("OMAPVIEW_TRACE", "error"), "trace level")
	width := envOr("OMAPVIEW_WIDTH", "0")
	w, err := strconv.Atoi(width)
	if err != nil {
		return conf, fmt.Errorf("invalid OMAPVIEW_WIDTH %q", width)
	}
	fs.IntVar(&conf.Width, "width", w, "console width")
	if err := fs.Parse(args); err != nil {
		return conf, err
	}
	if conf.Kind, err = parseKind(*kind); err != nil {
		return conf, err
	}
	conf.Keys = fs.Args()
	return conf, conf.validate()
}

// loadEnv reads variables from file name. A missing file is not an error.
func loadEnv(name string) error {
	err := godotenv.Load(name)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("reading %s: %w", name, err)
}

func (conf Config) validate() error {
	if conf.Load != "" && (conf.File != "" || len(conf.Keys) > 0) {
		return errors.New("keys and -load are mutually exclusive")
	}
	if conf.Width < 0 {
		return fmt.Errorf("invalid width %d", conf.Width)
	}
	return nil
}

func parseKind(s string) (omap.Kind, error) {
	for _, k := range []omap.Kind{omap.KindString, omap.KindInt, omap.KindFloat} {
		if s == k.String() {
			return k, nil
		}
	}
	return omap.KindNone, fmt.Errorf("unknown key kind %q", s)
}

func envOr(name, dflt string) string {
	if v, ok := os.LookupEnv(name); ok && v != "" {
		return v
	}
	return dflt
}
