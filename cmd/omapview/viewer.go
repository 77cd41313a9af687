package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/arcade/omap"
	"github.com/npillmayer/schuko/tracing"
)

type viewer struct {
	conf    Config
	keys    keySource
	printer *treePrinter
	out     io.Writer
	trace   tracing.Trace
}

func newViewer(conf Config, keys keySource, printer *treePrinter, out io.Writer, trace tracing.Trace) *viewer {
	return &viewer{conf: conf, keys: keys, printer: printer, out: out, trace: trace}
}

func (v *viewer) run() error {
	m, err := v.load()
	if err != nil {
		return err
	}
	if v.conf.Save != "" {
		if err := saveSnapshot(v.conf.Save, m); err != nil {
			return err
		}
		v.trace.Infof("saved %d entries to %s", m.Len(), v.conf.Save)
	}
	if v.conf.Dot {
		if err := m.WriteDot(v.out); err != nil {
			return err
		}
	} else if err := v.printer.Print(m); err != nil {
		return err
	}
	if err := m.Check(); err != nil {
		return err
	}
	if !v.conf.Dot {
		fmt.Fprintf(v.out, "%d entries, height %d, black height %d: ok\n",
			m.Len(), m.Height(), m.BlackHeight())
	}
	return nil
}

func (v *viewer) load() (*omap.Map[int], error) {
	if v.conf.Load != "" {
		f, err := os.Open(v.conf.Load)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		m, err := omap.DecodeSnapshot[int](f)
		if err != nil {
			return nil, err
		}
		v.trace.Infof("loaded %d entries from %s", m.Len(), v.conf.Load)
		return m, nil
	}
	keys, err := v.keys()
	if err != nil {
		return nil, err
	}
	return buildMap(v.conf.Kind, keys)
}

// buildMap inserts keys in order, mapping each to its index. Empty lines
// are skipped.
func buildMap(kind omap.Kind, keys []string) (*omap.Map[int], error) {
	m := omap.New[int]()
	for i, s := range keys {
		if strings.TrimSpace(s) == "" {
			continue
		}
		k, err := parseKey(kind, s)
		if err != nil {
			return nil, err
		}
		if err := m.Put(k, i); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func parseKey(kind omap.Kind, s string) (omap.Key, error) {
	switch kind {
	case omap.KindInt:
		i, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return omap.Key{}, fmt.Errorf("invalid int key %q", s)
		}
		return omap.IntKey(i), nil
	case omap.KindFloat:
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return omap.Key{}, fmt.Errorf("invalid float key %q", s)
		}
		return omap.FloatKey(f), nil
	}
	return omap.StringKey(s), nil
}

func saveSnapshot(name string, m *omap.Map[int]) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := omap.EncodeSnapshot(f, m); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
