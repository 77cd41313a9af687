package main

import (
	"io"

	"github.com/npillmayer/arcade/textfile"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"go.uber.org/dig"
)

// Run wires the components of a run and executes it, writing to out.
func Run(conf Config, out io.Writer) error {
	container := dig.New()
	constructors := []interface{}{
		func() Config { return conf },
		func() io.Writer { return out },
		newTracer,
		newKeySource,
		newTreePrinter,
		newViewer,
	}
	for _, c := range constructors {
		if err := container.Provide(c); err != nil {
			return err
		}
	}
	return container.Invoke(func(v *viewer) error {
		return v.run()
	})
}

// newTracer installs a Go-logger based tracer for all packages.
func newTracer(conf Config) tracing.Trace {
	tracer := gologadapter.New()
	tracer.SetTraceLevel(tracing.TraceLevelFromString(conf.Trace))
	tracing.SetTraceSelector(tracing.SelectorForAdapter(func() tracing.Trace {
		return tracer
	}))
	return tracer
}

// keySource delivers the raw keys of a run.
type keySource func() ([]string, error)

func newKeySource(conf Config) keySource {
	if conf.File == "" {
		return func() ([]string, error) {
			return conf.Keys, nil
		}
	}
	return func() ([]string, error) {
		lines, err := textfile.Lines(conf.File)
		if err != nil {
			return nil, err
		}
		return lines.Slice(), nil
	}
}
