package textfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/arcade/vec"
)

// ErrStop may be returned by a line callback to end ForEachLine early
// without reporting an error.
var ErrStop = errors.New("textfile: stop")

// ForEachLine opens file name and calls fn for every line of it, in order.
// Line terminators are stripped. If fn returns an error, reading stops and
// the error is returned, unless it is ErrStop.
func ForEachLine(name string, fn func(line string) error) error {
	file, err := openFile(name)
	if err != nil {
		return err
	}
	defer file.Close()
	return ScanLines(file, fn)
}

// ScanLines calls fn for every line read from r. It is the reader-based
// counterpart of ForEachLine.
func ScanLines(r io.Reader, fn func(line string) error) error {
	br := bufio.NewReader(r)
	count := 0
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			count++
			line = strings.TrimRight(line, "\r\n")
			if e := fn(line); e != nil {
				if errors.Is(e, ErrStop) {
					return nil
				}
				return e
			}
		}
		if err == io.EOF {
			break
		} else if err != nil {
			return fmt.Errorf("textfile: reading line %d: %w", count+1, err)
		}
	}
	tracer().Debugf("textfile: scanned %d lines", count)
	return nil
}

// Lines loads all lines of file name into a sequence.
func Lines(name string) (*vec.Vec[string], error) {
	lines := vec.New[string](64)
	err := ForEachLine(name, func(line string) error {
		lines.Append(line)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lines, nil
}

// ReadAll returns the complete content of file name as a string.
func ReadAll(name string) (string, error) {
	file, err := openFile(name)
	if err != nil {
		return "", err
	}
	defer file.Close()
	b, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("textfile: reading %s: %w", name, err)
	}
	return string(b), nil
}

// openFile opens an OS file for reading, checking that it is a regular file.
func openFile(name string) (*os.File, error) {
	fi, err := os.Stat(name)
	if err != nil {
		tracer().Errorf("textfile: cannot open %s: %v", name, err)
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("textfile: %s is not a regular file", name)
	}
	return os.Open(name) // just open for read access
}
