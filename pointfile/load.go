/*
Package pointfile reads and writes point sets as text, one point per line:

	4792855.00, 6027188.00
	4992113, 5435896

Reading stops at the first line which does not start with two numbers
separated by a comma. Anything after the second number is ignored.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package pointfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/pimrtree/geom"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'pimrtree'
func tracer() tracing.Trace {
	return tracing.Select("pimrtree")
}

// ErrNoPoints is returned if a source does not start with a readable point.
var ErrNoPoints = errors.New("pointfile: no points")

// Load reads up to limit points from the file at path. limit <= 0 reads all
// points.
func Load(path string, limit int) ([]geom.Point, error) {
	f, err := openFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	points, err := Read(f, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	tracer().Infof("loaded %d points from %s", len(points), path)
	return points, nil
}

// openFile opens an OS file for reading, checking that it is a regular file.
func openFile(path string) (*os.File, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("pointfile: %s is not a regular file", path)
	}
	return os.Open(path)
}

// Read parses up to limit points from r. limit <= 0 reads all points. Blank
// lines are skipped. It fails with ErrNoPoints if not a single point could be
// read.
func Read(r io.Reader, limit int) ([]geom.Point, error) {
	var points []geom.Point
	scanner := bufio.NewScanner(r)
	lineno := 0
	for (limit <= 0 || len(points) < limit) && scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		p, ok := parsePoint(line)
		if !ok {
			tracer().Debugf("stop reading points at line %d: %q", lineno, line)
			break
		}
		points = append(points, p)
	}
	if err := scanner.Err(); err != nil {
		return points, err
	}
	if len(points) == 0 {
		return nil, ErrNoPoints
	}
	return points, nil
}

func parsePoint(line string) (geom.Point, bool) {
	xs, rest, ok := strings.Cut(line, ",")
	if !ok {
		return geom.Point{}, false
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return geom.Point{}, false
	}
	ys := strings.TrimSpace(rest)
	if i := strings.IndexAny(ys, ", \t"); i >= 0 {
		ys = ys[:i]
	}
	y, err := strconv.ParseFloat(ys, 64)
	if err != nil {
		return geom.Point{}, false
	}
	return geom.Point{X: x, Y: y}, true
}

// Write writes points to w in the format Read understands.
func Write(w io.Writer, points []geom.Point) error {
	bw := bufio.NewWriter(w)
	for _, p := range points {
		bw.WriteString(strconv.FormatFloat(p.X, 'f', -1, 64))
		bw.WriteString(", ")
		bw.WriteString(strconv.FormatFloat(p.Y, 'f', -1, 64))
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
