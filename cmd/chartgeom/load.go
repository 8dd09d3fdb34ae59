package main

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/midbel/chartgeom"
	"golang.org/x/sync/errgroup"
)

// record is one row of an input file.
type record struct {
	Category float64
	Value    float64
}

func getCategory(r record) float64 {
	return r.Category
}

func getValue(r record) float64 {
	return r.Value
}

func getIdent(file string) string {
	file = filepath.Base(file)
	for {
		e := filepath.Ext(file)
		if e == "" {
			break
		}
		file = strings.TrimSuffix(file, e)
	}
	return file
}

// readFiles reads all the given files at once. The rows of each file are
// returned in the order of files.
func readFiles(ctx context.Context, files []string, header bool) ([][][]string, error) {
	var (
		rows  = make([][][]string, len(files))
		group *errgroup.Group
	)
	group, ctx = errgroup.WithContext(ctx)
	for i := range files {
		i := i
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rs, err := readRows(files[i], header)
			if err != nil {
				return fmt.Errorf("%s: %w", files[i], err)
			}
			rows[i] = rs
			return nil
		})
	}
	return rows, group.Wait()
}

func readRows(file string, header bool) ([][]string, error) {
	r, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var (
		rs   = csv.NewReader(r)
		rows [][]string
	)
	rs.FieldsPerRecord = -1
	if header {
		if _, err := rs.Read(); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	}
	for {
		row, err := rs.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

type recordReader struct {
	xcol   int
	ycol   int
	parse  func(string) (float64, error)
	labels map[string]int
	order  []string
}

func newRecordReader(axis chartgeom.ScaleType, xcol, ycol int, timefmt string) (*recordReader, error) {
	if xcol < 0 || ycol < 0 {
		return nil, fmt.Errorf("invalid x/y index columns given")
	}
	rr := recordReader{
		xcol:   xcol,
		ycol:   ycol,
		labels: make(map[string]int),
	}
	switch axis {
	case chartgeom.TypeTime:
		parse, err := chartgeom.TimeParser(timefmt)
		if err != nil {
			return nil, err
		}
		rr.parse = func(str string) (float64, error) {
			when, err := parse(str)
			if err != nil {
				return 0, err
			}
			return chartgeom.TimeValue(when), nil
		}
	case chartgeom.TypeCategory:
		rr.parse = rr.index
	default:
		rr.parse = parseNumber
	}
	return &rr, nil
}

// index gives the position of the category, registering it when it is
// seen for the first time.
func (r *recordReader) index(str string) (float64, error) {
	ix, ok := r.labels[str]
	if !ok {
		ix = len(r.order)
		r.labels[str] = ix
		r.order = append(r.order, str)
	}
	return float64(ix), nil
}

func (r *recordReader) Categories() []string {
	return r.order
}

func (r *recordReader) Records(rows [][]string) ([]record, error) {
	var list []record
	for i, row := range rows {
		if r.xcol >= len(row) || r.ycol >= len(row) {
			return nil, fmt.Errorf("row %d: invalid x/y index columns given", i+1)
		}
		cat, err := r.parse(strings.TrimSpace(row[r.xcol]))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		val, err := parseNumber(strings.TrimSpace(row[r.ycol]))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		rec := record{
			Category: cat,
			Value:    val,
		}
		list = append(list, rec)
	}
	return list, nil
}

// parseNumber reads empty cells as missing values.
func parseNumber(str string) (float64, error) {
	if str == "" {
		return math.NaN(), nil
	}
	return strconv.ParseFloat(str, 64)
}

func parsePoint(str string) (chartgeom.Point, error) {
	x, y, ok := strings.Cut(str, ",")
	if !ok {
		return chartgeom.Point{}, fmt.Errorf("%s: point should be given as x,y", str)
	}
	px, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
	if err != nil {
		return chartgeom.Point{}, err
	}
	py, err := strconv.ParseFloat(strings.TrimSpace(y), 64)
	if err != nil {
		return chartgeom.Point{}, err
	}
	return chartgeom.NewPoint(px, py), nil
}

func parseScaleType(str string) (chartgeom.ScaleType, error) {
	switch strings.ToLower(str) {
	case "", "number":
		return chartgeom.TypeNumber, nil
	case "category", "string":
		return chartgeom.TypeCategory, nil
	case "date", "time":
		return chartgeom.TypeTime, nil
	case "log":
		return chartgeom.TypeLog, nil
	default:
		return 0, fmt.Errorf("%s: unsupported axis type", str)
	}
}
