package main

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/midbel/chartgeom"
)

func TestRecordReaderCategories(t *testing.T) {
	rr, err := newRecordReader(chartgeom.TypeCategory, 0, 1, "")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	rows := [][]string{
		{"apple", "10"},
		{"pear", ""},
		{" apple ", "5"},
	}
	list, err := rr.Records(rows)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(list) != 3 {
		t.Fatalf("records mismatched! want 3, got %d", len(list))
	}
	if list[0].Category != 0 || list[1].Category != 1 || list[2].Category != 0 {
		t.Errorf("categories mismatched! got %+v", list)
	}
	if !math.IsNaN(list[1].Value) {
		t.Errorf("empty cell should be a missing value, got %f", list[1].Value)
	}
	if cs := rr.Categories(); len(cs) != 2 || cs[0] != "apple" || cs[1] != "pear" {
		t.Errorf("categories mismatched! got %v", cs)
	}
}

func TestRecordReaderErrors(t *testing.T) {
	if _, err := newRecordReader(chartgeom.TypeNumber, -1, 0, ""); err == nil {
		t.Errorf("negative column should give an error")
	}
	rr, err := newRecordReader(chartgeom.TypeNumber, 0, 2, "")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if _, err := rr.Records([][]string{{"1", "2"}}); err == nil {
		t.Errorf("missing column should give an error")
	}
	rr, _ = newRecordReader(chartgeom.TypeNumber, 0, 1, "")
	if _, err := rr.Records([][]string{{"x", "2"}}); err == nil {
		t.Errorf("invalid number should give an error")
	}
}

func TestRecordReaderTime(t *testing.T) {
	rr, err := newRecordReader(chartgeom.TypeTime, 0, 1, "%Y-%m-%d")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	list, err := rr.Records([][]string{{"2024-01-01", "1"}, {"2024-01-02", "2"}})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if diff := list[1].Category - list[0].Category; diff <= 0 {
		t.Errorf("dates should be increasing, got %f", diff)
	}
}

func TestReadFiles(t *testing.T) {
	var (
		dir   = t.TempDir()
		first = filepath.Join(dir, "first.csv")
		other = filepath.Join(dir, "other.csv")
	)
	if err := os.WriteFile(first, []byte("x,y\n1,2\n3,4\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(other, []byte("x,y\n5,6\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	rows, err := readFiles(context.Background(), []string{first, other}, true)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(rows) != 2 || len(rows[0]) != 2 || len(rows[1]) != 1 {
		t.Fatalf("rows mismatched! got %v", rows)
	}
	if rows[1][0][0] != "5" {
		t.Errorf("header should be skipped, got %v", rows[1])
	}
	if _, err := readFiles(context.Background(), []string{filepath.Join(dir, "missing.csv")}, false); err == nil {
		t.Errorf("missing file should give an error")
	}
}

func TestGetIdent(t *testing.T) {
	tests := []struct {
		File string
		Want string
	}{
		{File: "data.csv", Want: "data"},
		{File: "/tmp/serie.csv.gz", Want: "serie"},
		{File: "plain", Want: "plain"},
	}
	for _, tt := range tests {
		if got := getIdent(tt.File); got != tt.Want {
			t.Errorf("%s: want %s, got %s", tt.File, tt.Want, got)
		}
	}
}

func TestParsePoint(t *testing.T) {
	pt, err := parsePoint("10, 20.5")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if pt != chartgeom.NewPoint(10, 20.5) {
		t.Errorf("point mismatched! got %+v", pt)
	}
	for _, str := range []string{"10", "a,1", "1,b"} {
		if _, err := parsePoint(str); err == nil {
			t.Errorf("%s: error expected", str)
		}
	}
}
