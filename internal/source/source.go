// Package source provides tabular row sources for the directory service.
//
// A source is addressed by sheet name and yields rows of loosely-typed
// cells, mirroring what spreadsheet-style backends produce. Sources are
// read in full on every call — there is no caching layer, so readers
// always see the current state of the backing store.
package source

import (
	"context"
	"strconv"
	"strings"
)

// CellKind discriminates the variants of a Cell.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellString
	CellNumber
)

// Cell is one value from a tabular row: a string, a number, or empty.
// The zero value is an empty cell.
type Cell struct {
	Kind CellKind
	Str  string
	Num  float64
}

// String returns a string-valued cell.
func String(s string) Cell {
	return Cell{Kind: CellString, Str: s}
}

// Number returns a number-valued cell.
func Number(f float64) Cell {
	return Cell{Kind: CellNumber, Num: f}
}

// Empty returns an empty cell.
func Empty() Cell {
	return Cell{}
}

// Text returns the cell's string form. Numbers are formatted with the
// shortest representation that round-trips ("7", not "7.000000").
// Empty cells yield "".
func (c Cell) Text() string {
	switch c.Kind {
	case CellString:
		return c.Str
	case CellNumber:
		return strconv.FormatFloat(c.Num, 'f', -1, 64)
	default:
		return ""
	}
}

// Row is one tabular row, excluding any header.
type Row []Cell

// ParseCell converts a raw string field into a Cell. Blank fields become
// empty cells and numeric-looking fields become number cells, matching
// the loose typing of spreadsheet backends.
func ParseCell(s string) Cell {
	if strings.TrimSpace(s) == "" {
		return Empty()
	}
	if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
		return Number(f)
	}
	return String(s)
}

// Source is a tabular row provider addressable by sheet name.
//
// Rows returns every data row of the named sheet (header excluded) and
// is expected to re-read the backing store on each call. Append adds one
// raw row to the end of the named sheet.
type Source interface {
	Rows(ctx context.Context, sheet string) ([]Row, error)
	Append(ctx context.Context, sheet string, row Row) error
}
