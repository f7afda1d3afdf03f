// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tabular

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Supported file extensions.
const (
	ExtCSV  = ".csv"
	ExtXLSX = ".xlsx"
)

// Table is a decoded sheet: the header row and every data row below it.
// Data rows may be shorter than the header when trailing cells are empty.
type Table struct {
	Header []string
	Rows   [][]string
}

// Column returns the index of the header cell equal to name, ignoring case
// and surrounding whitespace, or -1 when there is no such column.
func (t Table) Column(name string) int {
	name = strings.TrimSpace(name)
	for i, h := range t.Header {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i
		}
	}

	return -1
}

// Cell returns the value at row and column col, or "" when the row is
// shorter than col or col is negative.
func (t Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) || col < 0 || col >= len(t.Rows[row]) {
		return ""
	}

	return t.Rows[row][col]
}

// Len returns the number of data rows.
func (t Table) Len() int {
	return len(t.Rows)
}

// ReadFile decodes the file at path, choosing the codec by extension. A
// missing file yields an error matching [os.ErrNotExist].
func ReadFile(ctx context.Context, path string) (Table, error) {
	if err := ctx.Err(); err != nil {
		return Table{}, err
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext != ExtCSV && ext != ExtXLSX {
		return Table{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return Table{}, fmt.Errorf("error opening %s: %w", path, err)
	}
	defer f.Close()

	return Read(f, ext)
}

// Read decodes r with the codec registered for ext (".csv" or ".xlsx").
func Read(r io.Reader, ext string) (Table, error) {
	switch strings.ToLower(ext) {
	case ExtCSV:
		return ReadCSV(r)
	case ExtXLSX:
		return ReadXLSX(r)
	default:
		return Table{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// fromRows splits raw rows into a header and data rows, dropping rows whose
// cells are all blank.
func fromRows(raw [][]string) (Table, error) {
	if len(raw) == 0 {
		return Table{}, ErrEmptyTable
	}

	t := Table{Header: raw[0], Rows: make([][]string, 0, len(raw)-1)}
	for _, row := range raw[1:] {
		if blank(row) {
			continue
		}
		t.Rows = append(t.Rows, row)
	}

	return t, nil
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}

	return true
}
