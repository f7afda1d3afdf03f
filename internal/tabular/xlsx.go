// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tabular

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// ContentTypeXLSX is the MIME type of an Office Open XML workbook.
const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// defaultSheet is the sheet excelize creates in a new workbook.
const defaultSheet = "Sheet1"

// ReadXLSX decodes the first worksheet of the workbook read from r.
func ReadXLSX(r io.Reader) (Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return Table{}, fmt.Errorf("error opening workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return Table{}, ErrNoSheets
	}

	raw, err := f.GetRows(sheets[0])
	if err != nil {
		return Table{}, fmt.Errorf("error reading sheet %q: %w", sheets[0], err)
	}

	return fromRows(raw)
}

// EncodeXLSX renders a single-sheet workbook with header as its first row
// followed by rows. Cell values keep their Go type, so integers are stored
// as numbers rather than text.
func EncodeXLSX(header []string, rows [][]any) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	headerRow := make([]any, len(header))
	for i, h := range header {
		headerRow[i] = h
	}

	if err := setRow(f, 1, headerRow); err != nil {
		return nil, err
	}

	for i, row := range rows {
		if err := setRow(f, i+2, row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("error encoding workbook: %w", err)
	}

	return buf.Bytes(), nil
}

func setRow(f *excelize.File, rowNum int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("error addressing row %d: %w", rowNum, err)
	}

	if err = f.SetSheetRow(defaultSheet, cell, &values); err != nil {
		return fmt.Errorf("error writing row %d: %w", rowNum, err)
	}

	return nil
}

// WriteFile replaces the file at path with content. The bytes are written to
// a temporary file in the same directory which is then renamed over path, so
// readers observe either the old or the new file.
func WriteFile(ctx context.Context, path string, content []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("error creating directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("error creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err = io.Copy(tmp, bytes.NewReader(content)); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("error writing temp file: %w", err)
	}

	if err = tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("error closing temp file: %w", err)
	}

	if err = os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("error replacing %s: %w", path, err)
	}

	return nil
}
