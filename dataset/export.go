// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"encoding/csv"
	"io"

	"github.com/xuri/excelize/v2"
)

// ExportName is the file name offered for CSV downloads.
const ExportName = "data.csv"

// bomString is the UTF-8 byte order mark. Spreadsheet programs use it
// to recognize CSV files as UTF-8.
const bomString = "\ufeff"

// WriteCSV writes d to w as comma-separated text prefixed with a UTF-8
// byte order mark. Fields are written as they were read.
func WriteCSV(w io.Writer, d *Dataset) error {
	if _, err := io.WriteString(w, bomString); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(d.Columns()); err != nil {
		return err
	}
	rec := make([]string, len(d.Columns()))
	for _, r := range d.rows {
		for j, v := range r.Values {
			rec[j] = v.Raw()
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteXLSX writes d to w as a single-sheet spreadsheet. Numbers are
// stored as numeric cells and Missing values as empty cells.
func WriteXLSX(w io.Writer, d *Dataset) error {
	f := excelize.NewFile()
	defer f.Close()
	const sheet = "Sheet1"

	header := make([]interface{}, len(d.Columns()))
	for j, name := range d.Columns() {
		header[j] = name
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, r := range d.rows {
		cells := make([]interface{}, len(r.Values))
		for j, v := range r.Values {
			switch v.Kind() {
			case Number:
				cells[j] = v.num
			case Text:
				cells[j] = v.str
			}
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return err
		}
	}
	return f.Write(w)
}
