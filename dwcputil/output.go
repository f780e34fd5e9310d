/*
Copyright © 2024 the DWCPN authors.
This file is part of DWCPN.

DWCPN is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

DWCPN is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with DWCPN.  If not, see <http://www.gnu.org/licenses/>.
*/

package dwcputil

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cast"
	"github.com/tealeg/xlsx"
)

// recordWriter writes rows of results.
type recordWriter interface {
	Write(record []string) error
	Close() error
}

// newRecordWriter returns a writer for the output file f. Files ending in
// ".xlsx" are written as Excel workbooks; all others as CSV.
func newRecordWriter(f string) (recordWriter, error) {
	if strings.EqualFold(filepath.Ext(f), ".xlsx") {
		return newXLSXWriter(f)
	}
	return newCSVWriter(f)
}

type csvWriter struct {
	f *os.File
	w *csv.Writer
}

func newCSVWriter(path string) (*csvWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("dwcpn: problem creating output file: %v", err)
	}
	return &csvWriter{f: f, w: csv.NewWriter(f)}, nil
}

func (c *csvWriter) Write(record []string) error { return c.w.Write(record) }

func (c *csvWriter) Close() error {
	c.w.Flush()
	if err := c.w.Error(); err != nil {
		c.f.Close()
		return err
	}
	return c.f.Close()
}

// xlsxSheet is the name of the worksheet that results are written to.
const xlsxSheet = "DWCPN"

type xlsxWriter struct {
	path  string
	file  *xlsx.File
	sheet *xlsx.Sheet
}

func newXLSXWriter(path string) (*xlsxWriter, error) {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet(xlsxSheet)
	if err != nil {
		return nil, fmt.Errorf("dwcpn: creating output workbook: %v", err)
	}
	return &xlsxWriter{path: path, file: file, sheet: sheet}, nil
}

// Write adds a row to the worksheet. Numeric values are stored as
// numbers.
func (x *xlsxWriter) Write(record []string) error {
	row := x.sheet.AddRow()
	for _, v := range record {
		cell := row.AddCell()
		if f, err := cast.ToFloat64E(v); err == nil && v != "" {
			cell.SetFloat(f)
		} else {
			cell.SetString(v)
		}
	}
	return nil
}

func (x *xlsxWriter) Close() error { return x.file.Save(x.path) }
