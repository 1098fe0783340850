// Package report writes merged campaign results to a spreadsheet.
package report

import (
	"github.com/xuri/excelize/v2"

	"github.com/phishreport/phishreport/internal/models"
)

// DefaultSheetName is the sheet a new workbook starts with.
const DefaultSheetName = "Sheet1"

// Headers is the fixed first row of the report.
var Headers = []string{"#", "Email", "Password", "IP", "User Agent", "Status"}

// Options configures the written workbook.
type Options struct {
	SheetName string
}

// WriteXLSX writes rows to a single-sheet workbook at path. Row k of the
// data (1-based) carries k in the "#" column. All other cells are plain text.
func WriteXLSX(path string, rows []models.ReportRow, opts Options) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := opts.SheetName
	if sheet == "" {
		sheet = DefaultSheetName
	}
	if sheet != DefaultSheetName {
		if err := f.SetSheetName(DefaultSheetName, sheet); err != nil {
			return NewWriteError(path, err)
		}
	}

	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return NewWriteError(path, err)
	}

	header := make([]interface{}, len(Headers))
	for i, h := range Headers {
		header[i] = h
	}
	if err := sw.SetRow("A1", header); err != nil {
		return NewWriteError(path, err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return NewWriteError(path, err)
		}
		values := []interface{}{
			i + 1,
			row.Email,
			row.Password,
			row.RemoteAddr,
			row.UserAgent,
			string(row.Status),
		}
		if err := sw.SetRow(cell, values); err != nil {
			return NewWriteError(path, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return NewWriteError(path, err)
	}
	if err := f.SaveAs(path); err != nil {
		return NewWriteError(path, err)
	}
	return nil
}
