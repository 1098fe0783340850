package report

import (
	"errors"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/phishreport/phishreport/internal/models"
)

func readSheet(t *testing.T, path, sheet string) [][]string {
	t.Helper()
	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	return rows
}

func sampleRows() []models.ReportRow {
	return []models.ReportRow{
		models.NewCaptureEvent("http://x/login", "alice@example.com", "p1", "1.2.3.4", "UA").Row(),
		models.NewCaptureEvent("http://x/login", "", "p2", "5.6.7.8", "UA2").Row(),
		models.NoAttemptRow("bob@example.com"),
	}
}

func TestWriteXLSX(t *testing.T) {
	t.Run("header and numbered rows", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "output.xlsx")
		require.NoError(t, WriteXLSX(path, sampleRows(), Options{}))

		rows := readSheet(t, path, DefaultSheetName)
		require.Len(t, rows, 4)
		assert.Equal(t, Headers, rows[0])
		assert.Equal(t, []string{"1", "alice@example.com", "p1", "1.2.3.4", "UA", "Correct password"}, rows[1])
		assert.Equal(t, []string{"2", "", "p2", "5.6.7.8", "UA2", "Incorrect password (Used for Google Workspace)"}, rows[2])
		assert.Equal(t, []string{"3", "bob@example.com", "", "", "", "No attempt logged"}, rows[3])
	})

	t.Run("row count is header plus rows", func(t *testing.T) {
		var data []models.ReportRow
		for i := 0; i < 25; i++ {
			data = append(data, models.NoAttemptRow("user"+strconv.Itoa(i)+"@example.com"))
		}
		path := filepath.Join(t.TempDir(), "output.xlsx")
		require.NoError(t, WriteXLSX(path, data, Options{}))

		rows := readSheet(t, path, DefaultSheetName)
		require.Len(t, rows, len(data)+1)
		for k := 1; k < len(rows); k++ {
			assert.Equal(t, strconv.Itoa(k), rows[k][0])
		}
	})

	t.Run("empty report has only header", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "output.xlsx")
		require.NoError(t, WriteXLSX(path, nil, Options{}))

		rows := readSheet(t, path, DefaultSheetName)
		assert.Equal(t, [][]string{Headers}, rows)
	})

	t.Run("formula-like values stay text", func(t *testing.T) {
		data := []models.ReportRow{models.NewCaptureEvent("", "x@example.com", "=1+1", "", "").Row()}
		path := filepath.Join(t.TempDir(), "output.xlsx")
		require.NoError(t, WriteXLSX(path, data, Options{}))

		f, err := excelize.OpenFile(path)
		require.NoError(t, err)
		defer f.Close()

		value, err := f.GetCellValue(DefaultSheetName, "C2")
		require.NoError(t, err)
		assert.Equal(t, "=1+1", value)

		formula, err := f.GetCellFormula(DefaultSheetName, "C2")
		require.NoError(t, err)
		assert.Empty(t, formula)
	})

	t.Run("custom sheet name", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "output.xlsx")
		require.NoError(t, WriteXLSX(path, sampleRows(), Options{SheetName: "Campaign 7"}))

		f, err := excelize.OpenFile(path)
		require.NoError(t, err)
		defer f.Close()
		assert.Equal(t, []string{"Campaign 7"}, f.GetSheetList())
	})

	t.Run("unwritable path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "dir", "output.xlsx")
		err := WriteXLSX(path, sampleRows(), Options{})
		require.Error(t, err)

		var werr *WriteError
		require.True(t, errors.As(err, &werr))
		assert.Equal(t, path, werr.Path)
	})
}
