package xlsxreader

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/sales-report-analyzer/internal/config"
	"github.com/ginjaninja78/sales-report-analyzer/internal/csvreader"
)

func writeTestWorkbook(t *testing.T, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, cells := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &cells))
	}

	path := filepath.Join(t.TempDir(), "sales.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestReadWorkbook(t *testing.T) {
	path := writeTestWorkbook(t, [][]interface{}{
		{"product", "price", "quantity"},
		{"Laptop", "1200.00", "5"},
		{"Mouse", "25.50", "10"},
	})

	src, err := Read(path, config.CSVSettings{})

	require.NoError(t, err)
	assert.Equal(t, "product,price,quantity", src.Header)
	require.Len(t, src.Rows, 2)

	// Cells are re-joined into the same raw-line contract as CSV input.
	assert.Equal(t, "Laptop,1200.00,5", src.Rows[0].Text)
	assert.Equal(t, 2, src.Rows[0].Number)
	assert.Equal(t, "Mouse,25.50,10", src.Rows[1].Text)
	assert.Equal(t, 3, src.Rows[1].Number)
}

func TestReadWorkbookCustomDelimiter(t *testing.T) {
	path := writeTestWorkbook(t, [][]interface{}{
		{"product", "price", "quantity"},
		{"Keyboard", "45.00", "4"},
	})

	src, err := Read(path, config.CSVSettings{Delimiter: "|"})

	require.NoError(t, err)
	require.Len(t, src.Rows, 1)
	assert.Equal(t, "Keyboard|45.00|4", src.Rows[0].Text)
}

func TestReadWorkbookMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "nope.xlsx"), config.CSVSettings{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, csvreader.ErrSourceUnavailable))
}

func TestReadWorkbookHeaderOnly(t *testing.T) {
	path := writeTestWorkbook(t, [][]interface{}{
		{"product", "price", "quantity"},
	})

	src, err := Read(path, config.CSVSettings{})

	require.NoError(t, err)
	assert.Empty(t, src.Rows)
}

func TestIsWorkbook(t *testing.T) {
	assert.True(t, IsWorkbook("sales.xlsx"))
	assert.True(t, IsWorkbook("SALES.XLSX"))
	assert.False(t, IsWorkbook("sales.csv"))
	assert.False(t, IsWorkbook("sales"))
}
