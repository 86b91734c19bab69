package csvreader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/sales-report-analyzer/internal/config"
)

func writeTestFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sales.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadDiscardsHeader(t *testing.T) {
	path := writeTestFile(t, "product,price,quantity\nLaptop,1200.00,5\nMouse,25.50,10\n")

	src, err := Read(path, config.CSVSettings{})

	require.NoError(t, err)
	assert.Equal(t, "product,price,quantity", src.Header)
	require.Len(t, src.Rows, 2)
	assert.Equal(t, "Laptop,1200.00,5", src.Rows[0].Text)
	assert.Equal(t, "Mouse,25.50,10", src.Rows[1].Text)
}

func TestReadRowNumbersCountHeader(t *testing.T) {
	path := writeTestFile(t, "product,price,quantity\nLaptop,1200.00,5\n\nMouse,25.50,10\n")

	src, err := Read(path, config.CSVSettings{})

	require.NoError(t, err)
	require.Len(t, src.Rows, 3)
	assert.Equal(t, 2, src.Rows[0].Number)
	assert.Equal(t, 3, src.Rows[1].Number)
	assert.Equal(t, 4, src.Rows[2].Number)
	// The blank line is kept as a row; rejecting it is the parser's job.
	assert.Equal(t, "", src.Rows[1].Text)
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "nope.csv"), config.CSVSettings{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSourceUnavailable))
}

func TestReadEmptyFileIsNotAnError(t *testing.T) {
	path := writeTestFile(t, "")

	src, err := Read(path, config.CSVSettings{})

	require.NoError(t, err)
	assert.Empty(t, src.Rows)
}

func TestReadHeaderOnlyFile(t *testing.T) {
	path := writeTestFile(t, "product,price,quantity\n")

	src, err := Read(path, config.CSVSettings{})

	require.NoError(t, err)
	assert.Equal(t, "product,price,quantity", src.Header)
	assert.Empty(t, src.Rows)
}

func TestReadHeaderIsNeverValidated(t *testing.T) {
	// A header that would fail every row rule is still just a header.
	path := writeTestFile(t, "this is not,a valid,row,at all,???\nLaptop,1200.00,5\n")

	src, err := Read(path, config.CSVSettings{})

	require.NoError(t, err)
	require.Len(t, src.Rows, 1)
	assert.Equal(t, "Laptop,1200.00,5", src.Rows[0].Text)
}

func TestReadStripsBOMAndCRLF(t *testing.T) {
	path := writeTestFile(t, "\ufeffproduct,price,quantity\r\nLaptop,1200.00,5\r\n")

	src, err := Read(path, config.CSVSettings{})

	require.NoError(t, err)
	assert.Equal(t, "product,price,quantity", src.Header)
	require.Len(t, src.Rows, 1)
	assert.Equal(t, "Laptop,1200.00,5", src.Rows[0].Text)
}

func TestReadMultiRowHeader(t *testing.T) {
	path := writeTestFile(t, "Store 042 weekly export\nproduct,price,quantity\nLaptop,1200.00,5\n")

	src, err := Read(path, config.CSVSettings{HeaderRows: 2})

	require.NoError(t, err)
	require.Len(t, src.Rows, 1)
	assert.Equal(t, 3, src.Rows[0].Number)
}

func TestScannerStreamsRows(t *testing.T) {
	path := writeTestFile(t, "product,price,quantity\nLaptop,1200.00,5\nMouse,25.50,10\n")

	sc, err := NewScanner(path, config.CSVSettings{})
	require.NoError(t, err)
	defer sc.Close()

	assert.Equal(t, "product,price,quantity", sc.Header())

	var rows []RawRow
	for sc.Next() {
		rows = append(rows, sc.Row())
	}

	require.NoError(t, sc.Err())
	require.Len(t, rows, 2)
	assert.Equal(t, 2, rows[0].Number)
	assert.Equal(t, "Mouse,25.50,10", rows[1].Text)
}

func TestScannerMissingFile(t *testing.T) {
	_, err := NewScanner(filepath.Join(t.TempDir(), "nope.csv"), config.CSVSettings{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSourceUnavailable))
}
