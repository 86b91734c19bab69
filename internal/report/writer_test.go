package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/sales-report-analyzer/internal/money"
	"github.com/ginjaninja78/sales-report-analyzer/internal/types"
)

func sampleResult() *types.AnalysisResult {
	laptop := types.SalesRecord{
		ProductName: "Laptop",
		Price:       money.MustParse("1200.00"),
		Quantity:    5,
		RowNumber:   2,
	}

	return &types.AnalysisResult{
		SourceFile:   "input/sales.csv",
		TotalRevenue: money.MustParse("6255.00"),
		TopProduct:   &types.TopProduct{Record: laptop, Revenue: laptop.Revenue()},
		ValidCount:   2,
		SkippedCount: 1,
		Rejections: []types.RowRejection{
			{
				RowNumber: 4,
				RawLine:   "Widget,abc,3",
				Reason:    types.ReasonInvalidPrice,
				Detail:    `price "abc" is not a valid number`,
			},
		},
	}
}

func TestRenderText(t *testing.T) {
	out := string(RenderText(sampleResult(), "$"))

	assert.Contains(t, out, "Total sales from input/sales.csv: $6255.00")
	assert.Contains(t, out, "TOP-SELLING PRODUCT ANALYSIS")
	assert.Contains(t, out, "Product Name:      Laptop")
	assert.Contains(t, out, "Unit Price:        $1200.00")
	assert.Contains(t, out, "Quantity Sold:     5 units")
	assert.Contains(t, out, "Total Revenue:     $6000.00")
	assert.Contains(t, out, "Valid rows:   2")
	assert.Contains(t, out, "Skipped rows: 1")
	assert.Contains(t, out, "Skipped row details:")
	assert.Contains(t, out, strings.Repeat("=", 60))
}

func TestRenderTextCurrencySymbol(t *testing.T) {
	out := string(RenderText(sampleResult(), "€"))

	assert.Contains(t, out, "€6255.00")
	assert.NotContains(t, out, "$")
}

func TestRenderTextNoValidRows(t *testing.T) {
	result := &types.AnalysisResult{
		SourceFile:   "empty.csv",
		TotalRevenue: money.Zero(),
	}

	out := string(RenderText(result, "$"))

	assert.Contains(t, out, "Total sales from empty.csv: $0.00")
	assert.Contains(t, out, "Warning: no valid data rows found.")
	assert.NotContains(t, out, "TOP-SELLING PRODUCT ANALYSIS")
}

func TestRenderRejectsCSV(t *testing.T) {
	data, err := RenderRejectsCSV(sampleResult())

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "row_number,reason,detail,raw_line", lines[0])
	assert.Contains(t, lines[1], "4,invalid_price")
	assert.Contains(t, lines[1], "Widget,abc,3")
}

func TestWriteProducesSelectedFormats(t *testing.T) {
	dir := t.TempDir()
	opts := Options{
		OutputDir:      dir,
		NameFormat:     "{store}_{source}",
		StoreCode:      "store_a",
		CurrencySymbol: "$",
		Formats:        []string{"text", "rejects_csv"},
	}

	written, err := Write(sampleResult(), opts)

	require.NoError(t, err)
	require.Len(t, written, 2)
	assert.Equal(t, filepath.Join(dir, "store_a_sales.txt"), written[0])
	assert.Equal(t, filepath.Join(dir, "store_a_sales_rejects.csv"), written[1])

	for _, path := range written {
		_, err := os.Stat(path)
		assert.NoError(t, err)
	}
}

func TestWriteSkipsRejectsCSVWhenClean(t *testing.T) {
	result := sampleResult()
	result.Rejections = nil
	result.SkippedCount = 0

	opts := Options{
		OutputDir:      t.TempDir(),
		NameFormat:     "{source}",
		CurrencySymbol: "$",
		Formats:        []string{"text", "rejects_csv"},
	}

	written, err := Write(result, opts)

	require.NoError(t, err)
	require.Len(t, written, 1)
	assert.True(t, strings.HasSuffix(written[0], ".txt"))
}

func TestWriteUnknownFormat(t *testing.T) {
	opts := DefaultOptions()
	opts.OutputDir = t.TempDir()
	opts.Formats = []string{"pdf"}

	_, err := Write(sampleResult(), opts)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown report format")
}

func TestWriteSummaryWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.xlsx")

	err := WriteSummaryWorkbook(path, []*types.AnalysisResult{sampleResult()})

	require.NoError(t, err)
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
