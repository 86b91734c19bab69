package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/sales-report-analyzer/internal/csvreader"
)

func source(lines ...string) *csvreader.RowSource {
	src := &csvreader.RowSource{
		SourceFile: "sales.csv",
		Header:     "product,price,quantity",
	}
	for i, line := range lines {
		// Data rows start at row 2; the header is row 1.
		src.Rows = append(src.Rows, csvreader.RawRow{Number: i + 2, Text: line})
	}
	return src
}

func TestAnalyzeTotalsAndTopProduct(t *testing.T) {
	result := Analyze(source(
		"Laptop,1200.00,5",
		"Mouse,25.50,10",
	), Options{})

	assert.Equal(t, "6255.00", result.TotalRevenue.String())
	assert.Equal(t, 2, result.ValidCount)
	assert.Equal(t, 0, result.SkippedCount)

	require.NotNil(t, result.TopProduct)
	assert.Equal(t, "Laptop", result.TopProduct.Record.ProductName)
	assert.Equal(t, "6000.00", result.TopProduct.Revenue.String())
}

func TestAnalyzeSkipsMalformedRows(t *testing.T) {
	result := Analyze(source(
		"Laptop,1200.00,5",
		"Widget,abc,3",
		"",
		"Mouse,25.50,10",
		"Cable,5.00,-1",
	), Options{})

	// Malformed rows never poison the totals of valid rows.
	assert.Equal(t, "6255.00", result.TotalRevenue.String())
	assert.Equal(t, 2, result.ValidCount)
	assert.Equal(t, 3, result.SkippedCount)
	assert.Len(t, result.Rejections, 3)

	// Rejections carry the original row numbers.
	assert.Equal(t, 3, result.Rejections[0].RowNumber)
	assert.Equal(t, 4, result.Rejections[1].RowNumber)
	assert.Equal(t, 6, result.Rejections[2].RowNumber)
}

func TestAnalyzeTieKeepsFirstRow(t *testing.T) {
	result := Analyze(source(
		"Alpha,10.00,6",
		"Beta,20.00,3",
		"Gamma,60.00,1",
	), Options{})

	// All three rows hit 60.00; the earliest stays on top.
	require.NotNil(t, result.TopProduct)
	assert.Equal(t, "Alpha", result.TopProduct.Record.ProductName)
	assert.Equal(t, 2, result.TopProduct.Record.RowNumber)
	assert.Equal(t, "60.00", result.TopProduct.Revenue.String())
}

func TestAnalyzeEmptySource(t *testing.T) {
	result := Analyze(source(), Options{})

	assert.True(t, result.TotalRevenue.IsZero())
	assert.Nil(t, result.TopProduct)
	assert.Equal(t, 0, result.ValidCount)
	assert.Equal(t, 0, result.SkippedCount)
}

func TestAnalyzeAllRowsRejected(t *testing.T) {
	result := Analyze(source(
		"bad",
		"also,bad",
	), Options{})

	assert.True(t, result.TotalRevenue.IsZero())
	assert.Nil(t, result.TopProduct)
	assert.Equal(t, 0, result.ValidCount)
	assert.Equal(t, 2, result.SkippedCount)
}

func TestAnalyzeCountsPartitionRows(t *testing.T) {
	src := source(
		"Laptop,1200.00,5",
		"nope",
		"Mouse,25.50,10",
		"Widget,10.00,-2",
		"Desk,,1",
	)

	result := Analyze(src, Options{})

	assert.Equal(t, len(src.Rows), result.ValidCount+result.SkippedCount)
}

func TestAnalyzeIsDeterministic(t *testing.T) {
	src := source(
		"Laptop,1200.00,5",
		"bad row",
		"Mouse,25.50,10",
	)

	first := Analyze(src, Options{})
	second := Analyze(src, Options{})

	assert.True(t, first.TotalRevenue.Equal(second.TotalRevenue))
	assert.Equal(t, first.ValidCount, second.ValidCount)
	assert.Equal(t, first.SkippedCount, second.SkippedCount)
	assert.Equal(t, first.TopProduct.Record.ProductName, second.TopProduct.Record.ProductName)
}

func TestAnalyzeZeroQuantityNotTop(t *testing.T) {
	result := Analyze(source(
		"Freebie,100.00,0",
		"Pen,1.50,2",
	), Options{})

	require.NotNil(t, result.TopProduct)
	assert.Equal(t, "Pen", result.TopProduct.Record.ProductName)
	assert.Equal(t, "3.00", result.TotalRevenue.String())
}
