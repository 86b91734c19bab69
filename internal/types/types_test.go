package types

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ginjaninja78/sales-report-analyzer/internal/money"
)

func TestSalesRecordRevenue(t *testing.T) {
	record := SalesRecord{
		ProductName: "Laptop",
		Price:       money.MustParse("1200.50"),
		Quantity:    5,
	}

	assert.Equal(t, "6002.50", record.Revenue().String())
}

func TestRowRejectionString(t *testing.T) {
	withDetail := RowRejection{
		RowNumber: 4,
		RawLine:   "Widget,abc,3",
		Reason:    ReasonInvalidPrice,
		Detail:    `price "abc" is not a valid number`,
	}
	assert.Equal(t,
		`row 4: invalid_price (price "abc" is not a valid number): "Widget,abc,3"`,
		withDetail.String())

	noDetail := RowRejection{
		RowNumber: 7,
		RawLine:   "",
		Reason:    ReasonEmptyLine,
	}
	assert.Equal(t, `row 7: empty_line: ""`, noDetail.String())
}
