package parser

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, rows [][]any) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestExcelParseRows(t *testing.T) {
	data := buildWorkbook(t, [][]any{
		{"Product Name", "Category", "Status", "Identifier", "Quantity", "Cost", "Price"},
		{"Widget", "Gadgets", "Available", "SN1", 3, 5, 19.99},
		{"Widget", "Gadgets", "Sold", "SN2", 1, 5, 19.99},
	})

	rows, err := NewExcelSheetParser().ParseRows(context.Background(), data, "inventory.xlsx")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Product Name", rows[0][0])
	assert.Equal(t, "Widget", rows[1][0])
	assert.Equal(t, "3", rows[1][4])
	assert.Equal(t, fmt.Sprintf("%v", 19.99), rows[1][6])
}

func TestExcelParseRowsRejectsGarbage(t *testing.T) {
	_, err := NewExcelSheetParser().ParseRows(context.Background(), []byte("not a workbook"), "bad.xlsx")
	assert.Error(t, err)
}
