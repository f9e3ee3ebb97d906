package parser

import (
	"bytes"
	"context"
	"fmt"

	"github.com/waqashussainziarana-ux/woogenius/internal/domain/repository"
	"github.com/xuri/excelize/v2"
)

type excelSheetParser struct{}

// NewExcelSheetParser creates a parser for .xlsx bulk uploads. The first
// sheet's rows feed the same aggregation pipeline as CSV text.
func NewExcelSheetParser() repository.SheetParser {
	return &excelSheetParser{}
}

// ParseRows reads the first sheet of the workbook and returns its rows,
// header included.
func (e *excelSheetParser) ParseRows(ctx context.Context, data []byte, filename string) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open excel file %s: %w", filename, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("excel file %s has no sheets", filename)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	return rows, nil
}
