package repository

import "context"

// SheetParser extracts raw rows from an uploaded spreadsheet so they can go
// through the same aggregation pipeline as CSV text.
type SheetParser interface {
	// ParseRows reads the first sheet of the file and returns its rows,
	// header included.
	ParseRows(ctx context.Context, data []byte, filename string) ([][]string, error)
}
