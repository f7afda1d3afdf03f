package tabular

import "errors"

var (
	// ErrUnsupportedFormat is returned when a file extension is neither
	// .csv nor .xlsx.
	ErrUnsupportedFormat = errors.New("unsupported tabular format")

	// ErrEmptyTable is returned when a file has no header row.
	ErrEmptyTable = errors.New("table has no header row")

	// ErrNoSheets is returned when a workbook contains no worksheets.
	ErrNoSheets = errors.New("workbook has no sheets")
)
