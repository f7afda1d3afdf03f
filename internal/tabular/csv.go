package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

const utf8BOM = "\ufeff"

// ReadCSV decodes a comma separated file whose first record is the header.
// Records may have a varying number of fields. A UTF-8 byte order mark
// written by spreadsheet exports is stripped from the first header cell.
func ReadCSV(r io.Reader) (Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	raw, err := reader.ReadAll()
	if err != nil {
		return Table{}, fmt.Errorf("error decoding csv: %w", err)
	}

	if len(raw) > 0 && len(raw[0]) > 0 {
		raw[0][0] = strings.TrimPrefix(raw[0][0], utf8BOM)
	}

	return fromRows(raw)
}
