package sheet

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ParseCSV decodes a CSV export into a Table.
//
// The first record is the header row. Header cells are cleaned up
// (see CleanHeader) because Google Sheets exports are messy in
// predictable ways. Short data records are tolerated; the missing
// trailing cells are just absent from the row.
func ParseCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) == 0 {
		return nil, errors.New("parse csv: sheet is empty")
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = CleanHeader(h)
	}

	rows := make([]Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make(Row, len(headers))
		for i, h := range headers {
			if i < len(rec) {
				row[h] = rec[i]
			}
		}
		rows = append(rows, row)
	}

	return &Table{Headers: headers, Rows: rows}, nil
}

// CleanHeader normalizes a header cell: strips the UTF-8 BOM the
// export prepends to the first cell, folds non-breaking spaces to
// regular ones, applies NFC and trims surrounding whitespace.
func CleanHeader(h string) string {
	h = strings.TrimPrefix(h, "\uFEFF")
	h = strings.ReplaceAll(h, " ", " ")
	h = norm.NFC.String(h)
	return strings.TrimSpace(h)
}
