// Package sheet retrieves and decodes tutoring-content spreadsheets
// published as public CSV exports.
package sheet

// Column names read by the processing pipeline.
const (
	ColProblemName = "Problem Name"
	ColRowType     = "Row Type"
	ColTitle       = "Title"
	ColBodyText    = "Body Text"
	ColAnswer      = "Answer"
	ColAnswerType  = "answerType"
)

// Row types used in the Row Type column.
const (
	RowTypeProblem  = "problem"
	RowTypeStep     = "step"
	RowTypeHint     = "hint"
	RowTypeScaffold = "scaffold"
)

// TextColumns are the free-text columns that go through the normalizer.
var TextColumns = []string{ColBodyText, ColAnswer, ColTitle}

// Row is one spreadsheet row keyed by header name.
// Missing cells are simply absent from the map.
type Row map[string]string

// Table is a decoded sheet: ordered headers plus data rows.
type Table struct {
	Headers []string
	Rows    []Row
}

// HasHeader reports whether the table contains the named column.
func (t *Table) HasHeader(name string) bool {
	for _, h := range t.Headers {
		if h == name {
			return true
		}
	}
	return false
}

// CountRowType returns the number of rows with the given Row Type.
func (t *Table) CountRowType(rowType string) int {
	n := 0
	for _, row := range t.Rows {
		if row[ColRowType] == rowType {
			n++
		}
	}
	return n
}
