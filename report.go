package latexify

import (
	"github.com/riverfjs/latexify-go/internal/sheet"
	"github.com/riverfjs/latexify-go/internal/validate"
)

// FieldResult is the normalization outcome of one text field.
type FieldResult struct {
	// Column the field was read from (Body Text, Answer, Title).
	Column string
	// Original is the raw cell value.
	Original string
	// Text is the normalized value.
	Text string
	// HasLatex reports whether Text carries LaTeX script markers.
	HasLatex bool
	// Changed reports whether normalization altered the field.
	Changed bool
}

// RowResult groups the field results of one sheet row.
type RowResult struct {
	// Index is the zero-based data row index.
	Index int
	// RowType is the row's Row Type cell (problem, step, hint, scaffold).
	RowType string
	// ProblemName is the row's Problem Name cell.
	ProblemName string
	// Fields holds one entry per present text field.
	Fields []FieldResult
}

// Summary aggregates pipeline counters over a whole table.
type Summary struct {
	Rows            int
	RowCounts       map[string]int
	FieldsProcessed int
	FieldsChanged   int
	LatexFields     int
}

// SheetReport is the full outcome of processing one sheet.
type SheetReport struct {
	Table      *sheet.Table
	Validation *validate.Report
	Rows       []RowResult
	Summary    Summary
}
