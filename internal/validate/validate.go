// Package validate checks a decoded content sheet for structural
// problems before its text fields are normalized. Findings are
// collected into a Report instead of failing fast; broken rows are a
// content-authoring problem, not a processing error.
package validate

import (
	"fmt"
	"strings"

	"github.com/riverfjs/latexify-go/internal/sheet"
)

// RequiredHeaders are the columns a content sheet must carry.
var RequiredHeaders = []string{
	"Problem Name",
	"Row Type",
	"Title",
	"Body Text",
	"Answer",
	"answerType",
	"HintID",
	"Dependency",
	"mcChoices",
	"Images (space delimited)",
	"Parent",
	"OER src",
	"openstax KC",
	"KC",
	"Taxonomy",
}

// Report collects validation findings. Errors block content
// generation; warnings do not.
type Report struct {
	Errors   []string
	Warnings []string
}

// OK reports whether the sheet passed validation (warnings allowed).
func (r *Report) OK() bool {
	return len(r.Errors) == 0
}

func (r *Report) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Report) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Sheet validates headers and row structure of a decoded table.
//
// Checks, in order:
//   - every required header is present
//   - problem rows carry a Problem Name
//   - step/scaffold rows carry an Answer
//   - every problem has at least one step
//   - text fields containing Markdown formatting (the tutoring
//     renderer expects plain text plus LaTeX)
func Sheet(t *sheet.Table) *Report {
	report := &Report{}

	for _, h := range RequiredHeaders {
		if !t.HasHeader(h) {
			report.errorf("missing required header: %s", h)
		}
	}

	stepsPerProblem := make(map[string]int)
	problemOrder := make([]string, 0)

	for idx, row := range t.Rows {
		// Sheet row numbers are 1-based and include the header row.
		rowNum := idx + 2
		rowType := strings.TrimSpace(row[sheet.ColRowType])
		name := strings.TrimSpace(row[sheet.ColProblemName])

		switch rowType {
		case sheet.RowTypeProblem:
			if name == "" {
				report.errorf("row %d: problem row missing Problem Name", rowNum)
				continue
			}
			if _, seen := stepsPerProblem[name]; !seen {
				stepsPerProblem[name] = 0
				problemOrder = append(problemOrder, name)
			}
		case sheet.RowTypeStep, sheet.RowTypeScaffold:
			if strings.TrimSpace(row[sheet.ColAnswer]) == "" {
				report.warnf("row %d: %s missing answer", rowNum, rowType)
			}
			if name != "" && rowType == sheet.RowTypeStep {
				stepsPerProblem[name]++
			}
		}

		for _, col := range sheet.TextColumns {
			text := strings.TrimSpace(row[col])
			if text == "" {
				continue
			}
			if HasMarkdownFormatting(text) {
				report.warnf("row %d: %s contains Markdown formatting", rowNum, col)
			}
		}
	}

	for _, name := range problemOrder {
		if stepsPerProblem[name] == 0 {
			report.warnf("problem %q has no steps", name)
		}
	}

	return report
}
