// Command latexify fetches a public content sheet, validates its
// structure and runs every text field through the normalizer.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	latexify "github.com/riverfjs/latexify-go"
	"github.com/riverfjs/latexify-go/internal/sheet"
	"github.com/riverfjs/latexify-go/internal/validate"
)

var (
	flagGid         string
	flagRenderLatex bool
	flagVerbose     bool
)

func main() {
	// Best-effort: load .env from current directory
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:           "latexify",
		Short:         "Normalize tutoring-content sheet text into LaTeX-safe markup",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flagGid, "gid", os.Getenv("LATEXIFY_GID"), "sheet tab gid (empty = first tab)")
	root.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "trace detected spans and rewrites")

	processCmd := &cobra.Command{
		Use:   "process <sheet-url-or-key>",
		Short: "Fetch a sheet and normalize all text fields",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runProcess,
	}
	processCmd.Flags().BoolVar(&flagRenderLatex, "render-latex", true, "escape reserved characters for math-mode rendering")

	validateCmd := &cobra.Command{
		Use:   "validate <sheet-url-or-key>",
		Short: "Check sheet headers and row structure",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runValidate,
	}

	root.AddCommand(processCmd, validateCmd)

	if err := root.Execute(); err != nil {
		latexify.Logger.Error(err.Error())
		os.Exit(1)
	}
}

// resolveKey accepts either a full Google Sheets URL or a bare key.
// Falls back to LATEXIFY_SHEET_KEY when no argument is given.
func resolveKey(args []string) (string, error) {
	raw := ""
	if len(args) > 0 {
		raw = args[0]
	} else {
		raw = os.Getenv("LATEXIFY_SHEET_KEY")
	}
	if raw == "" {
		return "", fmt.Errorf("no sheet given: pass a URL/key or set LATEXIFY_SHEET_KEY")
	}
	if strings.Contains(raw, "/") {
		key := sheet.ExtractSheetKey(raw)
		if key == "" {
			return "", fmt.Errorf("not a Google Sheets URL: %s", raw)
		}
		return key, nil
	}
	return raw, nil
}

func runProcess(cmd *cobra.Command, args []string) error {
	key, err := resolveKey(args)
	if err != nil {
		return err
	}
	if flagVerbose {
		latexify.SetVerboseLogging()
	}

	report, err := latexify.Latexify(cmd.Context(), key, flagGid,
		latexify.WithRenderLatex(flagRenderLatex),
		latexify.WithVerbosity(flagVerbose),
	)
	if err != nil {
		return err
	}

	printFindings(report.Validation)

	for _, rowType := range []string{sheet.RowTypeProblem, sheet.RowTypeStep, sheet.RowTypeHint, sheet.RowTypeScaffold} {
		fmt.Printf("%-10s %d\n", rowType, report.Summary.RowCounts[rowType])
	}
	fmt.Printf("fields processed: %d\n", report.Summary.FieldsProcessed)
	fmt.Printf("fields changed:   %d\n", report.Summary.FieldsChanged)
	fmt.Printf("fields with latex: %d\n", report.Summary.LatexFields)

	if !report.Validation.OK() {
		return fmt.Errorf("validation failed with %d error(s)", len(report.Validation.Errors))
	}
	return nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	key, err := resolveKey(args)
	if err != nil {
		return err
	}

	table, err := sheet.Fetch(cmd.Context(), nil, key, flagGid)
	if err != nil {
		return err
	}
	latexify.Logger.Info("sheet loaded", "rows", len(table.Rows), "columns", len(table.Headers))

	report := validate.Sheet(table)
	printFindings(report)

	if !report.OK() {
		return fmt.Errorf("validation failed with %d error(s)", len(report.Errors))
	}
	fmt.Println("validation passed")
	return nil
}

func printFindings(report *validate.Report) {
	for _, e := range report.Errors {
		latexify.Logger.Error(e)
	}
	for _, w := range report.Warnings {
		latexify.Logger.Warn(w)
	}
}
