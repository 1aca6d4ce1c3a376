package sheet

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"regexp"

	"github.com/go-resty/resty/v2"
)

var sheetKeyRe = regexp.MustCompile(`/spreadsheets/d/([a-zA-Z0-9-_]+)`)

// ExtractSheetKey pulls the sheet key out of a Google Sheets URL.
// Returns the empty string when the URL does not look like one.
func ExtractSheetKey(sheetURL string) string {
	m := sheetKeyRe.FindStringSubmatch(sheetURL)
	if m == nil {
		return ""
	}
	return m[1]
}

// ExportURL builds the public CSV export URL for a sheet key.
// An empty gid selects the first tab.
func ExportURL(key, gid string) string {
	u := fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/export?format=csv", url.PathEscape(key))
	if gid != "" {
		u += "&gid=" + url.QueryEscape(gid)
	}
	return u
}

// Fetch downloads and decodes a public sheet by key and gid.
// Only publicly viewable sheets are supported; there is no auth.
func Fetch(ctx context.Context, client *resty.Client, key, gid string) (*Table, error) {
	return FetchExport(ctx, client, ExportURL(key, gid))
}

// FetchExport downloads and decodes a CSV export from an explicit URL.
func FetchExport(ctx context.Context, client *resty.Client, exportURL string) (*Table, error) {
	if client == nil {
		client = resty.New()
	}
	resp, err := client.R().SetContext(ctx).Get(exportURL)
	if err != nil {
		return nil, fmt.Errorf("fetch sheet: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetch sheet: unexpected status %s", resp.Status())
	}
	table, err := ParseCSV(bytes.NewReader(resp.Body()))
	if err != nil {
		return nil, err
	}
	return table, nil
}
