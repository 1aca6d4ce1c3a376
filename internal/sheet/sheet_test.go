package sheet

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSheetKey(t *testing.T) {
	key := ExtractSheetKey("https://docs.google.com/spreadsheets/d/1Bnr7F1un_M934UKC6WXyZi5SDxG-PjYqzV9bZDoP3CQ/edit#gid=0")
	assert.Equal(t, "1Bnr7F1un_M934UKC6WXyZi5SDxG-PjYqzV9bZDoP3CQ", key)

	assert.Empty(t, ExtractSheetKey("https://example.com/not-a-sheet"))
	assert.Empty(t, ExtractSheetKey(""))
}

func TestExportURL(t *testing.T) {
	assert.Equal(t,
		"https://docs.google.com/spreadsheets/d/abc123/export?format=csv&gid=479941982",
		ExportURL("abc123", "479941982"))
	assert.Equal(t,
		"https://docs.google.com/spreadsheets/d/abc123/export?format=csv",
		ExportURL("abc123", ""))
}

func TestParseCSV(t *testing.T) {
	csvData := "Problem Name,Row Type,Body Text\nprob1,problem,Compute [CH3]+\nprob1,step\n"
	table, err := ParseCSV(strings.NewReader(csvData))
	require.NoError(t, err)

	assert.Equal(t, []string{"Problem Name", "Row Type", "Body Text"}, table.Headers)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "Compute [CH3]+", table.Rows[0][ColBodyText])

	// Short record: trailing cell absent, not empty.
	_, ok := table.Rows[1][ColBodyText]
	assert.False(t, ok)
}

func TestParseCSV_MessyHeaders(t *testing.T) {
	// BOM on the first cell, non-breaking space inside a header.
	csvData := "\uFEFFProblem Name,Row Type\na,problem\n"
	table, err := ParseCSV(strings.NewReader(csvData))
	require.NoError(t, err)

	assert.Equal(t, []string{"Problem Name", "Row Type"}, table.Headers)
	assert.Equal(t, "problem", table.Rows[0][ColRowType])
}

func TestParseCSV_Empty(t *testing.T) {
	_, err := ParseCSV(strings.NewReader(""))
	require.Error(t, err)
}

func TestTableHelpers(t *testing.T) {
	table := &Table{
		Headers: []string{ColProblemName, ColRowType},
		Rows: []Row{
			{ColRowType: RowTypeProblem},
			{ColRowType: RowTypeStep},
			{ColRowType: RowTypeStep},
		},
	}
	assert.True(t, table.HasHeader(ColRowType))
	assert.False(t, table.HasHeader("Unknown"))
	assert.Equal(t, 2, table.CountRowType(RowTypeStep))
}

func TestFetchExport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte("Problem Name,Row Type\nprob1,problem\n"))
	}))
	defer srv.Close()

	table, err := FetchExport(context.Background(), resty.New(), srv.URL)
	require.NoError(t, err)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "prob1", table.Rows[0][ColProblemName])
}

func TestFetchExport_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := FetchExport(context.Background(), nil, srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status")
}
