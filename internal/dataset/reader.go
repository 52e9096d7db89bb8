// Package dataset reads tabular row sources, runs the summarizer over
// every row, and writes the aggregated results.
package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Row is one record of a tabular source: a stable 1-based id and the
// text to summarize.
type Row struct {
	ID   int
	Text string
}

// columnCandidates are tried in order when no column is configured,
// mirroring the headers the tool has historically been fed.
var columnCandidates = []string{"Introduction", "text", "Text", "TEST DATASET"}

// ReadRows loads the rows of a CSV or Excel file. textColumn names the
// preferred column; when empty or not present, the candidates above are
// tried, then the second column, then the first. Rows with blank text
// are skipped but still consume an id, so ids stay aligned with the
// source file.
func ReadRows(path, textColumn string) ([]Row, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return readCSV(path, textColumn)
	case ".xlsx", ".xls":
		return readExcel(path, textColumn)
	default:
		return nil, fmt.Errorf("unsupported dataset format: %s", filepath.Ext(path))
	}
}

func readCSV(path, textColumn string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return rowsFromRecords(records, textColumn)
}

func readExcel(path, textColumn string) ([]Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	return rowsFromRecords(records, textColumn)
}

func rowsFromRecords(records [][]string, textColumn string) ([]Row, error) {
	if len(records) == 0 {
		return nil, nil
	}
	col := detectColumn(records[0], textColumn)

	rows := make([]Row, 0, len(records)-1)
	for i, record := range records[1:] {
		id := i + 1
		if col >= len(record) {
			continue
		}
		text := strings.TrimSpace(record[col])
		if text == "" {
			continue
		}
		rows = append(rows, Row{ID: id, Text: text})
	}
	return rows, nil
}

// detectColumn picks the text column from the header row.
func detectColumn(header []string, configured string) int {
	candidates := columnCandidates
	if configured != "" {
		candidates = append([]string{configured}, columnCandidates...)
	}
	for _, want := range candidates {
		for i, name := range header {
			if strings.TrimSpace(name) == want {
				return i
			}
		}
	}
	if len(header) >= 2 {
		return 1
	}
	return 0
}
