package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// WriteResults writes batch results as CSV. The layout mirrors the
// input: one line per row with the original text, the summary, and the
// failure reason when the row could not be processed.
func WriteResults(path string, results []RowResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create result file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"row", "text", "summary", "failure"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, res := range results {
		record := []string{strconv.Itoa(res.ID), res.Text, res.Summary, res.Failure}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write row %d: %w", res.ID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush result file: %w", err)
	}
	return nil
}
