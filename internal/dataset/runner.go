package dataset

import "fmt"

// Summarizer is the engine-facing contract of the batch runner.
type Summarizer interface {
	Summarize(text string, n int) string
}

// RowResult is the outcome of summarizing one row. Exactly one of
// Summary and Failure is meaningful: a recorded failure leaves the
// summary empty, while an empty summary with no failure means the row
// simply had nothing to extract.
type RowResult struct {
	ID      int    `json:"id"`
	Text    string `json:"text"`
	Summary string `json:"summary"`
	Failure string `json:"failure,omitempty"`
}

// Runner applies the summarizer to every row of a batch.
type Runner struct {
	engine   Summarizer
	progress ProgressReporter
}

// NewRunner creates a batch runner. progress may be nil.
func NewRunner(engine Summarizer, progress ProgressReporter) *Runner {
	return &Runner{engine: engine, progress: progress}
}

// SummarizeRows summarizes each row independently, preserving row order
// and ids. A failing row never aborts the batch: the failure reason is
// recorded on its result and processing continues.
func (r *Runner) SummarizeRows(rows []Row, n int) []RowResult {
	results := make([]RowResult, 0, len(rows))
	if r.progress != nil {
		r.progress.Start(len(rows))
		defer r.progress.Finish()
	}
	for _, row := range rows {
		results = append(results, r.summarizeRow(row, n))
		if r.progress != nil {
			r.progress.Increment()
		}
	}
	return results
}

// summarizeRow isolates one row. The engine resolves degenerate input
// with fallbacks rather than errors, so a failure here means a panic;
// it is recovered and recorded instead of taking the batch down.
func (r *Runner) summarizeRow(row Row, n int) (res RowResult) {
	res = RowResult{ID: row.ID, Text: row.Text}
	defer func() {
		if rec := recover(); rec != nil {
			res.Summary = ""
			res.Failure = fmt.Sprintf("summarize row %d: %v", row.ID, rec)
		}
	}()
	res.Summary = r.engine.Summarize(row.Text, n)
	return res
}
