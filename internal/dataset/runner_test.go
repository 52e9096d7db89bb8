package dataset

import (
	"testing"
)

// fakeEngine summarizes by echoing and panics on demand.
type fakeEngine struct {
	panicOn string
}

func (f *fakeEngine) Summarize(text string, n int) string {
	if f.panicOn != "" && text == f.panicOn {
		panic("boom")
	}
	if text == "" {
		return ""
	}
	return "summary of " + text
}

func TestSummarizeRows(t *testing.T) {
	rows := []Row{
		{ID: 1, Text: "A."},
		{ID: 2, Text: ""},
		{ID: 3, Text: "C."},
	}
	runner := NewRunner(&fakeEngine{}, nil)
	results := runner.SummarizeRows(rows, 1)

	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	for i, res := range results {
		if res.ID != rows[i].ID {
			t.Errorf("result %d has id %d, want %d", i, res.ID, rows[i].ID)
		}
		if res.Failure != "" {
			t.Errorf("row %d unexpectedly failed: %s", res.ID, res.Failure)
		}
	}
	if results[1].Summary != "" {
		t.Errorf("empty row should yield empty summary, got %q", results[1].Summary)
	}
	if results[0].Summary != "summary of A." {
		t.Errorf("unexpected summary %q", results[0].Summary)
	}
}

func TestSummarizeRowsRecoversPerRow(t *testing.T) {
	rows := []Row{
		{ID: 1, Text: "fine"},
		{ID: 2, Text: "explode"},
		{ID: 3, Text: "also fine"},
	}
	runner := NewRunner(&fakeEngine{panicOn: "explode"}, nil)
	results := runner.SummarizeRows(rows, 2)

	if len(results) != 3 {
		t.Fatalf("batch aborted: got %d results", len(results))
	}
	if results[1].Failure == "" {
		t.Error("failing row should record a failure reason")
	}
	if results[1].Summary != "" {
		t.Errorf("failing row should have empty summary, got %q", results[1].Summary)
	}
	if results[0].Failure != "" || results[2].Failure != "" {
		t.Error("healthy rows should not record failures")
	}
	if results[2].Summary != "summary of also fine" {
		t.Errorf("row after the failure was not processed: %q", results[2].Summary)
	}
}
