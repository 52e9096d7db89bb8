package index

import (
	"path/filepath"
	"testing"

	"github.com/mlfeng/sumrank/internal/store"
)

func buildTestIndex(t *testing.T) *SummaryIndex {
	t.Helper()
	idx, err := Create(filepath.Join(t.TempDir(), "index"))
	if err != nil {
		t.Fatalf("failed to create index: %v", err)
	}
	t.Cleanup(func() { idx.Close() })

	run := &store.Run{ID: 1, Source: "TASK.xlsx"}
	summaries := []store.Summary{
		{RunID: 1, RowID: 1, Text: "Cats are mammals. Cats like milk.", Summary: "Cats are mammals."},
		{RunID: 1, RowID: 2, Text: "The weather is sunny today.", Summary: "The weather is sunny today."},
		{RunID: 1, RowID: 3, Text: "broken row", Failure: "summarize row 3: boom"},
	}
	if err := idx.IndexRun(run, summaries); err != nil {
		t.Fatalf("failed to index run: %v", err)
	}
	return idx
}

func TestIndexRunSkipsFailedRows(t *testing.T) {
	idx := buildTestIndex(t)

	count, err := idx.Count()
	if err != nil {
		t.Fatalf("failed to count: %v", err)
	}
	if count != 2 {
		t.Errorf("indexed %d docs, want 2 (failed row skipped)", count)
	}
}

func TestSearch(t *testing.T) {
	idx := buildTestIndex(t)

	hits, err := idx.Search("mammals", 10)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(hits) != 1 {
		t.Fatalf("got %d hits, want 1", len(hits))
	}
	hit := hits[0]
	if hit.RunID != 1 || hit.RowID != 1 {
		t.Errorf("unexpected hit ids: %+v", hit)
	}
	if hit.Summary != "Cats are mammals." {
		t.Errorf("unexpected summary: %q", hit.Summary)
	}
	if hit.Source != "TASK.xlsx" {
		t.Errorf("unexpected source: %q", hit.Source)
	}
	if hit.Score <= 0 {
		t.Errorf("score should be positive, got %f", hit.Score)
	}
}

func TestSearchNoMatches(t *testing.T) {
	idx := buildTestIndex(t)

	hits, err := idx.Search("quantum", 10)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(hits) != 0 {
		t.Errorf("got %d hits, want none", len(hits))
	}
}

func TestOpenExisting(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "index")
	idx, err := Create(dir)
	if err != nil {
		t.Fatalf("failed to create index: %v", err)
	}
	run := &store.Run{ID: 7, Source: "data.csv"}
	if err := idx.IndexRun(run, []store.Summary{
		{RunID: 7, RowID: 1, Text: "Dogs bark loudly.", Summary: "Dogs bark loudly."},
	}); err != nil {
		t.Fatalf("failed to index run: %v", err)
	}
	if err := idx.Close(); err != nil {
		t.Fatalf("failed to close index: %v", err)
	}

	reopened, err := Open(dir)
	if err != nil {
		t.Fatalf("failed to reopen index: %v", err)
	}
	defer reopened.Close()

	hits, err := reopened.Search("dogs", 5)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(hits) != 1 || hits[0].RunID != 7 {
		t.Errorf("unexpected hits after reopen: %+v", hits)
	}
}
