package store

import (
	"database/sql"
	"fmt"
	"time"
)

// Run records one dataset summarization batch.
type Run struct {
	ID           int64
	Source       string
	Sentences    int
	Vectorizer   string
	RowCount     int
	FailureCount int
	CreatedAt    time.Time
}

// Summary is one summarized row of a run.
type Summary struct {
	RunID   int64
	RowID   int
	Text    string
	Summary string
	Failure string
}

// rowScanner abstracts sql.Row and sql.Rows for shared scan helpers.
type rowScanner interface {
	Scan(dest ...any) error
}

// SummaryStore provides persistence for runs and their summaries
type SummaryStore struct {
	db *DB
}

// NewSummaryStore creates a new summary store
func NewSummaryStore(db *DB) *SummaryStore {
	return &SummaryStore{db: db}
}

// CreateRun inserts a run together with all of its row summaries in a
// single transaction and returns the run id.
func (s *SummaryStore) CreateRun(run *Run, summaries []Summary) (int64, error) {
	run.CreatedAt = time.Now().UTC()
	run.RowCount = len(summaries)
	run.FailureCount = 0
	for _, sum := range summaries {
		if sum.Failure != "" {
			run.FailureCount++
		}
	}

	tx, err := s.db.BeginTx()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`INSERT INTO runs (source, sentences, vectorizer, row_count, failure_count, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.Source, run.Sentences, run.Vectorizer, run.RowCount, run.FailureCount,
		run.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run id: %w", err)
	}
	run.ID = runID

	stmt, err := tx.Prepare(
		`INSERT INTO summaries (run_id, row_id, text, summary, failure)
		 VALUES (?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, sum := range summaries {
		if _, err := stmt.Exec(runID, sum.RowID, sum.Text, sum.Summary, sum.Failure); err != nil {
			return 0, fmt.Errorf("failed to insert summary for row %d: %w", sum.RowID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit: %w", err)
	}

	return runID, nil
}

// GetRun retrieves a run by id, or nil when it does not exist
func (s *SummaryStore) GetRun(id int64) (*Run, error) {
	row := s.db.sqlDB.QueryRow(
		`SELECT id, source, sentences, vectorizer, row_count, failure_count, created_at
		 FROM runs WHERE id = ?`, id,
	)

	run, err := scanRun(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return run, nil
}

// ListRuns returns the most recent runs, newest first
func (s *SummaryStore) ListRuns(limit int) ([]*Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.sqlDB.Query(
		`SELECT id, source, sentences, vectorizer, row_count, failure_count, created_at
		 FROM runs ORDER BY id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// GetSummaries retrieves all summaries of a run ordered by row id
func (s *SummaryStore) GetSummaries(runID int64) ([]Summary, error) {
	rows, err := s.db.sqlDB.Query(
		`SELECT run_id, row_id, text, summary, failure
		 FROM summaries WHERE run_id = ? ORDER BY row_id`, runID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query summaries: %w", err)
	}
	defer rows.Close()

	var summaries []Summary
	for rows.Next() {
		var sum Summary
		if err := rows.Scan(&sum.RunID, &sum.RowID, &sum.Text, &sum.Summary, &sum.Failure); err != nil {
			return nil, fmt.Errorf("failed to scan summary: %w", err)
		}
		summaries = append(summaries, sum)
	}
	return summaries, rows.Err()
}

// DeleteRun removes a run and its summaries
func (s *SummaryStore) DeleteRun(id int64) error {
	tx, err := s.db.BeginTx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM summaries WHERE run_id = ?", id); err != nil {
		return fmt.Errorf("failed to delete summaries: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM runs WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete run: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit delete: %w", err)
	}
	return nil
}

func scanRun(scanner rowScanner) (*Run, error) {
	run := &Run{}
	var createdAt string

	err := scanner.Scan(
		&run.ID, &run.Source, &run.Sentences, &run.Vectorizer,
		&run.RowCount, &run.FailureCount, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	parsed, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}
	run.CreatedAt = parsed

	return run, nil
}
