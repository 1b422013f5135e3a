// Package runstore persists completed runs to a local SQLite database so
// past results remain inspectable after the report file is gone.
package runstore

import (
	"database/sql"
	"fmt"
	"time"

	"panelops/wfctl/internal/database"
	"panelops/wfctl/internal/report"
)

// Repository defines the persistence interface for run history.
type Repository interface {
	SaveRun(run *Run, results []report.Entry) error
	ListRuns(limit int) ([]Run, error)
	Results(runID int64) ([]RunResult, error)
	Prune(olderThan time.Duration) (int64, error)
	Close() error
}

// SQLiteRepository implements Repository backed by a local SQLite database.
type SQLiteRepository struct {
	db *sql.DB
}

// Open creates or opens the run history at the default path.
func Open() (*SQLiteRepository, error) {
	path, err := database.DefaultPath()
	if err != nil {
		return nil, fmt.Errorf("runstore: %w", err)
	}
	return OpenAt(path)
}

// OpenAt creates or opens a SQLite database at the given path.
func OpenAt(path string) (*SQLiteRepository, error) {
	db, err := database.Open(path)
	if err != nil {
		return nil, fmt.Errorf("runstore: %w", err)
	}

	r := &SQLiteRepository{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return r, nil
}

func (r *SQLiteRepository) migrate() error {
	const ddl = `
        CREATE TABLE IF NOT EXISTS runs (
            id        INTEGER PRIMARY KEY AUTOINCREMENT,
            timestamp TEXT    NOT NULL,
            script    TEXT    NOT NULL DEFAULT '',
            username  TEXT    NOT NULL DEFAULT '',
            successes INTEGER NOT NULL DEFAULT 0,
            failures  INTEGER NOT NULL DEFAULT 0
        );
        CREATE TABLE IF NOT EXISTS run_results (
            id        INTEGER PRIMARY KEY AUTOINCREMENT,
            run_id    INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
            timestamp TEXT    NOT NULL,
            label     TEXT    NOT NULL,
            status    TEXT    NOT NULL,
            detail    TEXT    NOT NULL DEFAULT ''
        );
        CREATE INDEX IF NOT EXISTS idx_runs_timestamp ON runs(timestamp);
        CREATE INDEX IF NOT EXISTS idx_run_results_run ON run_results(run_id);
    `
	if _, err := r.db.Exec(ddl); err != nil {
		return fmt.Errorf("runstore: migration failed: %w", err)
	}
	return nil
}

// SaveRun inserts a run and its result rows in one transaction. The run's
// success and failure counts are derived from the results.
func (r *SQLiteRepository) SaveRun(run *Run, results []report.Entry) error {
	if run.Timestamp.IsZero() {
		run.Timestamp = time.Now().UTC()
	}
	for _, entry := range results {
		if entry.Status == "failure" {
			run.Failures++
		} else {
			run.Successes++
		}
	}

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("runstore: begin failed: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec(`
        INSERT INTO runs (timestamp, script, username, successes, failures)
        VALUES (?, ?, ?, ?, ?)`,
		run.Timestamp.Format(time.RFC3339Nano), run.Script, run.Username,
		run.Successes, run.Failures,
	)
	if err != nil {
		return fmt.Errorf("runstore: insert run failed: %w", err)
	}
	runID, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("runstore: failed to get run ID: %w", err)
	}

	for _, entry := range results {
		_, err := tx.Exec(`
            INSERT INTO run_results (run_id, timestamp, label, status, detail)
            VALUES (?, ?, ?, ?, ?)`,
			runID, entry.Timestamp.UTC().Format(time.RFC3339Nano),
			entry.Label, string(entry.Status), entry.Text,
		)
		if err != nil {
			return fmt.Errorf("runstore: insert result failed: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("runstore: commit failed: %w", err)
	}
	run.ID = runID
	return nil
}

// ListRuns returns the most recent n runs, newest first.
func (r *SQLiteRepository) ListRuns(limit int) ([]Run, error) {
	rows, err := r.db.Query(`
        SELECT id, timestamp, script, username, successes, failures
        FROM runs ORDER BY timestamp DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("runstore: query failed: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var timestampStr string
		if err := rows.Scan(&run.ID, &timestampStr, &run.Script, &run.Username,
			&run.Successes, &run.Failures); err != nil {
			return nil, fmt.Errorf("runstore: scan failed: %w", err)
		}
		run.Timestamp, _ = time.Parse(time.RFC3339Nano, timestampStr)
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Results returns the persisted ledger entries of a run, successes first,
// matching the report's bucket order.
func (r *SQLiteRepository) Results(runID int64) ([]RunResult, error) {
	rows, err := r.db.Query(`
        SELECT id, run_id, timestamp, label, status, detail
        FROM run_results WHERE run_id = ?
        ORDER BY CASE status WHEN 'success' THEN 0 ELSE 1 END, id`, runID)
	if err != nil {
		return nil, fmt.Errorf("runstore: query failed: %w", err)
	}
	defer rows.Close()

	var results []RunResult
	for rows.Next() {
		var result RunResult
		var timestampStr string
		if err := rows.Scan(&result.ID, &result.RunID, &timestampStr,
			&result.Label, &result.Status, &result.Detail); err != nil {
			return nil, fmt.Errorf("runstore: scan failed: %w", err)
		}
		result.Timestamp, _ = time.Parse(time.RFC3339Nano, timestampStr)
		results = append(results, result)
	}
	return results, rows.Err()
}

// Prune deletes runs older than the given duration, results included.
func (r *SQLiteRepository) Prune(olderThan time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-olderThan).Format(time.RFC3339Nano)

	if _, err := r.db.Exec(`
        DELETE FROM run_results WHERE run_id IN
            (SELECT id FROM runs WHERE timestamp < ?)`, cutoff); err != nil {
		return 0, fmt.Errorf("runstore: delete results failed: %w", err)
	}
	result, err := r.db.Exec(`DELETE FROM runs WHERE timestamp < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("runstore: delete runs failed: %w", err)
	}
	return result.RowsAffected()
}

// Close releases database resources.
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}
