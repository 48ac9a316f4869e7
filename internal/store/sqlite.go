package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// JournalEntry is one stored diagnostic record.
type JournalEntry struct {
	ID         int64     `json:"id"`
	Session    string    `json:"session"`
	Seq        uint64    `json:"seq"`
	Op         Op        `json:"op"`
	TaskID     int64     `json:"task_id"`
	RecordedAt time.Time `json:"recorded_at"`
	Tasks      string    `json:"tasks"`
}

// SQLiteJournal is a Sink that appends every record to a SQLite table so the
// history of a session can be inspected from outside the process. Each
// journal instance tags its rows with a fresh session id.
type SQLiteJournal struct {
	db      *sql.DB
	session string
}

// NewSQLiteJournal opens (or creates) the journal database at dbPath.
// Missing parent directories are created.
func NewSQLiteJournal(dbPath string) (*SQLiteJournal, error) {
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create journal directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}
	// Every connection to ":memory:" is a separate database.
	db.SetMaxOpenConns(1)

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate journal: %w", err)
	}

	return &SQLiteJournal{db: db, session: uuid.NewString()}, nil
}

// Session returns the id this journal stamps on its rows.
func (j *SQLiteJournal) Session() string {
	return j.session
}

// Close closes the database connection.
func (j *SQLiteJournal) Close() error {
	return j.db.Close()
}

// Write appends the record.
func (j *SQLiteJournal) Write(rec Record) error {
	data, err := rec.TasksJSON()
	if err != nil {
		return err
	}

	_, err = j.db.Exec(`
		INSERT INTO journal (session, seq, op, task_id, recorded_at, tasks_json)
		VALUES (?, ?, ?, ?, ?, ?)
	`, j.session, rec.Seq, string(rec.Op), rec.TaskID, rec.At.UTC().Format(time.RFC3339Nano), string(data))
	if err != nil {
		return fmt.Errorf("failed to write journal record %d: %w", rec.Seq, err)
	}

	return nil
}

// Recent returns up to limit entries of the current session, newest first.
// A limit of 0 or less returns every entry.
func (j *SQLiteJournal) Recent(ctx context.Context, limit int) ([]JournalEntry, error) {
	query := `
		SELECT id, session, seq, op, task_id, recorded_at, tasks_json
		FROM journal WHERE session = ?
		ORDER BY seq DESC
	`
	args := []interface{}{j.session}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := j.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list journal: %w", err)
	}
	defer rows.Close()

	entries := make([]JournalEntry, 0)
	for rows.Next() {
		var (
			e          JournalEntry
			op         string
			recordedAt string
		)
		if err := rows.Scan(&e.ID, &e.Session, &e.Seq, &op, &e.TaskID, &recordedAt, &e.Tasks); err != nil {
			return nil, fmt.Errorf("failed to scan journal entry: %w", err)
		}
		e.Op = Op(op)
		e.RecordedAt, err = time.Parse(time.RFC3339Nano, recordedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse recorded_at %q: %w", recordedAt, err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
