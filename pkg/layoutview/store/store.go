// Package store persists classification runs to SQLite.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/ukaji3/layoutview-go/pkg/layoutview/models"

	_ "modernc.org/sqlite"
)

// DB is an open result database.
type DB struct {
	*sql.DB
	path string
}

// RunRecord describes one classification run.
type RunRecord struct {
	RunID     string
	Path      string
	StartedAt time.Time
	Duration  time.Duration
}

// openDB opens a SQLite database at the given path
func openDB(dbPath string) (*sql.DB, error) {
	sqlDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := sqlDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return sqlDB, nil
}

// Open opens or creates the database at path and ensures its schema.
func Open(path string) (*DB, error) {
	sqlDB, err := openDB(path)
	if err != nil {
		return nil, err
	}

	db := &DB{DB: sqlDB, path: path}
	if err := db.InitSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return db, nil
}

// Path returns the database file path
func (db *DB) Path() string {
	return db.path
}

// InitSchema creates missing tables and indexes.
func (db *DB) InitSchema() error {
	_, err := db.Exec(schema)
	return err
}

// SaveRun stores a run and its sheets in one transaction and returns the
// new run's row id.
func (db *DB) SaveRun(ctx context.Context, run RunRecord, sheets []models.ClassifiedSheet) (int64, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (run_id, path, started_at, duration_ms, sheet_count) VALUES (?, ?, ?, ?, ?)`,
		run.RunID, run.Path, run.StartedAt.UTC().Format(time.RFC3339Nano), run.Duration.Milliseconds(), len(sheets))
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run id: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO sheet_results (
		run, position, sheet_name, first_row, first_col, end_row, end_col,
		total_cells, data_cells, density, visible,
		first_row_first_col_content, last_row_first_col_content,
		data_type_mix, column_data_types, row_type_consistency, aspect_ratio,
		sheet_type, classification_reason
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare sheet insert: %w", err)
	}
	defer stmt.Close()

	for i, s := range sheets {
		columns, err := json.Marshal(s.ColumnDataTypes)
		if err != nil {
			return 0, fmt.Errorf("failed to encode columns of %q: %w", s.SheetName, err)
		}
		if _, err := stmt.ExecContext(ctx,
			id, i, s.SheetName, s.FirstRow, s.FirstCol, s.EndRow, s.EndCol,
			s.TotalCells, s.DataCells, s.Density, string(s.Visible),
			nullString(s.FirstRowFirstColContent), nullString(s.LastRowFirstColContent),
			s.DataTypeMix, string(columns), s.RowTypeConsistency, s.AspectRatio,
			string(s.SheetType), s.ClassificationReason,
		); err != nil {
			return 0, fmt.Errorf("failed to insert sheet %q: %w", s.SheetName, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit run: %w", err)
	}
	return id, nil
}

// ListSheetResults returns the sheets stored for a run, in output order.
func (db *DB) ListSheetResults(ctx context.Context, runID int64) ([]models.ClassifiedSheet, error) {
	rows, err := db.QueryContext(ctx, `SELECT
		sheet_name, first_row, first_col, end_row, end_col,
		total_cells, data_cells, density, visible,
		first_row_first_col_content, last_row_first_col_content,
		data_type_mix, column_data_types, row_type_consistency, aspect_ratio,
		sheet_type, classification_reason
	FROM sheet_results WHERE run = ? ORDER BY position`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query sheet results: %w", err)
	}
	defer rows.Close()

	out := []models.ClassifiedSheet{}
	for rows.Next() {
		var (
			s           models.ClassifiedSheet
			visible     string
			sheetType   string
			first, last sql.NullString
			columns     string
		)
		if err := rows.Scan(
			&s.SheetName, &s.FirstRow, &s.FirstCol, &s.EndRow, &s.EndCol,
			&s.TotalCells, &s.DataCells, &s.Density, &visible,
			&first, &last,
			&s.DataTypeMix, &columns, &s.RowTypeConsistency, &s.AspectRatio,
			&sheetType, &s.ClassificationReason,
		); err != nil {
			return nil, fmt.Errorf("failed to scan sheet result: %w", err)
		}
		if err := json.Unmarshal([]byte(columns), &s.ColumnDataTypes); err != nil {
			return nil, fmt.Errorf("failed to decode columns of %q: %w", s.SheetName, err)
		}
		s.Visible = models.SheetVisibility(visible)
		s.SheetType = models.SheetType(sheetType)
		s.FirstRowFirstColContent = stringPtr(first)
		s.LastRowFirstColContent = stringPtr(last)
		out = append(out, s)
	}
	return out, rows.Err()
}

// CountRuns returns how many runs are stored for a workbook path.
func (db *DB) CountRuns(ctx context.Context, path string) (int, error) {
	var n int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM runs WHERE path = ?`, path).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count runs: %w", err)
	}
	return n, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
