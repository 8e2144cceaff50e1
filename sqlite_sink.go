package scenecsv

import (
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"strings"

	_ "modernc.org/sqlite"
)

// SQLiteTable holds exported rows: run_id, row_index, then one TEXT column per header entry.
const SQLiteTable = "export_rows"

// ErrSchemaMismatch is returned when the database already holds rows with other columns,
// typically from a run with a different max_active_lights.
var ErrSchemaMismatch = errors.New("sqlite: existing table has different columns")

// SQLiteSink mirrors the CSV rows into a SQLite table inside one transaction.
// Close commits whatever was written, so an aborted run keeps its partial rows.
type SQLiteSink struct {
	db    *sql.DB
	tx    *sql.Tx
	stmt  *sql.Stmt
	runID string
	row   int
}

func OpenSQLiteSink(path, runID string) (*SQLiteSink, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open: %w", err)
	}
	// Pragmas are per connection.
	db.SetMaxOpenConns(1)
	for _, p := range []string{
		"PRAGMA busy_timeout = 10000",
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
	} {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("sqlite: %s: %w", p, err)
		}
	}
	return &SQLiteSink{db: db, runID: runID}, nil
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func (s *SQLiteSink) WriteHeader(header []string) error {
	if s.tx != nil {
		return errors.New("sqlite: header already written")
	}
	columns := append([]string{"run_id", "row_index"}, header...)
	existing, err := s.tableColumns()
	if err != nil {
		return err
	}
	if len(existing) > 0 && !slices.Equal(existing, columns) {
		return fmt.Errorf("%w: %s has %d columns, export needs %d", ErrSchemaMismatch, SQLiteTable, len(existing), len(columns))
	}

	cols := make([]string, 0, len(columns))
	cols = append(cols, "run_id TEXT NOT NULL", "row_index INTEGER NOT NULL")
	for _, h := range header {
		cols = append(cols, quoteIdent(h)+" TEXT")
	}
	ddl := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", quoteIdent(SQLiteTable), strings.Join(cols, ", "))
	if _, err := s.db.Exec(ddl); err != nil {
		return fmt.Errorf("sqlite: create table: %w", err)
	}

	names := make([]string, len(columns))
	for i, c := range columns {
		names[i] = quoteIdent(c)
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(names)), ", ")
	insert := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", quoteIdent(SQLiteTable), strings.Join(names, ", "), placeholders)

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("sqlite: begin: %w", err)
	}
	stmt, err := tx.Prepare(insert)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("sqlite: prepare insert: %w", err)
	}
	s.tx, s.stmt = tx, stmt
	return nil
}

// tableColumns lists the export table's columns in order; empty if it does not exist yet.
func (s *SQLiteSink) tableColumns() ([]string, error) {
	rows, err := s.db.Query("SELECT name FROM pragma_table_info(?) ORDER BY cid", SQLiteTable)
	if err != nil {
		return nil, fmt.Errorf("sqlite: table info: %w", err)
	}
	defer rows.Close()
	var cols []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("sqlite: table info: %w", err)
		}
		cols = append(cols, name)
	}
	return cols, rows.Err()
}

func (s *SQLiteSink) WriteRow(record []string) error {
	if s.stmt == nil {
		return errors.New("sqlite: row written before header")
	}
	args := make([]any, 0, len(record)+2)
	args = append(args, s.runID, s.row)
	for _, v := range record {
		args = append(args, v)
	}
	if _, err := s.stmt.Exec(args...); err != nil {
		return fmt.Errorf("sqlite: insert row %d: %w", s.row, err)
	}
	s.row++
	return nil
}

func (s *SQLiteSink) Close() error {
	var errs []error
	if s.stmt != nil {
		errs = append(errs, s.stmt.Close())
		s.stmt = nil
	}
	if s.tx != nil {
		errs = append(errs, s.tx.Commit())
		s.tx = nil
	}
	if s.db != nil {
		errs = append(errs, s.db.Close())
		s.db = nil
	}
	return errors.Join(errs...)
}
