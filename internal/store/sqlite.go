package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// SQLiteStore keeps each collection in its own table but preserves the
// whole-collection replace contract: WriteAll deletes every row and inserts
// the new records inside one transaction. A seq column keeps stored order.
type SQLiteStore struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewSQLiteStore(storagePath string, logger *zap.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", storagePath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open database: %v", ErrUnavailable, err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("%w: failed to ping database: %v", ErrUnavailable, err)
	}

	logger.Info("Database connection established", zap.String("path", storagePath))
	return &SQLiteStore{db: db, logger: logger}, nil
}

func (s *SQLiteStore) ensureTable(ctx context.Context, schema Schema) error {
	cols := make([]string, 0, len(schema.Columns)+1)
	cols = append(cols, "seq INTEGER PRIMARY KEY")
	for _, col := range schema.Columns {
		cols = append(cols, fmt.Sprintf("%q TEXT NOT NULL DEFAULT ''", col))
	}
	query := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %q (%s)", schema.Name, strings.Join(cols, ", "))
	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("%w: failed to create table %s: %v", ErrUnavailable, schema.Name, err)
	}
	return nil
}

func (s *SQLiteStore) ReadAll(ctx context.Context, schema Schema) ([]Record, error) {
	if err := s.ensureTable(ctx, schema); err != nil {
		return nil, err
	}

	quoted := make([]string, len(schema.Columns))
	for i, col := range schema.Columns {
		quoted[i] = fmt.Sprintf("%q", col)
	}
	query := fmt.Sprintf("SELECT %s FROM %q ORDER BY seq", strings.Join(quoted, ", "), schema.Name)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query %s: %v", ErrUnavailable, schema.Name, err)
	}
	defer rows.Close()

	records := []Record{}
	for rows.Next() {
		rec := make(Record, len(schema.Columns))
		dest := make([]any, len(rec))
		for i := range rec {
			dest[i] = &rec[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("%w: failed to scan %s row: %v", ErrUnavailable, schema.Name, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: error iterating %s rows: %v", ErrUnavailable, schema.Name, err)
	}
	return records, nil
}

func (s *SQLiteStore) WriteAll(ctx context.Context, schema Schema, records []Record) error {
	if err := s.ensureTable(ctx, schema); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to begin transaction: %v", ErrUnavailable, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM %q", schema.Name)); err != nil {
		return fmt.Errorf("%w: failed to clear %s: %v", ErrUnavailable, schema.Name, err)
	}

	quoted := make([]string, len(schema.Columns))
	placeholders := make([]string, len(schema.Columns)+1)
	placeholders[0] = "?"
	for i, col := range schema.Columns {
		quoted[i] = fmt.Sprintf("%q", col)
		placeholders[i+1] = "?"
	}
	insert := fmt.Sprintf("INSERT INTO %q (seq, %s) VALUES (%s)",
		schema.Name, strings.Join(quoted, ", "), strings.Join(placeholders, ", "))

	stmt, err := tx.PrepareContext(ctx, insert)
	if err != nil {
		return fmt.Errorf("%w: failed to prepare insert: %v", ErrUnavailable, err)
	}
	defer stmt.Close()

	for seq, rec := range records {
		args := make([]any, 0, len(schema.Columns)+1)
		args = append(args, seq)
		for i := range schema.Columns {
			val := ""
			if i < len(rec) {
				val = rec[i]
			}
			args = append(args, val)
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("%w: failed to insert %s row: %v", ErrUnavailable, schema.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: failed to commit %s: %v", ErrUnavailable, schema.Name, err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	s.logger.Info("Database connection closed")
	return nil
}
