package store

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// CSVStore keeps each collection in <dataDir>/<name>.csv with a header row,
// the same layout the legacy tracker used.
type CSVStore struct {
	dataDir string
	logger  *zap.Logger
}

func NewCSVStore(dataDir string, logger *zap.Logger) (*CSVStore, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: failed to create data dir: %v", ErrUnavailable, err)
	}
	return &CSVStore{dataDir: dataDir, logger: logger}, nil
}

func (s *CSVStore) path(schema Schema) string {
	return filepath.Join(s.dataDir, schema.Name+".csv")
}

func (s *CSVStore) ReadAll(ctx context.Context, schema Schema) ([]Record, error) {
	f, err := os.Open(s.path(schema))
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Debug("collection file not found, treating as empty",
				zap.String("collection", schema.Name))
			return []Record{}, nil
		}
		return nil, fmt.Errorf("%w: failed to open %s: %v", ErrUnavailable, s.path(schema), err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse %s: %v", ErrUnavailable, s.path(schema), err)
	}
	if len(rows) == 0 {
		return []Record{}, nil
	}

	idx := columnIndex(schema, rows[0])
	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, recordFromRow(idx, row))
	}
	return records, nil
}

func (s *CSVStore) WriteAll(ctx context.Context, schema Schema, records []Record) error {
	tmp, err := os.CreateTemp(s.dataDir, schema.Name+"-*.csv")
	if err != nil {
		return fmt.Errorf("%w: failed to create temp file: %v", ErrUnavailable, err)
	}
	tmpName := tmp.Name()

	writer := csv.NewWriter(tmp)
	if err := writer.Write(schema.Columns); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: failed to write header: %v", ErrUnavailable, err)
	}
	for _, rec := range records {
		if err := writer.Write(rec); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return fmt.Errorf("%w: failed to write record: %v", ErrUnavailable, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: failed to flush csv: %v", ErrUnavailable, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: failed to close temp file: %v", ErrUnavailable, err)
	}

	// Rename so readers never observe a half-written collection.
	if err := os.Rename(tmpName, s.path(schema)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: failed to replace %s: %v", ErrUnavailable, s.path(schema), err)
	}
	return nil
}

func (s *CSVStore) Close() error { return nil }
