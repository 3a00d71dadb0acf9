package store

import (
	"context"
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// XLSXStore keeps each collection as one sheet of a workbook, mirroring the
// spreadsheet deployment of the legacy tracker. The workbook is opened and
// closed per operation; serialization of writers happens above the store.
type XLSXStore struct {
	path   string
	logger *zap.Logger
}

func NewXLSXStore(path string, logger *zap.Logger) *XLSXStore {
	return &XLSXStore{path: path, logger: logger}
}

func (s *XLSXStore) open() (*excelize.File, error) {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return excelize.NewFile(), nil
	}
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open workbook %s: %v", ErrUnavailable, s.path, err)
	}
	return f, nil
}

func (s *XLSXStore) ReadAll(ctx context.Context, schema Schema) ([]Record, error) {
	f, err := s.open()
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.Error("Failed to close workbook", zap.Error(err))
		}
	}()

	idx, err := f.GetSheetIndex(schema.Name)
	if err != nil || idx == -1 {
		s.logger.Debug("collection sheet not found, treating as empty",
			zap.String("collection", schema.Name))
		return []Record{}, nil
	}

	rows, err := f.GetRows(schema.Name)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read sheet %s: %v", ErrUnavailable, schema.Name, err)
	}
	if len(rows) == 0 {
		return []Record{}, nil
	}

	colIdx := columnIndex(schema, rows[0])
	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, recordFromRow(colIdx, row))
	}
	return records, nil
}

func (s *XLSXStore) WriteAll(ctx context.Context, schema Schema, records []Record) error {
	f, err := s.open()
	if err != nil {
		return err
	}
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.Error("Failed to close workbook", zap.Error(err))
		}
	}()

	// Build the new collection on a scratch sheet, then swap it in so a
	// failed write never leaves a truncated sheet behind.
	const scratch = "__rewrite"
	if _, err := f.NewSheet(scratch); err != nil {
		return fmt.Errorf("%w: failed to create scratch sheet: %v", ErrUnavailable, err)
	}

	header := make([]any, len(schema.Columns))
	for i, col := range schema.Columns {
		header[i] = col
	}
	if err := f.SetSheetRow(scratch, "A1", &header); err != nil {
		return fmt.Errorf("%w: failed to write header: %v", ErrUnavailable, err)
	}
	for i, rec := range records {
		row := make([]any, len(rec))
		for j, val := range rec {
			row[j] = val
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("%w: failed to compute cell name: %v", ErrUnavailable, err)
		}
		if err := f.SetSheetRow(scratch, cell, &row); err != nil {
			return fmt.Errorf("%w: failed to write row: %v", ErrUnavailable, err)
		}
	}

	if idx, err := f.GetSheetIndex(schema.Name); err == nil && idx != -1 {
		if err := f.DeleteSheet(schema.Name); err != nil {
			return fmt.Errorf("%w: failed to drop old sheet %s: %v", ErrUnavailable, schema.Name, err)
		}
	}
	if err := f.SetSheetName(scratch, schema.Name); err != nil {
		return fmt.Errorf("%w: failed to rename scratch sheet: %v", ErrUnavailable, err)
	}

	if err := f.SaveAs(s.path); err != nil {
		return fmt.Errorf("%w: failed to save workbook %s: %v", ErrUnavailable, s.path, err)
	}
	return nil
}

func (s *XLSXStore) Close() error { return nil }
