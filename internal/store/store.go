// Package store provides the row store used for persistence: an external
// medium holding one collection per schema, read and replaced wholesale on
// every access. There are no partial updates, no row-level writes and no
// transactions across collections; callers own the read-modify-write cycle.
package store

import (
	"context"
	"errors"
)

// ErrUnavailable indicates the backing medium could not be reached or
// written. Reads of a collection that simply has no data yet return an empty
// slice, not this error.
var ErrUnavailable = errors.New("store: unavailable")

// Record is one row of a collection, column values in schema order.
type Record []string

// Schema names a collection and fixes its column layout. Column order is
// what the backing medium stores, so it must stay stable.
type Schema struct {
	Name    string
	Columns []string
}

// RowStore is the whole-collection read/replace contract.
type RowStore interface {
	// ReadAll returns every record of the collection in stored order. A
	// collection that was never written is an empty slice.
	ReadAll(ctx context.Context, schema Schema) ([]Record, error)
	// WriteAll replaces the entire collection with the given records,
	// preserving their order.
	WriteAll(ctx context.Context, schema Schema, records []Record) error
	Close() error
}

// columnIndex maps a header row to schema column positions, so records can
// be decoded even if the medium's column order drifted. Returns -1 for
// schema columns missing from the header.
func columnIndex(schema Schema, header []string) []int {
	idx := make([]int, len(schema.Columns))
	for i, col := range schema.Columns {
		idx[i] = -1
		for j, h := range header {
			if h == col {
				idx[i] = j
				break
			}
		}
	}
	return idx
}

// recordFromRow reorders a raw row into schema column order using the index
// produced by columnIndex. Missing cells decode as empty strings.
func recordFromRow(idx []int, row []string) Record {
	rec := make(Record, len(idx))
	for i, j := range idx {
		if j >= 0 && j < len(row) {
			rec[i] = row[j]
		}
	}
	return rec
}
