package store

import (
	"context"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

func newSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"), zap.NewNop())
	if err != nil {
		t.Fatalf("NewSQLiteStore() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteStoreUninitializedCollectionIsEmpty(t *testing.T) {
	s := newSQLiteStore(t)
	records, err := s.ReadAll(context.Background(), testSchema)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(records) != 0 {
		t.Errorf("ReadAll() returned %d records, want 0", len(records))
	}
}

func TestSQLiteStoreRoundTripPreservesOrder(t *testing.T) {
	s := newSQLiteStore(t)
	ctx := context.Background()

	in := []Record{
		{"9", "ninth", "z"},
		{"1", "first", "a"},
		{"5", "fifth", "m"},
	}
	if err := s.WriteAll(ctx, testSchema, in); err != nil {
		t.Fatalf("WriteAll() error = %v", err)
	}

	out, err := s.ReadAll(ctx, testSchema)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("ReadAll() returned %d records, want %d", len(out), len(in))
	}
	for i := range in {
		if out[i][0] != in[i][0] {
			t.Errorf("record %d id = %q, want %q (order must be preserved)", i, out[i][0], in[i][0])
		}
	}
}

func TestSQLiteStoreWriteReplacesCollection(t *testing.T) {
	s := newSQLiteStore(t)
	ctx := context.Background()

	if err := s.WriteAll(ctx, testSchema, []Record{{"1", "a", ""}, {"2", "b", ""}}); err != nil {
		t.Fatalf("WriteAll() error = %v", err)
	}
	if err := s.WriteAll(ctx, testSchema, []Record{{"3", "c", ""}}); err != nil {
		t.Fatalf("WriteAll() error = %v", err)
	}

	out, err := s.ReadAll(ctx, testSchema)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(out) != 1 || out[0][0] != "3" {
		t.Errorf("ReadAll() = %v, want only the second write's records", out)
	}
}
