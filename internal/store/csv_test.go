package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

func newCSVStore(t *testing.T) *CSVStore {
	t.Helper()
	s, err := NewCSVStore(t.TempDir(), zap.NewNop())
	if err != nil {
		t.Fatalf("NewCSVStore() error = %v", err)
	}
	return s
}

func TestCSVStoreUninitializedCollectionIsEmpty(t *testing.T) {
	s := newCSVStore(t)
	records, err := s.ReadAll(context.Background(), testSchema)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(records) != 0 {
		t.Errorf("ReadAll() returned %d records, want 0", len(records))
	}
}

func TestCSVStoreRoundTrip(t *testing.T) {
	s := newCSVStore(t)
	ctx := context.Background()

	in := []Record{
		{"1", "first", "with,comma"},
		{"2", "second", "with \"quotes\""},
		{"3", "third", ""},
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
		for j := range in[i] {
			if out[i][j] != in[i][j] {
				t.Errorf("record %d col %d = %q, want %q", i, j, out[i][j], in[i][j])
			}
		}
	}
}

func TestCSVStoreWriteReplacesCollection(t *testing.T) {
	s := newCSVStore(t)
	ctx := context.Background()

	s.WriteAll(ctx, testSchema, []Record{{"1", "a", ""}, {"2", "b", ""}})
	s.WriteAll(ctx, testSchema, []Record{{"3", "c", ""}})

	out, err := s.ReadAll(ctx, testSchema)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(out) != 1 || out[0][0] != "3" {
		t.Errorf("ReadAll() = %v, want only the second write's records", out)
	}
}

// Files written by older deployments may have columns in a different order;
// the header row decides the mapping.
func TestCSVStoreTolerantOfColumnOrder(t *testing.T) {
	dir := t.TempDir()
	s, err := NewCSVStore(dir, zap.NewNop())
	if err != nil {
		t.Fatalf("NewCSVStore() error = %v", err)
	}

	legacy := "value,id,name\nx,1,first\n"
	if err := os.WriteFile(filepath.Join(dir, "things.csv"), []byte(legacy), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	out, err := s.ReadAll(context.Background(), testSchema)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("ReadAll() returned %d records, want 1", len(out))
	}
	if out[0][0] != "1" || out[0][1] != "first" || out[0][2] != "x" {
		t.Errorf("ReadAll() = %v, want columns remapped to schema order", out[0])
	}
}
