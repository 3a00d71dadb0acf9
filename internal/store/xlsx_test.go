package store

import (
	"context"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

func newXLSXStore(t *testing.T) *XLSXStore {
	t.Helper()
	return NewXLSXStore(filepath.Join(t.TempDir(), "test.xlsx"), zap.NewNop())
}

func TestXLSXStoreUninitializedCollectionIsEmpty(t *testing.T) {
	s := newXLSXStore(t)
	records, err := s.ReadAll(context.Background(), testSchema)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(records) != 0 {
		t.Errorf("ReadAll() returned %d records, want 0", len(records))
	}
}

func TestXLSXStoreRoundTrip(t *testing.T) {
	s := newXLSXStore(t)
	ctx := context.Background()

	in := []Record{
		{"1", "first", "a"},
		{"2", "second", ""},
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

func TestXLSXStoreWriteReplacesCollection(t *testing.T) {
	s := newXLSXStore(t)
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

// Both collections live in one workbook; writing one must not clobber the
// other.
func TestXLSXStoreCollectionsAreIndependent(t *testing.T) {
	s := newXLSXStore(t)
	ctx := context.Background()
	other := Schema{Name: "other", Columns: []string{"id", "name", "value"}}

	if err := s.WriteAll(ctx, testSchema, []Record{{"1", "a", ""}}); err != nil {
		t.Fatalf("WriteAll(things) error = %v", err)
	}
	if err := s.WriteAll(ctx, other, []Record{{"2", "b", ""}}); err != nil {
		t.Fatalf("WriteAll(other) error = %v", err)
	}

	things, err := s.ReadAll(ctx, testSchema)
	if err != nil {
		t.Fatalf("ReadAll(things) error = %v", err)
	}
	if len(things) != 1 || things[0][0] != "1" {
		t.Errorf("things = %v, want the original record", things)
	}
}
