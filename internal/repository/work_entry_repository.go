// Package repository maps domain records onto the row store. Every mutation
// goes through a read-modify-write of the whole collection; a per-repository
// mutex serializes those cycles so a slow store write cannot silently erase
// a concurrent writer's change.
package repository

import (
	"context"
	"strconv"
	"sync"

	"github.com/coderpratik11/gamified-tracker/internal/models"
	"github.com/coderpratik11/gamified-tracker/internal/store"
)

var workEntrySchema = store.Schema{
	Name: "work_data",
	Columns: []string{
		"entryId", "workType", "points", "approvalStatus", "month",
		"dateOfWork", "submitterUserId", "submitterUserName",
		"approver1UserId", "approver1UserName",
		"approver2UserId", "approver2UserName", "notes",
	},
}

type WorkEntryRepository struct {
	store store.RowStore
	mu    sync.Mutex
}

func NewWorkEntryRepository(rowStore store.RowStore) *WorkEntryRepository {
	return &WorkEntryRepository{store: rowStore}
}

// List returns a snapshot of all work entries in stored order.
func (r *WorkEntryRepository) List(ctx context.Context) ([]models.WorkEntry, error) {
	records, err := r.store.ReadAll(ctx, workEntrySchema)
	if err != nil {
		return nil, err
	}
	entries := make([]models.WorkEntry, len(records))
	for i, rec := range records {
		entries[i] = decodeWorkEntry(rec)
	}
	return entries, nil
}

// Mutate runs one serialized read-modify-write cycle: it reads the full
// collection, applies fn, and writes back whatever fn returns. If fn or the
// write fails, the store is left untouched and the in-memory change is
// discarded.
func (r *WorkEntryRepository) Mutate(ctx context.Context, fn func(entries []models.WorkEntry) ([]models.WorkEntry, error)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries, err := r.List(ctx)
	if err != nil {
		return err
	}

	updated, err := fn(entries)
	if err != nil {
		return err
	}

	records := make([]store.Record, len(updated))
	for i, entry := range updated {
		records[i] = encodeWorkEntry(entry)
	}
	return r.store.WriteAll(ctx, workEntrySchema, records)
}

func encodeWorkEntry(e models.WorkEntry) store.Record {
	return store.Record{
		e.EntryID, e.WorkType, strconv.Itoa(e.Points), string(e.ApprovalStatus),
		e.Month, e.DateOfWork, e.SubmitterUserID, e.SubmitterUserName,
		e.Approver1UserID, e.Approver1UserName,
		e.Approver2UserID, e.Approver2UserName, e.Notes,
	}
}

func decodeWorkEntry(rec store.Record) models.WorkEntry {
	get := func(i int) string {
		if i < len(rec) {
			return rec[i]
		}
		return ""
	}
	// Malformed legacy rows decode with zero points rather than failing the
	// whole collection.
	points, _ := strconv.Atoi(get(2))
	return models.WorkEntry{
		EntryID:           get(0),
		WorkType:          get(1),
		Points:            points,
		ApprovalStatus:    models.ApprovalStatus(get(3)),
		Month:             get(4),
		DateOfWork:        get(5),
		SubmitterUserID:   get(6),
		SubmitterUserName: get(7),
		Approver1UserID:   get(8),
		Approver1UserName: get(9),
		Approver2UserID:   get(10),
		Approver2UserName: get(11),
		Notes:             get(12),
	}
}
