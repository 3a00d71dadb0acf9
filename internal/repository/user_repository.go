package repository

import (
	"context"
	"sync"

	"github.com/coderpratik11/gamified-tracker/internal/models"
	"github.com/coderpratik11/gamified-tracker/internal/store"
)

var userSchema = store.Schema{
	Name:    "users",
	Columns: []string{"userId", "userName", "giphyLink", "passwordHash"},
}

type UserRepository struct {
	store store.RowStore
	mu    sync.Mutex
}

func NewUserRepository(rowStore store.RowStore) *UserRepository {
	return &UserRepository{store: rowStore}
}

func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	records, err := r.store.ReadAll(ctx, userSchema)
	if err != nil {
		return nil, err
	}
	users := make([]models.User, len(records))
	for i, rec := range records {
		users[i] = decodeUser(rec)
	}
	return users, nil
}

// Mutate runs one serialized read-modify-write cycle over the users
// collection, same contract as WorkEntryRepository.Mutate.
func (r *UserRepository) Mutate(ctx context.Context, fn func(users []models.User) ([]models.User, error)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.List(ctx)
	if err != nil {
		return err
	}

	updated, err := fn(users)
	if err != nil {
		return err
	}

	records := make([]store.Record, len(updated))
	for i, user := range updated {
		records[i] = encodeUser(user)
	}
	return r.store.WriteAll(ctx, userSchema, records)
}

func encodeUser(u models.User) store.Record {
	return store.Record{u.UserID, u.UserName, u.GiphyLink, u.PasswordHash}
}

func decodeUser(rec store.Record) models.User {
	get := func(i int) string {
		if i < len(rec) {
			return rec[i]
		}
		return ""
	}
	return models.User{
		UserID:       get(0),
		UserName:     get(1),
		GiphyLink:    get(2),
		PasswordHash: get(3),
	}
}
