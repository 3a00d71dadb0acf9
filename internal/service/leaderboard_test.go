package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/coderpratik11/gamified-tracker/internal/models"
	"github.com/coderpratik11/gamified-tracker/internal/repository"
	"github.com/coderpratik11/gamified-tracker/internal/store"
)

func TestComputeLeaderboard(t *testing.T) {
	users := []models.User{
		{UserID: "u1", UserName: "Alice"},
		{UserID: "u2", UserName: "Bob"},
	}
	entries := []models.WorkEntry{
		{SubmitterUserID: "u1", WorkType: "Cooking", Points: 10, Month: "2025-03", ApprovalStatus: models.StatusApproved},
		{SubmitterUserID: "u1", WorkType: "Cleaning the toilet", Points: 8, Month: "2025-03", ApprovalStatus: models.StatusApproved},
		// Wrong month
		{SubmitterUserID: "u1", WorkType: "Cooking", Points: 10, Month: "2025-02", ApprovalStatus: models.StatusApproved},
		// Not yet approved
		{SubmitterUserID: "u1", WorkType: "Cooking", Points: 10, Month: "2025-03", ApprovalStatus: models.StatusPartiallyApproved},
		// Rejected
		{SubmitterUserID: "u2", WorkType: "Cooking", Points: 10, Month: "2025-03", ApprovalStatus: models.StatusRejected},
	}

	scores := ComputeLeaderboard(users, entries, "2025-03")

	alice := scores["u1"]
	if alice.TotalPoints != 18 {
		t.Errorf("alice total = %d, want 18", alice.TotalPoints)
	}
	if alice.PerCategory["Food"] != 10 {
		t.Errorf("alice Food = %d, want 10", alice.PerCategory["Food"])
	}
	if alice.PerCategory["Cleaning the toilet"] != 8 {
		t.Errorf("alice toilet category = %d, want 8", alice.PerCategory["Cleaning the toilet"])
	}

	bob := scores["u2"]
	if bob.TotalPoints != 0 {
		t.Errorf("bob total = %d, want 0", bob.TotalPoints)
	}
}

// Entries whose work type fell out of the catalog keep their stored points
// in the total but land in no category bucket.
func TestComputeLeaderboardRetiredWorkType(t *testing.T) {
	users := []models.User{{UserID: "u1", UserName: "Alice"}}
	entries := []models.WorkEntry{
		{SubmitterUserID: "u1", WorkType: "Chopping firewood", Points: 12, Month: "2025-03", ApprovalStatus: models.StatusApproved},
	}

	scores := ComputeLeaderboard(users, entries, "2025-03")

	alice := scores["u1"]
	if alice.TotalPoints != 12 {
		t.Errorf("total = %d, want 12 (stored points, never re-resolved)", alice.TotalPoints)
	}
	if len(alice.PerCategory) != 0 {
		t.Errorf("PerCategory = %v, want empty", alice.PerCategory)
	}
}

func TestLeaderboardServiceEndToEnd(t *testing.T) {
	mem := store.NewMemoryStore()
	entryRepo := repository.NewWorkEntryRepository(mem)
	userRepo := repository.NewUserRepository(mem)
	svc := NewWorkEntryService(entryRepo, true, zap.NewNop())
	ctx := context.Background()

	err := userRepo.Mutate(ctx, func(users []models.User) ([]models.User, error) {
		return append(users,
			models.User{UserID: "u1", UserName: "Alice"},
			models.User{UserID: "u2", UserName: "Bob"},
			models.User{UserID: "u3", UserName: "Carol"},
		), nil
	})
	if err != nil {
		t.Fatalf("seed users: %v", err)
	}

	entry := submitEntry(t, svc, "Cooking", "2025-03-05", "u1", "Alice")
	for _, approver := range []struct{ id, name string }{{"u2", "Bob"}, {"u3", "Carol"}} {
		if _, err := svc.Approve(ctx, entry.EntryID, models.ApproveWorkEntryRequest{ApproverUserID: approver.id, ApproverUserName: approver.name}); err != nil {
			t.Fatalf("Approve() error = %v", err)
		}
	}

	scores, err := NewLeaderboardService(entryRepo, userRepo).Monthly(ctx, "2025-03")
	if err != nil {
		t.Fatalf("Monthly() error = %v", err)
	}

	alice := scores["u1"]
	if alice == nil {
		t.Fatal("missing score for u1")
	}
	if alice.TotalPoints != 10 {
		t.Errorf("total = %d, want 10", alice.TotalPoints)
	}
	if alice.PerCategory["Food"] != 10 {
		t.Errorf("Food = %d, want 10", alice.PerCategory["Food"])
	}
}
