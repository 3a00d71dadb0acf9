package service

import (
	"context"

	"github.com/coderpratik11/gamified-tracker/internal/catalog"
	"github.com/coderpratik11/gamified-tracker/internal/models"
	"github.com/coderpratik11/gamified-tracker/internal/repository"
)

// UserScore is one user's monthly standing.
type UserScore struct {
	UserID      string         `json:"userId"`
	UserName    string         `json:"userName"`
	GiphyLink   string         `json:"giphyLink"`
	TotalPoints int            `json:"totalPoints"`
	PerCategory map[string]int `json:"perCategoryPoints"`
}

// ComputeLeaderboard sums the stored points of approved entries per user for
// the given YYYY-MM month. Stored points are authoritative: entries whose
// work type no longer resolves in the catalog still count toward the total,
// they just land in no category bucket.
func ComputeLeaderboard(users []models.User, entries []models.WorkEntry, month string) map[string]*UserScore {
	scores := make(map[string]*UserScore, len(users))
	for _, user := range users {
		scores[user.UserID] = &UserScore{
			UserID:      user.UserID,
			UserName:    user.UserName,
			GiphyLink:   user.GiphyLink,
			PerCategory: make(map[string]int),
		}
	}

	for _, entry := range entries {
		if entry.ApprovalStatus != models.StatusApproved || entry.Month != month {
			continue
		}
		score, ok := scores[entry.SubmitterUserID]
		if !ok {
			continue
		}
		score.TotalPoints += entry.Points
		if def, ok := catalog.Lookup(entry.WorkType); ok {
			score.PerCategory[def.Category] += entry.Points
		}
	}
	return scores
}

// LeaderboardService reads both collections and applies ComputeLeaderboard.
type LeaderboardService struct {
	entries *repository.WorkEntryRepository
	users   *repository.UserRepository
}

func NewLeaderboardService(entries *repository.WorkEntryRepository, users *repository.UserRepository) *LeaderboardService {
	return &LeaderboardService{entries: entries, users: users}
}

func (s *LeaderboardService) Monthly(ctx context.Context, month string) (map[string]*UserScore, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	entries, err := s.entries.List(ctx)
	if err != nil {
		return nil, err
	}
	return ComputeLeaderboard(users, entries, month), nil
}
