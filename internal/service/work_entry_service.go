package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/coderpratik11/gamified-tracker/internal/catalog"
	"github.com/coderpratik11/gamified-tracker/internal/models"
	"github.com/coderpratik11/gamified-tracker/internal/repository"
)

// WorkEntryService is the work-entry lifecycle engine. Every mutation runs
// as one serialized read-modify-write cycle against the row store; all guard
// failures are detected before anything is written.
type WorkEntryService struct {
	repo            *repository.WorkEntryRepository
	anyoneMayReject bool
	logger          *zap.Logger
}

func NewWorkEntryService(repo *repository.WorkEntryRepository, anyoneMayReject bool, logger *zap.Logger) *WorkEntryService {
	return &WorkEntryService{
		repo:            repo,
		anyoneMayReject: anyoneMayReject,
		logger:          logger,
	}
}

// List returns all work entries.
func (s *WorkEntryService) List(ctx context.Context) ([]models.WorkEntry, error) {
	return s.repo.List(ctx)
}

// Submit creates a new entry in the Not approved state, with points stamped
// from the task catalog and month derived from the date of work.
func (s *WorkEntryService) Submit(ctx context.Context, req models.CreateWorkEntryRequest) (*models.WorkEntry, error) {
	if req.WorkType == "" || req.DateOfWork == "" || req.SubmitterUserID == "" || req.SubmitterUserName == "" {
		return nil, fmt.Errorf("%w: workType, dateOfWork, submitterUserId and submitterUserName are required", ErrMissingField)
	}

	def, ok := catalog.Lookup(req.WorkType)
	if !ok {
		return nil, ErrInvalidWorkType
	}

	if _, err := time.Parse("2006-01-02", req.DateOfWork); err != nil {
		return nil, ErrInvalidDate
	}

	entry := models.WorkEntry{
		EntryID:           uuid.NewString(),
		WorkType:          req.WorkType,
		Points:            def.Points,
		ApprovalStatus:    models.StatusNotApproved,
		Month:             req.DateOfWork[:7],
		DateOfWork:        req.DateOfWork,
		SubmitterUserID:   req.SubmitterUserID,
		SubmitterUserName: req.SubmitterUserName,
		Notes:             req.Notes,
	}

	err := s.repo.Mutate(ctx, func(entries []models.WorkEntry) ([]models.WorkEntry, error) {
		return append(entries, entry), nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Work entry submitted",
		zap.String("entry_id", entry.EntryID),
		zap.String("work_type", entry.WorkType),
		zap.String("submitter", entry.SubmitterUserID),
	)
	return &entry, nil
}

// Approve records one approval. The first approval moves the entry to
// Partially Approved, the second (by a different, non-submitter user) to
// Approved.
func (s *WorkEntryService) Approve(ctx context.Context, entryID string, req models.ApproveWorkEntryRequest) (*models.WorkEntry, error) {
	if req.ApproverUserID == "" || req.ApproverUserName == "" {
		return nil, fmt.Errorf("%w: approver information is required", ErrMissingField)
	}

	var approved models.WorkEntry
	err := s.repo.Mutate(ctx, func(entries []models.WorkEntry) ([]models.WorkEntry, error) {
		i := findEntry(entries, entryID)
		if i == -1 {
			return nil, ErrEntryNotFound
		}
		entry := entries[i]

		if entry.SubmitterUserID == req.ApproverUserID {
			return nil, ErrSelfApproval
		}
		if entry.Approver1UserID == req.ApproverUserID || entry.Approver2UserID == req.ApproverUserID {
			return nil, ErrDuplicateApproval
		}
		if entry.ApprovalStatus == models.StatusApproved {
			return nil, ErrAlreadyApproved
		}

		switch {
		case entry.Approver1UserID == "":
			entry.Approver1UserID = req.ApproverUserID
			entry.Approver1UserName = req.ApproverUserName
			entry.ApprovalStatus = models.StatusPartiallyApproved
		case entry.Approver2UserID == "":
			entry.Approver2UserID = req.ApproverUserID
			entry.Approver2UserName = req.ApproverUserName
			entry.ApprovalStatus = models.StatusApproved
		default:
			// Unreachable given the status guard above, kept as a backstop.
			return nil, ErrTwoApprovers
		}

		entries[i] = entry
		approved = entry
		return entries, nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Work entry approval recorded",
		zap.String("entry_id", approved.EntryID),
		zap.String("approver", req.ApproverUserID),
		zap.String("status", string(approved.ApprovalStatus)),
	)
	return &approved, nil
}

// Reject marks an entry Rejected, leaving approver slots untouched.
// Rejecting an already rejected entry is a no-op that still succeeds.
func (s *WorkEntryService) Reject(ctx context.Context, entryID string, req models.RejectWorkEntryRequest) (*models.WorkEntry, error) {
	var rejected models.WorkEntry
	err := s.repo.Mutate(ctx, func(entries []models.WorkEntry) ([]models.WorkEntry, error) {
		i := findEntry(entries, entryID)
		if i == -1 {
			return nil, ErrEntryNotFound
		}
		entry := entries[i]

		if !s.anyoneMayReject {
			if req.RejectorUserID == "" {
				return nil, fmt.Errorf("%w: rejectorUserId is required", ErrMissingField)
			}
			if req.RejectorUserID == entry.SubmitterUserID {
				return nil, ErrForbidden
			}
		}

		entry.ApprovalStatus = models.StatusRejected
		entries[i] = entry
		rejected = entry
		return entries, nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Work entry rejected", zap.String("entry_id", rejected.EntryID))
	return &rejected, nil
}

// Edit replaces the entry's content. Only the submitter may edit, and only
// while the entry is Not approved or Partially Approved. Any recorded
// approvals are cleared because the task details changed.
func (s *WorkEntryService) Edit(ctx context.Context, entryID string, req models.UpdateWorkEntryRequest) (*models.WorkEntry, error) {
	if req.WorkType == "" || req.DateOfWork == "" {
		return nil, fmt.Errorf("%w: workType and dateOfWork are required", ErrMissingField)
	}

	def, ok := catalog.Lookup(req.WorkType)
	if !ok {
		return nil, ErrInvalidWorkType
	}

	if _, err := time.Parse("2006-01-02", req.DateOfWork); err != nil {
		return nil, ErrInvalidDate
	}

	var updated models.WorkEntry
	err := s.repo.Mutate(ctx, func(entries []models.WorkEntry) ([]models.WorkEntry, error) {
		i := findEntry(entries, entryID)
		if i == -1 {
			return nil, ErrEntryNotFound
		}
		entry := entries[i]

		if entry.SubmitterUserID != req.EditorUserID || !isEditable(entry.ApprovalStatus) {
			return nil, ErrForbidden
		}

		entry.WorkType = req.WorkType
		entry.Points = def.Points
		entry.DateOfWork = req.DateOfWork
		entry.Month = req.DateOfWork[:7]
		if req.Notes != "" {
			entry.Notes = req.Notes
		}
		entry.ApprovalStatus = models.StatusNotApproved
		entry.Approver1UserID = ""
		entry.Approver1UserName = ""
		entry.Approver2UserID = ""
		entry.Approver2UserName = ""

		entries[i] = entry
		updated = entry
		return entries, nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Work entry edited, approvals reset",
		zap.String("entry_id", updated.EntryID),
		zap.String("editor", req.EditorUserID),
	)
	return &updated, nil
}

// Remove deletes an entry permanently. Same guard as Edit: submitter only,
// and only before full approval or rejection.
func (s *WorkEntryService) Remove(ctx context.Context, entryID string, req models.DeleteWorkEntryRequest) error {
	err := s.repo.Mutate(ctx, func(entries []models.WorkEntry) ([]models.WorkEntry, error) {
		i := findEntry(entries, entryID)
		if i == -1 {
			return nil, ErrEntryNotFound
		}
		entry := entries[i]

		if entry.SubmitterUserID != req.DeleterUserID || !isEditable(entry.ApprovalStatus) {
			return nil, ErrForbidden
		}

		return append(entries[:i], entries[i+1:]...), nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("Work entry deleted",
		zap.String("entry_id", entryID),
		zap.String("deleter", req.DeleterUserID),
	)
	return nil
}

func findEntry(entries []models.WorkEntry, entryID string) int {
	for i := range entries {
		if entries[i].EntryID == entryID {
			return i
		}
	}
	return -1
}

func isEditable(status models.ApprovalStatus) bool {
	return status == models.StatusNotApproved || status == models.StatusPartiallyApproved
}
