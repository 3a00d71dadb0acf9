package service

import "errors"

// Failure kinds surfaced by the services. Handlers map these to HTTP
// statuses with errors.Is; messages are safe to show to users.
var (
	ErrMissingField      = errors.New("missing required field")
	ErrInvalidWorkType   = errors.New("invalid work type")
	ErrInvalidDate       = errors.New("date of work must be YYYY-MM-DD")
	ErrEntryNotFound     = errors.New("work entry not found")
	ErrSelfApproval      = errors.New("you cannot approve your own task")
	ErrDuplicateApproval = errors.New("you have already approved this task")
	ErrAlreadyApproved   = errors.New("task is already fully approved")
	ErrTwoApprovers      = errors.New("task already has two approvers")
	ErrForbidden         = errors.New("you do not have permission to modify this task in its current state")
	ErrUserNotFound      = errors.New("user not found")
	ErrInvalidCredential = errors.New("invalid username or password")
)
