package models

// ApprovalStatus is the lifecycle state of a work entry. The string values
// match what older CSV and spreadsheet data already contains.
type ApprovalStatus string

const (
	StatusNotApproved       ApprovalStatus = "Not approved"
	StatusPartiallyApproved ApprovalStatus = "Partially Approved"
	StatusApproved          ApprovalStatus = "Approved"
	StatusRejected          ApprovalStatus = "Rejected"
)

// WorkEntry is one submitted unit of household work. Points are stamped from
// the task catalog when the entry is created or edited and never recomputed
// afterwards; Month is always the YYYY-MM prefix of DateOfWork.
type WorkEntry struct {
	EntryID           string         `json:"entryId"`
	WorkType          string         `json:"workType"`
	Points            int            `json:"points"`
	ApprovalStatus    ApprovalStatus `json:"approvalStatus"`
	Month             string         `json:"month"`
	DateOfWork        string         `json:"dateOfWork"`
	SubmitterUserID   string         `json:"submitterUserId"`
	SubmitterUserName string         `json:"submitterUserName"`
	Approver1UserID   string         `json:"approver1UserId"`
	Approver1UserName string         `json:"approver1UserName"`
	Approver2UserID   string         `json:"approver2UserId"`
	Approver2UserName string         `json:"approver2UserName"`
	Notes             string         `json:"notes"`
}

type CreateWorkEntryRequest struct {
	WorkType          string `json:"workType"`
	DateOfWork        string `json:"dateOfWork"`
	SubmitterUserID   string `json:"submitterUserId"`
	SubmitterUserName string `json:"submitterUserName"`
	Notes             string `json:"notes"`
}

type ApproveWorkEntryRequest struct {
	ApproverUserID   string `json:"approverUserId"`
	ApproverUserName string `json:"approverUserName"`
}

type RejectWorkEntryRequest struct {
	RejectorUserID string `json:"rejectorUserId"`
}

// UpdateWorkEntryRequest edits an existing entry. An empty Notes keeps the
// entry's current notes.
type UpdateWorkEntryRequest struct {
	WorkType     string `json:"workType"`
	DateOfWork   string `json:"dateOfWork"`
	Notes        string `json:"notes"`
	EditorUserID string `json:"editorUserId"`
}

type DeleteWorkEntryRequest struct {
	DeleterUserID string `json:"deleterUserId"`
}
