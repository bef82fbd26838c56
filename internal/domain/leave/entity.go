package leave

import (
	"time"
)

type LeaveStatus string

const (
	StatusPending  LeaveStatus = "PENDING"
	StatusApproved LeaveStatus = "APPROVED"
	StatusRejected LeaveStatus = "REJECTED"
)

// IsTerminal reports whether no further transition is allowed.
func (s LeaveStatus) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

func (s LeaveStatus) IsValid() bool {
	return s == StatusPending || s.IsTerminal()
}

// Reasons recorded on requests that were rejected by a rule.
const (
	ReasonStartAfterEnd        = "start date is after end date"
	ReasonBeforeJoiningDate    = "start date is before joining date"
	ReasonInsufficientBalance  = "insufficient leave balance"
	ReasonOverlapsApproved     = "overlaps an approved leave"
	ReasonInsufficientApproval = "insufficient leave balance at approval"
)

type LeaveRequest struct {
	ID              string
	EmployeeID      string
	StartDate       time.Time
	EndDate         time.Time
	Reason          string
	Status          LeaveStatus
	RejectionReason *string
	ReviewedBy      *string
	ReviewedAt      *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Join
	EmployeeName *string
}

// Days is the inclusive number of calendar days the request covers.
func (r LeaveRequest) Days() int {
	return InclusiveDays(r.StartDate, r.EndDate)
}

// LeaveStatusUpdate moves a request from one status to another. The update
// only applies while the stored status still equals From.
type LeaveStatusUpdate struct {
	ID              string
	From            LeaveStatus
	To              LeaveStatus
	RejectionReason *string
	ReviewedBy      string
	ReviewedAt      time.Time
}

type LeaveFilter struct {
	Status     *LeaveStatus
	EmployeeID *string
}

const day = 24 * time.Hour

// InclusiveDays returns floor((end-start)/1 day)+1. It is zero or negative
// when end falls before start.
func InclusiveDays(start, end time.Time) int {
	diff := end.Sub(start)
	days := int(diff / day)
	if diff%day < 0 {
		days--
	}
	return days + 1
}

// Overlaps reports whether [aStart, aEnd] and [bStart, bEnd] share at least
// one day. Both bounds are inclusive.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !aEnd.Before(bStart)
}

// NormalizeDate truncates t to midnight UTC of its calendar day.
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
