// Package events publishes domain events after the state change they describe
// has been committed.
package events

import (
	"context"
	"time"
)

const (
	TypeLeaveApplied    = "leave.applied"
	TypeLeaveValidated  = "leave.validated"
	TypeEmployeeCreated = "employee.created"
)

type Event struct {
	Type string
	// Key keeps events of one aggregate on the same partition.
	Key        string
	OccurredAt time.Time
	Payload    any
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

type LeaveApplied struct {
	LeaveID         string  `json:"leave_id"`
	EmployeeID      string  `json:"employee_id"`
	Status          string  `json:"status"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	Days            int     `json:"days"`
}

type LeaveValidated struct {
	LeaveID          string  `json:"leave_id"`
	EmployeeID       string  `json:"employee_id"`
	Action           string  `json:"action"`
	Status           string  `json:"status"`
	RejectionReason  *string `json:"rejection_reason,omitempty"`
	ReviewedBy       string  `json:"reviewed_by"`
	RemainingBalance *int    `json:"remaining_balance,omitempty"`
}

type EmployeeCreated struct {
	EmployeeID   string `json:"employee_id"`
	UserID       string `json:"user_id"`
	Email        string `json:"email"`
	EmployeeCode string `json:"employee_code"`
	Department   string `json:"department"`
}
