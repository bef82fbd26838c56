package leave

import "errors"

var (
	ErrLeaveRequestNotFound         = errors.New("leave request not found")
	ErrLeaveRequestAlreadyProcessed = errors.New("leave request already processed")
	ErrInvalidAction                = errors.New("action must be APPROVED or REJECTED")
	ErrEmployeeProfileRequired      = errors.New("an employee profile is required to apply for leave")
)
