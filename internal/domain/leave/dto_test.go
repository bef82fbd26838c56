package leave

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/symplora/lms-backend-go/internal/pkg/validator"
)

func TestApplyLeaveRequest_Validate(t *testing.T) {
	req := ApplyLeaveRequest{StartDate: "2025-01-10", EndDate: "2025-01-12", Reason: "  family trip "}
	require.NoError(t, req.Validate())
	assert.Equal(t, "family trip", req.Reason)

	start, end := req.Dates()
	assert.Equal(t, 3, InclusiveDays(start, end))

	// An inverted range is a workflow decision, not a shape error.
	inverted := ApplyLeaveRequest{StartDate: "2025-01-12", EndDate: "2025-01-10", Reason: "x"}
	assert.NoError(t, inverted.Validate())

	bad := ApplyLeaveRequest{StartDate: "10-01-2025", Reason: " "}
	var errs validator.ValidationErrors
	require.ErrorAs(t, bad.Validate(), &errs)
	got := errs.ToMap()
	assert.Contains(t, got, "start_date")
	assert.Equal(t, "end_date is required", got["end_date"])
	assert.Equal(t, "reason is required", got["reason"])
}

func TestValidateLeaveRequest_Validate(t *testing.T) {
	req := ValidateLeaveRequest{Action: " approved "}
	require.NoError(t, req.Validate())
	assert.Equal(t, "APPROVED", req.Action)

	// Unknown actions pass shape validation and are refused by the workflow.
	other := ValidateLeaveRequest{Action: "maybe"}
	assert.NoError(t, other.Validate())

	empty := ValidateLeaveRequest{}
	assert.Error(t, empty.Validate())
}

func TestListLeaveFilter(t *testing.T) {
	f := ListLeaveFilter{Status: "pending"}
	require.NoError(t, f.Validate())

	filter := f.ToLeaveFilter()
	require.NotNil(t, filter.Status)
	assert.Equal(t, StatusPending, *filter.Status)
	assert.Nil(t, filter.EmployeeID)

	bad := ListLeaveFilter{Status: "done", EmployeeID: "42"}
	var errs validator.ValidationErrors
	require.ErrorAs(t, bad.Validate(), &errs)
	assert.Len(t, errs, 2)
}
