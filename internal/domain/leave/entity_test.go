package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestInclusiveDays(t *testing.T) {
	tests := []struct {
		start, end string
		want       int
	}{
		{"2025-01-10", "2025-01-12", 3},
		{"2025-01-11", "2025-01-11", 1},
		{"2024-02-28", "2024-03-01", 3},
		{"2025-01-12", "2025-01-10", -1},
	}
	for _, tt := range tests {
		t.Run(tt.start+"_"+tt.end, func(t *testing.T) {
			assert.Equal(t, tt.want, InclusiveDays(date(tt.start), date(tt.end)))
		})
	}
}

func TestOverlaps(t *testing.T) {
	existingStart, existingEnd := date("2025-03-05"), date("2025-03-10")

	tests := []struct {
		name       string
		start, end string
		want       bool
	}{
		{"tail overlap", "2025-03-08", "2025-03-12", true},
		{"shares last day", "2025-03-10", "2025-03-15", true},
		{"shares first day", "2025-03-01", "2025-03-05", true},
		{"contained", "2025-03-06", "2025-03-07", true},
		{"contains", "2025-03-01", "2025-03-20", true},
		{"day after", "2025-03-11", "2025-03-15", false},
		{"day before", "2025-03-01", "2025-03-04", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(date(tt.start), date(tt.end), existingStart, existingEnd))
		})
	}
}

func TestNormalizeDate(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*60*60)
	in := time.Date(2025, 1, 10, 23, 30, 0, 0, loc)
	assert.Equal(t, time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), NormalizeDate(in))
}

func TestLeaveStatus(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.True(t, StatusApproved.IsTerminal())
	assert.True(t, StatusRejected.IsTerminal())
	assert.False(t, LeaveStatus("CANCELLED").IsValid())
}
