package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/slot"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

func intPtr(n int) *int { return &n }

// 2026-03-02 is a Monday, 2026-03-03 a Tuesday.
var (
	monday  = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	tuesday = time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)
)

func TestWeeklyOffDay(t *testing.T) {
	got := Evaluate(tuesday, nil, nil)
	assert.False(t, got.Available)
	assert.Equal(t, ReasonWeeklyOff, got.Reason)

	got = Evaluate(tuesday, &slot.Window{From: 600, To: 630}, nil)
	assert.False(t, got.Available)
}

func TestApprovedLeaveBlocksDay(t *testing.T) {
	reqs := []models.Leave{
		{Type: string(TypeLeave), Status: string(StatusApproved), Date: monday, Reason: "family function"},
	}

	got := Evaluate(monday, &slot.Window{From: 540, To: 570}, reqs)
	assert.False(t, got.Available)
	assert.Equal(t, "On leave: family function", got.Reason)

	assert.True(t, Evaluate(monday.AddDate(0, 0, 2), nil, reqs).Available)
}

func TestPendingAndRejectedDoNotBlock(t *testing.T) {
	reqs := []models.Leave{
		{Type: string(TypeLeave), Status: string(StatusWaiting), Date: monday, Reason: "x"},
		{Type: string(TypeLeave), Status: string(StatusRejected), Date: monday, Reason: "y"},
	}
	assert.True(t, Evaluate(monday, nil, reqs).Available)
}

func TestPermissionWindow(t *testing.T) {
	reqs := []models.Leave{{
		Type:       string(TypePermission),
		Status:     string(StatusApproved),
		Date:       monday,
		FromMinute: intPtr(14 * 60),
		ToMinute:   intPtr(16 * 60),
		Reason:     "doctor",
	}}

	assert.True(t, Evaluate(monday, nil, reqs).Available, "date-only check ignores windowed permission")
	assert.True(t, Evaluate(monday, &slot.Window{From: 13 * 60, To: 14 * 60}, reqs).Available, "touching window")

	got := Evaluate(monday, &slot.Window{From: 15 * 60, To: 15*60 + 30}, reqs)
	assert.False(t, got.Available)
	assert.Equal(t, "On permission 2:00 PM - 4:00 PM: doctor", got.Reason)
}

func TestPermissionWithoutWindowBlocksDay(t *testing.T) {
	reqs := []models.Leave{
		{Type: string(TypePermission), Status: string(StatusApproved), Date: monday, Reason: "errand"},
	}
	got := Evaluate(monday, nil, reqs)
	assert.False(t, got.Available)
	assert.Equal(t, "On permission: errand", got.Reason)
}
