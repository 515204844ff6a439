package slot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

func strPtr(s string) *string { return &s }

func TestFindConflict(t *testing.T) {
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	barberA := strPtr("barber-a")

	existing := []models.Slot{
		{ID: "s1", SalonID: "salon", BarberID: barberA, Date: date, FromMinute: 540, ToMinute: 570},
		{ID: "s2", SalonID: "salon", BarberID: nil, Date: date, FromMinute: 540, ToMinute: 570},
		{ID: "s3", SalonID: "salon", BarberID: barberA, Date: date.AddDate(0, 0, 1), FromMinute: 540, ToMinute: 570},
	}

	got := FindConflict("salon", barberA, date, Window{From: 555, To: 585}, existing)
	require.NotNil(t, got)
	assert.Equal(t, "s1", got.ID)

	got = FindConflict("salon", nil, date, Window{From: 555, To: 585}, existing)
	require.NotNil(t, got)
	assert.Equal(t, "s2", got.ID)

	assert.Nil(t, FindConflict("salon", strPtr("barber-b"), date, Window{From: 540, To: 570}, existing))
	assert.Nil(t, FindConflict("salon", barberA, date, Window{From: 570, To: 600}, existing))
	assert.Nil(t, FindConflict("other", barberA, date, Window{From: 540, To: 570}, existing))
}

func TestScheduleKey(t *testing.T) {
	date := time.Date(2026, 3, 2, 18, 0, 0, 0, time.FixedZone("IST", 19800))
	assert.Equal(t, "salon|general|2026-03-02", ScheduleKey("salon", nil, date))
	assert.Equal(t, "salon|general|2026-03-02", ScheduleKey("salon", strPtr(""), date))
	assert.Equal(t, "salon|b1|2026-03-02", ScheduleKey("salon", strPtr("b1"), date))
}
