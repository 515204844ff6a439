package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationFallsBackToDefault(t *testing.T) {
	loc := Location("Not/AZone")
	assert.Equal(t, Default(), loc.String())

	loc = Location("Europe/Lisbon")
	assert.Equal(t, "Europe/Lisbon", loc.String())
}

func TestSetDefaultIgnoresInvalidZone(t *testing.T) {
	before := Default()
	SetDefault("nope")
	assert.Equal(t, before, Default())
}

func TestParseDateAndAt(t *testing.T) {
	date, err := ParseDate("2026-03-02")
	require.NoError(t, err)
	assert.Equal(t, time.UTC, date.Location())

	loc := Location("Asia/Kolkata")
	at := At(date, 9*60+30, loc)
	assert.Equal(t, 9, at.Hour())
	assert.Equal(t, 30, at.Minute())
	assert.Equal(t, 2, at.Day())

	_, err = ParseDate("02/03/2026")
	assert.Error(t, err)
}

func TestDateOnly(t *testing.T) {
	in := time.Date(2026, 5, 4, 23, 59, 0, 0, time.FixedZone("x", 5*3600))
	assert.Equal(t, time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC), DateOnly(in))
}
