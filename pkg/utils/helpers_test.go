package utils

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSameDay(t *testing.T) {
	t.Parallel()

	seoul := time.FixedZone("KST", 9*3600)
	a := time.Date(2026, 10, 19, 23, 30, 0, 0, seoul)
	b := time.Date(2026, 10, 19, 0, 5, 0, 0, seoul)
	c := time.Date(2026, 10, 19, 15, 0, 0, 0, time.UTC) // 2026-10-20 00:00 KST

	assert.True(t, SameDay(a, b, seoul))
	assert.False(t, SameDay(a, c, seoul))
	assert.True(t, SameDay(a.UTC(), c, time.UTC))
}

func TestDaysBetween(t *testing.T) {
	t.Parallel()

	kst := time.FixedZone("KST", 9*3600)
	now := time.Date(2026, 10, 19, 10, 0, 0, 0, kst)

	tests := []struct {
		name string
		to   time.Time
		want int
	}{
		{"same day", time.Date(2026, 10, 19, 23, 59, 0, 0, kst), 0},
		{"tomorrow midnight", time.Date(2026, 10, 20, 0, 0, 0, 0, kst), 1},
		{"five days", time.Date(2026, 10, 24, 0, 0, 0, 0, kst), 5},
		{"six days", time.Date(2026, 10, 25, 0, 0, 0, 0, kst), 6},
		{"yesterday", time.Date(2026, 10, 18, 22, 0, 0, 0, kst), -1},
		{"across a month", time.Date(2026, 11, 2, 0, 0, 0, 0, kst), 14},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysBetween(now, tt.to))
		})
	}
}

func TestDaysBetweenAcrossDaylightSaving(t *testing.T) {
	t.Parallel()

	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 2026-11-01 lasts 25h in New York, 2026-03-08 lasts 23h
	fallStart, err := ParseDate("2026-11-01", ny)
	require.NoError(t, err)
	fallEnd, err := ParseDate("2026-11-02", ny)
	require.NoError(t, err)
	require.Equal(t, 25*time.Hour, fallEnd.Sub(fallStart))

	springStart, err := ParseDate("2026-03-08", ny)
	require.NoError(t, err)
	springEnd, err := ParseDate("2026-03-10", ny)
	require.NoError(t, err)

	assert.Equal(t, 1, DaysBetween(fallStart, fallEnd))
	assert.Equal(t, 2, InclusiveDays(fallStart, fallEnd))
	assert.Equal(t, 2, DaysBetween(springStart, springEnd))
	assert.Equal(t, 3, InclusiveDays(springStart, springEnd))
}

func TestInclusiveDays(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 1, InclusiveDays(start, start))
	assert.Equal(t, 3, InclusiveDays(start, start.AddDate(0, 0, 2)))
	assert.Equal(t, 10, InclusiveDays(start, start.AddDate(0, 0, 9)))
	assert.Equal(t, 1, InclusiveDays(start, start.AddDate(0, 0, -3)))
	assert.Equal(t, 2, InclusiveDays(start, start.AddDate(0, 0, 1).Add(20*time.Hour)), "clock time is ignored")
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	seoul := time.FixedZone("KST", 9*3600)
	d, err := ParseDate("2026-12-24", seoul)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 12, 24, 0, 0, 0, 0, seoul), d)

	_, err = ParseDate("24/12/2026", seoul)
	assert.Error(t, err)
}

func TestClamp(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 7, Clamp(12, 1, 7))
	assert.Equal(t, 1, Clamp(-2, 1, 7))
	assert.Equal(t, 4, Clamp(4, 1, 7))
	assert.InDelta(t, 0.5, Clamp(0.5, 0.0, 1.0), 1e-9)
}
