package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLocation(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)
	return loc
}

func localTime(loc *time.Location, hour, min int) time.Time {
	return time.Date(2025, 10, 15, hour, min, 0, 0, loc)
}

func TestMergeAdjacentIntervals(t *testing.T) {
	loc := mustLocation(t)

	tests := []struct {
		name       string
		intervals  []Interval
		gapMinutes int
		want       []Interval
	}{
		{
			name:       "empty list",
			intervals:  nil,
			gapMinutes: 30,
			want:       []Interval{},
		},
		{
			name: "single interval unchanged",
			intervals: []Interval{
				{Start: localTime(loc, 9, 0), End: localTime(loc, 12, 0)},
			},
			gapMinutes: 30,
			want: []Interval{
				{Start: localTime(loc, 9, 0), End: localTime(loc, 12, 0)},
			},
		},
		{
			name: "adjacent intervals merged",
			intervals: []Interval{
				{Start: localTime(loc, 9, 0), End: localTime(loc, 11, 0)},
				{Start: localTime(loc, 11, 0), End: localTime(loc, 13, 0)},
			},
			gapMinutes: 0,
			want: []Interval{
				{Start: localTime(loc, 9, 0), End: localTime(loc, 13, 0)},
			},
		},
		{
			name: "gap within tolerance merged",
			intervals: []Interval{
				{Start: localTime(loc, 9, 0), End: localTime(loc, 11, 0)},
				{Start: localTime(loc, 11, 30), End: localTime(loc, 13, 0)},
			},
			gapMinutes: 30,
			want: []Interval{
				{Start: localTime(loc, 9, 0), End: localTime(loc, 13, 0)},
			},
		},
		{
			name: "gap beyond tolerance kept apart",
			intervals: []Interval{
				{Start: localTime(loc, 9, 0), End: localTime(loc, 11, 0)},
				{Start: localTime(loc, 12, 0), End: localTime(loc, 13, 0)},
			},
			gapMinutes: 30,
			want: []Interval{
				{Start: localTime(loc, 9, 0), End: localTime(loc, 11, 0)},
				{Start: localTime(loc, 12, 0), End: localTime(loc, 13, 0)},
			},
		},
		{
			name: "unsorted input sorted before merge",
			intervals: []Interval{
				{Start: localTime(loc, 15, 0), End: localTime(loc, 17, 0)},
				{Start: localTime(loc, 9, 0), End: localTime(loc, 11, 0)},
				{Start: localTime(loc, 11, 0), End: localTime(loc, 12, 0)},
			},
			gapMinutes: 0,
			want: []Interval{
				{Start: localTime(loc, 9, 0), End: localTime(loc, 12, 0)},
				{Start: localTime(loc, 15, 0), End: localTime(loc, 17, 0)},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MergeAdjacentIntervals(tt.intervals, tt.gapMinutes)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatIntervals(t *testing.T) {
	loc := mustLocation(t)

	t.Run("empty list gives empty string", func(t *testing.T) {
		assert.Equal(t, "", FormatIntervals(nil))
		assert.Equal(t, "", FormatIntervals([]Interval{}))
	})

	t.Run("two intervals joined with comma", func(t *testing.T) {
		got := FormatIntervals([]Interval{
			{Start: localTime(loc, 9, 0), End: localTime(loc, 13, 0)},
			{Start: localTime(loc, 15, 0), End: localTime(loc, 22, 0)},
		})
		assert.Equal(t, "09:00-13:00, 15:00-22:00", got)
	})

	t.Run("more than three intervals truncated with counter", func(t *testing.T) {
		got := FormatIntervals([]Interval{
			{Start: localTime(loc, 9, 0), End: localTime(loc, 10, 0)},
			{Start: localTime(loc, 11, 0), End: localTime(loc, 12, 0)},
			{Start: localTime(loc, 13, 0), End: localTime(loc, 14, 0)},
			{Start: localTime(loc, 15, 0), End: localTime(loc, 16, 0)},
			{Start: localTime(loc, 17, 0), End: localTime(loc, 18, 0)},
		})
		assert.Equal(t, "09:00-10:00, 11:00-12:00, 13:00-14:00 и еще 2", got)
	})
}
