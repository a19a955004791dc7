package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func utc(hour, min int) time.Time {
	return time.Date(2025, 10, 15, hour, min, 0, 0, time.UTC)
}

func TestBookingOverlaps(t *testing.T) {
	booking := &Booking{
		StartDatetime: utc(10, 0),
		EndDatetime:   utc(12, 0),
	}

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{"identical interval", utc(10, 0), utc(12, 0), true},
		{"contained interval", utc(10, 30), utc(11, 30), true},
		{"containing interval", utc(9, 0), utc(13, 0), true},
		{"overlap at head", utc(9, 0), utc(10, 30), true},
		{"overlap at tail", utc(11, 30), utc(13, 0), true},
		{"touching at start is not overlap", utc(8, 0), utc(10, 0), false},
		{"touching at end is not overlap", utc(12, 0), utc(14, 0), false},
		{"fully before", utc(7, 0), utc(9, 0), false},
		{"fully after", utc(13, 0), utc(15, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, booking.Overlaps(tt.start, tt.end))
		})
	}
}

func TestBookingStatusPredicates(t *testing.T) {
	tests := []struct {
		status       BookingStatus
		countsLimit  bool
		cancellable  bool
		terminal     bool
	}{
		{StatusPending, true, true, false},
		{StatusPaymentReported, true, true, false},
		{StatusApproved, true, false, true},
		{StatusRejected, false, false, true},
		{StatusCancelled, false, false, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			b := &Booking{Status: tt.status}
			assert.Equal(t, tt.countsLimit, b.CountsTowardLimit())
			assert.Equal(t, tt.cancellable, b.CanBeCancelled())
			assert.Equal(t, tt.terminal, b.IsTerminal())
		})
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{"pending", "payment_reported", "approved", "rejected", "cancelled"} {
		assert.True(t, ValidStatus(s), s)
	}
	for _, s := range []string{"", "confirmed", "PENDING", "deleted"} {
		assert.False(t, ValidStatus(s), s)
	}
}
