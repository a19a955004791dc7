package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending         BookingStatus = "pending"
	StatusPaymentReported BookingStatus = "payment_reported"
	StatusApproved        BookingStatus = "approved"
	StatusRejected        BookingStatus = "rejected"
	StatusCancelled       BookingStatus = "cancelled"
)

// Booking represents a bathhouse booking in the system
type Booking struct {
	ID               int64
	ClientID         int64
	BathhouseID      int64
	StartDatetime    time.Time // хранится в UTC
	EndDatetime      time.Time // хранится в UTC
	Status           BookingStatus
	PriceTotal       *int64
	PrepaymentAmount *int64
	Comment          string
	CreatedAt        time.Time
}

// CountsTowardLimit returns true if the booking counts toward the
// per-client active bookings cap
func (b *Booking) CountsTowardLimit() bool {
	return b.Status == StatusPending ||
		b.Status == StatusPaymentReported ||
		b.Status == StatusApproved
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusPaymentReported
}

// IsTerminal returns true if the booking reached a terminal status
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusApproved ||
		b.Status == StatusRejected ||
		b.Status == StatusCancelled
}

// Overlaps проверяет пересечение с полуоткрытым интервалом [start, end).
// Граничные случаи (конец одного равен началу другого) пересечением не считаются.
func (b *Booking) Overlaps(start, end time.Time) bool {
	return b.StartDatetime.Before(end) && b.EndDatetime.After(start)
}

// ValidStatus проверяет, что строка является допустимым статусом бронирования
func ValidStatus(s string) bool {
	switch BookingStatus(s) {
	case StatusPending, StatusPaymentReported, StatusApproved, StatusRejected, StatusCancelled:
		return true
	default:
		return false
	}
}
