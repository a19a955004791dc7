package reject_booking

import (
	"context"

	"github.com/mkorchagin/bathhouse-booking/internal/service/bookings/models"
)

type BookingService interface {
	Reject(ctx context.Context, req *models.RejectBookingRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
