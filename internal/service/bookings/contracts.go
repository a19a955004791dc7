package bookings

import (
	"context"

	"github.com/mkorchagin/bathhouse-booking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByClientID(ctx context.Context, clientID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	UpdateStatusAndComment(ctx context.Context, id int64, status domain.BookingStatus, comment string) error
}

// Notifier интерфейс постановки уведомлений в очередь
type Notifier interface {
	NotifyAdminPaymentReported(ctx context.Context, booking *domain.Booking) error
	NotifyClientRejected(ctx context.Context, booking *domain.Booking, reason string) error
	NotifyClientCancelled(ctx context.Context, booking *domain.Booking) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsObserver интерфейс сбора метрик переходов статусов
type MetricsObserver interface {
	ObserveBookingTransition(from, to string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
