package approve_booking

import (
	"context"
	"time"

	"github.com/mkorchagin/bathhouse-booking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListApprovedOverlapping(ctx context.Context, bathhouseID int64, start, end time.Time, excludeID int64) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier интерфейс отправки уведомлений о смене статуса.
// Вызывается строго после фиксации транзакции; ошибки не откатывают
// уже совершенный переход.
type Notifier interface {
	NotifyClientApproved(ctx context.Context, booking *domain.Booking) error
}

// MetricsObserver интерфейс для доменных метрик
type MetricsObserver interface {
	ObserveBookingTransition(from, to string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
