package get_free_intervals

import (
	"context"
	"time"

	"github.com/mkorchagin/bathhouse-booking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListApprovedOverlapping(ctx context.Context, bathhouseID int64, start, end time.Time, excludeID int64) ([]*domain.Booking, error)
}

// BathhouseRepository интерфейс репозитория бань
type BathhouseRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Bathhouse, error)
}

// ConfigProvider интерфейс провайдера бизнес-конфигурации
type ConfigProvider interface {
	GetInt(ctx context.Context, key string, def int) int
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
