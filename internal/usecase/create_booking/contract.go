package create_booking

import (
	"context"
	"time"

	"github.com/mkorchagin/bathhouse-booking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	CountActiveByClient(ctx context.Context, clientID int64) (int, error)
}

// ClientRepository интерфейс репозитория клиентов
type ClientRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
}

// BathhouseRepository интерфейс репозитория бань
type BathhouseRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Bathhouse, error)
}

// ConfigProvider интерфейс провайдера бизнес-конфигурации
type ConfigProvider interface {
	GetInt(ctx context.Context, key string, def int) int
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
