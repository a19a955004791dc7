package notifications

import (
	"context"

	"github.com/mkorchagin/bathhouse-booking/internal/domain"
)

// NotificationRepository интерфейс outbox-очереди уведомлений
type NotificationRepository interface {
	Enqueue(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
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
	GetString(ctx context.Context, key string, def string) string
	GetBool(ctx context.Context, key string, def bool) bool
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
