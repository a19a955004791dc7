package notifier

import (
	"context"

	"github.com/mkorchagin/bathhouse-booking/internal/domain"
)

// NotificationRepository интерфейс outbox-очереди уведомлений
type NotificationRepository interface {
	ListPending(ctx context.Context, limit int, maxAttempts int) ([]*domain.Notification, error)
	MarkSent(ctx context.Context, id int64) error
	MarkFailed(ctx context.Context, id int64, maxAttempts int) error
}

// MessageSender интерфейс транспорта доставки сообщений
type MessageSender interface {
	SendMessage(ctx context.Context, telegramID, text string) error
}

// MetricsCollector интерфейс сбора метрик доставки
type MetricsCollector interface {
	ObserveNotification(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
