package domain

import "time"

// NotificationStatus статус записи в очереди уведомлений
type NotificationStatus string

const (
	NotificationPending NotificationStatus = "pending"
	NotificationSent    NotificationStatus = "sent"
	NotificationFailed  NotificationStatus = "failed"
)

// Notification запись outbox-очереди уведомлений.
// Пишется сервисным слоем при смене статуса бронирования,
// читается и изменяется только диспетчером уведомлений.
type Notification struct {
	ID         int64
	TelegramID string
	Message    string
	BookingID  *int64
	Status     NotificationStatus
	CreatedAt  time.Time
	SentAt     *time.Time
	Attempts   int
}
