package domain

import "time"

// Client identity record, создается при первом обращении из фронтенда
type Client struct {
	ID         int64
	Name       string
	Phone      *string
	TelegramID *string // внешний идентификатор чата для доставки уведомлений
	Comment    string
	CreatedAt  time.Time
}

// Bathhouse бронируемый ресурс. Создается и деактивируется админкой,
// для ядра бронирований read-only.
type Bathhouse struct {
	ID       int64
	Name     string
	Capacity *int
	IsActive bool
}
