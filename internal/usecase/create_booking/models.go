package create_booking

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	ClientID    int64     // ID клиента
	BathhouseID int64     // ID бани
	StartUTC    time.Time // Начало бронирования (UTC)
	EndUTC      time.Time // Окончание бронирования (UTC)
	Comment     *string   // Комментарий клиента (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          int64
	ClientID    int64
	BathhouseID int64
	StartUTC    time.Time
	EndUTC      time.Time
	Status      string
	Comment     string
	CreatedAt   time.Time
}
