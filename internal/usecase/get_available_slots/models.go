package get_available_slots

import (
	"time"

	"github.com/mkorchagin/bathhouse-booking/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	BathhouseID int64     // ID бани
	Date        time.Time // Календарная дата в локальной таймзоне бани
}

// Response модель ответа со списком доступных слотов.
// Интервалы слотов в локальном времени бани, по возрастанию начала.
type Response struct {
	BathhouseID int64
	Date        time.Time
	Slots       []domain.Interval
}
