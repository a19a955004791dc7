package get_free_intervals

import (
	"time"

	"github.com/mkorchagin/bathhouse-booking/internal/domain"
)

// Request модель запроса на получение свободных интервалов
type Request struct {
	BathhouseID int64     // ID бани
	Date        time.Time // Календарная дата в локальной таймзоне бани
	// MergeGapMinutes допуск склейки почти смежных интервалов в сводке.
	// На список Intervals не влияет.
	MergeGapMinutes int
}

// Response модель ответа со свободными интервалами.
// Intervals в локальном времени бани, по возрастанию начала.
// Summary человекочитаемая сводка после склейки почти смежных окон.
type Response struct {
	BathhouseID int64
	Date        time.Time
	Intervals   []domain.Interval
	Summary     string
}
