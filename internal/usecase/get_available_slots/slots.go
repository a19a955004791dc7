package get_available_slots

import (
	"time"

	"github.com/mkorchagin/bathhouse-booking/internal/domain"
)

// workingWindow строит границы рабочего дня в локальной таймзоне бани.
// Рабочие часы определены в локальном гражданском времени, все хранимые
// моменты — в UTC; сравнение интервалов идет по абсолютному времени,
// поэтому построенные здесь значения корректны для обоих представлений.
func workingWindow(date time.Time, openHour, closeHour int, loc *time.Location) (time.Time, time.Time) {
	y, m, d := date.Date()
	open := time.Date(y, m, d, openHour, 0, 0, 0, loc)
	close := time.Date(y, m, d, closeHour, 0, 0, 0, loc)
	return open, close
}

// generateSlots генерирует дискретные слоты для выбора времени начала.
// Старты идут от открытия до закрытия с шагом stepMinutes; слот попадает
// в результат, только если окно [start, start+minBookingMinutes)
// помещается до закрытия и не пересекается ни с одним
// approved-бронированием.
func generateSlots(
	open, close time.Time,
	stepMinutes, minBookingMinutes int,
	approved []*domain.Booking,
) []domain.Interval {
	step := time.Duration(stepMinutes) * time.Minute
	minDuration := time.Duration(minBookingMinutes) * time.Minute

	slots := make([]domain.Interval, 0)

	for start := open; start.Before(close); start = start.Add(step) {
		end := start.Add(minDuration)
		if end.After(close) {
			break
		}

		if overlapsAny(start, end, approved) {
			continue
		}

		slots = append(slots, domain.Interval{Start: start, End: end})
	}

	return slots
}

// overlapsAny проверяет пересечение окна [start, end) хотя бы с одним
// бронированием. Границы интервалов пересечением не считаются.
func overlapsAny(start, end time.Time, bookings []*domain.Booking) bool {
	for _, b := range bookings {
		if b.Overlaps(start, end) {
			return true
		}
	}
	return false
}
