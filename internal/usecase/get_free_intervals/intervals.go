package get_free_intervals

import (
	"sort"
	"time"

	"github.com/mkorchagin/bathhouse-booking/internal/domain"
)

// workingWindow строит границы рабочего дня в локальной таймзоне бани
func workingWindow(date time.Time, openHour, closeHour int, loc *time.Location) (time.Time, time.Time) {
	y, m, d := date.Date()
	open := time.Date(y, m, d, openHour, 0, 0, 0, loc)
	close := time.Date(y, m, d, closeHour, 0, 0, 0, loc)
	return open, close
}

// sweepFreeIntervals вычисляет свободные интервалы рабочего окна.
// Бронирования сортируются по началу, курсор идет от открытия и
// накапливает промежутки до, между и после бронирований; в результат
// попадают только промежутки положительной длины. Без бронирований
// свободно все окно целиком; бронирование, накрывающее окно, дает
// пустой список.
func sweepFreeIntervals(open, close time.Time, approved []*domain.Booking, loc *time.Location) []domain.Interval {
	if len(approved) == 0 {
		return []domain.Interval{{Start: open, End: close}}
	}

	sorted := make([]*domain.Booking, len(approved))
	copy(sorted, approved)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].StartDatetime.Before(sorted[j].StartDatetime)
	})

	free := make([]domain.Interval, 0)
	current := open

	for _, b := range sorted {
		start := b.StartDatetime.In(loc)
		end := b.EndDatetime.In(loc)

		if current.Before(start) {
			gapEnd := start
			if gapEnd.After(close) {
				gapEnd = close
			}
			if current.Before(gapEnd) {
				free = append(free, domain.Interval{Start: current, End: gapEnd})
			}
		}

		if end.After(current) {
			current = end
		}
	}

	if current.Before(close) {
		free = append(free, domain.Interval{Start: current, End: close})
	}

	return free
}
