package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Interval полуоткрытый временной интервал [Start, End)
type Interval struct {
	Start time.Time
	End   time.Time
}

// IsZeroLength returns true if the interval has no positive length
func (i Interval) IsZeroLength() bool {
	return !i.Start.Before(i.End)
}

// MergeAdjacentIntervals сортирует интервалы по началу и склеивает
// соседние: два интервала сливаются, если следующий начинается не позже
// конца текущего плюс допуск gapMinutes
func MergeAdjacentIntervals(intervals []Interval, gapMinutes int) []Interval {
	if len(intervals) == 0 {
		return []Interval{}
	}

	sorted := make([]Interval, len(intervals))
	copy(sorted, intervals)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})

	gap := time.Duration(gapMinutes) * time.Minute

	merged := make([]Interval, 0, len(sorted))
	current := sorted[0]

	for _, next := range sorted[1:] {
		if !next.Start.After(current.End.Add(gap)) {
			if next.End.After(current.End) {
				current.End = next.End
			}
			continue
		}
		merged = append(merged, current)
		current = next
	}

	return append(merged, current)
}

// FormatIntervals форматирует интервалы как "HH:MM-HH:MM" через ", ".
// Показываются максимум 3 интервала, остальные сворачиваются в "и еще <N>".
// Пустой список форматируется в пустую строку — как отображать отсутствие
// свободного времени, решает вызывающая сторона.
func FormatIntervals(intervals []Interval) string {
	if len(intervals) == 0 {
		return ""
	}

	parts := make([]string, 0, len(intervals))
	for _, iv := range intervals {
		parts = append(parts, fmt.Sprintf("%s-%s",
			iv.Start.Format(TimeFormat), iv.End.Format(TimeFormat)))
	}

	if len(parts) <= maxFormattedIntervals {
		return strings.Join(parts, ", ")
	}

	return strings.Join(parts[:maxFormattedIntervals], ", ") +
		fmt.Sprintf(" и еще %d", len(parts)-maxFormattedIntervals)
}
