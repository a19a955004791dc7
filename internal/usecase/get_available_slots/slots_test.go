package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkorchagin/bathhouse-booking/internal/domain"
)

func testLocation(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)
	return loc
}

func at(loc *time.Location, hour, min int) time.Time {
	return time.Date(2025, 10, 15, hour, min, 0, 0, loc)
}

func TestWorkingWindow(t *testing.T) {
	loc := testLocation(t)
	date := time.Date(2025, 10, 15, 0, 0, 0, 0, loc)

	open, close := workingWindow(date, 9, 22, loc)

	assert.Equal(t, at(loc, 9, 0), open)
	assert.Equal(t, at(loc, 22, 0), close)
	assert.Equal(t, loc, open.Location())
}

func TestLocalUTCRoundTrip(t *testing.T) {
	loc := testLocation(t)

	// Граничные часы рабочего дня и суток: конвертация в UTC для
	// запросов к хранилищу и обратно не должна сдвигать локальное
	// настенное время
	cases := []struct {
		name string
		hour int
		min  int
	}{
		{"midnight", 0, 0},
		{"open hour", 9, 0},
		{"mid day", 13, 30},
		{"last slot start", 20, 0},
		{"close hour", 22, 0},
		{"end of day", 23, 59},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			local := at(loc, tc.hour, tc.min)

			back := local.UTC().In(loc)

			assert.True(t, local.Equal(back))
			assert.Equal(t, tc.hour, back.Hour())
			assert.Equal(t, tc.min, back.Minute())
			assert.Equal(t, local.Day(), back.Day())
		})
	}
}

func TestGenerateSlots_EmptyDay(t *testing.T) {
	loc := testLocation(t)
	open, close := at(loc, 9, 0), at(loc, 22, 0)

	slots := generateSlots(open, close, 30, 120, nil)

	// Старты 09:00..20:00 с шагом 30 минут: последний слот 20:00-22:00
	require.NotEmpty(t, slots)
	assert.Equal(t, at(loc, 9, 0), slots[0].Start)
	assert.Equal(t, at(loc, 11, 0), slots[0].End)
	last := slots[len(slots)-1]
	assert.Equal(t, at(loc, 20, 0), last.Start)
	assert.Equal(t, at(loc, 22, 0), last.End)
	assert.Len(t, slots, 23)
}

func TestGenerateSlots_SkipsOverlapping(t *testing.T) {
	loc := testLocation(t)
	open, close := at(loc, 9, 0), at(loc, 22, 0)

	approved := []*domain.Booking{
		{
			StartDatetime: at(loc, 12, 0).UTC(),
			EndDatetime:   at(loc, 14, 0).UTC(),
			Status:        domain.StatusApproved,
		},
	}

	slots := generateSlots(open, close, 30, 120, approved)

	for _, slot := range slots {
		assert.False(t, approved[0].Overlaps(slot.Start, slot.End),
			"slot %s-%s overlaps the approved booking",
			slot.Start.Format(domain.TimeFormat), slot.End.Format(domain.TimeFormat))
	}

	// Слот, заканчивающийся ровно в начале бронирования, остается доступен
	assert.Contains(t, slots, domain.Interval{Start: at(loc, 10, 0), End: at(loc, 12, 0)})
	// Слот, начинающийся ровно в конце бронирования, тоже
	assert.Contains(t, slots, domain.Interval{Start: at(loc, 14, 0), End: at(loc, 16, 0)})
	// Пересекающийся старт отфильтрован
	assert.NotContains(t, slots, domain.Interval{Start: at(loc, 11, 0), End: at(loc, 13, 0)})
}

func TestGenerateSlots_MinDurationDoesNotFit(t *testing.T) {
	loc := testLocation(t)
	open, close := at(loc, 9, 0), at(loc, 10, 0)

	slots := generateSlots(open, close, 30, 120, nil)

	assert.Empty(t, slots)
}

func TestGenerateSlots_FullyBookedDay(t *testing.T) {
	loc := testLocation(t)
	open, close := at(loc, 9, 0), at(loc, 22, 0)

	approved := []*domain.Booking{
		{StartDatetime: open.UTC(), EndDatetime: close.UTC(), Status: domain.StatusApproved},
	}

	slots := generateSlots(open, close, 30, 120, approved)

	assert.Empty(t, slots)
}
