package approve_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("approve_booking: booking not found")

	// ErrOverlapConflict возвращается, когда на той же бане уже есть
	// approved-бронирование с пересекающимся интервалом.
	// Статус бронирования при этой ошибке не меняется.
	ErrOverlapConflict = errors.New("approve_booking: overlapping approved booking exists")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("approve_booking: internal error")
)
