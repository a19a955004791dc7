package create_booking

import "errors"

var (
	// ErrClientNotFound возвращается, когда клиент не найден
	ErrClientNotFound = errors.New("create_booking: client not found")

	// ErrBathhouseNotFound возвращается, когда баня не найдена или неактивна
	ErrBathhouseNotFound = errors.New("create_booking: bathhouse not found")

	// ErrInvalidInterval возвращается, когда start >= end
	// или начало бронирования в прошлом
	ErrInvalidInterval = errors.New("create_booking: invalid booking interval")

	// ErrLimitExceeded возвращается при превышении лимита
	// активных бронирований клиента
	ErrLimitExceeded = errors.New("create_booking: active bookings limit exceeded")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
