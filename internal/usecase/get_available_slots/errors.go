package get_available_slots

import "errors"

var (
	// ErrBathhouseNotFound возвращается, когда баня не найдена
	ErrBathhouseNotFound = errors.New("get_available_slots: bathhouse not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
