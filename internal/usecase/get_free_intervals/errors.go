package get_free_intervals

import "errors"

var (
	// ErrBathhouseNotFound возвращается, когда баня не найдена
	ErrBathhouseNotFound = errors.New("get_free_intervals: bathhouse not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_free_intervals: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_free_intervals: internal error")
)
