package sysconfig

import "errors"

var (
	// ErrConfigNotFound возвращается, когда ключ конфигурации не найден
	ErrConfigNotFound = errors.New("sysconfig.service: config key not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("sysconfig.service: invalid input")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("sysconfig.service: internal error")
)
