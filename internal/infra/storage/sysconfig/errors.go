package sysconfig

import "errors"

var (
	// ErrConfigNotFound возвращается, когда ключ конфигурации не найден
	ErrConfigNotFound = errors.New("sysconfig.repository: config key not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("sysconfig.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("sysconfig.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("sysconfig.repository: failed to scan row")
)
