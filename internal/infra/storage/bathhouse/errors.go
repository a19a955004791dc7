package bathhouse

import "errors"

var (
	// ErrBathhouseNotFound возвращается, когда баня не найдена
	ErrBathhouseNotFound = errors.New("bathhouse.repository: bathhouse not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("bathhouse.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("bathhouse.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("bathhouse.repository: failed to scan row")
)
