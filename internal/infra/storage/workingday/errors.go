package workingday

import "errors"

var (
	// ErrWorkingDayNotFound возвращается, когда рабочий день не настроен
	ErrWorkingDayNotFound = errors.New("workingday.repository: working day not found")

	// ErrCorruptedTime возвращается, когда JSON с часами работы не проходит проверку
	ErrCorruptedTime = errors.New("workingday.repository: corrupted working time")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("workingday.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("workingday.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("workingday.repository: failed to scan row")
)
