package workingdays

import "errors"

var (
	// ErrWorkingDayNotFound возвращается, когда рабочий день не настроен
	ErrWorkingDayNotFound = errors.New("workingdays: working day not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("workingdays: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("workingdays: internal error")
)
