package create_booking

import "errors"

var (
	// ErrProfessionalUnavailable возвращается, когда рабочий день не настроен или закрыт
	ErrProfessionalUnavailable = errors.New("create_booking: professional is unavailable on this date")

	// ErrOutsideWorkingHours возвращается, когда запись выходит за рабочие часы
	ErrOutsideWorkingHours = errors.New("create_booking: booking is outside working hours")

	// ErrSlotNotAvailable возвращается, когда интервал пересекается с подтвержденной записью
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// Причины конфликтов для метрик
const (
	conflictUnavailable  = "unavailable"
	conflictOutsideHours = "outside_hours"
	conflictOverlap      = "overlap"
)
