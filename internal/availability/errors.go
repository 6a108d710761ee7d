package availability

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("availability: invalid input")

	// ErrSchedulingConflict общий родитель конфликтов записи
	ErrSchedulingConflict = errors.New("availability: scheduling conflict")

	// ErrOutsideWorkingHours запись не помещается в часы работы
	ErrOutsideWorkingHours = fmt.Errorf("%w: outside working hours", ErrSchedulingConflict)

	// ErrOverlapsBooking запись пересекается с подтвержденной
	ErrOverlapsBooking = fmt.Errorf("%w: overlaps an existing booking", ErrSchedulingConflict)

	// ErrMalformedBooking у подтвержденной записи не разбирается время
	ErrMalformedBooking = fmt.Errorf("%w: malformed booking time", ErrInvalidInput)
)
