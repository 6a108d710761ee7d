package update_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда запись не найдена
	ErrBookingNotFound = errors.New("update_booking: booking not found")

	// ErrStatusTransition возвращается при попытке изменить статус завершенной или отмененной записи
	ErrStatusTransition = errors.New("update_booking: booking status can no longer change")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_booking: internal error")
)
