package notifications

import "errors"

var (
	// ErrClientNotFound возвращается, когда получатель не найден
	ErrClientNotFound = errors.New("notifications: client not found")

	// ErrSendFailed возвращается при ошибке отправки
	ErrSendFailed = errors.New("notifications: failed to send message")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("notifications: internal error")
)
