package whatsapp

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("whatsapp client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от шлюза
	ErrInvalidResponse = errors.New("whatsapp client: invalid response")

	// ErrEmptyRecipient возвращается, если не указан номер получателя
	ErrEmptyRecipient = errors.New("whatsapp client: empty recipient")
)
