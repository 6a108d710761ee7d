package whatsapp

// MessageRequest тело запроса на отправку сообщения
type MessageRequest struct {
	Number  string `json:"number"`
	Message string `json:"message"`
}

// ErrorResponse модель ошибки от шлюза
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
