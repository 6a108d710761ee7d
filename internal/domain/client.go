package domain

// Client represents a salon client
type Client struct {
	ID         int64
	Name       string
	WhatsAppID string // адрес для отправки сообщений в WhatsApp
}
