package domain

// MessageTemplate is a stored notification text with {placeholder} markers
type MessageTemplate struct {
	ID   int64
	Name string
	Body string
}

// Template names
const (
	TemplateNewBooking       = "NEW_BOOKING"
	TemplateNewBookingPerson = "NEW_BOOKING_PERSON"
	TemplateCancelledBooking = "CANCELLED_BOOKING"
)
