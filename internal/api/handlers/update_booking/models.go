package update_booking

import updateBooking "github.com/m04kA/SMC-SalonBookingService/internal/usecase/update_booking"

// UpdateBookingRequest HTTP request model
type UpdateBookingRequest struct {
	Status        *string `json:"status,omitempty" validate:"omitempty,oneof=CANCELLED COMPLETED"`
	ForPersonName *string `json:"forPersonName,omitempty" validate:"omitempty,max=100"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateBookingRequest) ToUseCaseRequest(bookingID int64) *updateBooking.Request {
	return &updateBooking.Request{
		BookingID:     bookingID,
		Status:        r.Status,
		ForPersonName: r.ForPersonName,
	}
}
