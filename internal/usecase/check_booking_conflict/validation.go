package check_booking_conflict

import (
	"fmt"

	"github.com/m04kA/SMC-SalonBookingService/internal/availability"
)

// validateRequest валидирует входные данные и возвращает запрошенный интервал
func validateRequest(req *Request) (availability.TimeSlot, error) {
	if req.ProfessionalID <= 0 {
		return availability.TimeSlot{}, fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return availability.TimeSlot{}, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	start, err := req.StartTime.Minutes()
	if err != nil {
		return availability.TimeSlot{}, fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}

	end, err := req.EndTime.Minutes()
	if err != nil {
		return availability.TimeSlot{}, fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
	}

	if start >= end {
		return availability.TimeSlot{}, fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
	}

	return availability.TimeSlot{Start: start, End: end}, nil
}
