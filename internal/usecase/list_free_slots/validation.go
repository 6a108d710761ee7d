package list_free_slots

import (
	"fmt"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ProfessionalID <= 0 {
		return fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.RequiredMinutes < domain.MinRequiredMinutes || req.RequiredMinutes > domain.MaxRequiredMinutes {
		return fmt.Errorf("%w: requiredMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinRequiredMinutes, domain.MaxRequiredMinutes)
	}

	return nil
}
