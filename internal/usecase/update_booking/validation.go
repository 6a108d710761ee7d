package update_booking

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	"github.com/m04kA/SMC-SalonBookingService/pkg/ptr"
)

// validateRequest валидирует запрос и собирает набор изменений
func validateRequest(req *Request) (domain.BookingUpdate, error) {
	var update domain.BookingUpdate

	if req.BookingID <= 0 {
		return update, fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	if req.Status == nil && req.ForPersonName == nil {
		return update, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}

	if req.Status != nil {
		status := domain.BookingStatus(strings.ToUpper(strings.TrimSpace(*req.Status)))
		if status != domain.StatusCancelled && status != domain.StatusCompleted {
			return update, fmt.Errorf("%w: status must be %s or %s",
				ErrInvalidInput, domain.StatusCancelled, domain.StatusCompleted)
		}
		update.Status = &status
	}

	if req.ForPersonName != nil {
		name := strings.TrimSpace(*req.ForPersonName)
		if utf8.RuneCountInString(name) > domain.MaxForPersonNameLength {
			return update, fmt.Errorf("%w: forPersonName is longer than %d characters",
				ErrInvalidInput, domain.MaxForPersonNameLength)
		}
		update.ForPersonName = ptr.Ptr(name)
	}

	return update, nil
}
