package bookings

import (
	"context"
	"fmt"

	ical "github.com/arran4/golang-ical"

	"github.com/m04kA/SMC-SalonBookingService/internal/availability"
	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	"github.com/m04kA/SMC-SalonBookingService/internal/service/bookings/models"
	"github.com/m04kA/SMC-SalonBookingService/pkg/ptr"
)

const calendarProductID = "-//SMC//Salon Booking Service//PT"

// Calendar выгружает подтверждённые записи профессионала за период в формате iCalendar
func (s *Service) Calendar(ctx context.Context, req *models.CalendarRequest) (string, error) {
	s.logger.Info("Calendar: exporting bookings for professional=%d", req.ProfessionalID)

	if req.ProfessionalID <= 0 {
		return "", fmt.Errorf("%w: professionalId must be positive", ErrInvalidInput)
	}
	if req.StartDate.After(req.EndDate) {
		return "", ErrInvalidTimeRange
	}

	bookings, err := s.bookingRepo.GetByProfessionalWithFilter(ctx, domain.ProfessionalBookingsFilter{
		ProfessionalID: req.ProfessionalID,
		StartDate:      &req.StartDate,
		EndDate:        &req.EndDate,
		Status:         ptr.Ptr(domain.StatusConfirmed),
	})
	if err != nil {
		s.logger.Error("Calendar: repository error for professional=%d: %v", req.ProfessionalID, err)
		return "", fmt.Errorf("%w: Calendar - repository error: %v", ErrInternal, err)
	}

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(calendarProductID)

	for _, b := range bookings {
		slot, err := availability.BookingSlot(b)
		if err != nil {
			s.logger.Warn("Calendar: booking %s has invalid time: %v", b.PublicID, err)
			continue
		}

		event := cal.AddEvent(b.PublicID + "@smc-salon")
		event.SetDtStampTime(b.UpdatedAt)
		event.SetStartAt(availability.AtOffset(b.Date, slot.Start, s.location))
		event.SetEndAt(availability.AtOffset(b.Date, slot.End, s.location))
		event.SetSummary(eventSummary(b))
		event.SetStatus(ical.ObjectStatusConfirmed)
	}

	s.logger.Info("Calendar: exported %d bookings for professional=%d", len(bookings), req.ProfessionalID)
	return cal.Serialize(), nil
}

func eventSummary(b *domain.Booking) string {
	summary := "Reserva " + b.PublicID
	if b.ForPersonName != nil {
		summary += " (" + *b.ForPersonName + ")"
	}
	return summary
}
