package availability

import (
	"fmt"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
)

// OccupiedIntervals интервалы, занятые подтвержденными записями.
// Подтвержденная запись с неразбираемым временем дает ErrMalformedBooking.
func OccupiedIntervals(bookings []*domain.Booking) ([]TimeSlot, error) {
	occupied := make([]TimeSlot, 0, len(bookings))
	for _, b := range bookings {
		if b == nil || !b.IsConfirmed() {
			continue
		}
		slot, err := BookingSlot(b)
		if err != nil {
			return nil, err
		}
		occupied = append(occupied, slot)
	}
	return occupied, nil
}

// BookingSlot переводит время начала и конца записи в TimeSlot
func BookingSlot(b *domain.Booking) (TimeSlot, error) {
	start, err := b.StartTime.Minutes()
	if err != nil {
		return TimeSlot{}, fmt.Errorf("%w: booking %q start: %v", ErrMalformedBooking, b.PublicID, err)
	}
	end, err := b.EndTime.Minutes()
	if err != nil {
		return TimeSlot{}, fmt.Errorf("%w: booking %q end: %v", ErrMalformedBooking, b.PublicID, err)
	}
	return TimeSlot{Start: start, End: end}, nil
}
