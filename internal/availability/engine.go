package availability

import (
	"fmt"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	"github.com/m04kA/SMC-SalonBookingService/pkg/types"
)

// SlotQuery запрос свободных слотов на один рабочий день
type SlotQuery struct {
	Now             int // текущий момент как смещение в минутах от полуночи целевого дня
	RequiredMinutes int
	Authenticated   bool
	IgnoreBreaks    bool // учитывается только для авторизованных
}

// LeadMinutes минимальный запас до первого доступного начала
func LeadMinutes(authenticated bool) int {
	if authenticated {
		return 0
	}
	return domain.UnauthenticatedLeadMinutes
}

// ListFreeSlots свободные смещения начала записи на день.
// Для закрытого дня или дня без часов работы список пуст.
func ListFreeSlots(day *domain.WorkingDay, bookings []*domain.Booking, q SlotQuery) ([]int, error) {
	if q.RequiredMinutes <= 0 {
		return nil, fmt.Errorf("%w: required minutes must be positive, got %d", ErrInvalidInput, q.RequiredMinutes)
	}
	if !day.IsBookable() {
		return []int{}, nil
	}
	if err := day.Time.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	periods := ResolvePeriods(*day.Time, q.IgnoreBreaks && q.Authenticated)
	occupied, err := OccupiedIntervals(bookings)
	if err != nil {
		return nil, err
	}

	return EnumerateFreeSlots(periods, occupied, q.Now, q.RequiredMinutes, LeadMinutes(q.Authenticated)), nil
}

// ConflictResult результат проверки запрошенного интервала
type ConflictResult struct {
	FitsInHours      bool
	OverlapsExisting bool
}

// Err nil, если запись можно создать. Часы работы проверяются первыми.
func (r ConflictResult) Err() error {
	if !r.FitsInHours {
		return ErrOutsideWorkingHours
	}
	if r.OverlapsExisting {
		return ErrOverlapsBooking
	}
	return nil
}

// CheckConflict сверяет интервал с часами работы и подтвержденными записями.
// Закрытый день или день без часов не подходит никогда.
func CheckConflict(day *domain.WorkingDay, bookings []*domain.Booking, requested TimeSlot) (ConflictResult, error) {
	if requested.Start >= requested.End {
		return ConflictResult{}, fmt.Errorf("%w: start %d must be before end %d", ErrInvalidInput, requested.Start, requested.End)
	}

	occupied, err := OccupiedIntervals(bookings)
	if err != nil {
		return ConflictResult{}, err
	}

	result := ConflictResult{
		OverlapsExisting: OverlapsExisting(requested, occupied),
	}
	if day.IsBookable() {
		result.FitsInHours = WithinWorkingHours(requested, *day.Time)
	}

	return result, nil
}

// FormatSlots переводит смещения в строки HH:MM
func FormatSlots(offsets []int) []types.TimeString {
	out := make([]types.TimeString, 0, len(offsets))
	for _, o := range offsets {
		out = append(out, types.FromMinutes(o))
	}
	return out
}
