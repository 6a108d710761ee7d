package availability

import "github.com/m04kA/SMC-SalonBookingService/internal/domain"

// WithinWorkingHours проверяет, что интервал внутри часов работы.
// Перерывы не учитываются.
func WithinWorkingHours(requested TimeSlot, wt domain.WorkingTime) bool {
	return requested.Start >= wt.Start && requested.End <= wt.End
}

// OverlapsExisting проверяет пересечение с любым из интервалов.
// Обе границы считаются закрытыми: запись, заканчивающаяся в момент начала другой, пересекается с ней.
func OverlapsExisting(requested TimeSlot, existing []TimeSlot) bool {
	for _, e := range existing {
		if e.Start <= requested.End && e.End >= requested.Start {
			return true
		}
	}
	return false
}
