package availability

import "github.com/m04kA/SMC-SalonBookingService/internal/domain"

// ResolvePeriods делит часы работы на периоды для записи, вырезая перерывы.
//
// Перерывы применяются в заданном порядке. Период, чей [Start, End) содержит
// начало перерыва, заменяется на [p.Start, b.Start) и [b.End, p.End).
// Перерыв, начинающийся вне всех периодов, игнорируется. Пустые периоды остаются.
func ResolvePeriods(wt domain.WorkingTime, ignoreBreaks bool) []TimeSlot {
	periods := []TimeSlot{{Start: wt.Start, End: wt.End}}
	if ignoreBreaks {
		return periods
	}

	for _, br := range wt.Breaks {
		next := make([]TimeSlot, 0, len(periods)+1)
		for _, p := range periods {
			if !p.Contains(br.Start) {
				next = append(next, p)
				continue
			}
			next = append(next,
				TimeSlot{Start: p.Start, End: br.Start},
				TimeSlot{Start: br.End, End: p.End},
			)
		}
		periods = next
	}

	return periods
}
