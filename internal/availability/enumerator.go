package availability

import (
	"sort"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
)

// GridMinutes шаг сетки, к которому выравнивается первый кандидат периода
const GridMinutes = domain.SlotGridMinutes

// EnumerateFreeSlots возвращает по возрастанию смещения, с которых можно начать
// запись длиной requiredMinutes, не задевая занятые интервалы и конец периода.
//
// now текущий момент как смещение на целевой день, к нему прибавляется lead.
// В каждом периоде курсор стартует с max(period.Start, now+lead), округленного
// вверх до сетки. Если курсор внутри занятого интервала, он прыгает на его конец,
// иначе слот добавляется и курсор сдвигается на requiredMinutes.
func EnumerateFreeSlots(periods, occupied []TimeSlot, now, requiredMinutes, leadMinutes int) []int {
	slots := make([]int, 0)
	if requiredMinutes <= 0 {
		return slots
	}

	earliest := now + leadMinutes
	for _, period := range periods {
		slots = appendPeriodSlots(slots, period, occupied, earliest, requiredMinutes)
	}

	return slots
}

func appendPeriodSlots(slots []int, period TimeSlot, occupied []TimeSlot, earliest, requiredMinutes int) []int {
	relevant := relevantIntervals(period, occupied)
	cursor := alignToGrid(max(period.Start, earliest))

	for cursor+requiredMinutes <= period.End {
		if blocking, ok := findContaining(relevant, cursor); ok {
			cursor = blocking.End
			continue
		}
		slots = append(slots, cursor)
		cursor += requiredMinutes
	}

	return slots
}

// relevantIntervals выбирает интервалы, у которых начало или конец попадает в [period.Start, period.End).
// Интервал, целиком накрывающий период, сюда не попадает.
func relevantIntervals(period TimeSlot, occupied []TimeSlot) []TimeSlot {
	relevant := make([]TimeSlot, 0, len(occupied))
	for _, o := range occupied {
		if period.Contains(o.Start) || period.Contains(o.End) {
			relevant = append(relevant, o)
		}
	}
	sort.SliceStable(relevant, func(i, j int) bool {
		return relevant[i].Start < relevant[j].Start
	})
	return relevant
}

func findContaining(intervals []TimeSlot, m int) (TimeSlot, bool) {
	for _, in := range intervals {
		if in.Contains(m) {
			return in, true
		}
	}
	return TimeSlot{}, false
}

// alignToGrid округляет m вверх до кратного GridMinutes
func alignToGrid(m int) int {
	rem := m % GridMinutes
	if rem < 0 {
		rem += GridMinutes
	}
	if rem == 0 {
		return m
	}
	return m + GridMinutes - rem
}
