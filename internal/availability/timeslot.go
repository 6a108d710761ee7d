package availability

import "fmt"

// TimeSlot полуоткрытый интервал [Start, End) в минутах от локальной полуночи.
// При Start >= End интервал пуст.
type TimeSlot struct {
	Start int
	End   int
}

// Duration длина интервала, для пустого 0
func (s TimeSlot) Duration() int {
	if s.End <= s.Start {
		return 0
	}
	return s.End - s.Start
}

// IsEmpty true, если интервал не содержит ни одной минуты
func (s TimeSlot) IsEmpty() bool {
	return s.Start >= s.End
}

// Contains проверяет, что минута m лежит в [Start, End)
func (s TimeSlot) Contains(m int) bool {
	return s.Start <= m && m < s.End
}

func (s TimeSlot) String() string {
	return fmt.Sprintf("[%d,%d)", s.Start, s.End)
}
