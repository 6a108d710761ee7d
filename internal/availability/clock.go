package availability

import (
	"time"

	// Встраиваем базу часовых поясов, чтобы America/Fortaleza была доступна в scratch-образах
	_ "time/tzdata"
)

// LoadLocation загружает часовой пояс IANA
func LoadLocation(name string) (*time.Location, error) {
	return time.LoadLocation(name)
}

// DayStart локальная полночь календарной даты day в loc.
// Используются только год, месяц и день.
func DayStart(day time.Time, loc *time.Location) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// MinutesSinceDayStart число целых минут от локальной полуночи day до t,
// с округлением вниз. Отрицательно, если t раньше дня, и больше MinutesPerDay,
// если позже.
func MinutesSinceDayStart(t time.Time, day time.Time, loc *time.Location) int {
	diff := t.Sub(DayStart(day, loc))
	minutes := int(diff / time.Minute)
	if diff < 0 && diff%time.Minute != 0 {
		minutes--
	}
	return minutes
}

// AtOffset переводит смещение в минутах на дату day в абсолютное время
func AtOffset(day time.Time, offset int, loc *time.Location) time.Time {
	return DayStart(day, loc).Add(time.Duration(offset) * time.Minute)
}
