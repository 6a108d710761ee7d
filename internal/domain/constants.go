package domain

// Scheduling constants
const (
	MinutesPerDay              = 1440
	SlotGridMinutes            = 10 // шаг сетки, к которому выравнивается первый слот
	UnauthenticatedLeadMinutes = 15 // минимальный запас времени для записи клиентом
	DefaultTimezone            = "America/Fortaleza"
)

// Business validation constants
const (
	MinRequiredMinutes     = 1
	MaxRequiredMinutes     = MinutesPerDay
	MaxForPersonNameLength = 100
	PublicIDLength         = 5
	PublicIDMaxAttempts    = 100
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// OccupyingStatuses статусы записей, которые занимают время профессионала
var OccupyingStatuses = []BookingStatus{
	StatusConfirmed,
}
