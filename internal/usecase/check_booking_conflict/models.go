package check_booking_conflict

import (
	"time"

	"github.com/m04kA/SMC-SalonBookingService/pkg/types"
)

// Request модель запроса проверки пересечений
type Request struct {
	ProfessionalID int64
	Date           time.Time
	StartTime      types.TimeString
	EndTime        types.TimeString
}

// Response результат проверки
type Response struct {
	FitsInHours      bool // запись помещается в рабочие часы
	OverlapsExisting bool // запись пересекается с подтвержденной
}

// IsFree возвращает true, если запись можно создать
func (r *Response) IsFree() bool {
	return r.FitsInHours && !r.OverlapsExisting
}
