package upsert_working_day

import (
	"time"

	"github.com/m04kA/SMC-SalonBookingService/internal/service/workingdays/models"
)

// BreakRequest перерыв в минутах от полуночи
type BreakRequest struct {
	Start int `json:"start" validate:"min=0,max=1440"`
	End   int `json:"end" validate:"min=0,max=1440"`
}

// WorkingTimeRequest часы работы в минутах от полуночи
type WorkingTimeRequest struct {
	Start  int            `json:"start" validate:"min=0,max=1440"`
	End    int            `json:"end" validate:"min=0,max=1440"`
	Breaks []BreakRequest `json:"breaks" validate:"dive"`
}

// UpsertWorkingDayRequest тело запроса
type UpsertWorkingDayRequest struct {
	IsClosed bool                `json:"isClosed"`
	Time     *WorkingTimeRequest `json:"time" validate:"required_without=IsClosed"`
}

// ToServiceRequest конвертирует тело запроса в модель сервиса
func (r *UpsertWorkingDayRequest) ToServiceRequest(professionalID int64, date time.Time) *models.UpsertWorkingDayRequest {
	req := &models.UpsertWorkingDayRequest{
		ProfessionalID: professionalID,
		Date:           date,
		IsClosed:       r.IsClosed,
	}
	if r.Time != nil {
		req.Time = &models.WorkingTimeDTO{Start: r.Time.Start, End: r.Time.End}
		for _, b := range r.Time.Breaks {
			req.Time.Breaks = append(req.Time.Breaks, models.BreakDTO{Start: b.Start, End: b.End})
		}
	}
	return req
}
