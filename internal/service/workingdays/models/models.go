package models

import (
	"time"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
)

// BreakDTO перерыв в минутах от полуночи
type BreakDTO struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// WorkingTimeDTO часы работы в минутах от полуночи
type WorkingTimeDTO struct {
	Start  int        `json:"start"`
	End    int        `json:"end"`
	Breaks []BreakDTO `json:"breaks"`
}

// UpsertWorkingDayRequest запрос на сохранение рабочего дня
type UpsertWorkingDayRequest struct {
	ProfessionalID int64
	Date           time.Time
	IsClosed       bool
	Time           *WorkingTimeDTO
}

// WorkingDayResponse ответ с рабочим днём
type WorkingDayResponse struct {
	ID             int64           `json:"id"`
	ProfessionalID int64           `json:"professionalId"`
	Date           string          `json:"date"`
	IsClosed       bool            `json:"isClosed"`
	Time           *WorkingTimeDTO `json:"time"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// ToDomainWorkingTime конвертирует DTO в domain модель
func (t *WorkingTimeDTO) ToDomainWorkingTime() *domain.WorkingTime {
	if t == nil {
		return nil
	}
	wt := &domain.WorkingTime{Start: t.Start, End: t.End}
	for _, b := range t.Breaks {
		wt.Breaks = append(wt.Breaks, domain.Break{Start: b.Start, End: b.End})
	}
	return wt
}

// FromDomainWorkingDay конвертирует domain модель в DTO
func FromDomainWorkingDay(d *domain.WorkingDay) *WorkingDayResponse {
	if d == nil {
		return nil
	}

	resp := &WorkingDayResponse{
		ID:             d.ID,
		ProfessionalID: d.ProfessionalID,
		Date:           d.Date.Format(domain.DateFormat),
		IsClosed:       d.IsClosed,
		UpdatedAt:      d.UpdatedAt,
	}

	if d.Time != nil {
		resp.Time = &WorkingTimeDTO{
			Start:  d.Time.Start,
			End:    d.Time.End,
			Breaks: make([]BreakDTO, 0, len(d.Time.Breaks)),
		}
		for _, b := range d.Time.Breaks {
			resp.Time.Breaks = append(resp.Time.Breaks, BreakDTO{Start: b.Start, End: b.End})
		}
	}

	return resp
}
