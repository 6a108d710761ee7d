package check_conflict

import (
	"github.com/m04kA/SMC-SalonBookingService/internal/api/handlers"
	checkConflict "github.com/m04kA/SMC-SalonBookingService/internal/usecase/check_booking_conflict"
	"github.com/m04kA/SMC-SalonBookingService/pkg/types"
)

// ConflictQuery query-параметры запроса
type ConflictQuery struct {
	Date      string `schema:"date" validate:"required"`
	StartTime string `schema:"startTime" validate:"required"`
	EndTime   string `schema:"endTime" validate:"required"`
}

// ConflictResponse HTTP response model
type ConflictResponse struct {
	FitsInHours      bool `json:"fitsInHours"`
	OverlapsExisting bool `json:"overlapsExisting"`
	Available        bool `json:"available"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (q *ConflictQuery) ToUseCaseRequest(professionalID int64) (*checkConflict.Request, error) {
	date, err := handlers.ParseDate(q.Date)
	if err != nil {
		return nil, err
	}

	return &checkConflict.Request{
		ProfessionalID: professionalID,
		Date:           date,
		StartTime:      types.TimeString(q.StartTime),
		EndTime:        types.TimeString(q.EndTime),
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkConflict.Response) *ConflictResponse {
	return &ConflictResponse{
		FitsInHours:      resp.FitsInHours,
		OverlapsExisting: resp.OverlapsExisting,
		Available:        resp.IsFree(),
	}
}
