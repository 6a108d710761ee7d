package list_free_slots

import (
	"github.com/m04kA/SMC-SalonBookingService/internal/api/handlers"
	listFreeSlots "github.com/m04kA/SMC-SalonBookingService/internal/usecase/list_free_slots"
)

// FreeSlotsQuery query-параметры запроса
type FreeSlotsQuery struct {
	Date            string `schema:"date" validate:"required"`                           // "2025-10-15"
	RequiredMinutes int    `schema:"requiredMinutes" validate:"required,min=1,max=1440"` // длительность записи
	IgnoreBreak     bool   `schema:"ignoreBreak"`
}

// FreeSlotsResponse HTTP response model
type FreeSlotsResponse struct {
	Result []string `json:"result"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (q *FreeSlotsQuery) ToUseCaseRequest(professionalID int64, authenticated bool) (*listFreeSlots.Request, error) {
	date, err := handlers.ParseDate(q.Date)
	if err != nil {
		return nil, err
	}

	return &listFreeSlots.Request{
		ProfessionalID:  professionalID,
		Date:            date,
		RequiredMinutes: q.RequiredMinutes,
		IsAuthenticated: authenticated,
		IgnoreBreak:     q.IgnoreBreak,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *listFreeSlots.Response) *FreeSlotsResponse {
	result := make([]string, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		result = append(result, s.String())
	}
	return &FreeSlotsResponse{Result: result}
}
