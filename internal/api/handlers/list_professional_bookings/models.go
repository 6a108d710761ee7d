package list_professional_bookings

import (
	"github.com/m04kA/SMC-SalonBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBookingService/internal/service/bookings/models"
)

// BookingsQuery query-параметры запроса
type BookingsQuery struct {
	From   string `schema:"from"` // "2025-10-01"
	To     string `schema:"to"`
	Status string `schema:"status" validate:"omitempty,oneof=CONFIRMED CANCELLED COMPLETED"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (q *BookingsQuery) ToServiceRequest(professionalID int64) (*models.ListBookingsRequest, error) {
	req := &models.ListBookingsRequest{ProfessionalID: professionalID}

	if q.From != "" {
		from, err := handlers.ParseDate(q.From)
		if err != nil {
			return nil, err
		}
		req.StartDate = &from
	}

	if q.To != "" {
		to, err := handlers.ParseDate(q.To)
		if err != nil {
			return nil, err
		}
		req.EndDate = &to
	}

	if q.Status != "" {
		status := q.Status
		req.Status = &status
	}

	return req, nil
}
