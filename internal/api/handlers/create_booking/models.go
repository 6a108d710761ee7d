package create_booking

import (
	"time"

	"github.com/m04kA/SMC-SalonBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	createBooking "github.com/m04kA/SMC-SalonBookingService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-SalonBookingService/pkg/types"
)

// ServiceRequest услуга в составе записи
type ServiceRequest struct {
	ServiceID int64   `json:"serviceId" validate:"required,gt=0"`
	Price     float64 `json:"price" validate:"gte=0"`
	Order     int     `json:"order" validate:"gte=0"`
}

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ClientID       int64            `json:"clientId" validate:"required,gt=0"`
	ProfessionalID int64            `json:"professionalId" validate:"required,gt=0"`
	Date           string           `json:"date" validate:"required"`      // "2025-10-15"
	StartTime      string           `json:"startTime" validate:"required"` // "10:00"
	EndTime        string           `json:"endTime" validate:"required"`   // "10:45"
	ForPersonName  *string          `json:"forPersonName,omitempty" validate:"omitempty,max=100"`
	Services       []ServiceRequest `json:"services" validate:"required,min=1,dive"`
}

// ServiceResponse услуга в ответе
type ServiceResponse struct {
	ServiceID int64   `json:"serviceId"`
	Name      string  `json:"name,omitempty"`
	Price     float64 `json:"price"`
	Order     int     `json:"order"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID             int64             `json:"id"`
	PublicID       string            `json:"publicId"`
	ClientID       int64             `json:"clientId"`
	ProfessionalID int64             `json:"professionalId"`
	Date           string            `json:"date"`
	StartTime      string            `json:"startTime"`
	EndTime        string            `json:"endTime"`
	Status         string            `json:"status"`
	ForPersonName  *string           `json:"forPersonName,omitempty"`
	Services       []ServiceResponse `json:"services"`
	TotalPrice     float64           `json:"totalPrice"`
	CreatedAt      string            `json:"createdAt"`
	UpdatedAt      string            `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	date, err := handlers.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}

	services := make([]createBooking.ServiceLine, 0, len(r.Services))
	for _, s := range r.Services {
		services = append(services, createBooking.ServiceLine{
			ServiceID: s.ServiceID,
			Price:     s.Price,
			Order:     s.Order,
		})
	}

	return &createBooking.Request{
		ClientID:       r.ClientID,
		ProfessionalID: r.ProfessionalID,
		Date:           date,
		StartTime:      types.TimeString(r.StartTime),
		EndTime:        types.TimeString(r.EndTime),
		ForPersonName:  r.ForPersonName,
		Services:       services,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	services := make([]ServiceResponse, 0, len(resp.Services))
	for _, s := range resp.Services {
		services = append(services, ServiceResponse{
			ServiceID: s.ServiceID,
			Name:      s.Name,
			Price:     s.Price,
			Order:     s.Order,
		})
	}

	return &BookingResponse{
		ID:             resp.ID,
		PublicID:       resp.PublicID,
		ClientID:       resp.ClientID,
		ProfessionalID: resp.ProfessionalID,
		Date:           resp.Date.Format(domain.DateFormat),
		StartTime:      resp.StartTime.String(),
		EndTime:        resp.EndTime.String(),
		Status:         resp.Status,
		ForPersonName:  resp.ForPersonName,
		Services:       services,
		TotalPrice:     resp.TotalPrice,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      resp.UpdatedAt.Format(time.RFC3339),
	}
}
