package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// ListBookingsRequest запрос на получение записей профессионала
type ListBookingsRequest struct {
	ProfessionalID int64
	StartDate      *time.Time // Начало периода (опционально)
	EndDate        *time.Time // Конец периода (опционально)
	Status         *string    // Фильтр по статусу (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.ProfessionalBookingsFilter, error) {
	filter := domain.ProfessionalBookingsFilter{
		ProfessionalID: r.ProfessionalID,
		StartDate:      r.StartDate,
		EndDate:        r.EndDate,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// CalendarRequest запрос на выгрузку календаря
type CalendarRequest struct {
	ProfessionalID int64
	StartDate      time.Time
	EndDate        time.Time
}

// Response модели

// BookingServiceResponse услуга в составе записи
type BookingServiceResponse struct {
	ServiceID int64   `json:"serviceId"`
	Name      string  `json:"name,omitempty"`
	Price     float64 `json:"price"`
	Order     int     `json:"order"`
}

// BookingResponse ответ с данными записи
type BookingResponse struct {
	ID             int64                    `json:"id"`
	PublicID       string                   `json:"publicId"`
	ProfessionalID int64                    `json:"professionalId"`
	ClientID       int64                    `json:"clientId"`
	Date           string                   `json:"date"`      // "2025-10-15"
	StartTime      string                   `json:"startTime"` // "10:00"
	EndTime        string                   `json:"endTime"`   // "10:30"
	Status         string                   `json:"status"`
	ForPersonName  *string                  `json:"forPersonName,omitempty"`
	Services       []BookingServiceResponse `json:"services,omitempty"`
	TotalPrice     float64                  `json:"totalPrice"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком записей
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:             b.ID,
		PublicID:       b.PublicID,
		ProfessionalID: b.ProfessionalID,
		ClientID:       b.ClientID,
		Date:           b.Date.Format(domain.DateFormat),
		StartTime:      b.StartTime.String(),
		EndTime:        b.EndTime.String(),
		Status:         string(b.Status),
		ForPersonName:  b.ForPersonName,
		TotalPrice:     b.TotalPrice(),
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}

	for _, s := range b.Services {
		resp.Services = append(resp.Services, BookingServiceResponse{
			ServiceID: s.ServiceID,
			Name:      s.Name,
			Price:     s.Price,
			Order:     s.SortOrder,
		})
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}
	for _, b := range bookings {
		resp.Bookings = append(resp.Bookings, *FromDomainBooking(b))
	}
	return resp
}

// ToDomainBookingStatus конвертирует строку в domain статус
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	status := domain.BookingStatus(s)
	if !domain.IsValidBookingStatus(status) {
		return "", ErrInvalidStatus
	}
	return status, nil
}
