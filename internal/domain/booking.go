package domain

import (
	"time"

	"github.com/m04kA/SMC-SalonBookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "CONFIRMED"
	StatusCancelled BookingStatus = "CANCELLED"
	StatusCompleted BookingStatus = "COMPLETED"
)

// Booking represents a client appointment with a professional
type Booking struct {
	ID             int64
	PublicID       string // короткий идентификатор, который видит клиент
	ProfessionalID int64
	ClientID       int64
	Date           time.Time
	StartTime      types.TimeString
	EndTime        types.TimeString
	Status         BookingStatus
	ForPersonName  *string // запись оформлена на другого человека
	WasReminded    bool
	Services       []BookingService

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BookingService is a service line attached to a booking
type BookingService struct {
	ServiceID int64
	Name      string
	Price     float64
	SortOrder int
}

// IsConfirmed returns true if the booking still occupies the professional's time
func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// CanBeUpdated returns true if the booking status may still change
func (b *Booking) CanBeUpdated() bool {
	return b.Status == StatusConfirmed
}

// TotalPrice sums the prices of all service lines
func (b *Booking) TotalPrice() float64 {
	var total float64
	for _, s := range b.Services {
		total += s.Price
	}
	return total
}

// IsValidBookingStatus reports whether s is a known status
func IsValidBookingStatus(s BookingStatus) bool {
	switch s {
	case StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// ProfessionalBookingsFilter фильтр для получения записей профессионала
type ProfessionalBookingsFilter struct {
	ProfessionalID int64          // Обязательный параметр
	StartDate      *time.Time     // Начало периода (опционально)
	EndDate        *time.Time     // Конец периода (опционально)
	Status         *BookingStatus // Фильтр по статусу (опционально)
}

// BookingUpdate набор изменяемых полей записи
type BookingUpdate struct {
	Status        *BookingStatus
	ForPersonName *string
}
