package check_booking_conflict

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
)

// WorkingDayRepository интерфейс репозитория рабочих дней
type WorkingDayRepository interface {
	GetByProfessionalAndDate(ctx context.Context, professionalID int64, date time.Time) (*domain.WorkingDay, error)
}

// BookingRepository интерфейс репозитория записей
type BookingRepository interface {
	GetOccupyingByProfessionalAndDate(ctx context.Context, professionalID int64, date time.Time) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
