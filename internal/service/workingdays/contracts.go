package workingdays

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
)

// WorkingDayRepository интерфейс репозитория рабочих дней
type WorkingDayRepository interface {
	GetByProfessionalAndDate(ctx context.Context, professionalID int64, date time.Time) (*domain.WorkingDay, error)
	Upsert(ctx context.Context, day *domain.WorkingDay) (*domain.WorkingDay, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
