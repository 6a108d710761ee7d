package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	"github.com/m04kA/SMC-SalonBookingService/internal/infra/events"
)

// BookingRepository интерфейс репозитория записей
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetOccupyingByProfessionalAndDate(ctx context.Context, professionalID int64, date time.Time) ([]*domain.Booking, error)
}

// WorkingDayRepository интерфейс репозитория рабочих дней
type WorkingDayRepository interface {
	GetByProfessionalAndDate(ctx context.Context, professionalID int64, date time.Time) (*domain.WorkingDay, error)
}

// PublicIDGenerator генератор коротких идентификаторов записи
type PublicIDGenerator interface {
	Generate(ctx context.Context) (string, error)
}

// Notifier отправляет клиенту подтверждение
type Notifier interface {
	BookingCreated(ctx context.Context, booking *domain.Booking) error
}

// EventPublisher публикует события о записях
type EventPublisher interface {
	Publish(ctx context.Context, event events.BookingEvent) error
}

// MetricsRecorder метрики конфликтов при записи
type MetricsRecorder interface {
	IncBookingConflict(reason string)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
