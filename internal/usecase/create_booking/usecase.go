package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonBookingService/internal/availability"
	"github.com/m04kA/SMC-SalonBookingService/internal/domain"
	"github.com/m04kA/SMC-SalonBookingService/internal/infra/events"
	workingDayRepo "github.com/m04kA/SMC-SalonBookingService/internal/infra/storage/workingday"
)

// UseCase use case для создания записи
type UseCase struct {
	bookingRepo    BookingRepository
	workingDayRepo WorkingDayRepository
	publicIDs      PublicIDGenerator
	notifier       Notifier
	publisher      EventPublisher
	metrics        MetricsRecorder
	txManager      TransactionManager
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	workingDayRepo WorkingDayRepository,
	publicIDs PublicIDGenerator,
	notifier Notifier,
	publisher EventPublisher,
	metrics MetricsRecorder,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		workingDayRepo: workingDayRepo,
		publicIDs:      publicIDs,
		notifier:       notifier,
		publisher:      publisher,
		metrics:        metrics,
		txManager:      txManager,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case создания записи.
// Проверка пересечений и вставка выполняются в одной сериализуемой транзакции.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: client=%d, professional=%d, date=%s, %s-%s",
		req.ClientID, req.ProfessionalID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	requested, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 2. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем рабочий день с блокировкой (FOR UPDATE)
		day, err := uc.workingDayRepo.GetByProfessionalAndDate(txCtx, req.ProfessionalID, req.Date)
		if err != nil && !errors.Is(err, workingDayRepo.ErrWorkingDayNotFound) {
			uc.logger.Error("CreateBooking: failed to get working day: %v", err)
			return fmt.Errorf("%w: failed to get working day: %w", ErrInternal, err)
		}
		if !day.IsBookable() {
			uc.logger.Warn("CreateBooking: professional=%d is unavailable on %s",
				req.ProfessionalID, req.Date.Format(domain.DateFormat))
			uc.metrics.IncBookingConflict(conflictUnavailable)
			return ErrProfessionalUnavailable
		}

		// 2.2. Получаем подтвержденные записи на этот день с блокировкой
		bookings, err := uc.bookingRepo.GetOccupyingByProfessionalAndDate(txCtx, req.ProfessionalID, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %w", ErrInternal, err)
		}

		// 2.3. Проверяем рабочие часы и пересечения
		check, err := availability.CheckConflict(day, bookings, requested)
		if err != nil {
			if errors.Is(err, availability.ErrMalformedBooking) {
				uc.logger.Error("CreateBooking: stored booking is malformed: %v", err)
				return fmt.Errorf("%w: %v", ErrInternal, err)
			}
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		if err := check.Err(); err != nil {
			uc.logger.Warn("CreateBooking: conflict for %s: %v", requested, err)
			if errors.Is(err, availability.ErrOutsideWorkingHours) {
				uc.metrics.IncBookingConflict(conflictOutsideHours)
				return ErrOutsideWorkingHours
			}
			uc.metrics.IncBookingConflict(conflictOverlap)
			return ErrSlotNotAvailable
		}

		// 2.4. Генерируем публичный идентификатор
		publicID, err := uc.publicIDs.Generate(txCtx)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to generate public id: %v", err)
			return fmt.Errorf("%w: failed to generate public id: %w", ErrInternal, err)
		}

		// 2.5. Сохраняем запись
		booking := &domain.Booking{
			PublicID:       publicID,
			ProfessionalID: req.ProfessionalID,
			ClientID:       req.ClientID,
			Date:           req.Date,
			StartTime:      req.StartTime,
			EndTime:        req.EndTime,
			Status:         domain.StatusConfirmed,
			ForPersonName:  req.ForPersonName,
			// Подтверждение уходит сразу, отдельное напоминание не требуется
			WasReminded: true,
			Services:    toDomainServices(req.Services),
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, publicId=%s", result.ID, result.PublicID)

	// 3. Уведомления не влияют на результат операции
	if err := uc.notifier.BookingCreated(ctx, result); err != nil {
		uc.logger.Warn("CreateBooking: failed to notify client=%d: %v", result.ClientID, err)
	}

	event := events.NewBookingEvent(events.TypeBookingCreated, result, uc.timeProvider.Now())
	if err := uc.publisher.Publish(ctx, event); err != nil {
		uc.logger.Warn("CreateBooking: failed to publish event: %v", err)
	}

	return toResponse(result), nil
}

func toResponse(b *domain.Booking) *Response {
	return &Response{
		ID:             b.ID,
		PublicID:       b.PublicID,
		ClientID:       b.ClientID,
		ProfessionalID: b.ProfessionalID,
		Date:           b.Date,
		StartTime:      b.StartTime,
		EndTime:        b.EndTime,
		Status:         string(b.Status),
		ForPersonName:  b.ForPersonName,
		Services:       fromDomainServices(b.Services),
		TotalPrice:     b.TotalPrice(),
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}
